package calls

import (
	"api/database"
	"api/middlewares"
	"api/utils"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type updateCallRequest struct {
	Title           string `json:"title"`
	ScheduledAt     string `json:"scheduled_at"`
	DurationMinutes int    `json:"duration_minutes"`
	RoomURL         string `json:"room_url"`
}

func UpdateOne(w http.ResponseWriter, r *http.Request) {
	account, ok := middlewares.GetAccount(r)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Conta não autenticada", nil, 0)
		return
	}

	idStr := r.PathValue("id")
	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_CALL_ID_FORMAT)
		return
	}

	reqBody := updateCallRequest{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.CALLS_INVALID_REQUEST_DATA)
		return
	}

	updateDoc := bson.D{}

	if reqBody.Title != "" {
		updateDoc = append(updateDoc, bson.E{Key: "title", Value: reqBody.Title})
	}
	if reqBody.ScheduledAt != "" {
		scheduledAt, ok := utils.ParseDate(reqBody.ScheduledAt)
		if !ok {
			utils.SendResponse(w, http.StatusBadRequest, "O campo 'scheduled_at' deve ser uma data válida", nil, 0)
			return
		}
		updateDoc = append(updateDoc, bson.E{Key: "scheduled_at", Value: scheduledAt})
	}
	if reqBody.DurationMinutes > 0 {
		updateDoc = append(updateDoc, bson.E{Key: "duration_minutes", Value: reqBody.DurationMinutes})
	}
	if reqBody.RoomURL != "" {
		updateDoc = append(updateDoc, bson.E{Key: "room_url", Value: reqBody.RoomURL})
	}

	if len(updateDoc) == 0 {
		utils.SendResponse(w, http.StatusBadRequest, "Nenhum campo para atualizar foi fornecido", nil, 0)
		return
	}

	updateDoc = append(updateDoc, bson.E{Key: "updated_at", Value: time.Now()})

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CONNECT_TO_MONGODB)
		return
	}
	defer mongoClient.Disconnect(ctx)

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_CALLS)

	result, err := collection.UpdateOne(ctx, ownedFilter(id, account.ID), bson.D{{Key: "$set", Value: updateDoc}})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_CALL_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Call não encontrada", nil, 0)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
