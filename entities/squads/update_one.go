package squads

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

type updateSquadRequest struct {
	Name        string `json:"name"`
	ProgramID   string `json:"program_id"`
	ChatEnabled *bool  `json:"chat_enabled"`
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
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_SQUAD_ID_FORMAT)
		return
	}

	reqBody := updateSquadRequest{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.SQUADS_INVALID_REQUEST_DATA)
		return
	}

	updateDoc := bson.D{}

	if reqBody.Name != "" {
		updateDoc = append(updateDoc, bson.E{Key: "name", Value: reqBody.Name})
	}
	if reqBody.ProgramID != "" {
		programID, err := bson.ObjectIDFromHex(reqBody.ProgramID)
		if err != nil {
			utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_PROGRAM_ID_FORMAT)
			return
		}
		updateDoc = append(updateDoc, bson.E{Key: "program_id", Value: programID})
	}
	if reqBody.ChatEnabled != nil {
		updateDoc = append(updateDoc, bson.E{Key: "chat_enabled", Value: *reqBody.ChatEnabled})
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_SQUADS)

	result, err := collection.UpdateOne(ctx, ownedFilter(id, account.ID), bson.D{{Key: "$set", Value: updateDoc}})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_SQUAD_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Squad não encontrado", nil, 0)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
