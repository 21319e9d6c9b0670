package enrollments

import (
	"api/database"
	"api/middlewares"
	"api/schemas"
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

type updateEnrollmentRequest struct {
	Paused *bool  `json:"paused"`
	Status string `json:"status"`
}

// UpdateOne pausa/retoma uma matrícula ou força um status. Matrícula pausada
// não avança de dia no sync de programas.
func UpdateOne(w http.ResponseWriter, r *http.Request) {
	account, ok := middlewares.GetAccount(r)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Conta não autenticada", nil, 0)
		return
	}

	idStr := r.PathValue("id")
	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.ENROLLMENTS_INVALID_REQUEST_DATA)
		return
	}

	reqBody := updateEnrollmentRequest{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.ENROLLMENTS_INVALID_REQUEST_DATA)
		return
	}

	updateDoc := bson.D{}

	if reqBody.Paused != nil {
		updateDoc = append(updateDoc, bson.E{Key: "paused", Value: *reqBody.Paused})
		if *reqBody.Paused {
			updateDoc = append(updateDoc, bson.E{Key: "status", Value: schemas.ENROLLMENT_STATUS_PAUSED})
		} else {
			updateDoc = append(updateDoc, bson.E{Key: "status", Value: schemas.ENROLLMENT_STATUS_ACTIVE})
		}
	} else if reqBody.Status != "" {
		updateDoc = append(updateDoc, bson.E{Key: "status", Value: reqBody.Status})
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_ENROLLMENTS)

	// Matrícula de produto de outro coach responde como não encontrada.
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "coach_id", Value: account.ID},
	}

	result, err := collection.UpdateOne(ctx, filter, bson.D{{Key: "$set", Value: updateDoc}})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_ENROLLMENT_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Matrícula não encontrada", nil, 0)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
