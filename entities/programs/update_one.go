package programs

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

func UpdateOne(w http.ResponseWriter, r *http.Request) {
	account, ok := middlewares.GetAccount(r)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Conta não autenticada", nil, 0)
		return
	}

	idStr := r.PathValue("id")
	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_PROGRAM_ID_FORMAT)
		return
	}

	program := &schemas.Program{}
	if err := json.NewDecoder(r.Body).Decode(&program); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.PROGRAMS_INVALID_REQUEST_DATA)
		return
	}

	updateDoc := bson.D{}

	if program.Name != "" {
		updateDoc = append(updateDoc, bson.E{Key: "name", Value: program.Name})
	}
	if program.Description != "" {
		updateDoc = append(updateDoc, bson.E{Key: "description", Value: program.Description})
	}
	if program.LengthDays > 0 {
		updateDoc = append(updateDoc, bson.E{Key: "length_days", Value: program.LengthDays})
	}
	if program.Days != nil {
		updateDoc = append(updateDoc, bson.E{Key: "days", Value: program.Days})
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_PROGRAMS)

	result, err := collection.UpdateOne(ctx, ownedFilter(id, account.ID), bson.D{{Key: "$set", Value: updateDoc}})
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_PROGRAM_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Programa não encontrado", nil, 0)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
