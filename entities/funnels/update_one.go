package funnels

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
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_FUNNEL_ID_FORMAT)
		return
	}

	funnel := &schemas.Funnel{}
	if err := json.NewDecoder(r.Body).Decode(&funnel); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.FUNNELS_INVALID_REQUEST_DATA)
		return
	}

	updateDoc := bson.D{}

	if funnel.Name != "" {
		updateDoc = append(updateDoc, bson.E{Key: "name", Value: funnel.Name})
	}
	if funnel.Slug != "" {
		updateDoc = append(updateDoc, bson.E{Key: "slug", Value: funnel.Slug})
	}
	if funnel.Product != nil {
		updateDoc = append(updateDoc, bson.E{Key: "product", Value: funnel.Product})
	}
	if funnel.CompletionRedirect != "" {
		updateDoc = append(updateDoc, bson.E{Key: "completion_redirect", Value: funnel.CompletionRedirect})
	}
	if funnel.Steps != nil {
		updateDoc = append(updateDoc, bson.E{Key: "steps", Value: funnel.Steps})
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_FUNNELS)

	update := bson.D{{Key: "$set", Value: updateDoc}}
	result, err := collection.UpdateOne(ctx, ownedFilter(id, account.ID), update)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_FUNNEL_IN_MONGODB)
		return
	}

	if result.MatchedCount == 0 {
		utils.SendResponse(w, http.StatusNotFound, "Funil não encontrado", nil, 0)
		return
	}

	// O runtime é cacheado: alteração de definição invalida a entrada.
	invalidateRuntimeCache(ctx, idStr)

	broadcastFunnelUpdate(FunnelWSMessage{Action: "updated", FunnelID: idStr})

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
