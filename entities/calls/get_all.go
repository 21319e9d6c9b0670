package calls

import (
	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func GetAll(w http.ResponseWriter, r *http.Request) {
	account, ok := middlewares.GetAccount(r)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Conta não autenticada", nil, 0)
		return
	}

	filter := bson.D{{Key: "coach_id", Value: account.ID}}

	if squadIDStr := r.URL.Query().Get("squad_id"); squadIDStr != "" {
		squadID, err := bson.ObjectIDFromHex(squadIDStr)
		if err != nil {
			utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_SQUAD_ID_FORMAT)
			return
		}
		filter = append(filter, bson.E{Key: "squad_id", Value: squadID})
	}

	if r.URL.Query().Get("upcoming") == "true" {
		filter = append(filter, bson.E{Key: "scheduled_at", Value: bson.D{{Key: "$gte", Value: time.Now()}}})
	}

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

	findOptions := options.Find().SetSort(bson.D{{Key: "scheduled_at", Value: 1}})

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_CALLS_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	calls := []schemas.Call{}
	if err := cursor.All(ctx, &calls); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_CALLS_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", calls, 0)
}
