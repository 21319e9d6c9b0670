package enrollments

import (
	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"net/http"
	"os"
	"strconv"

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

	if accountIDStr := r.URL.Query().Get("account_id"); accountIDStr != "" {
		accountID, err := strconv.Atoi(accountIDStr)
		if err != nil {
			utils.SendResponse(w, http.StatusBadRequest, "Parâmetro 'account_id' inválido", nil, 0)
			return
		}
		filter = append(filter, bson.E{Key: "account_id", Value: accountID})
	}

	if productIDStr := r.URL.Query().Get("product_id"); productIDStr != "" {
		productID, err := bson.ObjectIDFromHex(productIDStr)
		if err != nil {
			utils.SendResponse(w, http.StatusBadRequest, "Parâmetro 'product_id' inválido", nil, 0)
			return
		}
		filter = append(filter, bson.E{Key: "product_id", Value: productID})
	}

	if status := r.URL.Query().Get("status"); status != "" {
		filter = append(filter, bson.E{Key: "status", Value: status})
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_ENROLLMENTS)

	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_ENROLLMENTS_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	enrollments := []schemas.Enrollment{}
	if err := cursor.All(ctx, &enrollments); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_ENROLLMENTS_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", enrollments, 0)
}
