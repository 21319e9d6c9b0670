package calls

import (
	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"errors"
	"net/http"
	"os"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func GetOne(w http.ResponseWriter, r *http.Request) {
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

	call := schemas.Call{}
	err = collection.FindOne(ctx, ownedFilter(id, account.ID)).Decode(&call)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.SendResponse(w, http.StatusNotFound, "Call não encontrada", nil, 0)
			return
		}
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_CALLS_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", call, 0)
}
