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

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func CreateOne(w http.ResponseWriter, r *http.Request) {
	account, ok := middlewares.GetAccount(r)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Conta não autenticada", nil, 0)
		return
	}

	program := &schemas.Program{}
	if err := json.NewDecoder(r.Body).Decode(&program); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.PROGRAMS_INVALID_REQUEST_DATA)
		return
	}

	if program.Name == "" {
		utils.SendResponse(w, http.StatusBadRequest, "O campo 'name' é obrigatório", nil, 0)
		return
	}

	if program.LengthDays <= 0 {
		utils.SendResponse(w, http.StatusBadRequest, "O campo 'length_days' precisa ser maior que zero", nil, 0)
		return
	}

	program.CoachID = account.ID
	program.CreatedAt = time.Now()
	program.UpdatedAt = time.Now()

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

	result, err := collection.InsertOne(ctx, program)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_PROGRAM_TO_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusCreated, "", result.InsertedID, 0)
}
