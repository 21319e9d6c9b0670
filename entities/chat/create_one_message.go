package chat

import (
	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type createMessageRequest struct {
	SquadID string `json:"squad_id"`
	Body    string `json:"body"`
}

func CreateOneMessage(w http.ResponseWriter, r *http.Request) {
	account, ok := middlewares.GetAccount(r)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Conta não autenticada", nil, 0)
		return
	}

	reqBody := createMessageRequest{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.CHAT_INVALID_REQUEST_DATA)
		return
	}

	if reqBody.Body == "" {
		utils.SendResponse(w, http.StatusBadRequest, "O campo 'body' é obrigatório", nil, 0)
		return
	}

	squadID, err := bson.ObjectIDFromHex(reqBody.SquadID)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_SQUAD_ID_FORMAT)
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

	squadsCollection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_SQUADS)

	squad := schemas.Squad{}
	err = squadsCollection.FindOne(ctx, bson.D{{Key: "_id", Value: squadID}}).Decode(&squad)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.SendResponse(w, http.StatusNotFound, "Squad não encontrado", nil, 0)
			return
		}
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_SQUADS_IN_MONGODB)
		return
	}

	if !isSquadParticipant(squad, account.ID) {
		utils.SendResponse(w, http.StatusNotFound, "Squad não encontrado", nil, 0)
		return
	}

	if !squad.ChatEnabled {
		utils.SendResponse(w, http.StatusForbidden, "O chat deste squad está desativado", nil, 0)
		return
	}

	message := &schemas.ChatMessage{
		SquadID:     squadID,
		AccountID:   account.ID,
		AccountName: account.Name,
		Body:        reqBody.Body,
		CreatedAt:   time.Now(),
	}

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_CHAT_MESSAGES)

	result, err := collection.InsertOne(ctx, message)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_CHAT_MESSAGE_TO_MONGODB)
		return
	}

	message.ID = result.InsertedID.(bson.ObjectID)

	broadcastToSquad(reqBody.SquadID, *message)

	utils.SendResponse(w, http.StatusCreated, "", message, 0)
}
