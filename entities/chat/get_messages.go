package chat

import (
	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"errors"
	"net/http"
	"os"
	"strconv"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const defaultMessagesLimit = 50

// isSquadParticipant decide quem pode ler o chat: o coach dono do squad ou
// um membro dele.
func isSquadParticipant(squad schemas.Squad, accountID int) bool {
	if squad.CoachID == accountID {
		return true
	}
	for _, memberID := range squad.MemberIDs {
		if memberID == accountID {
			return true
		}
	}
	return false
}

func GetMessages(w http.ResponseWriter, r *http.Request) {
	account, ok := middlewares.GetAccount(r)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Conta não autenticada", nil, 0)
		return
	}

	squadID, err := bson.ObjectIDFromHex(r.PathValue("squadId"))
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_SQUAD_ID_FORMAT)
		return
	}

	limit := defaultMessagesLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			utils.SendResponse(w, http.StatusBadRequest, "O parâmetro 'limit' deve ser um número positivo", nil, 0)
			return
		}
		limit = parsed
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

	// Quem não participa do squad recebe a mesma resposta de squad inexistente.
	if !isSquadParticipant(squad, account.ID) {
		utils.SendResponse(w, http.StatusNotFound, "Squad não encontrado", nil, 0)
		return
	}

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_CHAT_MESSAGES)

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, bson.D{{Key: "squad_id", Value: squadID}}, findOptions)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_CHAT_MESSAGES_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	messages := []schemas.ChatMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_CHAT_MESSAGES_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", messages, 0)
}
