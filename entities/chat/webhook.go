package chat

import (
	"api/database"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type chatWebhookPayload struct {
	Event      string `json:"event"`
	SquadID    string `json:"squad_id"`
	SenderName string `json:"sender_name"`
	Body       string `json:"body"`
}

// Webhook recebe mensagens vindas de integrações externas (bots, automações)
// e as injeta no chat do squad como se fossem de um participante sem conta.
func Webhook(w http.ResponseWriter, r *http.Request) {
	payload := chatWebhookPayload{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.CHAT_INVALID_REQUEST_DATA)
		return
	}

	// Eventos que não são mensagem são confirmados e descartados, para o
	// provedor não ficar reenviando.
	if payload.Event != "message.received" {
		log.Println("webhook de chat ignorou evento:", payload.Event)
		utils.SendResponse(w, http.StatusOK, "", nil, 0)
		return
	}

	if payload.Body == "" {
		utils.SendResponse(w, http.StatusBadRequest, "O campo 'body' é obrigatório", nil, 0)
		return
	}

	squadID, err := bson.ObjectIDFromHex(payload.SquadID)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_SQUAD_ID_FORMAT)
		return
	}

	senderName := payload.SenderName
	if senderName == "" {
		senderName = "Integração"
	}

	message := &schemas.ChatMessage{
		SquadID:     squadID,
		AccountName: senderName,
		Body:        payload.Body,
		CreatedAt:   time.Now(),
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_CHAT_MESSAGES)

	result, err := collection.InsertOne(ctx, message)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_CHAT_MESSAGE_TO_MONGODB)
		return
	}

	message.ID = result.InsertedID.(bson.ObjectID)

	broadcastToSquad(payload.SquadID, *message)

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
