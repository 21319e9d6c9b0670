package billing

import (
	"api/database"
	funnelsessions "api/entities/funnel_sessions"
	"api/schemas"
	"api/utils"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type paymentWebhookPayload struct {
	Event      string `json:"event"`
	ProviderID string `json:"provider_id"`
}

// Webhook recebe as confirmações do provedor de pagamento. Quando a fatura
// veio de um funil, o pagamento também destrava o passo de payment da sessão.
func Webhook(w http.ResponseWriter, r *http.Request) {
	payload := paymentWebhookPayload{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.BILLING_INVALID_REQUEST_DATA)
		return
	}

	if payload.ProviderID == "" {
		utils.SendResponse(w, http.StatusBadRequest, "O campo 'provider_id' é obrigatório", nil, 0)
		return
	}

	var newStatus string
	switch payload.Event {
	case "payment.succeeded":
		newStatus = schemas.INVOICE_STATUS_PAID
	case "payment.failed":
		newStatus = schemas.INVOICE_STATUS_FAILED
	default:
		// Confirma e descarta para o provedor não reenviar.
		log.Println("webhook de pagamento ignorou evento:", payload.Event)
		utils.SendResponse(w, http.StatusOK, "", nil, 0)
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

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_INVOICES)

	updateDoc := bson.D{
		{Key: "status", Value: newStatus},
		{Key: "updated_at", Value: time.Now()},
	}
	if newStatus == schemas.INVOICE_STATUS_PAID {
		updateDoc = append(updateDoc, bson.E{Key: "paid_at", Value: time.Now()})
	}

	// O filtro por status pending torna o webhook idempotente: reentregas do
	// mesmo evento não encontram mais a fatura.
	filter := bson.D{
		{Key: "provider_id", Value: payload.ProviderID},
		{Key: "status", Value: schemas.INVOICE_STATUS_PENDING},
	}

	invoice := schemas.Invoice{}
	err = collection.FindOneAndUpdate(ctx, filter, bson.D{{Key: "$set", Value: updateDoc}}).Decode(&invoice)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.SendResponse(w, http.StatusOK, "", nil, 0)
			return
		}
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_INVOICE_IN_MONGODB)
		return
	}

	if newStatus == schemas.INVOICE_STATUS_PAID && !invoice.SessionID.IsZero() {
		if err := funnelsessions.MarkPaymentCompleted(ctx, mongoClient, invoice.SessionID); err != nil {
			log.Println("erro ao marcar pagamento na sessão do funil:", err)
		}
	}

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
