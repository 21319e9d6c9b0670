package billing

import (
	"api/database"
	"api/schemas"
	"api/utils"
	"bytes"
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

type createCheckoutRequest struct {
	SessionID   string `json:"session_id"`
	AmountCents int    `json:"amount_cents"`
	Currency    string `json:"currency"`
}

type providerCheckoutResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// CreateCheckout abre uma cobrança no provedor de pagamento para o passo de
// payment de um funil. O endpoint é público porque o visitante ainda não tem
// conta nesse ponto do funil.
func CreateCheckout(w http.ResponseWriter, r *http.Request) {
	reqBody := createCheckoutRequest{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.BILLING_INVALID_REQUEST_DATA)
		return
	}

	if reqBody.AmountCents <= 0 {
		utils.SendResponse(w, http.StatusBadRequest, "O campo 'amount_cents' deve ser maior que zero", nil, 0)
		return
	}

	sessionID, err := bson.ObjectIDFromHex(reqBody.SessionID)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_SESSION_ID_FORMAT)
		return
	}

	currency := reqBody.Currency
	if currency == "" {
		currency = "BRL"
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

	sessionsCollection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_FUNNEL_SESSIONS)

	session := schemas.FunnelSession{}
	err = sessionsCollection.FindOne(ctx, bson.D{{Key: "_id", Value: sessionID}}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.SendResponse(w, http.StatusNotFound, "Sessão não encontrada ou expirada", nil, 0)
			return
		}
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_SESSION_IN_MONGODB)
		return
	}

	funnelsCollection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_FUNNELS)

	funnel := schemas.Funnel{}
	err = funnelsCollection.FindOne(ctx, bson.D{{Key: "_id", Value: session.FunnelID}}).Decode(&funnel)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_FUNNEL_BY_ID_IN_MONGODB)
		return
	}

	checkout, err := openProviderCheckout(reqBody.AmountCents, currency, sessionID.Hex())
	if err != nil {
		utils.SendResponse(w, http.StatusBadGateway, "", nil, utils.CANNOT_CREATE_PAYMENT_CHECKOUT)
		return
	}

	invoice := &schemas.Invoice{
		CoachID:     funnel.CoachID,
		AccountID:   session.LinkedAccountID,
		SessionID:   sessionID,
		AmountCents: reqBody.AmountCents,
		Currency:    currency,
		Status:      schemas.INVOICE_STATUS_PENDING,
		ProviderID:  checkout.ID,
		CheckoutURL: checkout.URL,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	invoicesCollection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_INVOICES)

	result, err := invoicesCollection.InsertOne(ctx, invoice)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_INVOICE_TO_MONGODB)
		return
	}

	invoice.ID = result.InsertedID.(bson.ObjectID)

	utils.SendResponse(w, http.StatusCreated, "", invoice, 0)
}

func openProviderCheckout(amountCents int, currency string, reference string) (*providerCheckoutResponse, error) {
	paymentAPIURL := os.Getenv(utils.PAYMENT_API_URL)

	payload, err := json.Marshal(map[string]any{
		"amount_cents": amountCents,
		"currency":     currency,
		"reference":    reference,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, paymentAPIURL+"/checkouts", bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+os.Getenv(utils.PAYMENT_API_KEY))

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, errors.New("provedor de pagamento devolveu status inesperado")
	}

	checkout := &providerCheckoutResponse{}
	if err := json.NewDecoder(resp.Body).Decode(checkout); err != nil {
		return nil, err
	}

	return checkout, nil
}
