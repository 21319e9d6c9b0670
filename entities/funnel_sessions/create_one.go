package funnelsessions

import (
	"api/database"
	"api/entities/funnels"
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

type createSessionRequest struct {
	FunnelID string         `json:"funnel_id"`
	Data     map[string]any `json:"data"`
}

// CreateOne abre uma sessão anônima para um funil. Rota pública: o visitante
// ainda não tem conta neste ponto.
func CreateOne(w http.ResponseWriter, r *http.Request) {
	reqBody := createSessionRequest{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.SESSIONS_INVALID_REQUEST_DATA)
		return
	}

	funnelID, err := bson.ObjectIDFromHex(reqBody.FunnelID)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_FUNNEL_ID_FORMAT)
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

	runtime, err := funnels.LoadRuntime(ctx, mongoClient, funnelID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.SendResponse(w, http.StatusNotFound, "Funil não encontrado", nil, 0)
			return
		}
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_FUNNEL_BY_ID_IN_MONGODB)
		return
	}

	data := reqBody.Data
	if data == nil {
		data = map[string]any{}
	}

	firstIndex := NextStepIndex(-1, runtime.Steps, data, PaymentResolved(data))

	session := &schemas.FunnelSession{
		ID:                 bson.NewObjectID(),
		FunnelID:           funnelID,
		CurrentStepIndex:   firstIndex,
		CompletedStepIndex: -1,
		Data:               data,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	if err := insertSession(ctx, mongoClient, session); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_SESSION_TO_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusCreated, "", map[string]any{
		"session":  session,
		"terminal": IsTerminal(firstIndex, runtime.Steps),
	}, 0)
}
