package calls

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

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type createCallRequest struct {
	SquadID         string `json:"squad_id"`
	ProgramID       string `json:"program_id"`
	Title           string `json:"title"`
	ScheduledAt     string `json:"scheduled_at"`
	DurationMinutes int    `json:"duration_minutes"`
}

func CreateOne(w http.ResponseWriter, r *http.Request) {
	account, ok := middlewares.GetAccount(r)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Conta não autenticada", nil, 0)
		return
	}

	reqBody := createCallRequest{}
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.CALLS_INVALID_REQUEST_DATA)
		return
	}

	if reqBody.Title == "" {
		utils.SendResponse(w, http.StatusBadRequest, "O campo 'title' é obrigatório", nil, 0)
		return
	}

	scheduledAt, ok := utils.ParseDate(reqBody.ScheduledAt)
	if !ok {
		utils.SendResponse(w, http.StatusBadRequest, "O campo 'scheduled_at' deve ser uma data válida", nil, 0)
		return
	}

	call := &schemas.Call{
		CoachID:         account.ID,
		Title:           reqBody.Title,
		ScheduledAt:     scheduledAt,
		DurationMinutes: reqBody.DurationMinutes,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if call.DurationMinutes == 0 {
		call.DurationMinutes = 60
	}

	if reqBody.SquadID != "" {
		squadID, err := bson.ObjectIDFromHex(reqBody.SquadID)
		if err != nil {
			utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_SQUAD_ID_FORMAT)
			return
		}
		call.SquadID = squadID
	}

	if reqBody.ProgramID != "" {
		programID, err := bson.ObjectIDFromHex(reqBody.ProgramID)
		if err != nil {
			utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_PROGRAM_ID_FORMAT)
			return
		}
		call.ProgramID = programID
	}

	// A sala de vídeo é melhor-esforço: sem ela a call continua agendada e a
	// URL pode ser preenchida depois via update.
	call.RoomURL = createVideoRoom(call.Title, scheduledAt, call.DurationMinutes)

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

	result, err := collection.InsertOne(ctx, call)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_INSERT_CALL_TO_MONGODB)
		return
	}

	call.ID = result.InsertedID.(bson.ObjectID)

	go notifySquadMembers(*call)

	utils.SendResponse(w, http.StatusCreated, "", call, 0)
}
