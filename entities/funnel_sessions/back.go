package funnelsessions

import (
	"api/database"
	"api/utils"
	"context"
	"net/http"
	"os"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Back volta um passo. Sem lógica de pulo no sentido contrário: voltar é
// sempre currentStepIndex - 1, travado em zero.
func Back(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_SESSION_ID_FORMAT)
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

	session, err := findSession(ctx, mongoClient, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.SendResponse(w, http.StatusNotFound, "Sessão não encontrada ou expirada", nil, 0)
			return
		}
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_SESSION_IN_MONGODB)
		return
	}

	if session.CompletedAt != nil {
		utils.SendResponse(w, http.StatusConflict, "Sessão já concluída", nil, 0)
		return
	}

	previousIndex := PreviousStepIndex(session.CurrentStepIndex)

	if err := persistBack(ctx, mongoClient, id, previousIndex); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_SESSION_IN_MONGODB)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", map[string]any{
		"current_step_index": previousIndex,
	}, 0)
}
