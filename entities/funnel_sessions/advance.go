package funnelsessions

import (
	"api/database"
	"api/entities/funnels"
	"api/utils"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type advanceRequest struct {
	Data map[string]any `json:"data"`
}

// Advance conclui o passo corrente e move a sessão para o próximo passo
// visível. Quando a sequência acaba, fecha a sessão e dispara os efeitos de
// conclusão uma única vez.
func Advance(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := bson.ObjectIDFromHex(idStr)
	if err != nil {
		utils.SendResponse(w, http.StatusBadRequest, "", nil, utils.INVALID_SESSION_ID_FORMAT)
		return
	}

	// O corpo é opcional: a resposta do passo corrente pode vir junto do avanço.
	reqBody := advanceRequest{}
	json.NewDecoder(r.Body).Decode(&reqBody)

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

	runtime, err := funnels.LoadRuntime(ctx, mongoClient, session.FunnelID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.SendResponse(w, http.StatusNotFound, "Funil não encontrado", nil, 0)
			return
		}
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_FUNNEL_BY_ID_IN_MONGODB)
		return
	}

	if session.CompletedAt != nil {
		// Sessão já fechada: responde terminal sem repetir efeitos.
		utils.SendResponse(w, http.StatusOK, "", map[string]any{
			"terminal":             true,
			"redirect":             ResolveRedirect(runtime),
			"current_step_index":   len(runtime.Steps),
			"completed_step_index": session.CompletedStepIndex,
		}, 0)
		return
	}

	if len(reqBody.Data) > 0 {
		if err := persistData(ctx, mongoClient, id, reqBody.Data); err != nil {
			utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_SESSION_IN_MONGODB)
			return
		}
		if session.Data == nil {
			session.Data = map[string]any{}
		}
		for key, value := range reqBody.Data {
			session.Data[key] = value
		}
	}

	nextIndex := NextStepIndex(session.CurrentStepIndex, runtime.Steps, session.Data, PaymentResolved(session.Data))

	if IsTerminal(nextIndex, runtime.Steps) {
		firstTime, err := persistCompletion(ctx, mongoClient, id, len(runtime.Steps))
		if err != nil {
			utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_SESSION_IN_MONGODB)
			return
		}

		if firstTime {
			go runCompletionSideEffects(*session, runtime)
		}

		utils.SendResponse(w, http.StatusOK, "", map[string]any{
			"terminal":             true,
			"redirect":             ResolveRedirect(runtime),
			"current_step_index":   len(runtime.Steps),
			"completed_step_index": LastRealStepIndex(runtime.Steps),
		}, 0)
		return
	}

	if err := persistAdvance(ctx, mongoClient, id, nextIndex, session.CurrentStepIndex); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_SESSION_IN_MONGODB)
		return
	}

	step := runtime.Steps[nextIndex]
	if !KnownStepType(step.Type) {
		log.Printf("[FUNNELS] Tipo de passo desconhecido %q no funil %s (índice %d)", step.Type, runtime.ID, nextIndex)
	}

	utils.SendResponse(w, http.StatusOK, "", map[string]any{
		"terminal":           false,
		"current_step_index": nextIndex,
		"step":               step,
		"fallback":           !KnownStepType(step.Type),
	}, 0)
}
