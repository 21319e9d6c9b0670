package funnelsessions

import (
	"api/database"
	"api/middlewares"
	"api/utils"
	"context"
	"net/http"
	"os"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// LinkOne vincula a sessão anônima à conta recém-autenticada. A transição só
// acontece uma vez; repetir com a mesma conta é no-op.
func LinkOne(w http.ResponseWriter, r *http.Request) {
	account, ok := middlewares.GetAccount(r)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Conta não autenticada", nil, 0)
		return
	}

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

	switch ResolveLink(session, account.ID) {
	case LinkAlreadyLinked:
		utils.SendResponse(w, http.StatusOK, "Sessão já vinculada a esta conta", nil, 0)
		return
	case LinkConflict:
		utils.SendResponse(w, http.StatusConflict, "Sessão já vinculada a outra conta", nil, 0)
		return
	}

	linked, err := persistLink(ctx, mongoClient, id, account.ID)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_UPDATE_SESSION_IN_MONGODB)
		return
	}
	if !linked {
		// Outra aba venceu a corrida com uma conta diferente.
		utils.SendResponse(w, http.StatusConflict, "Sessão já vinculada a outra conta", nil, 0)
		return
	}

	utils.SendResponse(w, http.StatusOK, "", nil, 0)
}
