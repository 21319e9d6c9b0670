package billing

import (
	"api/database"
	"api/middlewares"
	"api/schemas"
	"api/utils"
	"context"
	"log"
	"net/http"
	"os"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func GetAllInvoices(w http.ResponseWriter, r *http.Request) {
	account, ok := middlewares.GetAccount(r)
	if !ok {
		utils.SendResponse(w, http.StatusUnauthorized, "Conta não autenticada", nil, 0)
		return
	}

	filter := bson.D{{Key: "coach_id", Value: account.ID}}

	if status := r.URL.Query().Get("status"); status != "" {
		filter = append(filter, bson.E{Key: "status", Value: status})
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

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_INVOICES_IN_MONGODB)
		return
	}
	defer cursor.Close(ctx)

	invoices := []schemas.Invoice{}
	if err := cursor.All(ctx, &invoices); err != nil {
		utils.SendResponse(w, http.StatusInternalServerError, "", nil, utils.CANNOT_FIND_INVOICES_IN_MONGODB)
		return
	}

	legacyIds := []int64{}
	for _, invoice := range invoices {
		if invoice.LegacyID != 0 {
			legacyIds = append(legacyIds, invoice.LegacyID)
		}
	}

	// O histórico do sistema antigo só complementa a listagem: se o MySQL
	// estiver fora, as faturas novas continuam sendo entregues.
	legacyInvoices, err := GetManyLegacy(legacyIds)
	if err != nil {
		log.Println("erro ao buscar faturas legadas no MySQL:", err)
		legacyInvoices = nil
	}

	utils.SendResponse(w, http.StatusOK, "", map[string]any{
		"invoices": invoices,
		"legacy":   legacyInvoices,
	}, 0)
}
