package enrollments

import (
	"api/database"
	"api/schemas"
	"api/utils"
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GrantAccess cria a matrícula de uma conta num produto (programa ou squad)
// do coach indicado. O upsert por (conta, produto) torna a concessão
// idempotente: devolve true apenas quando a matrícula foi criada agora. Abre
// a própria conexão porque normalmente roda fora do ciclo da requisição
// (conclusão de funil).
func GrantAccess(coachID int, accountID int, productType string, productID bson.ObjectID, sourceSessionID bson.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		return false, err
	}
	defer mongoClient.Disconnect(ctx)

	collection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_ENROLLMENTS)

	now := time.Now()
	filter := bson.D{
		{Key: "account_id", Value: accountID},
		{Key: "product_type", Value: productType},
		{Key: "product_id", Value: productID},
	}
	update := bson.D{{Key: "$setOnInsert", Value: bson.D{
		{Key: "coach_id", Value: coachID},
		{Key: "account_id", Value: accountID},
		{Key: "product_type", Value: productType},
		{Key: "product_id", Value: productID},
		{Key: "source_session_id", Value: sourceSessionID},
		{Key: "start_date", Value: now},
		{Key: "current_day", Value: 1},
		{Key: "paused", Value: false},
		{Key: "status", Value: schemas.ENROLLMENT_STATUS_ACTIVE},
		{Key: "created_at", Value: now},
		{Key: "updated_at", Value: now},
	}}}

	result, err := collection.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return false, err
	}

	return result.UpsertedCount == 1, nil
}
