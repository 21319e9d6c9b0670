package funnelsessions

import (
	"api/database"
	"api/schemas"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// store.go concentra o acesso à coleção funnel_sessions. Os handlers não
// montam filtros de sessão fora daqui.

func sessionsCollection(mongoClient *mongo.Client) *mongo.Collection {
	return mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_FUNNEL_SESSIONS)
}

func findSession(ctx context.Context, mongoClient *mongo.Client, id bson.ObjectID) (*schemas.FunnelSession, error) {
	session := &schemas.FunnelSession{}
	err := sessionsCollection(mongoClient).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&session)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func insertSession(ctx context.Context, mongoClient *mongo.Client, session *schemas.FunnelSession) error {
	_, err := sessionsCollection(mongoClient).InsertOne(ctx, session)
	return err
}

// persistData grava o bag com chaves pontuadas para não sobrescrever o que já
// foi respondido em outros passos.
func persistData(ctx context.Context, mongoClient *mongo.Client, id bson.ObjectID, data map[string]any) error {
	updateDoc := bson.D{}
	for key, value := range data {
		updateDoc = append(updateDoc, bson.E{Key: "data." + key, Value: value})
	}
	updateDoc = append(updateDoc, bson.E{Key: "updated_at", Value: time.Now()})

	update := bson.D{{Key: "$set", Value: updateDoc}}
	_, err := sessionsCollection(mongoClient).UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	return err
}

// persistAdvance move o ponteiro e registra o passo respondido. O $max garante
// que completed_step_index nunca diminui, mesmo com duas abas avançando a
// mesma sessão.
func persistAdvance(ctx context.Context, mongoClient *mongo.Client, id bson.ObjectID, nextIndex int, answeredIndex int) error {
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "current_step_index", Value: nextIndex},
			{Key: "updated_at", Value: time.Now()},
		}},
		{Key: "$max", Value: bson.D{
			{Key: "completed_step_index", Value: answeredIndex},
		}},
	}
	_, err := sessionsCollection(mongoClient).UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	return err
}

// persistBack só mexe no ponteiro corrente; o completed_step_index fica como está.
func persistBack(ctx context.Context, mongoClient *mongo.Client, id bson.ObjectID, index int) error {
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "current_step_index", Value: index},
			{Key: "updated_at", Value: time.Now()},
		}},
	}
	_, err := sessionsCollection(mongoClient).UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	return err
}

// persistCompletion fecha a sessão uma única vez: o filtro só casa enquanto
// completed_at não existe, então apenas a primeira chamada reporta a transição
// e pode disparar os efeitos de conclusão.
func persistCompletion(ctx context.Context, mongoClient *mongo.Client, id bson.ObjectID, stepCount int) (bool, error) {
	now := time.Now()
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "completed_at", Value: bson.D{{Key: "$exists", Value: false}}},
	}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "current_step_index", Value: stepCount},
			{Key: "completed_at", Value: now},
			{Key: "updated_at", Value: now},
		}},
		{Key: "$max", Value: bson.D{
			{Key: "completed_step_index", Value: stepCount - 1},
		}},
	}
	result, err := sessionsCollection(mongoClient).UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount == 1, nil
}

// persistLink vincula a sessão à conta. O $or torna a escrita idempotente
// quando a mesma conta repete a chamada.
func persistLink(ctx context.Context, mongoClient *mongo.Client, id bson.ObjectID, accountID int) (bool, error) {
	filter := bson.D{
		{Key: "_id", Value: id},
		{Key: "$or", Value: bson.A{
			bson.D{{Key: "linked_account_id", Value: bson.D{{Key: "$exists", Value: false}}}},
			bson.D{{Key: "linked_account_id", Value: accountID}},
		}},
	}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "linked_account_id", Value: accountID},
			{Key: "updated_at", Value: time.Now()},
		}},
	}
	result, err := sessionsCollection(mongoClient).UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.MatchedCount == 1, nil
}

// MarkPaymentCompleted é chamado pelo webhook de cobrança quando o provedor
// confirma um pagamento atrelado a uma sessão de funil. É o que permite ao
// sequenciador pular o passo de pagamento dali em diante.
func MarkPaymentCompleted(ctx context.Context, mongoClient *mongo.Client, id bson.ObjectID) error {
	return persistData(ctx, mongoClient, id, map[string]any{"payment_completed": true})
}
