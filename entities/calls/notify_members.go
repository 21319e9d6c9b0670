package calls

import (
	"api/database"
	"api/entities/notifications"
	"api/schemas"
	"api/utils"
	"context"
	"log"
	"os"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// notifySquadMembers avisa os membros do squad sobre a call agendada. Roda em
// goroutine depois da resposta; qualquer falha fica só no log.
func notifySquadMembers(call schemas.Call) {
	if call.SquadID.IsZero() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), database.MONGO_TIMEOUT)
	defer cancel()

	mongoURI := os.Getenv(utils.MONGODB_URI)
	opts := options.Client().ApplyURI(mongoURI)
	mongoClient, err := mongo.Connect(opts)
	if err != nil {
		log.Println("erro ao conectar no MongoDB para avisar membros da call:", err)
		return
	}
	defer mongoClient.Disconnect(ctx)

	squadsCollection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_SQUADS)

	squad := schemas.Squad{}
	err = squadsCollection.FindOne(ctx, bson.D{{Key: "_id", Value: call.SquadID}}).Decode(&squad)
	if err != nil {
		log.Println("erro ao buscar squad para avisar membros da call:", err)
		return
	}

	if len(squad.MemberIDs) == 0 {
		return
	}

	clientsCollection := mongoClient.Database(database.GetDB()).Collection(database.COLLECTION_CLIENTS)

	cursor, err := clientsCollection.Find(ctx, bson.D{
		{Key: "account_id", Value: bson.D{{Key: "$in", Value: squad.MemberIDs}}},
	})
	if err != nil {
		log.Println("erro ao buscar membros do squad para avisar da call:", err)
		return
	}
	defer cursor.Close(ctx)

	members := []schemas.Client{}
	if err := cursor.All(ctx, &members); err != nil {
		log.Println("erro ao ler membros do squad para avisar da call:", err)
		return
	}

	for _, member := range members {
		if member.Email == "" {
			continue
		}
		err := notifications.SendBranded(member.Email, member.Name, notifications.TEMPLATE_CALL_SCHEDULED, map[string]any{
			"title": call.Title,
			"when":  call.ScheduledAt.Format("02/01/2006 15:04"),
		})
		if err != nil {
			log.Println("erro ao enviar aviso de call para", member.Email, ":", err)
		}
	}
}
