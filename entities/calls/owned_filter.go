package calls

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ownedFilter casa uma call pelo id E pelo coach dono. Call de outro coach
// responde como não encontrada.
func ownedFilter(id bson.ObjectID, coachID int) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "coach_id", Value: coachID},
	}
}
