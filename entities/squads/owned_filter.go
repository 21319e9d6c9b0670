package squads

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ownedFilter casa um squad pelo id E pelo coach dono. Squad de outro coach
// responde como não encontrado.
func ownedFilter(id bson.ObjectID, coachID int) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "coach_id", Value: coachID},
	}
}
