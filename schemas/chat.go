package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ChatMessage struct {
	ID          bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SquadID     bson.ObjectID `json:"squad_id,omitempty" bson:"squad_id,omitempty"`
	AccountID   int           `json:"account_id,omitempty" bson:"account_id,omitempty"`
	AccountName string        `json:"account_name,omitempty" bson:"account_name,omitempty"`
	Body        string        `json:"body,omitempty" bson:"body,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at,omitempty"`
}
