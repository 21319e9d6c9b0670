package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Client struct {
	ID        bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CoachID   int           `json:"coach_id,omitempty" bson:"coach_id,omitempty"`
	AccountID int           `json:"account_id,omitempty" bson:"account_id,omitempty"`
	Name      string        `json:"name,omitempty" bson:"name,omitempty"`
	Email     string        `json:"email,omitempty" bson:"email,omitempty"`
	Phone     string        `json:"phone,omitempty" bson:"phone,omitempty"`
	Notes     string        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}
