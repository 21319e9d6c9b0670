package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Squad struct {
	ID          bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CoachID     int           `json:"coach_id,omitempty" bson:"coach_id,omitempty"`
	Name        string        `json:"name,omitempty" bson:"name,omitempty"`
	ProgramID   bson.ObjectID `json:"program_id,omitempty" bson:"program_id,omitempty"`
	MemberIDs   []int         `json:"member_ids,omitempty" bson:"member_ids,omitempty"`
	ChatEnabled bool          `json:"chat_enabled" bson:"chat_enabled"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}
