package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ProgramDay struct {
	Title   string `json:"title,omitempty" bson:"title,omitempty"`
	Content string `json:"content,omitempty" bson:"content,omitempty"`
}

type Program struct {
	ID          bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CoachID     int           `json:"coach_id,omitempty" bson:"coach_id,omitempty"`
	Name        string        `json:"name,omitempty" bson:"name,omitempty"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	LengthDays  int           `json:"length_days,omitempty" bson:"length_days,omitempty"`
	Days        []ProgramDay  `json:"days,omitempty" bson:"days,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}
