package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Call struct {
	ID              bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CoachID         int           `json:"coach_id,omitempty" bson:"coach_id,omitempty"`
	SquadID         bson.ObjectID `json:"squad_id,omitempty" bson:"squad_id,omitempty"`
	ProgramID       bson.ObjectID `json:"program_id,omitempty" bson:"program_id,omitempty"`
	Title           string        `json:"title,omitempty" bson:"title,omitempty"`
	ScheduledAt     time.Time     `json:"scheduled_at" bson:"scheduled_at,omitempty"`
	DurationMinutes int           `json:"duration_minutes,omitempty" bson:"duration_minutes,omitempty"`
	RoomURL         string        `json:"room_url,omitempty" bson:"room_url,omitempty"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt       time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}
