package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	ENROLLMENT_STATUS_ACTIVE    = "active"
	ENROLLMENT_STATUS_PAUSED    = "paused"
	ENROLLMENT_STATUS_COMPLETED = "completed"
)

// Enrollment é o registro de acesso de uma conta a um produto (programa ou
// squad). É o que o funil libera ao ser concluído.
type Enrollment struct {
	ID              bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CoachID         int           `json:"coach_id,omitempty" bson:"coach_id,omitempty"`
	AccountID       int           `json:"account_id,omitempty" bson:"account_id,omitempty"`
	ProductType     string        `json:"product_type,omitempty" bson:"product_type,omitempty"`
	ProductID       bson.ObjectID `json:"product_id,omitempty" bson:"product_id,omitempty"`
	SourceSessionID bson.ObjectID `json:"source_session_id,omitempty" bson:"source_session_id,omitempty"`
	StartDate       time.Time     `json:"start_date" bson:"start_date,omitempty"`
	CurrentDay      int           `json:"current_day" bson:"current_day"`
	Paused          bool          `json:"paused" bson:"paused"`
	Status          string        `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt       time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}
