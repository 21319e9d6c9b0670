package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// FunnelSession registra o progresso de um visitante dentro de um funil.
// current_step_index aponta sempre para um passo visível ou vale len(steps)
// quando o funil terminou. completed_step_index nunca diminui; -1 significa
// que nenhum passo foi respondido ainda.
type FunnelSession struct {
	ID                 bson.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	FunnelID           bson.ObjectID  `json:"funnel_id,omitempty" bson:"funnel_id,omitempty"`
	CurrentStepIndex   int            `json:"current_step_index" bson:"current_step_index"`
	CompletedStepIndex int            `json:"completed_step_index" bson:"completed_step_index"`
	Data               map[string]any `json:"data,omitempty" bson:"data,omitempty"`
	LinkedAccountID    int            `json:"linked_account_id,omitempty" bson:"linked_account_id,omitempty"`
	CompletedAt        *time.Time     `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	CreatedAt          time.Time      `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt          time.Time      `json:"updated_at" bson:"updated_at,omitempty"`
}
