package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	STEP_TYPE_QUESTION   = "question"
	STEP_TYPE_SIGNUP     = "signup"
	STEP_TYPE_PAYMENT    = "payment"
	STEP_TYPE_SCHEDULING = "scheduling"
	STEP_TYPE_INFO       = "info"
	STEP_TYPE_SUCCESS    = "success"

	SHOW_IF_OPERATOR_EQ  = "eq"
	SHOW_IF_OPERATOR_NEQ = "neq"
	SHOW_IF_OPERATOR_IN  = "in"
	SHOW_IF_OPERATOR_NIN = "nin"

	PRODUCT_TYPE_PROGRAM = "program"
	PRODUCT_TYPE_SQUAD   = "squad"
)

// ShowIfRule é a regra de visibilidade condicional de um passo, avaliada
// contra os dados acumulados da sessão.
type ShowIfRule struct {
	Field    string `json:"field" bson:"field"`
	Operator string `json:"operator" bson:"operator"`
	Value    any    `json:"value" bson:"value"`
}

type FunnelStep struct {
	Type   string         `json:"type" bson:"type"`
	Title  string         `json:"title,omitempty" bson:"title,omitempty"`
	Config map[string]any `json:"config,omitempty" bson:"config,omitempty"`
	ShowIf *ShowIfRule    `json:"show_if,omitempty" bson:"show_if,omitempty"`
}

// FunnelProduct descreve o que a conclusão do funil libera.
type FunnelProduct struct {
	Type string        `json:"type,omitempty" bson:"type,omitempty"`
	ID   bson.ObjectID `json:"id,omitempty" bson:"id,omitempty"`
}

type Funnel struct {
	ID                 bson.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	CoachID            int            `json:"coach_id,omitempty" bson:"coach_id,omitempty"`
	Name               string         `json:"name,omitempty" bson:"name,omitempty"`
	Slug               string         `json:"slug,omitempty" bson:"slug,omitempty"`
	Product            *FunnelProduct `json:"product,omitempty" bson:"product,omitempty"`
	CompletionRedirect string         `json:"completion_redirect,omitempty" bson:"completion_redirect,omitempty"`
	Steps              []FunnelStep   `json:"steps,omitempty" bson:"steps,omitempty"`
	CreatedAt          time.Time      `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt          time.Time      `json:"updated_at" bson:"updated_at,omitempty"`
}
