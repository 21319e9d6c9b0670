package schemas

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	INVOICE_STATUS_PENDING = "pending"
	INVOICE_STATUS_PAID    = "paid"
	INVOICE_STATUS_FAILED  = "failed"
)

type Invoice struct {
	ID          bson.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	CoachID     int           `json:"coach_id,omitempty" bson:"coach_id,omitempty"`
	AccountID   int           `json:"account_id,omitempty" bson:"account_id,omitempty"`
	SessionID   bson.ObjectID `json:"session_id,omitempty" bson:"session_id,omitempty"`
	AmountCents int           `json:"amount_cents,omitempty" bson:"amount_cents,omitempty"`
	Currency    string        `json:"currency,omitempty" bson:"currency,omitempty"`
	Status      string        `json:"status,omitempty" bson:"status,omitempty"`
	ProviderID  string        `json:"provider_id,omitempty" bson:"provider_id,omitempty"`
	CheckoutURL string        `json:"checkout_url,omitempty" bson:"checkout_url,omitempty"`
	LegacyID    int64         `json:"legacy_id,omitempty" bson:"legacy_id,omitempty"`
	PaidAt      *time.Time    `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at,omitempty"`
}

// InvoiceLegacy espelha uma linha da tabela faturas_legado no MySQL do
// sistema antigo, mantido somente para leitura.
type InvoiceLegacy struct {
	ID          int64  `json:"id"`
	NomeCliente string `json:"nome_cliente"`
	ValorCents  int64  `json:"valor_cents"`
	Status      string `json:"status"`
	CriadoEm    string `json:"criado_em"`
}
