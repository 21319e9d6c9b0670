package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegacyInvoicesQuery(t *testing.T) {
	assert.Equal(t,
		"SELECT id, nome_cliente, valor_cents, status, criado_em FROM faturas_legado WHERE id IN (?)",
		legacyInvoicesQuery(1),
	)
	assert.Equal(t,
		"SELECT id, nome_cliente, valor_cents, status, criado_em FROM faturas_legado WHERE id IN (?,?,?)",
		legacyInvoicesQuery(3),
	)
}
