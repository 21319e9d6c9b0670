package funnelsessions

import (
	"testing"

	"api/schemas"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestIsStepVisible(t *testing.T) {
	data := map[string]any{
		"tier":  "pro",
		"goal":  "hipertrofia",
		"idade": float64(30),
	}

	tests := []struct {
		name string
		rule *schemas.ShowIfRule
		want bool
	}{
		{"sem regra é sempre visível", nil, true},
		{"eq verdadeiro", &schemas.ShowIfRule{Field: "tier", Operator: "eq", Value: "pro"}, true},
		{"eq falso", &schemas.ShowIfRule{Field: "tier", Operator: "eq", Value: "starter"}, false},
		{"neq verdadeiro", &schemas.ShowIfRule{Field: "tier", Operator: "neq", Value: "starter"}, true},
		{"neq falso", &schemas.ShowIfRule{Field: "tier", Operator: "neq", Value: "pro"}, false},
		{"in membro", &schemas.ShowIfRule{Field: "goal", Operator: "in", Value: []any{"emagrecimento", "hipertrofia"}}, true},
		{"in não membro", &schemas.ShowIfRule{Field: "goal", Operator: "in", Value: []any{"mobilidade"}}, false},
		{"nin não membro", &schemas.ShowIfRule{Field: "goal", Operator: "nin", Value: []any{"mobilidade"}}, true},
		{"nin membro", &schemas.ShowIfRule{Field: "goal", Operator: "nin", Value: []any{"hipertrofia"}}, false},
		{"campo ausente com eq", &schemas.ShowIfRule{Field: "inexistente", Operator: "eq", Value: "x"}, false},
		{"campo ausente com neq", &schemas.ShowIfRule{Field: "inexistente", Operator: "neq", Value: "x"}, true},
		{"operador desconhecido libera o passo", &schemas.ShowIfRule{Field: "tier", Operator: "gte", Value: "pro"}, true},
		{"número JSON contra int do BSON", &schemas.ShowIfRule{Field: "idade", Operator: "eq", Value: int32(30)}, true},
		{"lista vinda do BSON", &schemas.ShowIfRule{Field: "tier", Operator: "in", Value: bson.A{"pro", "elite"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStepVisible(data, tt.rule))
		})
	}
}

// eq/neq e in/nin precisam ser complementos exatos para a mesma regra.
func TestOperatorsAreComplements(t *testing.T) {
	bags := []map[string]any{
		{"tier": "pro"},
		{"tier": "starter"},
		{"tier": int64(3)},
		{},
		nil,
	}
	values := []any{"pro", "starter", float64(3), nil}

	for _, bag := range bags {
		for _, value := range values {
			eq := IsStepVisible(bag, &schemas.ShowIfRule{Field: "tier", Operator: "eq", Value: value})
			neq := IsStepVisible(bag, &schemas.ShowIfRule{Field: "tier", Operator: "neq", Value: value})
			assert.NotEqual(t, eq, neq, "eq e neq devem ser complementares para %v em %v", value, bag)

			list := []any{value, "outro"}
			in := IsStepVisible(bag, &schemas.ShowIfRule{Field: "tier", Operator: "in", Value: list})
			nin := IsStepVisible(bag, &schemas.ShowIfRule{Field: "tier", Operator: "nin", Value: list})
			assert.NotEqual(t, in, nin, "in e nin devem ser complementares para %v em %v", value, bag)
		}
	}
}

func TestIsStepVisibleNilData(t *testing.T) {
	rule := &schemas.ShowIfRule{Field: "tier", Operator: "eq", Value: "pro"}
	assert.False(t, IsStepVisible(nil, rule))
	assert.True(t, IsStepVisible(nil, nil))
}
