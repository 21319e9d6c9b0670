package funnelsessions

import (
	"testing"

	"api/schemas"

	"github.com/stretchr/testify/assert"
)

func steps(types ...string) []schemas.FunnelStep {
	list := make([]schemas.FunnelStep, len(types))
	for i, t := range types {
		list[i] = schemas.FunnelStep{Type: t}
	}
	return list
}

func TestNextStepIndexSkipsPaymentWhenResolved(t *testing.T) {
	list := steps(schemas.STEP_TYPE_QUESTION, schemas.STEP_TYPE_PAYMENT, schemas.STEP_TYPE_SUCCESS)

	assert.Equal(t, 2, NextStepIndex(0, list, nil, true), "pagamento resolvido pula direto para o success")
	assert.Equal(t, 1, NextStepIndex(0, list, nil, false), "sem pagamento resolvido o passo de pagamento aparece")
}

func TestNextStepIndexConditionalSkip(t *testing.T) {
	list := []schemas.FunnelStep{
		{Type: schemas.STEP_TYPE_QUESTION},
		{Type: schemas.STEP_TYPE_INFO, ShowIf: &schemas.ShowIfRule{Field: "tier", Operator: "eq", Value: "pro"}},
		{Type: schemas.STEP_TYPE_SUCCESS},
	}

	assert.Equal(t, 2, NextStepIndex(0, list, map[string]any{"tier": "starter"}, false))
	assert.Equal(t, 1, NextStepIndex(0, list, map[string]any{"tier": "pro"}, false))
}

func TestNextStepIndexTerminal(t *testing.T) {
	list := steps(schemas.STEP_TYPE_QUESTION, schemas.STEP_TYPE_INFO, schemas.STEP_TYPE_SUCCESS)

	assert.Equal(t, 3, NextStepIndex(2, list, nil, false))
	assert.True(t, IsTerminal(3, list))
	assert.False(t, IsTerminal(2, list))
}

func TestNextStepIndexEmptyList(t *testing.T) {
	empty := []schemas.FunnelStep{}

	assert.Equal(t, 0, NextStepIndex(-1, empty, nil, false))
	assert.True(t, IsTerminal(0, empty))
}

func TestNextStepIndexAllHiddenIsTerminal(t *testing.T) {
	list := []schemas.FunnelStep{
		{Type: schemas.STEP_TYPE_INFO, ShowIf: &schemas.ShowIfRule{Field: "tier", Operator: "eq", Value: "pro"}},
		{Type: schemas.STEP_TYPE_PAYMENT},
	}

	next := NextStepIndex(-1, list, map[string]any{"tier": "starter"}, true)
	assert.Equal(t, 2, next)
	assert.True(t, IsTerminal(next, list))
}

func TestNextStepIndexKeepsAuthoredOrder(t *testing.T) {
	list := steps(
		schemas.STEP_TYPE_SIGNUP,
		schemas.STEP_TYPE_QUESTION,
		schemas.STEP_TYPE_SCHEDULING,
		schemas.STEP_TYPE_SUCCESS,
	)

	index := -1
	visited := []int{}
	for {
		index = NextStepIndex(index, list, nil, false)
		if IsTerminal(index, list) {
			break
		}
		visited = append(visited, index)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, visited)
	assert.Equal(t, 4, index)
}

// completed_step_index nunca diminui ao longo de qualquer sequência de
// avanços: o índice respondido cresce junto com o ponteiro.
func TestCompletedIndexMonotonic(t *testing.T) {
	list := []schemas.FunnelStep{
		{Type: schemas.STEP_TYPE_QUESTION},
		{Type: schemas.STEP_TYPE_INFO, ShowIf: &schemas.ShowIfRule{Field: "tier", Operator: "eq", Value: "pro"}},
		{Type: schemas.STEP_TYPE_PAYMENT},
		{Type: schemas.STEP_TYPE_SUCCESS},
	}
	data := map[string]any{"tier": "starter"}

	current := NextStepIndex(-1, list, data, false)
	completed := -1
	for !IsTerminal(current, list) {
		// answeredIndex é o que o persistAdvance manda para o $max.
		answered := current
		assert.GreaterOrEqual(t, answered, completed)
		if answered > completed {
			completed = answered
		}
		current = NextStepIndex(current, list, data, false)
	}
	assert.Equal(t, 4, current)
	assert.Equal(t, 3, completed)
}

func TestPreviousStepIndex(t *testing.T) {
	assert.Equal(t, 1, PreviousStepIndex(2))
	assert.Equal(t, 0, PreviousStepIndex(1))
	assert.Equal(t, 0, PreviousStepIndex(0))
	assert.Equal(t, 0, PreviousStepIndex(-3))
}

func TestPaymentResolved(t *testing.T) {
	assert.True(t, PaymentResolved(map[string]any{"payment_completed": true}))
	assert.False(t, PaymentResolved(map[string]any{"payment_completed": "true"}))
	assert.False(t, PaymentResolved(map[string]any{}))
	assert.False(t, PaymentResolved(nil))
}

func TestKnownStepType(t *testing.T) {
	assert.True(t, KnownStepType(schemas.STEP_TYPE_QUESTION))
	assert.True(t, KnownStepType(schemas.STEP_TYPE_SUCCESS))
	assert.False(t, KnownStepType("video_sales_letter"))
	assert.False(t, KnownStepType(""))
}
