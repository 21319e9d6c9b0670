package funnelsessions

import (
	"testing"

	"api/entities/funnels"
	"api/schemas"

	"github.com/stretchr/testify/assert"
)

func TestResolveRedirect(t *testing.T) {
	withRedirect := &funnels.FunnelRuntime{CompletionRedirect: "/bem-vindo"}
	withoutRedirect := &funnels.FunnelRuntime{}

	assert.Equal(t, "/bem-vindo", ResolveRedirect(withRedirect))
	assert.Equal(t, DEFAULT_COMPLETION_REDIRECT, ResolveRedirect(withoutRedirect))
}

func TestLastRealStepIndex(t *testing.T) {
	assert.Equal(t, 2, LastRealStepIndex(steps(
		schemas.STEP_TYPE_QUESTION,
		schemas.STEP_TYPE_PAYMENT,
		schemas.STEP_TYPE_SUCCESS,
	)))
	assert.Equal(t, -1, LastRealStepIndex(nil))
}
