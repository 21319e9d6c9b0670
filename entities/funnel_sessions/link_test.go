package funnelsessions

import (
	"testing"

	"api/schemas"

	"github.com/stretchr/testify/assert"
)

func TestResolveLink(t *testing.T) {
	anonymous := &schemas.FunnelSession{}
	linked := &schemas.FunnelSession{LinkedAccountID: 42}

	assert.Equal(t, LinkApplied, ResolveLink(anonymous, 42))
	assert.Equal(t, LinkAlreadyLinked, ResolveLink(linked, 42))
	assert.Equal(t, LinkConflict, ResolveLink(linked, 99))
}

// Vincular duas vezes com a mesma conta não muda nada: o estado resultante é
// o mesmo e a segunda chamada é reconhecida como no-op.
func TestResolveLinkIdempotent(t *testing.T) {
	session := &schemas.FunnelSession{}

	assert.Equal(t, LinkApplied, ResolveLink(session, 7))
	session.LinkedAccountID = 7

	assert.Equal(t, LinkAlreadyLinked, ResolveLink(session, 7))
	assert.Equal(t, 7, session.LinkedAccountID)
}
