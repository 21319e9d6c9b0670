package chat

import (
	"api/schemas"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSquadParticipant(t *testing.T) {
	squad := schemas.Squad{
		CoachID:   7,
		MemberIDs: []int{10, 11, 12},
	}

	assert.True(t, isSquadParticipant(squad, 7), "coach dono lê o chat")
	assert.True(t, isSquadParticipant(squad, 11), "membro lê o chat")
	assert.False(t, isSquadParticipant(squad, 99), "conta de fora não lê o chat")
	assert.False(t, isSquadParticipant(schemas.Squad{CoachID: 7}, 10), "squad sem membros só libera o coach")
}
