package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
		want    bool
	}{
		{"data simples", "2025-03-10", true},
		{"RFC3339 com Z", "2025-03-10T14:30:00Z", true},
		{"RFC3339 com offset", "2025-03-10T14:30:00-03:00", true},
		{"vazio", "", false},
		{"formato brasileiro", "10/03/2025", false},
		{"lixo", "amanhã", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidDate(tt.dateStr))
		})
	}
}

func TestParseDate(t *testing.T) {
	parsed, ok := ParseDate("2025-03-10T14:30:00-03:00")
	assert.True(t, ok)
	assert.Equal(t, time.UTC, parsed.Location())
	assert.Equal(t, 17, parsed.Hour())

	_, ok = ParseDate("não é data")
	assert.False(t, ok)
}
