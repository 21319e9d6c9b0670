package database

import (
	"api/utils"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRedisReturnsSharedClient(t *testing.T) {
	// redis.ParseURL e redis.NewClient não abrem conexão, então o teste não
	// precisa de um servidor Redis de pé.
	t.Setenv(utils.REDIS_URI, "redis://localhost:6379")

	first := GetRedis()
	second := GetRedis()

	assert.NotNil(t, first)
	assert.Same(t, first, second)
}
