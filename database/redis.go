package database

import (
	"api/utils"
	"os"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	REDIS_FUNNEL_RUNTIME_PREFIX = "funnels:runtime:"
	REDIS_FUNNEL_RUNTIME_TTL    = 10 * time.Minute
)

var (
	redisOnce   sync.Once
	redisClient *redis.Client
)

// GetRedis devolve o cliente Redis compartilhado do processo, ou nil quando o
// REDIS_URI não é válido. O cliente é um pool de conexões, então a instância
// é única: criar e abandonar um por requisição vazaria o pool. O cache é
// sempre opcional: quem chama precisa tolerar nil.
func GetRedis() *redis.Client {
	redisOnce.Do(func() {
		opts, err := redis.ParseURL(os.Getenv(utils.REDIS_URI))
		if err != nil {
			return
		}
		redisClient = redis.NewClient(opts)
	})
	return redisClient
}
