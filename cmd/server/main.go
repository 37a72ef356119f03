package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"relay_backend/internal/app/di"
	"relay_backend/internal/app/router"
	"relay_backend/internal/config"
	"relay_backend/internal/feature/relay/adapters"
	relayhandler "relay_backend/internal/feature/relay/transport/handler"
	"relay_backend/internal/feature/relay/usecase"
	infradb "relay_backend/internal/platform/db"
	infraredis "relay_backend/internal/platform/redis"
	"relay_backend/internal/shared/ratelimiter"
)

// providerCallsPerMinute keeps the service inside the CoinAPI request budget
// even if the scheduler misfires.
const providerCallsPerMinute = 30

func main() {
	// Local development reads .env; in deployment the variables come from
	// the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := infradb.OpenDB(cfg.PostgresURI)

	// Redis is optional; without it the cursor lives in memory.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = infraredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Println("[WARN] Redis unavailable. Cursor state will not survive restarts.")
			rdb = nil
		} else {
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}
	cursorStore := di.NewCursorStore(rdb)

	// Provider + repository
	provider := di.NewProvider()
	tickRepo := adapters.NewTickRepository(db)

	// Usecase
	rl := ratelimiter.NewRateLimiter(providerCallsPerMinute, time.Minute)
	ingestUC := usecase.NewIngestUsecase(provider, tickRepo, cursorStore, rl)
	queryUC := usecase.NewQueryUsecase(tickRepo)

	// Handler + router
	relayH := relayhandler.NewRelayHandler(ingestUC, queryUC)
	r := router.NewRouter(cfg, relayH)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
