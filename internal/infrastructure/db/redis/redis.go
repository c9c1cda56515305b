package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	pingTimeout = 5 * time.Second

	// Slot holds are tiny single-command operations; a small pool is plenty.
	poolSize     = 10
	minIdleConns = 2
)

// Config carries the Redis settings the booking deployment exposes through
// environment variables. Password stays empty for local development; the
// hosted instance requires it.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Connect opens the client backing the slot-hold store and verifies it with a
// ping before the router starts accepting bookings.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     poolSize,
		MinIdleConns: minIdleConns,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
