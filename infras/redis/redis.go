package redis

import (
	"context"
	"fmt"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"tzbot/config"
)

const pingTimeout = 5 * time.Second

func New(config *config.Config) (*goRedis.Client, error) {
	opts := config.Store.Redis

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("connecting to redis at %s: %w", opts.Addr, err)
	}

	log.Info().
		Int("db", opts.DB).
		Str("addr", opts.Addr).
		Msg("Connected to Redis")

	return client, nil
}
