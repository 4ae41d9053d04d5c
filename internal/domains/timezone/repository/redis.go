package repository

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	goRedis "github.com/redis/go-redis/v9"

	"tzbot/infras/otel"
	"tzbot/internal/domains/timezone/model"
	"tzbot/shared/constant"
	"tzbot/shared/logger"
)

const otelRedisKeyAttribute = "redis.key"

// redisRepository keeps the whole table in one hash: field = username,
// value = timezone. HSET overwrites, which gives upsert for free.
type redisRepository struct {
	client *goRedis.Client
	key    string
	otel   otel.Otel
}

func NewRedis(client *goRedis.Client, key string, otel otel.Otel) Timezone {
	return &redisRepository{
		client: client,
		key:    key,
		otel:   otel,
	}
}

func (repo *redisRepository) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, model.EntityName, op))

	scope.SetAttributes(map[string]any{
		otelRedisKeyAttribute: repo.key,
		"db.system":           "redis",
	})

	return ctx, scope
}

func (repo *redisRepository) Get(ctx context.Context, username string) (model.Timezone, error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	tz, err := repo.client.HGet(ctx, repo.key, username).Result()
	if errors.Is(err, goRedis.Nil) {
		return model.Timezone{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Timezone{}, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return model.Timezone{Username: username, Timezone: tz}, nil
}

func (repo *redisRepository) Upsert(ctx context.Context, record model.Timezone) error {
	ctx, scope := repo.scope(ctx, "Upsert")
	defer scope.End()

	if err := repo.client.HSet(ctx, repo.key, record.Username, record.Timezone).Err(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert data (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *redisRepository) Delete(ctx context.Context, username string) error {
	ctx, scope := repo.scope(ctx, "Delete")
	defer scope.End()

	if err := repo.client.HDel(ctx, repo.key, username).Err(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete data (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *redisRepository) GetAll(ctx context.Context) ([]model.Timezone, error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	entries, err := repo.client.HGetAll(ctx, repo.key).Result()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	records := make([]model.Timezone, 0, len(entries))
	for _, username := range slices.Sorted(maps.Keys(entries)) {
		records = append(records, model.Timezone{Username: username, Timezone: entries[username]})
	}

	return records, nil
}

func (repo *redisRepository) Ping(ctx context.Context) error {
	if err := repo.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	return nil
}
