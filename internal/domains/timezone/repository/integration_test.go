//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"io"
	"log"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"tzbot/config"
	otelMocks "tzbot/infras/otel/mocks"
	"tzbot/internal/domains/timezone/repository"
)

func startContainer(t *testing.T, req testcontainers.ContainerRequest) (string, string) {
	t.Helper()

	// suppress logging
	testcontainers.Logger = log.New(io.Discard, "", 0)

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Fatal(err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, nat.Port(req.ExposedPorts[0]))
	require.NoError(t, err)

	return host, port.Port()
}

func TestStore_Postgres(t *testing.T) {
	host, port := startContainer(t, testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "tzbot",
			"POSTGRES_PASSWORD": "tzbot",
			"POSTGRES_DB":       "tzbot",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(time.Minute),
	})

	cfg := &config.Config{}
	cfg.Store.Driver = config.StoreDriverPostgres
	cfg.DB.Postgres.URL = fmt.Sprintf("postgres://tzbot:tzbot@%s:%s/tzbot?sslmode=disable", host, port)
	cfg.DB.Postgres.MaxRetry = 5
	cfg.DB.Postgres.RetryWaitTime = 1
	cfg.DB.Postgres.MaxIdleConns = 2
	cfg.DB.Postgres.MaxOpenConns = 2
	cfg.DB.AutoMigrate = true
	cfg.DB.MigrationTable = "schema_migrations"

	repo, cleanup, err := repository.New(cfg, otelMocks.NewOtel())
	require.NoError(t, err)
	defer cleanup()

	testStore(t, repo)
}

func TestStore_Redis(t *testing.T) {
	host, port := startContainer(t, testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	})

	cfg := &config.Config{}
	cfg.Store.Driver = config.StoreDriverRedis
	cfg.Store.Redis.Addr = fmt.Sprintf("%s:%s", host, port)
	cfg.Store.Redis.Key = "timezones"

	repo, cleanup, err := repository.New(cfg, otelMocks.NewOtel())
	require.NoError(t, err)
	defer cleanup()

	testStore(t, repo)
}
