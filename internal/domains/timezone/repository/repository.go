package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"tzbot/internal/domains/timezone/model"
)

// Timezone is the storage capability every backend provides. Get returns a
// zero model when the username has no row.
type Timezone interface {
	Get(ctx context.Context, username string) (model.Timezone, error)
	Upsert(ctx context.Context, record model.Timezone) error
	Delete(ctx context.Context, username string) error
	GetAll(ctx context.Context) ([]model.Timezone, error)
	Ping(ctx context.Context) error
}
