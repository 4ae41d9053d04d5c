package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"

	"tzbot/infras/otel"
	"tzbot/internal/domains/timezone/model"
	"tzbot/shared/constant"
	"tzbot/shared/logger"
)

var (
	queryGet = fmt.Sprintf("SELECT %s, %s FROM %s WHERE %s = :%s",
		model.FieldUsername, model.FieldTimezone, model.TableName, model.FieldUsername, model.FieldUsername)
	queryGetAll = fmt.Sprintf("SELECT %s, %s FROM %s ORDER BY %s ASC",
		model.FieldUsername, model.FieldTimezone, model.TableName, model.FieldUsername)
	queryUpsert = fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES (:%s, :%s) ON CONFLICT (%s) DO UPDATE SET %s = excluded.%s",
		model.TableName, model.FieldUsername, model.FieldTimezone, model.FieldUsername, model.FieldTimezone,
		model.FieldUsername, model.FieldTimezone, model.FieldTimezone)
	queryDelete = fmt.Sprintf("DELETE FROM %s WHERE %s = :%s",
		model.TableName, model.FieldUsername, model.FieldUsername)
)

// sqlRepository serves both Postgres and SQLite: the statements are portable
// and sqlx rebinds the named parameters for whichever driver db was opened with.
type sqlRepository struct {
	db   *sqlx.DB
	otel otel.Otel
}

func NewSQL(db *sqlx.DB, otel otel.Otel) Timezone {
	return &sqlRepository{
		db:   db,
		otel: otel,
	}
}

func (repo *sqlRepository) scope(ctx context.Context, op, query string) (context.Context, otel.Scope) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, model.EntityName, op))

	scope.SetAttributes(map[string]any{
		constant.OtelQueryAttributeKey: query,
		"db.system":                    repo.db.DriverName(),
	})

	return ctx, scope
}

func (repo *sqlRepository) Get(ctx context.Context, username string) (model.Timezone, error) {
	ctx, scope := repo.scope(ctx, "Get", queryGet)
	defer scope.End()

	var record model.Timezone

	prepare, err := repo.db.PrepareNamedContext(ctx, queryGet)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return record, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &record, map[string]any{model.FieldUsername: username})
	if errors.Is(err, sql.ErrNoRows) {
		return model.Timezone{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return record, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return record, nil
}

func (repo *sqlRepository) Upsert(ctx context.Context, record model.Timezone) error {
	ctx, scope := repo.scope(ctx, "Upsert", queryUpsert)
	defer scope.End()

	if _, err := repo.db.NamedExecContext(ctx, queryUpsert, record); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert data (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *sqlRepository) Delete(ctx context.Context, username string) error {
	ctx, scope := repo.scope(ctx, "Delete", queryDelete)
	defer scope.End()

	if _, err := repo.db.NamedExecContext(ctx, queryDelete, map[string]any{model.FieldUsername: username}); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete data (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *sqlRepository) GetAll(ctx context.Context) ([]model.Timezone, error) {
	ctx, scope := repo.scope(ctx, "GetAll", queryGetAll)
	defer scope.End()

	records := []model.Timezone{}

	if err := repo.db.SelectContext(ctx, &records, queryGetAll); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", model.EntityName, err)
	}

	// collations differ between databases; listings use byte order everywhere
	slices.SortStableFunc(records, func(a, b model.Timezone) int {
		return strings.Compare(a.Username, b.Username)
	})

	scope.SetAttribute("db.rows", len(records))

	return records, nil
}

func (repo *sqlRepository) Ping(ctx context.Context) error {
	if err := repo.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping %s: %w", repo.db.DriverName(), err)
	}

	return nil
}
