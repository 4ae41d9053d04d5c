package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"tzbot/infras/otel"
	"tzbot/internal/domains/timezone/model"
	"tzbot/internal/domains/timezone/model/dto"
	"tzbot/internal/domains/timezone/repository"
	"tzbot/shared/constant"
	"tzbot/shared/failure"
	"tzbot/shared/timezone"
	"tzbot/shared/validator"
)

var ErrUnresolvableZone = errors.New("stored timezone cannot be resolved")

// Timezone answers every endpoint with the text shown to the user. Only
// store failures and unresolvable stored zones on Get come back as errors.
type Timezone interface {
	Set(ctx context.Context, req dto.SetTimezoneRequest) (string, error)
	Get(ctx context.Context, user string) (string, error)
	Clear(ctx context.Context, user string) (string, error)
	All(ctx context.Context) (string, error)
	Healthy(ctx context.Context) error
}

type serviceImpl struct {
	repo  repository.Timezone
	clock timezone.Clock
	otel  otel.Otel
}

func New(repo repository.Timezone, clock timezone.Clock, otel otel.Otel) Timezone {
	return &serviceImpl{
		repo:  repo,
		clock: clock,
		otel:  otel,
	}
}

func (s *serviceImpl) Set(ctx context.Context, req dto.SetTimezoneRequest) (msg string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Set")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.User = dto.NormalizeUsername(req.User)

	if err := validator.ValidateStruct(&req); err != nil {
		log.Debug().Err(err).Msg("incomplete set-timezone request")

		return dto.MessageUsage, nil
	}

	if v := timezone.Validate(req.Timezone); !v.Valid() {
		log.Debug().Err(v.Err).Str("user", req.User).Msg("rejected timezone")
		scope.AddEvent("Timezone rejected")

		return dto.MessageInvalidTimezone(req.User), nil
	}

	if err = s.repo.Upsert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Str("user", req.User).Msg("failed to save timezone")

		return "", fmt.Errorf("failed to save timezone: %w", err)
	}

	scope.AddEvent("Timezone saved")

	return dto.MessageSaved(req.User, req.Timezone), nil
}

func (s *serviceImpl) Get(ctx context.Context, user string) (msg string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user = dto.NormalizeUsername(user)

	record, err := s.repo.Get(ctx, user)
	if err != nil {
		log.Error().Err(err).Str("user", user).Msg("failed to get timezone")

		return "", fmt.Errorf("failed to get timezone: %w", err)
	}

	if record.Username == "" {
		return dto.MessageNotSet(user), nil
	}

	now, ok := timezone.Format(s.clock, record.Timezone, constant.LayoutClock12)
	if !ok {
		log.Error().Str("user", user).Str("timezone", record.Timezone).Msg("stored timezone no longer resolves")

		return "", fmt.Errorf("%w: %s", ErrUnresolvableZone, record.Timezone)
	}

	return dto.MessageLocalTime(user, record.Timezone, now), nil
}

func (s *serviceImpl) Clear(ctx context.Context, user string) (msg string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Clear")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user = dto.NormalizeUsername(user)

	if err = s.repo.Delete(ctx, user); err != nil {
		log.Error().Err(err).Str("user", user).Msg("failed to clear timezone")

		return "", fmt.Errorf("failed to clear timezone: %w", err)
	}

	return dto.MessageCleared(user), nil
}

func (s *serviceImpl) All(ctx context.Context) (msg string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".All")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	records, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list timezones")

		return "", fmt.Errorf("failed to list timezones: %w", err)
	}

	if len(records) == 0 {
		return dto.MessageNoneSet, nil
	}

	scope.SetAttribute("timezone.count", len(records))

	return s.localTimes(records).String(), nil
}

func (s *serviceImpl) localTimes(records []model.Timezone) dto.LocalTimes {
	times := make(dto.LocalTimes, len(records))

	for i, record := range records {
		now, ok := timezone.Format(s.clock, record.Timezone, constant.LayoutClock24)
		if !ok {
			log.Warn().Str("user", record.Username).Str("timezone", record.Timezone).Msg("listing timezone without local time")
		}

		times[i] = dto.LocalTime{
			Username: record.Username,
			Timezone: record.Timezone,
			Time:     now,
			Resolved: ok,
		}
	}

	return times
}

func (s *serviceImpl) Healthy(ctx context.Context) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Healthy")
	defer scope.End()

	if err := s.repo.Ping(ctx); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("%w: %w", failure.ErrStoreUnavailable, err)
	}

	return nil
}
