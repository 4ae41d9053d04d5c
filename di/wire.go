//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"tzbot/config"
	"tzbot/infras/otel"
	timezoneRepository "tzbot/internal/domains/timezone/repository"
	timezoneService "tzbot/internal/domains/timezone/service"
	healthHandler "tzbot/internal/handlers/health"
	timezoneHandler "tzbot/internal/handlers/timezone"
	"tzbot/shared/lifecycle"
	"tzbot/shared/timezone"
	"tzbot/transport/http"
	"tzbot/transport/http/middleware"
	"tzbot/transport/http/router"
)

var infrastructures = wire.NewSet(
	otel.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	timezone.NewSystemClock,
	lifecycle.New,
)

var timezoneDomain = wire.NewSet(
	timezoneRepository.New,
	timezoneService.New,
)

var domains = wire.NewSet(
	timezoneDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	timezoneHandler.New,
	router.New,
)

// InitializeService builds the HTTP server from cfg. The returned func
// releases the store connection and flushes traces.
func InitializeService(cfg *config.Config) (*http.HTTP, func(), error) {
	wire.Build(
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return nil, nil, nil
}
