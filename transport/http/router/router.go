package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"tzbot/config"
	_ "tzbot/docs" // swagger docs
	"tzbot/internal/handlers/health"
	"tzbot/internal/handlers/timezone"
	"tzbot/transport/http/middleware"
)

type DomainHandlers struct {
	Health   health.Handler
	Timezone timezone.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
	Config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		chiMiddleware.Recoverer,
		r.Middleware.RequestID,
		r.Middleware.Logger,
		r.Middleware.CORS(),
		r.Middleware.Tracing,
	)

	r.DomainHandlers.Health.Router(router)
	r.DomainHandlers.Timezone.Router(router)

	if r.Config.App.Swagger {
		router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}
}

// Handler builds a fresh mux with every route mounted.
func (r *Router) Handler() http.Handler {
	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	return mux
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
		Config:         cfg,
	}
}
