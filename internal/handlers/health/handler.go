package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tzbot/internal/domains/timezone/model/dto"
	"tzbot/internal/domains/timezone/service"
	"tzbot/shared/constant"
	"tzbot/shared/lifecycle"
	"tzbot/transport/http/response"
)

type Handler struct {
	service service.Timezone
	state   *lifecycle.State
}

func New(service service.Timezone, state *lifecycle.State) Handler {
	return Handler{
		service: service,
		state:   state,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Home)
	router.Get("/health", handler.Health)
}

// Home confirms the process is serving.
// @Summary Liveness banner
// @Tags Health
// @Produce plain
// @Success 200 {string} string "Timezone bot running"
// @Router / [get]
func (handler *Handler) Home(writer http.ResponseWriter, _ *http.Request) {
	response.WithText(writer, http.StatusOK, dto.MessageRunning)
}

// Health reports readiness: the server is not shutting down and the store answers.
// @Summary Readiness probe
// @Tags Health
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 503 {string} string "SERVER UNHEALTHY"
// @Router /health [get]
func (handler *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	if !handler.state.Ready() {
		response.WithPreparingShutdown(writer)

		return
	}

	if err := handler.service.Healthy(request.Context()); err != nil {
		log.Warn().Err(err).Msg("readiness check failed")

		response.WithUnhealthy(writer)

		return
	}

	response.WithText(writer, http.StatusOK, constant.ResponseHealthy)
}
