package timezone

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tzbot/infras/otel"
	"tzbot/internal/domains/timezone/model/dto"
	"tzbot/internal/domains/timezone/service"
	"tzbot/shared/constant"
	"tzbot/transport/http/response"
)

type Handler struct {
	service service.Timezone
	otel    otel.Otel
}

func New(service service.Timezone, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/set-timezone", handler.SetTimezone)
	router.Get("/get-timezone", handler.GetTimezone)
	router.Get("/clear-timezone", handler.ClearTimezone)
	router.Get("/timezone-all", handler.GetAllTimezones)
}

// SetTimezone saves the timezone of a user.
// @Summary Save a user's timezone
// @Description Upserts the IANA timezone of a user. Missing parameters and invalid zones are answered with a hint, not an error status.
// @Tags Timezone
// @Produce plain
// @Param user query string true "Username, stored lowercased"
// @Param tz query string true "IANA timezone, e.g. Europe/London"
// @Success 200 {string} string "alice, your timezone (Europe/London) has been saved ✅"
// @Failure 500 {string} string "Internal Server Error"
// @Router /set-timezone [get]
func (handler *Handler) SetTimezone(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetTimezone")
	defer scope.End()

	req := dto.SetTimezoneRequest{}
	req.FromRequest(request)

	msg, err := handler.service.Set(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set timezone")

		response.WithError(writer, err)

		return
	}

	response.WithText(writer, http.StatusOK, msg)
}

// GetTimezone tells the current local time of a user.
// @Summary Get a user's local time
// @Description Renders the current time in the user's timezone as 12-hour clock time.
// @Tags Timezone
// @Produce plain
// @Param user query string true "Username"
// @Success 200 {string} string "The local time for alice (Europe/London) is 02:45 PM ⏰"
// @Failure 500 {string} string "Internal Server Error"
// @Router /get-timezone [get]
func (handler *Handler) GetTimezone(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTimezone")
	defer scope.End()

	req := dto.UserRequest{}
	req.FromRequest(request)

	msg, err := handler.service.Get(ctx, req.User)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get timezone")

		response.WithError(writer, err)

		return
	}

	response.WithText(writer, http.StatusOK, msg)
}

// ClearTimezone removes the timezone of a user.
// @Summary Clear a user's timezone
// @Description Deletes the stored timezone. Clearing a user that never set one succeeds.
// @Tags Timezone
// @Produce plain
// @Param user query string true "Username"
// @Success 200 {string} string "alice, your timezone has been cleared 🗑️"
// @Failure 500 {string} string "Internal Server Error"
// @Router /clear-timezone [get]
func (handler *Handler) ClearTimezone(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClearTimezone")
	defer scope.End()

	req := dto.UserRequest{}
	req.FromRequest(request)

	msg, err := handler.service.Clear(ctx, req.User)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to clear timezone")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Timezone cleared for user " + req.User)

	response.WithText(writer, http.StatusOK, msg)
}

// GetAllTimezones lists every user with their current local time.
// @Summary List all users' local times
// @Description Users ordered by name, joined with " | ", each with its 24-hour local time when the zone resolves.
// @Tags Timezone
// @Produce plain
// @Success 200 {string} string "alice: Europe/London (14:45) | bob: Asia/Tokyo (22:45)"
// @Failure 500 {string} string "Internal Server Error"
// @Router /timezone-all [get]
func (handler *Handler) GetAllTimezones(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllTimezones")
	defer scope.End()

	msg, err := handler.service.All(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list timezones")

		response.WithError(writer, err)

		return
	}

	response.WithText(writer, http.StatusOK, msg)
}
