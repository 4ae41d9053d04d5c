package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"tzbot/config"
	"tzbot/shared/lifecycle"
	"tzbot/transport/http/router"
)

const readHeaderTimeout = 10 * time.Second

type HTTP struct {
	Config *config.Config
	Router router.Router
	State  *lifecycle.State

	once    sync.Once
	handler http.Handler
	server  *http.Server
}

func New(cfg *config.Config, r router.Router, state *lifecycle.State) *HTTP {
	return &HTTP{
		Config: cfg,
		Router: r,
		State:  state,
	}
}

// Serve blocks until the listener fails or a SIGTERM-driven shutdown completes.
func (h *HTTP) Serve() error {
	h.setup()

	addr := net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port)
	h.server = &http.Server{
		Addr:              addr,
		Handler:           h.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		errCh <- h.server.ListenAndServe()
	}()

	log.Info().Str("addr", addr).Msg("Starting up HTTP server.")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		stop()
		h.Shutdown(context.Background())
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown walks the server through its grace period, during which /health
// reports 503 so load balancers drain it, then its cleanup period, then
// closes the listener and waits for in-flight requests.
func (h *HTTP) Shutdown(ctx context.Context) {
	if h.Config.IsDevelopment() {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
		h.closeServer(ctx)

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.State.Set(lifecycle.ServerStateInGracePeriod)

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.State.Set(lifecycle.ServerStateInCleanupPeriod)

	cleanupCtx, cancel := context.WithTimeout(ctx, time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	h.closeServer(cleanupCtx)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

func (h *HTTP) closeServer(ctx context.Context) {
	if h.server == nil {
		return
	}

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP server did not drain in time")
	}
}

// ServeHTTP serves the routes without owning a listener, for serverless entry points.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()

	h.handler.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		h.handler = h.Router.Handler()
		h.State.Set(lifecycle.ServerStateReady)
	})
}
