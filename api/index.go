package handler

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"tzbot/config"
	"tzbot/di"
	"tzbot/shared/logger"
	"tzbot/transport/http/response"
)

type builder func() (http.Handler, error)

// lazyHandler builds its handler on first use and keeps it once built. A
// failed build is retried by the next request.
type lazyHandler struct {
	mu      sync.Mutex
	build   builder
	handler http.Handler
}

func (l *lazyHandler) get() (http.Handler, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.handler != nil {
		return l.handler, nil
	}

	h, err := l.build()
	if err != nil {
		return nil, err
	}

	l.handler = h

	return h, nil
}

func (l *lazyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h, err := l.get()
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize service")
		response.WithUnhealthy(w)

		return
	}

	h.ServeHTTP(w, r)
}

func buildService() (http.Handler, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	server, _, err := di.InitializeService(cfg)
	if err != nil {
		return nil, err
	}

	return server, nil
}

var service = &lazyHandler{build: buildService}

// Handler is the serverless entry point. The service is built on the first
// successful invocation and reused by warm instances.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	service.ServeHTTP(w, r)
}
