package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamUser     = "user"
	RequestParamTimezone = "tz"
)

const (
	LayoutClock12 = "03:04 PM"
	LayoutClock24 = "15:04"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent   = "User-Agent"
	RequestHeaderContentType = "Content-Type"
	RequestHeaderRequestID   = "X-Request-ID"

	ResponseHeaderTraceID = "X-Trace-ID"
)

const (
	ContentTypeText = "text/plain; charset=utf-8"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
	ResponseHealthy              = "OK"
)

const (
	ServerEnvDevelopment = "development"
)
