package httpapi

import (
	"net/http"

	"github.com/riskibarqy/woso-api/internal/platform/logging"
)

type RouterOptions struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	AdminToken         string
	RateLimit          RateLimitConfig
}

func NewRouter(handler *Handler, opts RouterOptions, logger *logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.SwaggerEnabled)
	registerCatalogRoutes(mux, handler)
	registerStatsRoutes(mux, handler)
	registerPageRoutes(mux, handler)
	registerAdminRoutes(mux, handler, opts.AdminToken)

	return RequestTracing(RequestLogging(logger, CORS(opts.CORSAllowedOrigins, RateLimit(opts.RateLimit, recoverPanic(logger, mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
