package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantacalcio/internal/platform/logging"
)

// RouterOptions toggles the optional parts of the HTTP stack.
type RouterOptions struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	RateLimitEnabled   bool
	RateLimitRPS       float64
	RateLimitBurst     int
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.SwaggerEnabled)
	registerPlayerRoutes(mux, handler)
	registerTeamRoutes(mux, handler)
	registerQuotationRoutes(mux, handler)
	registerStatisticsRoutes(mux, handler)
	registerBackupRoutes(mux, handler)

	var next http.Handler = recoverPanic(logger, mux)
	if opts.RateLimitEnabled {
		next = RateLimit(opts.RateLimitRPS, opts.RateLimitBurst, next)
	}

	return RequestTracing(RequestLogging(logger, CORS(opts.CORSAllowedOrigins, next)))
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
