// Package httptransport assembles the public router. It owns only transport
// concerns: middleware ordering, CORS, health, and metrics exposure.
package httptransport

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cataloghandler "pathwise/internal/catalog/handler"
	discoveryhandler "pathwise/internal/discovery/handler"
	ratelimitmw "pathwise/internal/ratelimit/middleware"
	"pathwise/pkg/platform/httputil"
	"pathwise/pkg/platform/middleware/metadata"
	"pathwise/pkg/platform/middleware/requesttime"
)

// HealthChecker reports backing-store health for the readiness endpoint.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Deps carries everything the router mounts. Health may be nil when no
// backing store is configured.
type Deps struct {
	Discovery *discoveryhandler.Handler
	Catalog   *cataloghandler.Handler
	RateLimit *ratelimitmw.Middleware
	Health    HealthChecker
}

// NewRouter wires the middleware stack and all public endpoints.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(metadata.ClientMetadata)
	r.Use(requesttime.Middleware)
	r.Use(cors)

	r.Get("/healthz", handleHealth(deps.Health))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if deps.RateLimit != nil {
			r.Use(deps.RateLimit.RateLimit)
		}
		deps.Discovery.Register(r)
		deps.Catalog.Register(r)
	})

	return r
}

// cors allows browser clients from any origin. The API is public and
// read-only apart from the recommendation evaluation, which stores nothing.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func handleHealth(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if checker != nil {
			if err := checker.Health(r.Context()); err != nil {
				httputil.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status": "degraded",
				})
				return
			}
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
