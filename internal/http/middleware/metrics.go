package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/jobsync-search/internal/metrics"
)

// unmatchedRoute — метка для запросов, не попавших ни в один маршрут
// (сырые пути в лейблах раздувают кардинальность).
const unmatchedRoute = "unmatched"

// Metrics пишет http_requests_total/http_request_duration_seconds
// с шаблоном маршрута chi в качестве route. m == nil — no-op.
func Metrics(m *metrics.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := newStatusWriter(w)
			start := time.Now()
			next.ServeHTTP(sw, r)

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}

			m.ObserveHTTP(r.Method, route, sw.Status(), time.Since(start))
		})
	}
}
