package middleware

import (
	"net/http"
	"time"

	"rk-commerce/pkg/metrics"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that hit no route, so stray paths do not
// blow up label cardinality.
const unmatchedRoute = "unmatched"

// Metrics records Prometheus request metrics labelled by the chi route pattern.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			metrics.TrackActiveRequest(true)
			defer metrics.TrackActiveRequest(false)

			start := time.Now()
			rw := wrapWriter(w)

			next.ServeHTTP(rw, r)

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			metrics.RecordHTTPRequest(r.Method, route, rw.statusCode, time.Since(start))
		})
	}
}
