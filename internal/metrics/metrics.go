// Package metrics registers the service's Prometheus collectors on the default registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queroir_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "queroir_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queroir_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"route"},
	)

	RestaurantMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queroir_restaurant_mutations_total",
			Help: "Restaurant and dish writes by operation",
		},
		[]string{"operation"},
	)

	RouletteSpins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queroir_roulette_spins_total",
			Help: "Roulette spins by pool and outcome (picked or empty)",
		},
		[]string{"pool", "outcome"},
	)
)

// RecordMutation counts one successful write.
func RecordMutation(operation string) {
	RestaurantMutations.WithLabelValues(operation).Inc()
}

// RecordSpin counts one roulette draw.
func RecordSpin(pool string, picked bool) {
	outcome := "empty"
	if picked {
		outcome = "picked"
	}
	RouletteSpins.WithLabelValues(pool, outcome).Inc()
}

// RecordAPIRequest records the request count and latency of a matched route.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Middleware labels requests with the chi route pattern so ids do not explode cardinality.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		RecordAPIRequest(r.Method, route, status, time.Since(start))
	})
}
