// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rk_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rk_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rk_http_active_requests",
			Help: "Number of HTTP requests currently being served",
		},
	)

	// Domain metrics
	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rk_users_registered_total",
			Help: "Total number of successful registrations",
		},
	)

	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rk_login_attempts_total",
			Help: "Login attempts by outcome",
		},
		[]string{"outcome"}, // "success", "failure"
	)

	CartItemsAdded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rk_cart_items_added_total",
			Help: "Cart add operations by whether they merged into an existing row",
		},
		[]string{"mode"}, // "created", "merged"
	)

	OrdersPlaced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rk_orders_placed_total",
			Help: "Total number of orders placed",
		},
	)

	ProductsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rk_products_created_total",
			Help: "Total number of products created, seeded ones included",
		},
	)
)

// RecordHTTPRequest records latency and count for one finished request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	HTTPRequestDuration.WithLabelValues(method, route, code).Observe(duration.Seconds())
	HTTPRequestsTotal.WithLabelValues(method, route, code).Inc()
}

func TrackActiveRequest(start bool) {
	if start {
		HTTPActiveRequests.Inc()
	} else {
		HTTPActiveRequests.Dec()
	}
}

func RecordLogin(success bool) {
	if success {
		LoginAttempts.WithLabelValues("success").Inc()
		return
	}
	LoginAttempts.WithLabelValues("failure").Inc()
}

func RecordCartAdd(merged bool) {
	if merged {
		CartItemsAdded.WithLabelValues("merged").Inc()
		return
	}
	CartItemsAdded.WithLabelValues("created").Inc()
}
