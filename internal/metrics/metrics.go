package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fanboy_upstream_requests_total",
			Help: "Total number of requests sent to the fanboy service, by result code",
		},
		[]string{"host", "code"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fanboy_upstream_duration_seconds",
			Help:    "Duration of requests to the fanboy service in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"host"},
	)

	UpstreamRateLimitWaits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fanboy_upstream_rate_limit_waits_total",
			Help: "Requests that had to wait for the outbound rate limiter",
		},
		[]string{"host"},
	)

	GatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fanboy_gateway_requests_total",
			Help: "Total number of requests served by the gateway",
		},
		[]string{"route", "status"},
	)

	GatewayDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fanboy_gateway_duration_seconds",
			Help:    "Duration of gateway requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

// RecordUpstream updates the upstream metrics for one completed request.
// code is the HTTP status or the transport error code.
func RecordUpstream(host string, code int, d time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(host, strconv.Itoa(code)).Inc()
	UpstreamDuration.WithLabelValues(host).Observe(d.Seconds())
}

// RecordGateway updates the gateway metrics for one served request.
func RecordGateway(route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	GatewayRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	GatewayDuration.WithLabelValues(route).Observe(d.Seconds())
}

// Handler exposes the registered metrics in the prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
