package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "campus_http_requests_total", Help: "Total HTTP requests by route and status"},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "campus_http_request_duration_seconds", Help: "HTTP request latency", Buckets: prometheus.DefBuckets},
		[]string{"method", "route"},
	)
	Upserts = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "campus_upserts_total", Help: "Total opportunity upserts by type and outcome"},
		[]string{"type", "action"},
	)
	BatchItems = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "campus_batch_items_total", Help: "Total batch items by outcome"},
		[]string{"outcome"},
	)
	PublishFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "campus_publish_failed_total", Help: "Total opportunity events that could not be published"},
	)
	RateLimited = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "campus_rate_limited_total", Help: "Total requests rejected by the rate limiter"},
		[]string{"tier"},
	)
)

func Register() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, Upserts, BatchItems, PublishFailures, RateLimited)
}
