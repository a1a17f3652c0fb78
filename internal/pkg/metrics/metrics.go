package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var defaultBuckets = []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000}

var (
	BackendRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lovelyplace_backend_requests_total",
		Help: "Total backend API requests by operation and outcome",
	}, []string{"op", "outcome"})
	BackendDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lovelyplace_backend_duration_ms",
		Help:    "Backend API call duration in milliseconds",
		Buckets: defaultBuckets,
	}, []string{"op"})
	GeocodeRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lovelyplace_geocode_requests_total",
		Help: "Total geocoding requests by provider and status",
	}, []string{"provider", "status"})
	GeocodeDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lovelyplace_geocode_duration_ms",
		Help:    "Geocoding call duration in milliseconds",
		Buckets: defaultBuckets,
	}, []string{"provider"})
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "lovelyplace_geocode_cache_hits_total",
		Help: "Total geocode cache hits",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "lovelyplace_geocode_cache_misses_total",
		Help: "Total geocode cache misses",
	})
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lovelyplace_http_requests_total",
		Help: "Total HTTP requests served by route and status",
	}, []string{"route", "status"})
	ActiveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "lovelyplace_active_sessions",
		Help: "Number of live browsing sessions",
	})
	StateUpdatesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lovelyplace_state_updates_total",
		Help: "Total session state changes by resulting category",
	}, []string{"category"})
	StaleResponsesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "lovelyplace_stale_responses_total",
		Help: "Total list responses dropped because a newer request superseded them",
	})
)

func init() {
	prometheus.MustRegister(BackendRequestsTotal)
	prometheus.MustRegister(BackendDurationMs)
	prometheus.MustRegister(GeocodeRequestsTotal)
	prometheus.MustRegister(GeocodeDurationMs)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(ActiveSessions)
	prometheus.MustRegister(StateUpdatesTotal)
	prometheus.MustRegister(StaleResponsesTotal)
}

// Handler - обработчик /metrics, монтируется в сервере через adaptor
func Handler() http.Handler { return promhttp.Handler() }
