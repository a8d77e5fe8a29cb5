package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the dashboard.
type Metrics struct {
	ReportsSubmitted   prometheus.Counter
	ValidationFailures prometheus.Counter
	PhotosStored       prometheus.Counter
	PublishErrors      prometheus.Counter

	// Page and chart rendering.
	ViewRenders         *prometheus.CounterVec   // labels: view
	ChartRenderDuration *prometheus.HistogramVec // labels: chart

	// Geocoding metrics.
	GeocodeRequests    *prometheus.CounterVec // labels: outcome={success,error,empty}
	GeocodeCache       *prometheus.CounterVec // labels: result={hit,negative_hit,miss}
	GeocodeAPIDuration prometheus.Histogram
	GeocodeEnabled     prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ReportsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oceandefender",
			Name:      "reports_submitted_total",
			Help:      "Total reports appended to the report log.",
		}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oceandefender",
			Name:      "report_validation_failures_total",
			Help:      "Total submissions rejected for a blank required field.",
		}),
		PhotosStored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oceandefender",
			Name:      "photos_stored_total",
			Help:      "Total photos written to the photo archive.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oceandefender",
			Name:      "report_publish_errors_total",
			Help:      "Total report events that could not be published.",
		}),
		ViewRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "oceandefender",
			Name:      "view_renders_total",
			Help:      "Page renders by menu view.",
		}, []string{"view"}),
		ChartRenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "oceandefender",
			Name:      "chart_render_duration_seconds",
			Help:      "Duration of rendering one chart image.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"chart"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "oceandefender",
			Name:      "geocode_requests_total",
			Help:      "Geocoding API requests by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "oceandefender",
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
		GeocodeAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "oceandefender",
			Name:      "geocode_api_duration_seconds",
			Help:      "Mapbox API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		GeocodeEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "oceandefender",
			Name:      "geocode_enabled",
			Help:      "1 when report geocoding is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.ReportsSubmitted,
		m.ValidationFailures,
		m.PhotosStored,
		m.PublishErrors,
		m.ViewRenders,
		m.ChartRenderDuration,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeAPIDuration,
		m.GeocodeEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ReportsSubmitted:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "oceandefender", Name: "reports_submitted_total"}),
		ValidationFailures:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "oceandefender", Name: "report_validation_failures_total"}),
		PhotosStored:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "oceandefender", Name: "photos_stored_total"}),
		PublishErrors:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "oceandefender", Name: "report_publish_errors_total"}),
		ViewRenders:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "oceandefender", Name: "view_renders_total"}, []string{"view"}),
		ChartRenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "oceandefender", Name: "chart_render_duration_seconds"}, []string{"chart"}),
		GeocodeRequests:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "oceandefender", Name: "geocode_requests_total"}, []string{"outcome"}),
		GeocodeCache:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "oceandefender", Name: "geocode_cache_total"}, []string{"result"}),
		GeocodeAPIDuration:  prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "oceandefender", Name: "geocode_api_duration_seconds"}),
		GeocodeEnabled:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "oceandefender", Name: "geocode_enabled"}),
	}
}
