package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/ocean-defender/internal/dashboard"
	"github.com/couchcryptid/ocean-defender/internal/domain"
	"github.com/couchcryptid/ocean-defender/internal/observability"
	"github.com/couchcryptid/ocean-defender/internal/report"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReportService submits and lists pollution reports.
type ReportService interface {
	Submit(ctx context.Context, location, description string, upload *report.Upload) (domain.Report, error)
	Feed() (report.Feed, error)
	Reports() ([]domain.Report, error)
}

// DashboardService builds the analytics and map views.
type DashboardService interface {
	Country() string
	Analytics(region string) (dashboard.AnalyticsPage, error)
	Chart(w io.Writer, region string, id domain.ChartID) error
	Map(ctx context.Context) (dashboard.MapPage, error)
	MapGeoJSON(ctx context.Context) ([]byte, error)
}

// Options configures the web surface.
type Options struct {
	Addr           string
	UploadDir      string
	MaxUploadBytes int64
}

// Server serves the OceanDefender pages plus health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	reports    ReportService
	dashboard  DashboardService
	opts       Options
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the page, data, and operational routes.
func NewServer(opts Options, reports ReportService, dash DashboardService, ready sharedobs.ReadinessChecker, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         opts.Addr,
			Handler:      mux,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		reports:   reports,
		dashboard: dash,
		opts:      opts,
		metrics:   metrics,
		logger:    logger,
	}

	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("POST /laporan", s.handleSubmit)
	mux.HandleFunc("GET /laporan.xlsx", s.handleExport)
	mux.HandleFunc("GET /charts/{region}/{chart}", s.handleChart)
	mux.HandleFunc("GET /peta.geojson", s.handleGeoJSON)
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", noDirListing(http.FileServer(http.Dir(opts.UploadDir)))))

	mux.HandleFunc("GET /healthz", sharedobs.LivenessHandler())
	mux.HandleFunc("GET /readyz", sharedobs.ReadinessHandler(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// noDirListing hides directory indexes of the photo archive.
func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || r.URL.Path[len(r.URL.Path)-1] == '/' {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
