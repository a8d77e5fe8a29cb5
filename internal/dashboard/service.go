// Package dashboard builds the analytics and map views over the water-quality dataset.
package dashboard

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"slices"
	"time"

	"github.com/couchcryptid/ocean-defender/internal/domain"
	"github.com/couchcryptid/ocean-defender/internal/observability"
)

// ErrUnknownChart is returned for a chart id that is not part of the analytics view.
var ErrUnknownChart = errors.New("unknown chart")

// DatasetSource loads the full water-quality table.
type DatasetSource interface {
	Load() (domain.Table, error)
}

// ReportSource lists stored reports for the map pins.
type ReportSource interface {
	Reports() ([]domain.Report, error)
}

// ChartRenderer draws one chart for one region's rows.
type ChartRenderer interface {
	Render(w io.Writer, info domain.ChartInfo, t domain.Table) error
}

// Options configures the dashboard.
type Options struct {
	// Country filters dataset rows, matched case-insensitively.
	Country string
	// GeocodeCountry scopes report geocoding (ISO 3166 alpha-2).
	GeocodeCountry string
	// MaxPins caps how many of the newest reports are geocoded per map
	// render. Zero means no cap.
	MaxPins  int
	MapStyle string
	MapToken string
}

// Service renders the analytics and map views.
type Service struct {
	dataset  DatasetSource
	reports  ReportSource
	geocoder domain.Geocoder
	charts   ChartRenderer
	opts     Options
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// NewService creates a dashboard. geocoder may be nil to leave reports off the map.
func NewService(dataset DatasetSource, reports ReportSource, geocoder domain.Geocoder, charts ChartRenderer, opts Options, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		dataset:  dataset,
		reports:  reports,
		geocoder: geocoder,
		charts:   charts,
		opts:     opts,
		logger:   logger,
		metrics:  metrics,
	}
}

// Country returns the configured dataset country.
func (s *Service) Country() string {
	return s.opts.Country
}

// countryTable loads the dataset and keeps the configured country's rows.
func (s *Service) countryTable() (domain.Table, error) {
	t, err := s.dataset.Load()
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	if len(t) == 0 {
		return nil, domain.ErrDatasetUnavailable
	}
	filtered := domain.FilterCountry(t, s.opts.Country)
	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoCountryData, s.opts.Country)
	}
	return filtered, nil
}

// ChartPanel is one chart of the analytics page.
type ChartPanel struct {
	ID       domain.ChartID
	Title    string
	Caption  string
	Headline string
	ImageURL string
}

// AnalyticsPage is the data behind the analytics view for one region.
type AnalyticsPage struct {
	Regions     []string
	Region      string
	Panels      []ChartPanel
	DiseaseYear int
	TopDisease  string
	Ranking     []domain.DiseaseCount
}

// Analytics builds the analytics page for region. An empty region selects
// the first region in sorted order.
func (s *Service) Analytics(region string) (AnalyticsPage, error) {
	t, err := s.countryTable()
	if err != nil {
		return AnalyticsPage{}, err
	}
	regions := domain.Regions(t)
	if region == "" {
		region = regions[0]
	}
	if !slices.Contains(regions, region) {
		return AnalyticsPage{}, fmt.Errorf("%w: %s", domain.ErrUnknownRegion, region)
	}
	rows := domain.FilterRegion(t, region)

	page := AnalyticsPage{Regions: regions, Region: region}
	if year, ranking, ok := domain.DiseaseRanking(rows); ok {
		page.DiseaseYear = year
		page.Ranking = ranking
		page.TopDisease = ranking[0].Disease
	}

	for _, info := range domain.Charts {
		panel := ChartPanel{
			ID:       info.ID,
			Title:    info.Title,
			Caption:  info.Caption,
			ImageURL: ChartURL(region, info.ID),
		}
		if info.ID == domain.ChartDisease && page.TopDisease != "" {
			panel.Headline = domain.DiseaseHeadline(page.DiseaseYear, page.TopDisease)
		}
		page.Panels = append(page.Panels, panel)
	}
	return page, nil
}

// ChartURL is the image path of one chart for one region.
func ChartURL(region string, id domain.ChartID) string {
	return "/charts/" + url.PathEscape(region) + "/" + string(id) + ".png"
}

// Chart renders one chart of one region as PNG into w.
func (s *Service) Chart(w io.Writer, region string, id domain.ChartID) error {
	info, ok := domain.LookupChart(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChart, id)
	}
	t, err := s.countryTable()
	if err != nil {
		return err
	}
	rows := domain.FilterRegion(t, region)
	if len(rows) == 0 {
		return fmt.Errorf("%w: %s", domain.ErrUnknownRegion, region)
	}

	start := time.Now()
	err = s.charts.Render(w, info, rows)
	s.metrics.ChartRenderDuration.WithLabelValues(string(id)).Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("render chart %s for %s: %w", id, region, err)
	}
	return nil
}
