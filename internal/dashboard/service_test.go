package dashboard_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/couchcryptid/ocean-defender/internal/adapter/chart"
	"github.com/couchcryptid/ocean-defender/internal/dashboard"
	"github.com/couchcryptid/ocean-defender/internal/domain"
	"github.com/couchcryptid/ocean-defender/internal/observability"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type staticDataset struct {
	table domain.Table
	err   error
}

func (d staticDataset) Load() (domain.Table, error) { return d.table, d.err }

type staticReports []domain.Report

func (r staticReports) Reports() ([]domain.Report, error) { return r, nil }

type recordingGeocoder struct {
	queries []string
}

func (g *recordingGeocoder) ForwardGeocode(_ context.Context, query, _ string) (domain.GeocodingResult, error) {
	g.queries = append(g.queries, query)
	return domain.GeocodingResult{Lat: -6.1, Lon: 106.8, FormattedAddress: query + ", Indonesia"}, nil
}

type fixedGeocoder struct {
	results map[string]domain.GeocodingResult
}

func (g fixedGeocoder) ForwardGeocode(_ context.Context, query, _ string) (domain.GeocodingResult, error) {
	if r, ok := g.results[query]; ok {
		return r, nil
	}
	return domain.GeocodingResult{}, errors.New("not found")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func row(country, region string, year int, contaminant float64) domain.WaterQualityRecord {
	return domain.WaterQualityRecord{
		Country: country, Region: region, Year: year,
		ContaminantPPM: contaminant, PH: 7.123, TurbidityNTU: 2.5, DissolvedOxygen: 6.456,
		DiarrhealCases: 100, CholeraCases: 300, TyphoidCases: 50,
		CleanWaterAccess: 71.239, SanitationCoverage: 60,
	}
}

func sampleTable() domain.Table {
	return domain.Table{
		row("Indonesia", "West", 2020, 3.1),
		row("indonesia", "East", 2019, 4.0),
		row("Indonesia", "East", 2021, 5.555),
		row("Indonesia", "North", 2021, 2.0),
		row("Brazil", "South", 2021, 9.9),
	}
}

func newService(ds dashboard.DatasetSource, geocoder domain.Geocoder, reports dashboard.ReportSource) *dashboard.Service {
	return dashboard.NewService(ds, reports, geocoder, chart.NewRenderer(),
		dashboard.Options{Country: "Indonesia", GeocodeCountry: "id", MapStyle: "mapbox://styles/mapbox/light-v9"},
		discardLogger(), observability.NewMetricsForTesting())
}

// --- analytics ---

func TestAnalytics_DefaultsToFirstRegion(t *testing.T) {
	svc := newService(staticDataset{table: sampleTable()}, nil, nil)

	page, err := svc.Analytics("")
	require.NoError(t, err)

	assert.Equal(t, []string{"East", "North", "West"}, page.Regions)
	assert.Equal(t, "East", page.Region)
	assert.Equal(t, 2021, page.DiseaseYear)
	assert.Equal(t, domain.ColCholera, page.TopDisease)
	require.Len(t, page.Panels, len(domain.Charts))
	assert.Equal(t, "/charts/East/contaminant.png", page.Panels[0].ImageURL)
}

func TestAnalytics_DiseaseHeadline(t *testing.T) {
	svc := newService(staticDataset{table: sampleTable()}, nil, nil)

	page, err := svc.Analytics("West")
	require.NoError(t, err)

	for _, p := range page.Panels {
		if p.ID == domain.ChartDisease {
			assert.Equal(t, domain.DiseaseHeadline(2020, domain.ColCholera), p.Headline)
		} else {
			assert.Empty(t, p.Headline)
		}
	}
}

func TestAnalytics_Errors(t *testing.T) {
	tests := []struct {
		name   string
		ds     staticDataset
		region string
		want   error
	}{
		{"missing dataset", staticDataset{}, "", domain.ErrDatasetUnavailable},
		{"no country rows", staticDataset{table: domain.Table{row("Brazil", "South", 2021, 1)}}, "", domain.ErrNoCountryData},
		{"unknown region", staticDataset{table: sampleTable()}, "South", domain.ErrUnknownRegion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newService(tt.ds, nil, nil).Analytics(tt.region)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAnalytics_LoadError(t *testing.T) {
	_, err := newService(staticDataset{err: errors.New("bad row")}, nil, nil).Analytics("")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDatasetUnavailable)
}

func TestChart(t *testing.T) {
	svc := newService(staticDataset{table: sampleTable()}, nil, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.Chart(&buf, "East", domain.ChartSanitation))
	assert.Equal(t, "\x89PNG", buf.String()[:4])

	assert.ErrorIs(t, svc.Chart(&bytes.Buffer{}, "East", "bogus"), dashboard.ErrUnknownChart)
	assert.ErrorIs(t, svc.Chart(&bytes.Buffer{}, "South", domain.ChartPH), domain.ErrUnknownRegion)
}

func TestChartURL_EscapesRegion(t *testing.T) {
	assert.Equal(t, "/charts/Nusa%20Tenggara/ph.png", dashboard.ChartURL("Nusa Tenggara", domain.ChartPH))
}

// --- map ---

func TestMap_OnePointPerKnownRegion(t *testing.T) {
	svc := newService(staticDataset{table: sampleTable()}, nil, nil)

	page, err := svc.Map(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.IndonesiaView, page.View)
	assert.Equal(t, []string{"North"}, page.Skipped)
	require.Len(t, page.Markers, 2)

	east := page.Markers[0]
	want := dashboard.Tooltip{
		Region: "East", Year: 2021, Contaminant: 5.56, PH: 7.12,
		Turbidity: 2.5, DissolvedOxygen: 6.46, CleanWaterAccess: 71.24,
	}
	if diff := cmp.Diff(want, east.Tooltip); diff != "" {
		t.Errorf("tooltip mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, domain.Coordinate{Lat: -3.0, Lon: 129.0}, east.Position)
	assert.Equal(t, "West", page.Markers[1].Tooltip.Region)
	assert.Empty(t, page.Pins)
}

func TestMap_ReportPins(t *testing.T) {
	geo := fixedGeocoder{results: map[string]domain.GeocodingResult{
		"Pantai Kuta": {Lat: -8.72, Lon: 115.17, FormattedAddress: "Kuta, Bali, Indonesia"},
	}}
	reports := staticReports{
		{Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), Location: "Pantai Kuta", Description: "Sampah plastik"},
		{Date: time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC), Location: "Entah", Description: "?"},
	}
	svc := newService(staticDataset{table: sampleTable()}, geo, reports)

	page, err := svc.Map(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Pins, 1)
	assert.Equal(t, "Central", page.Pins[0].NearestRegion)
}

func TestMap_GeocodesOnlyNewestReports(t *testing.T) {
	var reports staticReports
	for i, loc := range []string{"Teluk Jakarta", "Pantai Ancol", "Muara Angke", "Pantai Kuta"} {
		reports = append(reports, domain.Report{
			Date:     time.Date(2024, 7, i+1, 0, 0, 0, 0, time.UTC),
			Location: loc, Description: "Sampah plastik",
		})
	}
	geo := &recordingGeocoder{}
	svc := dashboard.NewService(staticDataset{table: sampleTable()}, reports, geo, chart.NewRenderer(),
		dashboard.Options{Country: "Indonesia", GeocodeCountry: "id", MaxPins: 2},
		discardLogger(), observability.NewMetricsForTesting())

	page, err := svc.Map(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Muara Angke", "Pantai Kuta"}, geo.queries)
	require.Len(t, page.Pins, 2)
	assert.Equal(t, "Muara Angke", page.Pins[0].Report.Location)
}

func TestMapGeoJSON(t *testing.T) {
	geo := fixedGeocoder{results: map[string]domain.GeocodingResult{
		"Pantai Kuta": {Lat: -8.72, Lon: 115.17, FormattedAddress: "Kuta, Bali, Indonesia"},
	}}
	reports := staticReports{{Location: "Pantai Kuta", Description: "Sampah plastik", PhotoFilename: "k?#1.jpg"}}
	svc := newService(staticDataset{table: sampleTable()}, geo, reports)

	data, err := svc.MapGeoJSON(context.Background())
	require.NoError(t, err)

	var doc struct {
		Type     string `json:"type"`
		Features []struct {
			Geometry struct {
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "FeatureCollection", doc.Type)
	require.Len(t, doc.Features, 3)
	assert.Equal(t, []float64{129.0, -3.0}, doc.Features[0].Geometry.Coordinates)
	assert.Equal(t, "region", doc.Features[0].Properties["kind"])
	assert.Equal(t, "report", doc.Features[2].Properties["kind"])
	assert.Equal(t, "k?#1.jpg", doc.Features[2].Properties["photo"])
	assert.Equal(t, "/uploads/k%3F%231.jpg", doc.Features[2].Properties["photo_url"])
}

func TestMap_MissingDataset(t *testing.T) {
	_, err := newService(staticDataset{}, nil, nil).Map(context.Background())
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
}

func TestTooltip_String(t *testing.T) {
	s := dashboard.Tooltip{Region: "East", Year: 2021, PH: 7.1}.String()
	assert.Contains(t, s, "East Indonesia")
	assert.Contains(t, s, "Tahun: 2021")
}
