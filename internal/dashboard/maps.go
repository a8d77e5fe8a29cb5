package dashboard

import (
	"context"
	"fmt"

	"github.com/couchcryptid/ocean-defender/internal/domain"
	"github.com/couchcryptid/ocean-defender/internal/report"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shopspring/decimal"
)

// Tooltip is the hover text of a region marker, rounded for display.
type Tooltip struct {
	Region           string  `json:"region"`
	Year             int     `json:"year"`
	Contaminant      float64 `json:"contaminant_ppm"`
	PH               float64 `json:"ph"`
	Turbidity        float64 `json:"turbidity_ntu"`
	DissolvedOxygen  float64 `json:"dissolved_oxygen"`
	CleanWaterAccess float64 `json:"clean_water_access"`
}

// RegionMarker is a region's latest record on the map.
type RegionMarker struct {
	Position domain.Coordinate
	Tooltip  Tooltip
}

// MapPage is the data behind the map view.
type MapPage struct {
	View    domain.ViewState
	Style   string
	Token   string
	Markers []RegionMarker
	Pins    []domain.ReportPin
	Skipped []string
}

// Map builds the map page: one marker per recognised region plus geocoded
// report pins when a geocoder is configured.
func (s *Service) Map(ctx context.Context) (MapPage, error) {
	t, err := s.countryTable()
	if err != nil {
		return MapPage{}, err
	}

	points, skipped := domain.MapPoints(t)
	for _, region := range skipped {
		s.logger.Debug("region has no coordinate, left off the map", "region", region)
	}

	page := MapPage{
		View:    domain.IndonesiaView,
		Style:   s.opts.MapStyle,
		Token:   s.opts.MapToken,
		Skipped: skipped,
	}
	for _, p := range points {
		page.Markers = append(page.Markers, RegionMarker{Position: p.Position, Tooltip: tooltipFor(p.Record)})
	}
	page.Pins = s.reportPins(ctx)
	return page, nil
}

func (s *Service) reportPins(ctx context.Context) []domain.ReportPin {
	if s.geocoder == nil || s.reports == nil {
		return nil
	}
	reports, err := s.reports.Reports()
	if err != nil {
		s.logger.Warn("load reports for map failed", "error", err)
		return nil
	}
	if n := s.opts.MaxPins; n > 0 && len(reports) > n {
		// The log is append-only, so the newest reports are at the end.
		reports = reports[len(reports)-n:]
	}
	return domain.LocateReports(ctx, reports, s.geocoder, s.opts.GeocodeCountry, s.logger)
}

func tooltipFor(r domain.WaterQualityRecord) Tooltip {
	return Tooltip{
		Region:           r.Region,
		Year:             r.Year,
		Contaminant:      round2(r.ContaminantPPM),
		PH:               round2(r.PH),
		Turbidity:        round2(r.TurbidityNTU),
		DissolvedOxygen:  round2(r.DissolvedOxygen),
		CleanWaterAccess: round2(r.CleanWaterAccess),
	}
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// MapGeoJSON encodes the map page as a GeoJSON FeatureCollection. Region
// markers carry kind "region" and report pins kind "report".
func (s *Service) MapGeoJSON(ctx context.Context) ([]byte, error) {
	page, err := s.Map(ctx)
	if err != nil {
		return nil, err
	}
	return FeatureCollection(page).MarshalJSON()
}

// FeatureCollection converts a map page into GeoJSON features.
func FeatureCollection(page MapPage) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, m := range page.Markers {
		f := geojson.NewFeature(orb.Point{m.Position.Lon, m.Position.Lat})
		f.Properties["kind"] = "region"
		f.Properties["region"] = m.Tooltip.Region
		f.Properties["year"] = m.Tooltip.Year
		f.Properties["contaminant_ppm"] = m.Tooltip.Contaminant
		f.Properties["ph"] = m.Tooltip.PH
		f.Properties["turbidity_ntu"] = m.Tooltip.Turbidity
		f.Properties["dissolved_oxygen"] = m.Tooltip.DissolvedOxygen
		f.Properties["clean_water_access"] = m.Tooltip.CleanWaterAccess
		fc.Append(f)
	}
	for _, p := range page.Pins {
		f := geojson.NewFeature(orb.Point{p.Position.Lon, p.Position.Lat})
		f.Properties["kind"] = "report"
		f.Properties["location"] = p.Report.Location
		f.Properties["date"] = p.Report.DateString()
		f.Properties["description"] = p.Report.Description
		f.Properties["place_name"] = p.FormattedAddress
		f.Properties["nearest_region"] = p.NearestRegion
		f.Properties["distance_km"] = round2(p.DistanceKm)
		if p.Report.HasPhoto() {
			f.Properties["photo"] = p.Report.PhotoFilename
			f.Properties["photo_url"] = report.PhotoURL(report.DefaultPhotoRoot, p.Report.PhotoFilename)
		}
		fc.Append(f)
	}
	return fc
}

// String formats the tooltip as the lines shown on hover.
func (t Tooltip) String() string {
	return fmt.Sprintf("%s Indonesia\nTahun: %d\nKontaminan: %v ppm\npH: %v\nKekeruhan: %v NTU\nDO: %v mg/L\nAkses Air Bersih: %v%%",
		t.Region, t.Year, t.Contaminant, t.PH, t.Turbidity, t.DissolvedOxygen, t.CleanWaterAccess)
}
