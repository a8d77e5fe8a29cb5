package domain

import (
	"context"
	"log/slog"
)

// ReportPin is a report placed on the map by geocoding its location text.
type ReportPin struct {
	Report           Report
	Position         Coordinate
	PlaceName        string
	FormattedAddress string
	NearestRegion    string
	DistanceKm       float64
}

// LocateReports geocodes each report location and tags it with the nearest
// monitored region. Reports that fail to geocode, or resolve to nothing,
// are left out. A nil geocoder yields no pins, and a cancelled context stops
// the lookups with the pins found so far.
func LocateReports(ctx context.Context, reports []Report, geocoder Geocoder, country string, logger *slog.Logger) []ReportPin {
	if geocoder == nil {
		return nil
	}
	var pins []ReportPin
	for _, r := range reports {
		if ctx.Err() != nil {
			break
		}
		result, err := geocoder.ForwardGeocode(ctx, r.Location, country)
		if err != nil {
			logger.Warn("forward geocoding failed",
				"location", r.Location,
				"date", r.DateString(),
				"error", err,
			)
			continue
		}
		if result.Lat == 0 && result.Lon == 0 {
			continue
		}
		pos := Coordinate{Lat: result.Lat, Lon: result.Lon}
		region, km := NearestRegion(pos)
		pins = append(pins, ReportPin{
			Report:           r,
			Position:         pos,
			PlaceName:        result.PlaceName,
			FormattedAddress: result.FormattedAddress,
			NearestRegion:    region,
			DistanceKm:       km,
		})
	}
	return pins
}
