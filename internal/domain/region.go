package domain

import (
	"slices"

	"github.com/golang/geo/s2"
)

const earthRadiusKm = 6371.0088

// Coordinate is a WGS-84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinate) latLng() s2.LatLng {
	return s2.LatLngFromDegrees(c.Lat, c.Lon)
}

// DistanceKm returns the great-circle distance between two coordinates.
func (c Coordinate) DistanceKm(other Coordinate) float64 {
	return c.latLng().Distance(other.latLng()).Radians() * earthRadiusKm
}

var regionCoordinates = map[string]Coordinate{
	"Central": {Lat: -7.5, Lon: 110.0},
	"West":    {Lat: -0.5, Lon: 101.5},
	"East":    {Lat: -3.0, Lon: 129.0},
}

// RegionCoordinate returns the fixed map position of a region.
func RegionCoordinate(region string) (Coordinate, error) {
	c, ok := regionCoordinates[region]
	if !ok {
		return Coordinate{}, &UnrecognizedRegionError{Region: region}
	}
	return c, nil
}

// KnownRegions lists the regions with a map position, sorted.
func KnownRegions() []string {
	out := make([]string, 0, len(regionCoordinates))
	for name := range regionCoordinates {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// NearestRegion returns the known region closest to c and its distance in km.
func NearestRegion(c Coordinate) (string, float64) {
	best, bestKm := "", 0.0
	for _, name := range KnownRegions() {
		km := c.DistanceKm(regionCoordinates[name])
		if best == "" || km < bestKm {
			best, bestKm = name, km
		}
	}
	return best, bestKm
}
