package domain

import (
	"cmp"
	"errors"
	"slices"
)

// ViewState is the initial camera of the map.
type ViewState struct {
	Lat   float64 `json:"latitude"`
	Lon   float64 `json:"longitude"`
	Zoom  float64 `json:"zoom"`
	Pitch float64 `json:"pitch"`
}

// IndonesiaView frames the whole archipelago.
var IndonesiaView = ViewState{Lat: -2.5, Lon: 120.0, Zoom: 4, Pitch: 20}

// MapPoint is one region's most recent record placed at its coordinate.
type MapPoint struct {
	Record   WaterQualityRecord
	Position Coordinate
}

// LatestPerRegion keeps one row per region: the row with the highest year,
// the first such row when a year repeats. Output is sorted by region.
func LatestPerRegion(t Table) Table {
	latest := make(map[string]int)
	for i, r := range t {
		j, ok := latest[r.Region]
		if !ok || r.Year > t[j].Year {
			latest[r.Region] = i
		}
	}
	out := make(Table, 0, len(latest))
	for _, i := range latest {
		out = append(out, t[i])
	}
	slices.SortFunc(out, func(a, b WaterQualityRecord) int { return cmp.Compare(a.Region, b.Region) })
	return out
}

// MapPoints places the latest row of every region on the map. Regions
// without a coordinate are returned in skipped instead.
func MapPoints(t Table) (points []MapPoint, skipped []string) {
	for _, r := range LatestPerRegion(t) {
		pos, err := RegionCoordinate(r.Region)
		if err != nil {
			var unknown *UnrecognizedRegionError
			if errors.As(err, &unknown) {
				skipped = append(skipped, unknown.Region)
			}
			continue
		}
		points = append(points, MapPoint{Record: r, Position: pos})
	}
	return points, skipped
}
