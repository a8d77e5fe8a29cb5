package domain

import (
	"cmp"
	"slices"
	"strings"
)

// Dataset column names.
const (
	ColCountry            = "Country"
	ColRegion             = "Region"
	ColYear               = "Year"
	ColContaminant        = "Contaminant Level (ppm)"
	ColPH                 = "pH Level"
	ColTurbidity          = "Turbidity (NTU)"
	ColDissolvedOxygen    = "Dissolved Oxygen (mg/L)"
	ColNitrate            = "Nitrate Level (mg/L)"
	ColDiarrheal          = "Diarrheal Cases per 100,000 people"
	ColCholera            = "Cholera Cases per 100,000 people"
	ColTyphoid            = "Typhoid Cases per 100,000 people"
	ColCleanWaterAccess   = "Access to Clean Water (% of Population)"
	ColSanitationCoverage = "Sanitation Coverage (% of Population)"
)

// WaterQualityColumns lists the dataset header in file order.
var WaterQualityColumns = []string{
	ColCountry, ColRegion, ColYear,
	ColContaminant, ColPH, ColTurbidity, ColDissolvedOxygen, ColNitrate,
	ColDiarrheal, ColCholera, ColTyphoid,
	ColCleanWaterAccess, ColSanitationCoverage,
}

// WaterQualityRecord is one (country, region, year) row of the dataset.
type WaterQualityRecord struct {
	Country            string
	Region             string
	Year               int
	ContaminantPPM     float64
	PH                 float64
	TurbidityNTU       float64
	DissolvedOxygen    float64
	Nitrate            float64
	DiarrhealCases     float64
	CholeraCases       float64
	TyphoidCases       float64
	CleanWaterAccess   float64
	SanitationCoverage float64
}

// Table is the loaded dataset in file order.
type Table []WaterQualityRecord

// Metric selects one numeric column of the dataset.
type Metric int

const (
	MetricContaminant Metric = iota
	MetricPH
	MetricTurbidity
	MetricDissolvedOxygen
	MetricNitrate
	MetricDiarrheal
	MetricCholera
	MetricTyphoid
	MetricCleanWaterAccess
	MetricSanitationCoverage
)

// Column returns the dataset header of the metric.
func (m Metric) Column() string {
	switch m {
	case MetricContaminant:
		return ColContaminant
	case MetricPH:
		return ColPH
	case MetricTurbidity:
		return ColTurbidity
	case MetricDissolvedOxygen:
		return ColDissolvedOxygen
	case MetricNitrate:
		return ColNitrate
	case MetricDiarrheal:
		return ColDiarrheal
	case MetricCholera:
		return ColCholera
	case MetricTyphoid:
		return ColTyphoid
	case MetricCleanWaterAccess:
		return ColCleanWaterAccess
	case MetricSanitationCoverage:
		return ColSanitationCoverage
	default:
		return ""
	}
}

// Value extracts the metric from a record.
func (m Metric) Value(r WaterQualityRecord) float64 {
	switch m {
	case MetricContaminant:
		return r.ContaminantPPM
	case MetricPH:
		return r.PH
	case MetricTurbidity:
		return r.TurbidityNTU
	case MetricDissolvedOxygen:
		return r.DissolvedOxygen
	case MetricNitrate:
		return r.Nitrate
	case MetricDiarrheal:
		return r.DiarrhealCases
	case MetricCholera:
		return r.CholeraCases
	case MetricTyphoid:
		return r.TyphoidCases
	case MetricCleanWaterAccess:
		return r.CleanWaterAccess
	case MetricSanitationCoverage:
		return r.SanitationCoverage
	default:
		return 0
	}
}

// FilterCountry keeps rows whose country equals name, ignoring case.
func FilterCountry(t Table, name string) Table {
	var out Table
	for _, r := range t {
		if strings.EqualFold(r.Country, name) {
			out = append(out, r)
		}
	}
	return out
}

// FilterRegion keeps rows of exactly one region.
func FilterRegion(t Table, region string) Table {
	var out Table
	for _, r := range t {
		if r.Region == region {
			out = append(out, r)
		}
	}
	return out
}

// Regions returns the sorted distinct region names in t.
func Regions(t Table) []string {
	seen := make(map[string]struct{}, len(t))
	var out []string
	for _, r := range t {
		if _, ok := seen[r.Region]; ok {
			continue
		}
		seen[r.Region] = struct{}{}
		out = append(out, r.Region)
	}
	slices.Sort(out)
	return out
}

// LatestYear returns the maximum year in t.
func LatestYear(t Table) (int, bool) {
	if len(t) == 0 {
		return 0, false
	}
	year := t[0].Year
	for _, r := range t[1:] {
		year = max(year, r.Year)
	}
	return year, true
}

// YearValue is one point of a year-indexed series.
type YearValue struct {
	Year  int
	Value float64
}

// Series returns the metric per year in ascending year order. Years with
// several rows report the mean of those rows.
func Series(t Table, m Metric) []YearValue {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, r := range t {
		sums[r.Year] += m.Value(r)
		counts[r.Year]++
	}
	out := make([]YearValue, 0, len(sums))
	for year, sum := range sums {
		out = append(out, YearValue{Year: year, Value: sum / float64(counts[year])})
	}
	slices.SortFunc(out, func(a, b YearValue) int { return cmp.Compare(a.Year, b.Year) })
	return out
}

// DiseaseCount is one bar of the disease ranking.
type DiseaseCount struct {
	Disease string
	Cases   float64
}

// DiseaseRanking ranks the three disease counters of the latest year in t,
// most cases first. Equal counts keep the column order. When the latest year
// has several rows the first one wins.
func DiseaseRanking(t Table) (int, []DiseaseCount, bool) {
	year, ok := LatestYear(t)
	if !ok {
		return 0, nil, false
	}
	idx := slices.IndexFunc(t, func(r WaterQualityRecord) bool { return r.Year == year })
	latest := t[idx]

	ranking := []DiseaseCount{
		{Disease: ColDiarrheal, Cases: latest.DiarrhealCases},
		{Disease: ColCholera, Cases: latest.CholeraCases},
		{Disease: ColTyphoid, Cases: latest.TyphoidCases},
	}
	slices.SortStableFunc(ranking, func(a, b DiseaseCount) int { return cmp.Compare(b.Cases, a.Cases) })
	return year, ranking, true
}
