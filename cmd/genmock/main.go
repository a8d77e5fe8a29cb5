// Command genmock writes a deterministic mock water-quality dataset, and
// optionally a mock report log, for local development and tests. Rows are
// produced with the same column headers the dataset loader expects, so the
// output round-trips through internal/adapter/dataset.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -out water_pollution_disease.csv \
//	  -reports-out laporan_pencemaran.csv \
//	  -from 2015 -to 2024 -seed 42
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/couchcryptid/ocean-defender/internal/adapter/csvstore"
	"github.com/couchcryptid/ocean-defender/internal/domain"
)

// regionSet lists the regions generated per country. "North" has no map
// coordinate and exercises the unmapped-region path.
var regionSet = map[string][]string{
	"Indonesia": {"Central", "East", "North", "West"},
	"Brazil":    {"South"},
}

var countries = []string{"Indonesia", "Brazil"}

var sourceTypes = []string{"Lake", "River", "Well", "Tap", "Spring"}

var mockReports = []struct {
	location    string
	description string
}{
	{"Pantai Kuta", "Sampah plastik menumpuk di garis pantai"},
	{"Teluk Jakarta", "Busa putih dan bau menyengat di permukaan air"},
	{"Selat Makassar", "Tumpahan minyak terlihat dari kapal nelayan"},
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the mock water-quality CSV")
	reportsOut := flag.String("reports-out", "", "optional output path for a mock report log")
	from := flag.Int("from", 2015, "first year")
	to := flag.Int("to", 2024, "last year")
	seed := flag.Uint64("seed", 42, "random seed")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	if *to < *from {
		return fmt.Errorf("-to (%d) before -from (%d)", *to, *from)
	}

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	table := generate(rng, *from, *to)

	if err := writeDataset(*out, table); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}
	log.Printf("wrote dataset: %s (%d rows)", *out, len(table))

	if *reportsOut != "" {
		if err := writeReports(*reportsOut, time.Date(*to, time.June, 1, 0, 0, 0, 0, time.UTC)); err != nil {
			return fmt.Errorf("writing reports: %w", err)
		}
		log.Printf("wrote report log: %s (%d reports)", *reportsOut, len(mockReports))
	}

	printStats(table)
	return nil
}

func generate(rng *rand.Rand, from, to int) domain.Table {
	var table domain.Table //nolint:prealloc // size depends on flags
	for _, country := range countries {
		for _, region := range regionSet[country] {
			for year := from; year <= to; year++ {
				table = append(table, domain.WaterQualityRecord{
					Country:            country,
					Region:             region,
					Year:               year,
					ContaminantPPM:     between(rng, 0.5, 10),
					PH:                 between(rng, 6, 8.8),
					TurbidityNTU:       between(rng, 0.5, 5),
					DissolvedOxygen:    between(rng, 3, 9),
					Nitrate:            between(rng, 1, 50),
					DiarrhealCases:     float64(rng.IntN(500)),
					CholeraCases:       float64(rng.IntN(100)),
					TyphoidCases:       float64(rng.IntN(100)),
					CleanWaterAccess:   between(rng, 40, 99),
					SanitationCoverage: between(rng, 30, 95),
				})
			}
		}
	}
	return table
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	v := lo + rng.Float64()*(hi-lo)
	return float64(int(v*100)) / 100
}

func writeDataset(path string, table domain.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	// The loader ignores columns it does not know.
	header := append([]string{"Water Source Type"}, domain.WaterQualityColumns...)
	if err := w.Write(header); err != nil {
		return err
	}
	for i, r := range table {
		row := []string{sourceTypes[i%len(sourceTypes)]}
		for _, col := range domain.WaterQualityColumns {
			row = append(row, cell(r, col))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func cell(r domain.WaterQualityRecord, col string) string {
	switch col {
	case domain.ColCountry:
		return r.Country
	case domain.ColRegion:
		return r.Region
	case domain.ColYear:
		return strconv.Itoa(r.Year)
	}
	for m := domain.MetricContaminant; m <= domain.MetricSanitationCoverage; m++ {
		if m.Column() == col {
			return strconv.FormatFloat(m.Value(r), 'f', -1, 64)
		}
	}
	return ""
}

func writeReports(path string, day time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer f.Close()

	reports := make([]domain.Report, len(mockReports))
	for i, m := range mockReports {
		reports[i] = domain.Report{Date: day.AddDate(0, 0, i), Location: m.location, Description: m.description}
	}
	return csvstore.Encode(f, reports)
}

func printStats(table domain.Table) {
	fmt.Println()
	fmt.Println("=== Mock Dataset Stats ===")
	for _, country := range countries {
		rows := domain.FilterCountry(table, country)
		fmt.Printf("  %-12s %4d rows, regions %v\n", country, len(rows), domain.Regions(rows))
	}
	points, skipped := domain.MapPoints(domain.FilterCountry(table, "Indonesia"))
	fmt.Printf("  map points: %d, unmapped regions: %v\n", len(points), skipped)
}
