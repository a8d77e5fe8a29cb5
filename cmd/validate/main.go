// Command validate checks the data files the web app reads: the water-quality
// dataset (header, numeric cells, country rows, region coordinates) and the
// report log (dates, required fields, and that every photo it names exists
// in the upload directory).
//
// Usage:
//
//	go run ./cmd/validate \
//	  -dataset water_pollution_disease.csv \
//	  -reports laporan_pencemaran.csv \
//	  -uploads uploads \
//	  -country Indonesia
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/couchcryptid/ocean-defender/internal/adapter/csvstore"
	"github.com/couchcryptid/ocean-defender/internal/adapter/dataset"
	"github.com/couchcryptid/ocean-defender/internal/adapter/photos"
	"github.com/couchcryptid/ocean-defender/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name     string
	errors   []string
	warnings []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) warnf(format string, args ...any) {
	p.warnings = append(p.warnings, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	datasetPath := flag.String("dataset", "water_pollution_disease.csv", "path to the water-quality dataset CSV")
	reportsPath := flag.String("reports", "laporan_pencemaran.csv", "path to the report log CSV")
	uploadDir := flag.String("uploads", "uploads", "photo upload directory")
	country := flag.String("country", "Indonesia", "country the dashboard filters to")
	flag.Parse()

	os.Exit(run(*datasetPath, *reportsPath, *uploadDir, *country))
}

func run(datasetPath, reportsPath, uploadDir, country string) int {
	fmt.Println("=== OceanDefender Data Validation ===")
	fmt.Println()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	phases := []*phase{
		validateDataset(datasetPath, country),
		validateReports(csvstore.New(reportsPath, logger), photos.NewArchive(uploadDir, nil, logger)),
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	for _, p := range phases {
		if len(p.errors) == 0 && len(p.warnings) == 0 {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for _, w := range p.warnings {
			fmt.Printf("  warning: %s\n", w)
		}
		for i, e := range p.errors {
			if i >= 20 {
				fmt.Printf("  ... and %d more\n", len(p.errors)-20)
				break
			}
			fmt.Printf("  %s\n", e)
		}
	}

	fmt.Println()
	if !allPassed {
		fmt.Println("RESULT: FAIL")
		return 1
	}
	fmt.Println("RESULT: PASS")
	return 0
}

// validateDataset decodes the dataset and checks the rows the dashboard uses.
func validateDataset(path, country string) *phase {
	p := &phase{name: "Water-quality dataset"}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		p.warnf("%s not found; analytics and map views will show the missing-dataset banner", path)
		return p
	}
	if err != nil {
		p.errorf("open %s: %v", path, err)
		return p
	}
	defer f.Close()

	table, err := dataset.Decode(f)
	if err != nil {
		p.errorf("%v", err)
		return p
	}
	if len(table) == 0 {
		p.errorf("dataset has a header but no rows")
		return p
	}

	rows := domain.FilterCountry(table, country)
	if len(rows) == 0 {
		p.errorf("no rows for country %q", country)
		return p
	}

	for _, region := range domain.Regions(rows) {
		if _, err := domain.RegionCoordinate(region); err != nil {
			p.warnf("region %q has no map coordinate and is left off the map", region)
		}
	}
	for i, r := range rows {
		if r.PH < 0 || r.PH > 14 {
			p.errorf("%s row %d (%s %d): pH %v outside 0-14", country, i+1, r.Region, r.Year, r.PH)
		}
		if r.CleanWaterAccess < 0 || r.CleanWaterAccess > 100 || r.SanitationCoverage < 0 || r.SanitationCoverage > 100 {
			p.errorf("%s row %d (%s %d): percentage outside 0-100", country, i+1, r.Region, r.Year)
		}
	}
	fmt.Printf("Dataset: %d rows, %d for %s, regions %v\n", len(table), len(rows), country, domain.Regions(rows))
	return p
}

// validateReports checks required fields and the photo invariant of the report log.
func validateReports(store *csvstore.Store, archive *photos.Archive) *phase {
	p := &phase{name: "Report log"}

	reports, err := store.LoadAll()
	if err != nil {
		p.errorf("%v", err)
		return p
	}

	var missing []string
	for i, r := range reports {
		line := i + 2
		if strings.TrimSpace(r.Location) == "" || strings.TrimSpace(r.Description) == "" {
			p.errorf("line %d: blank location or description", line)
		}
		if !r.HasPhoto() {
			continue
		}
		ok, err := archive.Exists(r.PhotoFilename)
		if err != nil {
			p.errorf("line %d: check photo %s: %v", line, r.PhotoFilename, err)
			continue
		}
		if !ok {
			missing = append(missing, r.PhotoFilename)
			p.errorf("line %d: photo %s not found in %s", line, r.PhotoFilename, archive.Dir())
		}
	}
	slices.Sort(missing)
	fmt.Printf("Report log: %d reports, %d missing photos\n", len(reports), len(slices.Compact(missing)))
	return p
}
