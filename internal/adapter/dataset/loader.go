// Package dataset reads the water-quality and disease dataset from CSV.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/couchcryptid/ocean-defender/internal/domain"
)

// Loader reads the dataset file on every call; the file is small and static.
type Loader struct {
	path   string
	logger *slog.Logger
}

// NewLoader creates a Loader for the CSV file at path.
func NewLoader(path string, logger *slog.Logger) *Loader {
	return &Loader{path: path, logger: logger}
}

// Load returns the whole dataset. A missing file yields an empty table and no error.
func (l *Loader) Load() (domain.Table, error) {
	f, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		l.logger.Warn("water quality dataset not found", "path", l.path)
		return domain.Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	table, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", l.path, err)
	}
	return table, nil
}

// Decode parses dataset CSV. Every column in domain.WaterQualityColumns
// must be present; extra columns are ignored.
func Decode(r io.Reader) (domain.Table, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return domain.Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, col := range domain.WaterQualityColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	table := domain.Table{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		row, err := parseRow(record, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		table = append(table, row)
	}
	return table, nil
}

func parseRow(record []string, index map[string]int) (domain.WaterQualityRecord, error) {
	p := rowParser{record: record, index: index}
	row := domain.WaterQualityRecord{
		Country:            p.text(domain.ColCountry),
		Region:             p.text(domain.ColRegion),
		Year:               p.year(),
		ContaminantPPM:     p.number(domain.ColContaminant),
		PH:                 p.number(domain.ColPH),
		TurbidityNTU:       p.number(domain.ColTurbidity),
		DissolvedOxygen:    p.number(domain.ColDissolvedOxygen),
		Nitrate:            p.number(domain.ColNitrate),
		DiarrhealCases:     p.number(domain.ColDiarrheal),
		CholeraCases:       p.number(domain.ColCholera),
		TyphoidCases:       p.number(domain.ColTyphoid),
		CleanWaterAccess:   p.number(domain.ColCleanWaterAccess),
		SanitationCoverage: p.number(domain.ColSanitationCoverage),
	}
	return row, p.err
}

// rowParser records the first conversion failure so a row can be parsed in one expression.
type rowParser struct {
	record []string
	index  map[string]int
	err    error
}

func (p *rowParser) text(col string) string {
	return strings.TrimSpace(p.record[p.index[col]])
}

func (p *rowParser) number(col string) float64 {
	v, err := strconv.ParseFloat(p.text(col), 64)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("invalid %s %q", col, p.text(col))
	}
	return v
}

// year accepts "2021" and the "2021.0" form some spreadsheet exports produce.
func (p *rowParser) year() int {
	s := p.text(domain.ColYear)
	if y, err := strconv.Atoi(s); err == nil {
		return y
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		if p.err == nil {
			p.err = fmt.Errorf("invalid %s %q", domain.ColYear, s)
		}
		return 0
	}
	return int(f)
}
