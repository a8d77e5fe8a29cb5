// Package csvstore persists the report log as a CSV file.
package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/couchcryptid/ocean-defender/internal/domain"
)

// Report log columns.
const (
	ColDate        = "Tanggal"
	ColLocation    = "Lokasi"
	ColDescription = "Deskripsi"
	ColPhoto       = "Foto"
)

// Columns is the header written to every log file.
var Columns = []string{ColDate, ColLocation, ColDescription, ColPhoto}

// Store keeps reports in a single CSV file. Every append rewrites the whole
// file; concurrent appends can lose rows.
// It implements report.Store.
type Store struct {
	path   string
	logger *slog.Logger
}

// New creates a Store backed by the file at path. The file is created on first append.
func New(path string, logger *slog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Path returns the location of the log file.
func (s *Store) Path() string {
	return s.path
}

// LoadAll returns every report in submission order. A missing file is an empty log.
func (s *Store) LoadAll() ([]domain.Report, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.Report{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open report log: %w", err)
	}
	defer f.Close()

	reports, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("read report log %s: %w", s.path, err)
	}
	return reports, nil
}

// Append adds a report after the existing rows and rewrites the file.
func (s *Store) Append(r domain.Report) error {
	reports, err := s.LoadAll()
	if err != nil {
		return err
	}
	reports = append(reports, r)

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report log directory: %w", err)
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create report log: %w", err)
	}
	if err := Encode(f, reports); err != nil {
		f.Close()
		return fmt.Errorf("write report log: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close report log: %w", err)
	}

	s.logger.Debug("report appended", "path", s.path, "rows", len(reports))
	return nil
}

// CheckReadiness verifies the directory holding the log exists.
func (s *Store) CheckReadiness(_ context.Context) error {
	info, err := os.Stat(filepath.Dir(s.path))
	if err != nil {
		return fmt.Errorf("report log directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("report log directory %s is not a directory", filepath.Dir(s.path))
	}
	return nil
}

// Decode parses a report log. Columns are found by header name; a log
// without the Foto column yields reports with no photo.
func Decode(r io.Reader) ([]domain.Report, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []domain.Report{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		index[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{ColDate, ColLocation, ColDescription} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}
	photoCol, hasPhoto := index[ColPhoto]

	reports := []domain.Report{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		date, err := time.Parse(domain.DateLayout, record[index[ColDate]])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid %s %q", line, ColDate, record[index[ColDate]])
		}
		report := domain.Report{
			Date:        date,
			Location:    record[index[ColLocation]],
			Description: record[index[ColDescription]],
		}
		if hasPhoto {
			report.PhotoFilename = record[photoCol]
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// Encode writes the header and all reports.
func Encode(w io.Writer, reports []domain.Report) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Columns); err != nil {
		return err
	}
	for _, r := range reports {
		if err := writer.Write([]string{r.DateString(), r.Location, r.Description, r.PhotoFilename}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
