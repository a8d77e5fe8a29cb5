// Package photos stores uploaded report photos on the local filesystem.
package photos

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

const timestampLayout = "20060102150405"

var labelReplacer = strings.NewReplacer(" ", "_", "/", "_", `\`, "_")

// Archive writes photos into a single directory. Files are never deleted
// or deduplicated.
// It implements report.PhotoStore.
type Archive struct {
	dir    string
	clock  clockwork.Clock
	logger *slog.Logger
}

// NewArchive creates an archive rooted at dir. Pass nil clock for real time.
func NewArchive(dir string, clock clockwork.Clock, logger *slog.Logger) *Archive {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Archive{dir: dir, clock: clock, logger: logger}
}

// Dir returns the archive root.
func (a *Archive) Dir() string {
	return a.dir
}

// Filename builds the archive name for a photo taken at t.
// Spaces in the label become underscores, as do path separators.
func Filename(t time.Time, label, ext string) string {
	return t.Format(timestampLayout) + "_" + labelReplacer.Replace(label) + ext
}

// Store writes data under a generated name and returns that name. A nil
// data slice means nothing was uploaded: the result is "" and nothing is
// written. Two stores for the same label within one second share a name.
func (a *Archive) Store(label string, data []byte, ext string) (string, error) {
	if data == nil {
		return "", nil
	}

	name := Filename(a.clock.Now(), label, ext)
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return "", fmt.Errorf("create photo directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(a.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write photo %s: %w", name, err)
	}

	a.logger.Info("photo stored", "filename", name, "bytes", len(data))
	return name, nil
}

// Exists reports whether a photo with the given bare name is in the archive.
func (a *Archive) Exists(name string) (bool, error) {
	if name == "" || filepath.Base(name) != name {
		return false, nil
	}
	info, err := os.Stat(filepath.Join(a.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// CheckReadiness makes sure the archive directory exists and can be created.
func (a *Archive) CheckReadiness(_ context.Context) error {
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return fmt.Errorf("photo directory: %w", err)
	}
	return nil
}
