package photos

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 4, 26, 15, 10, 5, 0, time.UTC)

func newTestArchive(t *testing.T) (*Archive, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads")
	return NewArchive(dir, clockwork.NewFakeClockAt(testTime), slog.New(slog.NewTextHandler(io.Discard, nil))), dir
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "20240426151005_Pantai_Kuta.jpg", Filename(testTime, "Pantai Kuta", ".jpg"))
	assert.Equal(t, "20240426151005_Kuta.png", Filename(testTime, "Kuta", ".png"))
	assert.Equal(t, "20240426151005_Jl._Raya___Pantai.jpeg", Filename(testTime, "Jl. Raya / Pantai", ".jpeg"))
}

func TestStore_WritesFile(t *testing.T) {
	a, dir := newTestArchive(t)

	name, err := a.Store("Pantai Kuta", []byte("jpeg-bytes"), ".jpg")

	require.NoError(t, err)
	assert.Equal(t, "20240426151005_Pantai_Kuta.jpg", name)
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)

	ok, err := a.Exists(name)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_NoUploadWritesNothing(t *testing.T) {
	a, dir := newTestArchive(t)

	name, err := a.Store("Pantai Kuta", nil, ".jpg")

	require.NoError(t, err)
	assert.Empty(t, name)
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "archive directory should not be created")
}

func TestStore_SameSecondSameLabelCollides(t *testing.T) {
	a, dir := newTestArchive(t)

	first, err := a.Store("Kuta", []byte("one"), ".jpg")
	require.NoError(t, err)
	second, err := a.Store("Kuta", []byte("two"), ".jpg")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	data, err := os.ReadFile(filepath.Join(dir, second))
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), data)
}

func TestExists_RejectsPaths(t *testing.T) {
	a, _ := newTestArchive(t)

	ok, err := a.Exists("../laporan.csv")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = a.Exists("")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckReadiness_CreatesDirectory(t *testing.T) {
	a, dir := newTestArchive(t)

	require.NoError(t, a.CheckReadiness(context.Background()))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
