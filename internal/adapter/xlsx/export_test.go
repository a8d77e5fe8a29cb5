package xlsx

import (
	"bytes"
	"testing"
	"time"

	"github.com/couchcryptid/ocean-defender/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteReports(t *testing.T) {
	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	reports := []domain.Report{
		{Date: day, Location: "Pantai Kuta", Description: "Sampah plastik"},
		{Date: day.AddDate(0, 0, 1), Location: "Teluk Jakarta", Description: "Busa", PhotoFilename: "p.jpg"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReports(&buf, reports))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Tanggal", "Lokasi", "Deskripsi", "Foto"}, rows[0])
	assert.Equal(t, []string{"2024-07-02", "Teluk Jakarta", "Busa", "p.jpg"}, rows[1])
	require.GreaterOrEqual(t, len(rows[2]), 3)
	assert.Equal(t, []string{"2024-07-01", "Pantai Kuta", "Sampah plastik"}, rows[2][:3])
}

func TestWriteReports_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReports(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
