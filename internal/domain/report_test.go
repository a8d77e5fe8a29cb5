package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport_DatedToday(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(time.Date(2024, 4, 26, 23, 59, 0, 0, time.UTC)))
	t.Cleanup(func() { SetClock(nil) })

	r := NewReport("Pantai Kuta", "Sampah plastik", "")

	assert.Equal(t, time.Date(2024, 4, 26, 0, 0, 0, 0, time.UTC), r.Date)
	assert.Equal(t, "2024-04-26", r.DateString())
	assert.False(t, r.HasPhoto())
}

func TestCalendarDay_KeepsLocalDay(t *testing.T) {
	wita := time.FixedZone("WITA", 8*60*60)
	got := CalendarDay(time.Date(2024, 4, 27, 1, 30, 0, 0, wita))
	assert.Equal(t, time.Date(2024, 4, 27, 0, 0, 0, 0, time.UTC), got)
}

func TestNewReportSubmitted(t *testing.T) {
	now := time.Date(2024, 4, 26, 15, 10, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(now))
	t.Cleanup(func() { SetClock(nil) })

	evt := NewReportSubmitted("id-1", NewReport("Pantai Kuta", "Sampah plastik", "x.jpg"))

	assert.Equal(t, "id-1", evt.ID)
	assert.Equal(t, "2024-04-26", evt.Date)
	assert.Equal(t, "x.jpg", evt.PhotoFilename)
	assert.Equal(t, now, evt.SubmittedAt)
}

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name        string
		location    string
		description string
		field       string
	}{
		{name: "valid", location: "Pantai Kuta", description: "Sampah plastik"},
		{name: "empty location", location: "", description: "Sampah", field: "location"},
		{name: "whitespace location", location: "  \t", description: "Sampah", field: "location"},
		{name: "empty description", location: "Pantai Kuta", description: "", field: "description"},
		{name: "whitespace description", location: "Pantai Kuta", description: "\n  ", field: "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSubmission(tt.location, tt.description)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestSelectView(t *testing.T) {
	assert.Equal(t, ViewMap, SelectView("peta"))
	assert.Equal(t, ViewAnalytics, SelectView("visualisasi"))
	assert.Equal(t, ViewHome, SelectView(""))
	assert.Equal(t, ViewHome, SelectView("admin"))
	assert.Equal(t, "Artikel Edukatif", ViewArticles.Label())
}

func TestLookupChart(t *testing.T) {
	info, ok := LookupChart(ChartSanitation)
	require.True(t, ok)
	assert.Len(t, info.Metrics, 2)

	_, ok = LookupChart("rainfall")
	assert.False(t, ok)
}
