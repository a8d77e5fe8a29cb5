package kafka

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/couchcryptid/ocean-defender/internal/config"
	"github.com/couchcryptid/ocean-defender/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2024, 4, 26, 15, 10, 0, 0, time.UTC)
	event := domain.ReportSubmitted{
		ID:            "evt-1",
		Date:          "2024-04-26",
		Location:      "Pantai Kuta",
		Description:   "Sampah plastik",
		PhotoFilename: "20240426151000_Pantai_Kuta.jpg",
		SubmittedAt:   now,
	}

	msg, err := serializeToMessage(event)
	require.NoError(t, err)

	assert.Equal(t, []byte("Pantai Kuta"), msg.Key)
	assert.Contains(t, string(msg.Value), `"location":"Pantai Kuta"`)
	assert.Contains(t, string(msg.Value), `"photo_filename":"20240426151000_Pantai_Kuta.jpg"`)
	assert.Len(t, msg.Headers, 2)
	assert.Equal(t, "event_id", msg.Headers[0].Key)
	assert.Equal(t, []byte("evt-1"), msg.Headers[0].Value)
	assert.Equal(t, "submitted_at", msg.Headers[1].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[1].Value)
}

func TestSerializeToMessage_NoPhoto(t *testing.T) {
	msg, err := serializeToMessage(domain.ReportSubmitted{ID: "evt-2", Location: "Teluk Jakarta"})
	require.NoError(t, err)
	assert.NotContains(t, string(msg.Value), "photo_filename")
}

func TestNewPublisher_UsesReportsTopic(t *testing.T) {
	cfg := &config.Config{KafkaBrokers: []string{"localhost:9092"}, KafkaReportsTopic: "pollution-reports"}
	p := NewPublisher(cfg, discardLogger())
	defer p.Close()

	assert.Equal(t, "pollution-reports", p.writer.Topic)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
