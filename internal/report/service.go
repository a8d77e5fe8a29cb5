// Package report orchestrates report submission and renders the report feed.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/ocean-defender/internal/domain"
	"github.com/couchcryptid/ocean-defender/internal/observability"
	"github.com/google/uuid"
)

// Store is the persistent report log.
type Store interface {
	LoadAll() ([]domain.Report, error)
	Append(r domain.Report) error
}

// PhotoStore writes uploaded photos and returns the stored filename.
type PhotoStore interface {
	Store(label string, data []byte, ext string) (string, error)
}

// Publisher announces appended reports to downstream consumers.
type Publisher interface {
	PublishReport(ctx context.Context, event domain.ReportSubmitted) error
}

// ReadinessChecker is implemented by stores that can verify their backing storage.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Upload is a photo attached to a submission.
type Upload struct {
	Data      []byte
	Extension string
}

// Service handles report submission and retrieval.
type Service struct {
	store     Store
	photos    PhotoStore
	publisher Publisher
	logger    *slog.Logger
	metrics   *observability.Metrics
	photoRoot string
}

// NewService creates a report service. publisher may be nil to disable event
// publishing.
func NewService(store Store, photos PhotoStore, publisher Publisher, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		store:     store,
		photos:    photos,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
		photoRoot: DefaultPhotoRoot,
	}
}

// Submit validates one submission, stores its photo, appends the report and
// publishes a ReportSubmitted event. Blank fields return a *domain.ValidationError
// and leave the log untouched. A photo written before a failed append is kept.
func (s *Service) Submit(ctx context.Context, location, description string, upload *Upload) (domain.Report, error) {
	if err := domain.ValidateSubmission(location, description); err != nil {
		s.metrics.ValidationFailures.Inc()
		return domain.Report{}, err
	}

	var photo string
	if upload != nil && len(upload.Data) > 0 {
		name, err := s.photos.Store(location, upload.Data, upload.Extension)
		if err != nil {
			return domain.Report{}, fmt.Errorf("store photo: %w", err)
		}
		photo = name
		s.metrics.PhotosStored.Inc()
	}

	r := domain.NewReport(location, description, photo)
	if err := s.store.Append(r); err != nil {
		return domain.Report{}, fmt.Errorf("append report: %w", err)
	}
	s.metrics.ReportsSubmitted.Inc()
	s.logger.Info("report submitted", "location", r.Location, "date", r.DateString(), "photo", r.PhotoFilename)

	s.publish(ctx, r)
	return r, nil
}

func (s *Service) publish(ctx context.Context, r domain.Report) {
	if s.publisher == nil {
		return
	}
	event := domain.NewReportSubmitted(uuid.NewString(), r)
	if err := s.publisher.PublishReport(ctx, event); err != nil {
		s.metrics.PublishErrors.Inc()
		s.logger.Warn("publish report failed", "error", err, "id", event.ID, "location", r.Location)
	}
}

// Reports returns every stored report in insertion order.
func (s *Service) Reports() ([]domain.Report, error) {
	reports, err := s.store.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load reports: %w", err)
	}
	return reports, nil
}

// Feed loads the log and renders it newest first.
func (s *Service) Feed() (Feed, error) {
	reports, err := s.Reports()
	if err != nil {
		return Feed{}, err
	}
	return Render(reports, s.photoRoot), nil
}

// CheckReadiness probes the report log and photo archive when they support it.
func (s *Service) CheckReadiness(ctx context.Context) error {
	var errs []error
	for _, dep := range []any{s.store, s.photos} {
		if rc, ok := dep.(ReadinessChecker); ok {
			if err := rc.CheckReadiness(ctx); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
