package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/ocean-defender/internal/adapter/chart"
	"github.com/couchcryptid/ocean-defender/internal/adapter/csvstore"
	"github.com/couchcryptid/ocean-defender/internal/adapter/dataset"
	httpadapter "github.com/couchcryptid/ocean-defender/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/ocean-defender/internal/adapter/kafka"
	"github.com/couchcryptid/ocean-defender/internal/adapter/mapbox"
	"github.com/couchcryptid/ocean-defender/internal/adapter/photos"
	"github.com/couchcryptid/ocean-defender/internal/config"
	"github.com/couchcryptid/ocean-defender/internal/dashboard"
	"github.com/couchcryptid/ocean-defender/internal/domain"
	"github.com/couchcryptid/ocean-defender/internal/observability"
	"github.com/couchcryptid/ocean-defender/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Initialize geocoder (feature-flagged via MAPBOX_ENABLED / MAPBOX_TOKEN).
	var geocoder domain.Geocoder
	if cfg.MapboxEnabled {
		client := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, metrics, logger)
		cached, err := mapbox.NewCachedGeocoder(client, cfg.MapboxCacheSize, cfg.MapboxMissTTL, metrics)
		if err != nil {
			logger.Error("failed to create geocode cache", "error", err)
			os.Exit(1)
		}
		geocoder = cached
		metrics.GeocodeEnabled.Set(1)
		logger.Info("mapbox geocoding enabled", "cache_size", cfg.MapboxCacheSize, "miss_ttl", cfg.MapboxMissTTL, "max_pins", cfg.MapboxMaxPins, "timeout", cfg.MapboxTimeout)
	} else {
		logger.Info("mapbox geocoding disabled")
	}

	// Report events are optional; an unset KAFKA_BROKERS leaves publishing off.
	var publisher report.Publisher
	var kafkaPublisher *kafkaadapter.Publisher
	if cfg.PublishEnabled() {
		kafkaPublisher = kafkaadapter.NewPublisher(cfg, logger)
		publisher = kafkaPublisher
		logger.Info("report publishing enabled", "topic", cfg.KafkaReportsTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("report publishing disabled")
	}

	store := csvstore.New(cfg.ReportLogPath, logger)
	archive := photos.NewArchive(cfg.UploadDir, nil, logger)
	reports := report.NewService(store, archive, publisher, logger, metrics)

	dash := dashboard.NewService(
		dataset.NewLoader(cfg.WaterQualityPath, logger),
		reports,
		geocoder,
		chart.NewRenderer(),
		dashboard.Options{
			Country:        cfg.Country,
			GeocodeCountry: cfg.MapboxCountry,
			MaxPins:        cfg.MapboxMaxPins,
			MapStyle:       cfg.MapboxStyle,
			MapToken:       cfg.MapboxToken,
		},
		logger,
		metrics,
	)

	srv := httpadapter.NewServer(httpadapter.Options{
		Addr:           cfg.HTTPAddr,
		UploadDir:      cfg.UploadDir,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}, reports, dash, reports, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
