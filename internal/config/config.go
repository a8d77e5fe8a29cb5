package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Storage locations.
	ReportLogPath    string
	UploadDir        string
	WaterQualityPath string
	Country          string
	MaxUploadBytes   int64

	// Mapbox geocoding and basemap configuration.
	MapboxToken     string
	MapboxEnabled   bool
	MapboxTimeout   time.Duration
	MapboxCacheSize int
	MapboxMissTTL   time.Duration
	MapboxMaxPins   int
	MapboxCountry   string
	MapboxStyle     string

	// Report events; publishing is off when no brokers are set.
	KafkaBrokers      []string
	KafkaReportsTopic string
}

// PublishEnabled reports whether submitted reports are sent to Kafka.
func (c *Config) PublishEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is read first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.New("invalid .env file: " + err.Error())
	}

	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	mapboxTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("MAPBOX_TIMEOUT", "5s"))
	if err != nil || mapboxTimeout <= 0 {
		return nil, errors.New("invalid MAPBOX_TIMEOUT")
	}

	missTTL, err := time.ParseDuration(sharedcfg.EnvOrDefault("MAPBOX_MISS_TTL", "10m"))
	if err != nil || missTTL <= 0 {
		return nil, errors.New("invalid MAPBOX_MISS_TTL")
	}

	maxPins, err := strconv.Atoi(sharedcfg.EnvOrDefault("MAPBOX_MAX_PINS", "50"))
	if err != nil || maxPins <= 0 {
		return nil, errors.New("invalid MAPBOX_MAX_PINS")
	}

	maxUpload, err := strconv.ParseInt(sharedcfg.EnvOrDefault("MAX_UPLOAD_BYTES", "10485760"), 10, 64)
	if err != nil || maxUpload <= 0 {
		return nil, errors.New("invalid MAX_UPLOAD_BYTES")
	}

	mapboxToken := os.Getenv("MAPBOX_TOKEN")
	mapboxEnabled := mapboxToken != ""
	if v := os.Getenv("MAPBOX_ENABLED"); v != "" {
		mapboxEnabled = v == "true"
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		ReportLogPath:    sharedcfg.EnvOrDefault("REPORT_LOG_PATH", "laporan_pencemaran.csv"),
		UploadDir:        sharedcfg.EnvOrDefault("UPLOAD_DIR", "uploads"),
		WaterQualityPath: sharedcfg.EnvOrDefault("WATER_QUALITY_PATH", "water_pollution_disease.csv"),
		Country:          sharedcfg.EnvOrDefault("COUNTRY", "Indonesia"),
		MaxUploadBytes:   maxUpload,

		MapboxToken:     mapboxToken,
		MapboxEnabled:   mapboxEnabled,
		MapboxTimeout:   mapboxTimeout,
		MapboxCacheSize: parseMapboxCacheSize(),
		MapboxMissTTL:   missTTL,
		MapboxMaxPins:   maxPins,
		MapboxCountry:   sharedcfg.EnvOrDefault("MAPBOX_COUNTRY", "id"),
		MapboxStyle:     sharedcfg.EnvOrDefault("MAPBOX_STYLE", "mapbox://styles/mapbox/light-v9"),

		KafkaBrokers:      parseBrokers(),
		KafkaReportsTopic: sharedcfg.EnvOrDefault("KAFKA_REPORTS_TOPIC", "pollution-reports"),
	}

	if cfg.ReportLogPath == "" {
		return nil, errors.New("REPORT_LOG_PATH is required")
	}
	if cfg.UploadDir == "" {
		return nil, errors.New("UPLOAD_DIR is required")
	}
	if cfg.MapboxEnabled && cfg.MapboxToken == "" {
		return nil, errors.New("MAPBOX_ENABLED is true but MAPBOX_TOKEN is not set")
	}
	if cfg.PublishEnabled() && cfg.KafkaReportsTopic == "" {
		return nil, errors.New("KAFKA_REPORTS_TOPIC is required when KAFKA_BROKERS is set")
	}

	return cfg, nil
}

func parseMapboxCacheSize() int {
	if s := os.Getenv("MAPBOX_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return 1000
}

func parseBrokers() []string {
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		return sharedcfg.ParseBrokers(v)
	}
	return nil
}
