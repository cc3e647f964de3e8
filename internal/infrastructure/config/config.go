package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/marcos-nsantos/media-ingest/internal/domain/entity"
)

const (
	StorageBackendS3     = "s3"
	StorageBackendMemory = "memory"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	AWS        AWSConfig
	S3         S3Config
	Moderation ModerationConfig
	Ingest     IngestConfig
	Log        LogConfig
	RateLimit  RateLimitConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
}

type DatabaseConfig struct {
	Enabled         bool          `envconfig:"DB_ENABLED" default:"false"`
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" default:"postgres"`
	Password        string        `envconfig:"DB_PASSWORD"`
	Name            string        `envconfig:"DB_NAME" default:"media_ingest"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	MigrationsPath  string        `envconfig:"DB_MIGRATIONS_PATH" default:"migrations"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type AWSConfig struct {
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY"`
	MaxAttempts     int    `envconfig:"AWS_MAX_ATTEMPTS" default:"3"`
}

type S3Config struct {
	Endpoint       string        `envconfig:"S3_ENDPOINT"`
	UsePathStyle   bool          `envconfig:"S3_USE_PATH_STYLE" default:"false"`
	RequestTimeout time.Duration `envconfig:"S3_REQUEST_TIMEOUT" default:"30s"`
}

type ModerationConfig struct {
	Enabled       bool          `envconfig:"MODERATION_ENABLED" default:"true"`
	Endpoint      string        `envconfig:"MODERATION_ENDPOINT"`
	MinConfidence float64       `envconfig:"MODERATION_MIN_CONFIDENCE" default:"70"`
	Timeout       time.Duration `envconfig:"MODERATION_TIMEOUT" default:"5s"`
}

type IngestConfig struct {
	StorageBackend   string                `envconfig:"STORAGE_BACKEND" default:"s3"`
	QuarantineBucket string                `envconfig:"QUARANTINE_BUCKET"`
	Renditions       entity.RenditionSpecs `envconfig:"RENDITION_SIZES" default:"thumbnail:150x150,small:400x400,medium:800x800,large:1200x1200"`
	Quality          int                   `envconfig:"RENDITION_QUALITY" default:"85"`
	Concurrency      int                   `envconfig:"INGEST_CONCURRENCY" default:"4"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type RateLimitConfig struct {
	Enabled        bool `envconfig:"RATE_LIMIT_ENABLED" default:"false"`
	RequestsPerMin int  `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"120"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Ingest.StorageBackend {
	case StorageBackendS3, StorageBackendMemory:
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Ingest.StorageBackend)
	}
	// The JPEG encoder clamps quality to at least 1, so 0 is rejected rather
	// than silently encoded as 1.
	if c.Ingest.Quality < 1 || c.Ingest.Quality > 100 {
		return fmt.Errorf("RENDITION_QUALITY must be within 1-100, got %d", c.Ingest.Quality)
	}
	if c.Ingest.Concurrency < 1 {
		return fmt.Errorf("INGEST_CONCURRENCY must be positive, got %d", c.Ingest.Concurrency)
	}
	if c.Moderation.MinConfidence < 0 || c.Moderation.MinConfidence > 100 {
		return fmt.Errorf("MODERATION_MIN_CONFIDENCE must be within 0-100, got %v", c.Moderation.MinConfidence)
	}
	return nil
}
