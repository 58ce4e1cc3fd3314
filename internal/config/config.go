package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment driven configuration for the reel service.
type Config struct {
	// Service Configuration
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"reel-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"REEL_API_PORT" envDefault:"3001"`
	LogLevel        string        `env:"REEL_LOG_LEVEL" envDefault:"info"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Relational database holding user profiles (required, no default)
	DatabaseDSN string `env:"DB_POSTGRESQL_DSN,notEmpty"`

	// Database Connection Pool
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"15"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	// Document database holding video metadata
	MongoURI      string        `env:"MONGO_URI,notEmpty"`
	MongoDatabase string        `env:"MONGO_DATABASE" envDefault:"reelapp"`
	MongoTimeout  time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`

	// S3 Object Storage Configuration
	S3Endpoint     string        `env:"REEL_S3_ENDPOINT"`
	S3Region       string        `env:"REEL_S3_REGION" envDefault:"ap-south-1"`
	S3Bucket       string        `env:"REEL_S3_BUCKET" envDefault:"reelapp"`
	S3AccessKeyID  string        `env:"REEL_S3_ACCESS_KEY_ID"`     // AWS standard naming
	S3SecretKey    string        `env:"REEL_S3_SECRET_ACCESS_KEY"` // AWS standard naming
	S3UsePathStyle bool          `env:"REEL_S3_USE_PATH_STYLE" envDefault:"false"`
	S3PresignTTL   time.Duration `env:"REEL_S3_PRESIGN_TTL" envDefault:"1h"`

	// Upload Configuration
	MaxVideoBytes int64 `env:"REEL_MAX_VIDEO_BYTES" envDefault:"104857600"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.S3Bucket = strings.TrimSpace(cfg.S3Bucket)
	cfg.S3AccessKeyID = strings.TrimSpace(cfg.S3AccessKeyID)
	cfg.S3SecretKey = strings.TrimSpace(cfg.S3SecretKey)
	cfg.S3Endpoint = strings.TrimSpace(cfg.S3Endpoint)
	if cfg.MaxVideoBytes <= 0 {
		cfg.MaxVideoBytes = 100 * 1024 * 1024
	}
	if cfg.S3PresignTTL <= 0 {
		cfg.S3PresignTTL = time.Hour
	}
	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
