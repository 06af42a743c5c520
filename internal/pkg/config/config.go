package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Storage StorageConfig
	Boost   BoostConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

// URL takes precedence over the individual parts when set.
type DBConfig struct {
	URL             string        `envconfig:"DATABASE_URL"`
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER"`
	Password        string        `envconfig:"DB_PASSWORD"`
	DBName          string        `envconfig:"DB_NAME"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone        string        `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"10"`
	ConnectTimeout  time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"30s"`
	AutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"false"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// Bucket and Region also shape the public media URLs, so they are needed even
// when uploads go to an S3-compatible endpoint.
type StorageConfig struct {
	Backend         string `envconfig:"STORAGE_BACKEND" default:"s3"` // s3 or memory
	Bucket          string `envconfig:"S3_BUCKET" required:"true"`
	Region          string `envconfig:"S3_REGION" default:"ap-southeast-1"`
	AccessKeyID     string `envconfig:"S3_KEY"`
	SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY"`
	Endpoint        string `envconfig:"S3_ENDPOINT"`
	UsePathStyle    bool   `envconfig:"S3_USE_PATH_STYLE" default:"false"`
	MaxUploadBytes  int64  `envconfig:"MEDIA_MAX_UPLOAD_BYTES" default:"20971520"` // 20MiB
}

type BoostConfig struct {
	MaxDays int `envconfig:"BOOST_MAX_DAYS" default:"365"`
}

const (
	StorageBackendS3     = "s3"
	StorageBackendMemory = "memory"
)

var errMissingDBSettings = errors.New("either DATABASE_URL or DB_USER/DB_PASSWORD/DB_NAME must be set")

func (c *DBConfig) BuildDSN() string {
	if c.URL != "" {
		return normalizeURL(c.URL)
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Heroku-style URLs use the postgresql scheme alias interchangeably.
func normalizeURL(u string) string {
	if strings.HasPrefix(u, "postgresql://") {
		return "postgres://" + strings.TrimPrefix(u, "postgresql://")
	}
	return u
}

func (c *StorageConfig) validate() error {
	switch c.Backend {
	case StorageBackendS3, StorageBackendMemory:
		return nil
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.Backend)
	}
}

func (c *DBConfig) validate() error {
	if c.URL != "" {
		return nil
	}
	if c.User == "" || c.DBName == "" {
		return errMissingDBSettings
	}
	return nil
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err.Error())
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return Config{}, err
	}
	if err := cfg.Storage.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Storage: StorageConfig{
			Backend:        "memory",
			Bucket:         "discover-test",
			Region:         "ap-southeast-1",
			MaxUploadBytes: 1 << 20,
		},
		Boost: BoostConfig{
			MaxDays: 365,
		},
	}
}
