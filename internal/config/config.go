package config

import (
	"time"

	"github.com/jonesrussell/sotd-matcher/internal/logger"
)

// Default configuration values.
const (
	defaultServiceName     = "sotd-matcher"
	defaultServiceVersion  = "1.0.0"
	defaultServicePort     = 8085
	defaultConcurrency     = 8
	defaultBatchSize       = 500
	defaultRateLimitRPS    = 200
	defaultDBDriver        = "sqlite3"
	defaultSQLitePath      = "sotd.db"
	defaultDBHost          = "localhost"
	defaultDBPort          = 5432
	defaultDBUser          = "postgres"
	defaultDBName          = "sotd"
	defaultDBSSLMode       = "disable"
	defaultDBMaxConns      = 25
	defaultDBMaxIdleConns  = 5
	defaultCatalogDir      = "data/catalogs"
	defaultCorrectMatches  = "data/catalogs/correct_matches.yaml"
	defaultLogLevel        = "info"
	defaultReadTimeoutSec  = 30
	defaultWriteTimeoutSec = 60
)

// Config holds all configuration for the matcher service.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Database DatabaseConfig `yaml:"database"`
	Catalogs CatalogConfig  `yaml:"catalogs"`
	Logging  logger.Config  `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name         string        `yaml:"name"`
	Version      string        `yaml:"version"`
	Port         int           `env:"MATCHER_PORT"        yaml:"port"`
	Debug        bool          `env:"APP_DEBUG"           yaml:"debug"`
	Concurrency  int           `env:"MATCHER_CONCURRENCY" yaml:"concurrency"`
	BatchSize    int           `yaml:"batch_size"`
	RateLimitRPS int           `yaml:"rate_limit_rps"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig holds candidate/result store configuration. The driver
// selects between the embedded sqlite store and postgres.
type DatabaseConfig struct {
	Driver          string        `env:"DB_DRIVER"         yaml:"driver"`
	Path            string        `env:"SQLITE_PATH"       yaml:"path"`
	Host            string        `env:"POSTGRES_HOST"     yaml:"host"`
	Port            int           `env:"POSTGRES_PORT"     yaml:"port"`
	User            string        `env:"POSTGRES_USER"     yaml:"user"`
	Password        string        `env:"POSTGRES_PASSWORD" yaml:"password"`
	Database        string        `env:"POSTGRES_DB"       yaml:"database"`
	SSLMode         string        `env:"POSTGRES_SSLMODE"  yaml:"sslmode"`
	MaxConnections  int           `yaml:"max_connections"`
	MaxIdleConns    int           `yaml:"max_idle_connections"`
	ConnMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
}

// CatalogConfig points at the catalog and override files loaded at startup.
type CatalogConfig struct {
	Dir            string `env:"CATALOG_DIR" yaml:"dir"`
	CorrectMatches string `yaml:"correct_matches"`
}

// SetDefaults applies default values to any unset fields.
func (c *Config) SetDefaults() {
	if c.Service.Name == "" {
		c.Service.Name = defaultServiceName
	}
	if c.Service.Version == "" {
		c.Service.Version = defaultServiceVersion
	}
	if c.Service.Port == 0 {
		c.Service.Port = defaultServicePort
	}
	if c.Service.Concurrency == 0 {
		c.Service.Concurrency = defaultConcurrency
	}
	if c.Service.BatchSize == 0 {
		c.Service.BatchSize = defaultBatchSize
	}
	if c.Service.RateLimitRPS == 0 {
		c.Service.RateLimitRPS = defaultRateLimitRPS
	}
	if c.Service.ReadTimeout == 0 {
		c.Service.ReadTimeout = defaultReadTimeoutSec * time.Second
	}
	if c.Service.WriteTimeout == 0 {
		c.Service.WriteTimeout = defaultWriteTimeoutSec * time.Second
	}
	if c.Database.Driver == "" {
		c.Database.Driver = defaultDBDriver
	}
	if c.Database.Path == "" {
		c.Database.Path = defaultSQLitePath
	}
	if c.Database.Host == "" {
		c.Database.Host = defaultDBHost
	}
	if c.Database.Port == 0 {
		c.Database.Port = defaultDBPort
	}
	if c.Database.User == "" {
		c.Database.User = defaultDBUser
	}
	if c.Database.Database == "" {
		c.Database.Database = defaultDBName
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = defaultDBSSLMode
	}
	if c.Database.MaxConnections == 0 {
		c.Database.MaxConnections = defaultDBMaxConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = defaultDBMaxIdleConns
	}
	if c.Catalogs.Dir == "" {
		c.Catalogs.Dir = defaultCatalogDir
	}
	if c.Catalogs.CorrectMatches == "" {
		c.Catalogs.CorrectMatches = defaultCorrectMatches
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
