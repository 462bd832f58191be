package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration. It is loaded once at
// startup and not modified afterwards.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Topic    TopicConfig    `yaml:"topic"`
	Session  SessionConfig  `yaml:"session"`
	Log      LogConfig      `yaml:"log"`
	OpenTDB  OpenTDBConfig  `yaml:"opentdb"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Supported database drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
)

// DatabaseConfig holds the storage connection settings.
type DatabaseConfig struct {
	Driver          string        `yaml:"driver"            env:"DATABASE_DRIVER"            env-default:"sqlite3"`
	DSN             string        `yaml:"dsn"               env:"DATABASE_DSN"               env-default:"topics.db"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DATABASE_MAX_OPEN_CONNS"    env-default:"10"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DATABASE_MAX_IDLE_CONNS"    env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DATABASE_CONN_MAX_LIFETIME" env-default:"1h"`
	AutoMigrate     bool          `yaml:"auto_migrate"      env:"DATABASE_AUTO_MIGRATE"      env-default:"true"`
}

// IsPostgres reports whether the driver talks to PostgreSQL.
func (d DatabaseConfig) IsPostgres() bool {
	return d.Driver == DriverPostgres || d.Driver == DriverPgx
}

// TopicConfig holds record defaults.
type TopicConfig struct {
	DefaultAuthor string `yaml:"default_author" env:"TOPIC_DEFAULT_AUTHOR" env-default:"子渡"`
}

// SessionConfig holds the cookie session used for flash messages.
type SessionConfig struct {
	Secret string `yaml:"secret" env:"SESSION_SECRET" env-required:"true"`
	Name   string `yaml:"name"   env:"SESSION_NAME"   env-default:"topic_session"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// OpenTDBConfig holds the trivia source used by the seed command.
type OpenTDBConfig struct {
	BaseURL string        `yaml:"base_url" env:"OPENTDB_BASE_URL" env-default:"https://opentdb.com/api.php"`
	Timeout time.Duration `yaml:"timeout"  env:"OPENTDB_TIMEOUT"  env-default:"10s"`
}
