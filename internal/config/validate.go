package config

import (
	"fmt"
	"strings"
)

const minSessionSecretLen = 32

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be > 0 (got %d)", c.Server.Port)
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if strings.TrimSpace(c.Topic.DefaultAuthor) == "" {
		return fmt.Errorf("topic.default_author must not be empty")
	}

	if len(c.Session.Secret) < minSessionSecretLen {
		return fmt.Errorf("session.secret must be at least %d characters (got %d)", minSessionSecretLen, len(c.Session.Secret))
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	switch d.Driver {
	case DriverSQLite, DriverPostgres, DriverPgx:
	default:
		return fmt.Errorf("unsupported driver %q", d.Driver)
	}
	if strings.TrimSpace(d.DSN) == "" {
		return fmt.Errorf("dsn must not be empty")
	}
	if d.MaxOpenConns < 0 || d.MaxIdleConns < 0 {
		return fmt.Errorf("connection limits must be >= 0")
	}
	return nil
}
