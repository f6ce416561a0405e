package app

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/klassrum/internal/roster"
)

const envPrefix = "KLASSRUM_"

type Config struct {
	Server struct {
		Port                   string `toml:"port" env:"PORT"`
		ShutdownTimeoutSeconds int    `toml:"shutdown_timeout_seconds" env:"SHUTDOWN_TIMEOUT_SECONDS"`
		CORSOrigin             string `toml:"cors_origin" env:"CORS_ORIGIN"`
	} `toml:"server" envPrefix:"SERVER_"`

	Database struct {
		DSN string `toml:"dsn" env:"DSN"`
	} `toml:"database" envPrefix:"DATABASE_"`

	Lock struct {
		RedisURL    string `toml:"redis_url" env:"REDIS_URL"`
		KeyTemplate string `toml:"key_template" env:"KEY_TEMPLATE"`
		TTLSeconds  int    `toml:"ttl_seconds" env:"TTL_SECONDS"`
	} `toml:"lock" envPrefix:"LOCK_"`

	Roster roster.Policy `toml:"roster" envPrefix:"ROSTER_"`
}

func (c *Config) ShutdownTimeout() time.Duration {
	if c.Server.ShutdownTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.Server.ShutdownTimeoutSeconds) * time.Second
}

func (c *Config) LockTTL() time.Duration {
	return time.Duration(c.Lock.TTLSeconds) * time.Second
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return ParseConfig(data, path)
}

// ParseConfig decodes TOML and then applies KLASSRUM_* environment overrides
func ParseConfig(data []byte, path string) (*Config, error) {
	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(
			"error reading config file %s\n> Error: %w\n> Content:\n%s",
			path,
			err,
			string(data),
		)
	}

	if err := env.ParseWithOptions(&config, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("error reading environment overrides: %w", err)
	}

	if config.Server.Port == "" {
		return nil, fmt.Errorf("Server port is not specified in config, use a value like :9999")
	}
	if config.Database.DSN == "" {
		return nil, fmt.Errorf("Database DSN is not specified in config")
	}
	if config.Server.CORSOrigin == "" {
		config.Server.CORSOrigin = "*"
	}

	logger.Debug.Printf("Loaded roster config: %+v", config.Roster)

	return &config, nil
}
