package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/drinkchain/internal/synthesis"
	"github.com/JaimeStill/drinkchain/pkg/database"
	"github.com/JaimeStill/drinkchain/pkg/storage"
	"github.com/JaimeStill/drinkchain/pkg/telemetry"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvDrinkchainEnv             = "DRINKCHAIN_ENV"
	EnvDrinkchainShutdownTimeout = "DRINKCHAIN_SHUTDOWN_TIMEOUT"
	EnvDrinkchainVersion         = "DRINKCHAIN_VERSION"
)

var databaseEnv = &database.Env{
	Driver:          "DRINKCHAIN_DB_DRIVER",
	Path:            "DRINKCHAIN_DB_PATH",
	BusyTimeout:     "DRINKCHAIN_DB_BUSY_TIMEOUT",
	AutoMigrate:     "DRINKCHAIN_DB_AUTO_MIGRATE",
	Host:            "DRINKCHAIN_DB_HOST",
	Port:            "DRINKCHAIN_DB_PORT",
	Name:            "DRINKCHAIN_DB_NAME",
	User:            "DRINKCHAIN_DB_USER",
	Password:        "DRINKCHAIN_DB_PASSWORD",
	SSLMode:         "DRINKCHAIN_DB_SSL_MODE",
	MaxOpenConns:    "DRINKCHAIN_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "DRINKCHAIN_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "DRINKCHAIN_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "DRINKCHAIN_DB_CONN_TIMEOUT",
}

var storageEnv = &storage.Env{
	Provider:         "DRINKCHAIN_STORAGE_PROVIDER",
	ContainerName:    "DRINKCHAIN_STORAGE_CONTAINER_NAME",
	ConnectionString: "DRINKCHAIN_STORAGE_CONNECTION_STRING",
}

var synthesisEnv = &synthesis.Env{
	APIKey:    "DRINKCHAIN_SYNTHESIS_API_KEY",
	Model:     "DRINKCHAIN_SYNTHESIS_MODEL",
	Period:    "DRINKCHAIN_SYNTHESIS_PERIOD",
	Timeout:   "DRINKCHAIN_SYNTHESIS_TIMEOUT",
	RateLimit: "DRINKCHAIN_SYNTHESIS_RATE_LIMIT",
}

var telemetryEnv = &telemetry.Env{
	Enabled:     "DRINKCHAIN_TELEMETRY_ENABLED",
	Endpoint:    "DRINKCHAIN_TELEMETRY_ENDPOINT",
	Insecure:    "DRINKCHAIN_TELEMETRY_INSECURE",
	Interval:    "DRINKCHAIN_TELEMETRY_INTERVAL",
	ServiceName: "DRINKCHAIN_TELEMETRY_SERVICE_NAME",
}

// Config is the root configuration for the DrinkChain service.
type Config struct {
	Server          ServerConfig     `toml:"server"`
	Database        database.Config  `toml:"database"`
	Storage         storage.Config   `toml:"storage"`
	Synthesis       synthesis.Config `toml:"synthesis"`
	Telemetry       telemetry.Config `toml:"telemetry"`
	API             APIConfig        `toml:"api"`
	ShutdownTimeout string           `toml:"shutdown_timeout"`
	Version         string           `toml:"version"`
}

// Env returns the DRINKCHAIN_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvDrinkchainEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	return LoadFile(BaseConfigFile)
}

// LoadFile is Load with an explicit base config path. The overlay is
// resolved relative to the working directory as with Load.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(path); err == nil {
		loaded, err := load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if overlay := overlayPath(); overlay != "" {
		o, err := load(overlay)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", overlay, err)
		}
		cfg.Merge(o)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Storage.Merge(&overlay.Storage)
	c.Synthesis.Merge(&overlay.Synthesis)
	c.Telemetry.Merge(&overlay.Telemetry)
	c.API.Merge(&overlay.API)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Synthesis.Finalize(synthesisEnv); err != nil {
		return fmt.Errorf("synthesis: %w", err)
	}
	if write, synth := c.Server.Timeouts().Write, c.Synthesis.TimeoutDuration(); write <= synth {
		return fmt.Errorf("server: write_timeout %s must exceed synthesis timeout %s", write, synth)
	}

	if c.Telemetry.ServiceVersion == "" {
		c.Telemetry.ServiceVersion = c.Version
	}
	if c.Telemetry.Environment == "" {
		c.Telemetry.Environment = c.Env()
	}
	if err := c.Telemetry.Finalize(telemetryEnv); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}

	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvDrinkchainShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvDrinkchainVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvDrinkchainEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
