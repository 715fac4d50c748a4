package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

const (
	EnvServerHost              = "DRINKCHAIN_SERVER_HOST"
	EnvServerPort              = "DRINKCHAIN_SERVER_PORT"
	EnvServerReadTimeout       = "DRINKCHAIN_SERVER_READ_TIMEOUT"
	EnvServerReadHeaderTimeout = "DRINKCHAIN_SERVER_READ_HEADER_TIMEOUT"
	EnvServerWriteTimeout      = "DRINKCHAIN_SERVER_WRITE_TIMEOUT"
	EnvServerIdleTimeout       = "DRINKCHAIN_SERVER_IDLE_TIMEOUT"
	EnvServerShutdownTimeout   = "DRINKCHAIN_SERVER_SHUTDOWN_TIMEOUT"
)

// ServerConfig holds HTTP listener parameters. WriteTimeout bounds a whole
// response, so it has to outlast a synthesis request; Config checks that
// once both sections are finalized.
type ServerConfig struct {
	Host              string `toml:"host"`
	Port              int    `toml:"port"`
	ReadTimeout       string `toml:"read_timeout"`
	ReadHeaderTimeout string `toml:"read_header_timeout"`
	WriteTimeout      string `toml:"write_timeout"`
	IdleTimeout       string `toml:"idle_timeout"`
	ShutdownTimeout   string `toml:"shutdown_timeout"`
}

// Timeouts is the parsed form of the duration fields in ServerConfig.
type Timeouts struct {
	Read       time.Duration
	ReadHeader time.Duration
	Write      time.Duration
	Idle       time.Duration
	Shutdown   time.Duration
}

func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Timeouts parses every duration field. Values are validated by Finalize,
// so unparsable entries come back as zero only on an unfinalized config.
func (c *ServerConfig) Timeouts() Timeouts {
	parse := func(s string) time.Duration {
		d, _ := time.ParseDuration(s)
		return d
	}
	return Timeouts{
		Read:       parse(c.ReadTimeout),
		ReadHeader: parse(c.ReadHeaderTimeout),
		Write:      parse(c.WriteTimeout),
		Idle:       parse(c.IdleTimeout),
		Shutdown:   parse(c.ShutdownTimeout),
	}
}

func (c *ServerConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *ServerConfig) Merge(overlay *ServerConfig) {
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	for _, f := range c.durations(overlay) {
		if *f.src != "" {
			*f.dst = *f.src
		}
	}
}

type durationField struct {
	name string
	env  string
	dst  *string
	src  *string
}

// durations pairs each duration field of c with its toml name, its
// environment variable, and the matching field of other (nil-safe).
func (c *ServerConfig) durations(other *ServerConfig) []durationField {
	if other == nil {
		other = &ServerConfig{}
	}
	return []durationField{
		{"read_timeout", EnvServerReadTimeout, &c.ReadTimeout, &other.ReadTimeout},
		{"read_header_timeout", EnvServerReadHeaderTimeout, &c.ReadHeaderTimeout, &other.ReadHeaderTimeout},
		{"write_timeout", EnvServerWriteTimeout, &c.WriteTimeout, &other.WriteTimeout},
		{"idle_timeout", EnvServerIdleTimeout, &c.IdleTimeout, &other.IdleTimeout},
		{"shutdown_timeout", EnvServerShutdownTimeout, &c.ShutdownTimeout, &other.ShutdownTimeout},
	}
}

func (c *ServerConfig) loadDefaults() {
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	defaults := map[string]string{
		"read_timeout":        "30s",
		"read_header_timeout": "5s",
		"write_timeout":       "3m",
		"idle_timeout":        "2m",
		"shutdown_timeout":    "30s",
	}
	for _, f := range c.durations(nil) {
		if *f.dst == "" {
			*f.dst = defaults[f.name]
		}
	}
}

func (c *ServerConfig) loadEnv() {
	if v := os.Getenv(EnvServerHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvServerPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	for _, f := range c.durations(nil) {
		if v := os.Getenv(f.env); v != "" {
			*f.dst = v
		}
	}
}

func (c *ServerConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	for _, f := range c.durations(nil) {
		d, err := time.ParseDuration(*f.dst)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", f.name, err)
		}
		if d <= 0 {
			return fmt.Errorf("invalid %s: must be positive", f.name)
		}
	}
	return nil
}
