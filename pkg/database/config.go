package database

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config selects a driver and its connection. Path and BusyTimeout apply to
// SQLite; Host through SSLMode apply to PostgreSQL. Pool settings apply to both.
type Config struct {
	Driver      string `toml:"driver"`
	AutoMigrate bool   `toml:"auto_migrate"`

	Path        string `toml:"path"`
	BusyTimeout string `toml:"busy_timeout"`

	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Name     string `toml:"name"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	SSLMode  string `toml:"ssl_mode"`

	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime string `toml:"conn_max_lifetime"`
	ConnTimeout     string `toml:"conn_timeout"`
}

// Env names the environment variables that override Config fields. Empty
// names are skipped.
type Env struct {
	Driver          string
	AutoMigrate     string
	Path            string
	BusyTimeout     string
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    string
	MaxIdleConns    string
	ConnMaxLifetime string
	ConnTimeout     string
}

func (c *Config) ConnMaxLifetimeDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnMaxLifetime)
	return d
}

func (c *Config) ConnTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ConnTimeout)
	return d
}

// Dsn returns the connection string for the configured driver.
//
// SQLite runs in WAL mode with a busy timeout so the strategy store and the
// views can write without SQLITE_BUSY. PostgreSQL uses URL form so that
// credentials are escaped; conn_timeout becomes connect_timeout.
func (c *Config) Dsn() string {
	if c.Driver == DriverSQLite {
		busy := 5 * time.Second
		if d, err := time.ParseDuration(c.BusyTimeout); err == nil && d > 0 {
			busy = d
		}
		q := url.Values{"_pragma": {
			fmt.Sprintf("busy_timeout(%d)", busy.Milliseconds()),
			"journal_mode(WAL)",
			"synchronous(NORMAL)",
		}}
		return "file:" + c.Path + "?" + q.Encode()
	}

	q := url.Values{"sslmode": {c.SSLMode}}
	if d := c.ConnTimeoutDuration(); d >= time.Second {
		q.Set("connect_timeout", strconv.Itoa(int(d.Seconds())))
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: q.Encode(),
	}
	return u.String()
}

func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay. AutoMigrate can only be
// switched on by an overlay.
func (c *Config) Merge(overlay *Config) {
	merge(&c.Driver, overlay.Driver)
	merge(&c.Path, overlay.Path)
	merge(&c.BusyTimeout, overlay.BusyTimeout)
	merge(&c.Host, overlay.Host)
	merge(&c.Port, overlay.Port)
	merge(&c.Name, overlay.Name)
	merge(&c.User, overlay.User)
	merge(&c.Password, overlay.Password)
	merge(&c.SSLMode, overlay.SSLMode)
	merge(&c.MaxOpenConns, overlay.MaxOpenConns)
	merge(&c.MaxIdleConns, overlay.MaxIdleConns)
	merge(&c.ConnMaxLifetime, overlay.ConnMaxLifetime)
	merge(&c.ConnTimeout, overlay.ConnTimeout)
	if overlay.AutoMigrate {
		c.AutoMigrate = true
	}
}

func merge[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}

func (c *Config) loadDefaults() {
	c.Driver = orDefault(c.Driver, DriverSQLite)
	c.Path = orDefault(c.Path, "drinkchain.db")
	c.BusyTimeout = orDefault(c.BusyTimeout, "5s")
	c.Host = orDefault(c.Host, "localhost")
	c.Port = orDefault(c.Port, 5432)
	c.SSLMode = orDefault(c.SSLMode, "disable")
	c.MaxOpenConns = orDefault(c.MaxOpenConns, 25)
	c.MaxIdleConns = orDefault(c.MaxIdleConns, 5)
	c.ConnMaxLifetime = orDefault(c.ConnMaxLifetime, "15m")
	c.ConnTimeout = orDefault(c.ConnTimeout, "5s")
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

func (c *Config) loadEnv(env *Env) {
	strs := []struct {
		name string
		dst  *string
	}{
		{env.Driver, &c.Driver},
		{env.Path, &c.Path},
		{env.BusyTimeout, &c.BusyTimeout},
		{env.Host, &c.Host},
		{env.Name, &c.Name},
		{env.User, &c.User},
		{env.Password, &c.Password},
		{env.SSLMode, &c.SSLMode},
		{env.ConnMaxLifetime, &c.ConnMaxLifetime},
		{env.ConnTimeout, &c.ConnTimeout},
	}
	for _, f := range strs {
		if v := lookup(f.name); v != "" {
			*f.dst = v
		}
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{env.Port, &c.Port},
		{env.MaxOpenConns, &c.MaxOpenConns},
		{env.MaxIdleConns, &c.MaxIdleConns},
	}
	for _, f := range ints {
		if n, err := strconv.Atoi(lookup(f.name)); err == nil {
			*f.dst = n
		}
	}

	if b, err := strconv.ParseBool(lookup(env.AutoMigrate)); err == nil {
		c.AutoMigrate = b
	}
}

func lookup(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}

func (c *Config) validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.Path == "" {
			return fmt.Errorf("path required for %s", c.Driver)
		}
		if _, err := time.ParseDuration(c.BusyTimeout); err != nil {
			return fmt.Errorf("invalid busy_timeout: %w", err)
		}
	case DriverPostgres:
		if c.Name == "" {
			return fmt.Errorf("name required")
		}
		if c.User == "" {
			return fmt.Errorf("user required")
		}
	default:
		return fmt.Errorf("unsupported driver %q", c.Driver)
	}
	if _, err := time.ParseDuration(c.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid conn_max_lifetime: %w", err)
	}
	if _, err := time.ParseDuration(c.ConnTimeout); err != nil {
		return fmt.Errorf("invalid conn_timeout: %w", err)
	}
	return nil
}
