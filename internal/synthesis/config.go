package synthesis

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds generative backend settings.
type Config struct {
	APIKey         string  `toml:"api_key"`
	Model          string  `toml:"model"`
	Period         string  `toml:"period"`
	TrendItems     int     `toml:"trend_items"`
	SupplyListings int     `toml:"supply_listings"`
	Timeout        string  `toml:"timeout"`
	RateLimit      float64 `toml:"rate_limit"`
	Burst          int     `toml:"burst"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	APIKey    string
	Model     string
	Period    string
	Timeout   string
	RateLimit string
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.Period != "" {
		c.Period = overlay.Period
	}
	if overlay.TrendItems != 0 {
		c.TrendItems = overlay.TrendItems
	}
	if overlay.SupplyListings != 0 {
		c.SupplyListings = overlay.SupplyListings
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.RateLimit != 0 {
		c.RateLimit = overlay.RateLimit
	}
	if overlay.Burst != 0 {
		c.Burst = overlay.Burst
	}
}

func (c *Config) loadDefaults() {
	if c.Model == "" {
		c.Model = "gemini-2.5-flash"
	}
	if c.Period == "" {
		c.Period = "2024/2025"
	}
	if c.TrendItems == 0 {
		c.TrendItems = 5
	}
	if c.SupplyListings == 0 {
		c.SupplyListings = 6
	}
	if c.Timeout == "" {
		c.Timeout = "60s"
	}
	if c.Burst == 0 {
		c.Burst = 1
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.APIKey != "" {
		if v := os.Getenv(env.APIKey); v != "" {
			c.APIKey = v
		}
	}
	if env.Model != "" {
		if v := os.Getenv(env.Model); v != "" {
			c.Model = v
		}
	}
	if env.Period != "" {
		if v := os.Getenv(env.Period); v != "" {
			c.Period = v
		}
	}
	if env.Timeout != "" {
		if v := os.Getenv(env.Timeout); v != "" {
			c.Timeout = v
		}
	}
	if env.RateLimit != "" {
		if v := os.Getenv(env.RateLimit); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				c.RateLimit = f
			}
		}
	}
}

func (c *Config) validate() error {
	if c.TrendItems < 1 {
		return fmt.Errorf("trend_items must be positive: %d", c.TrendItems)
	}
	if c.SupplyListings < 1 {
		return fmt.Errorf("supply_listings must be positive: %d", c.SupplyListings)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate_limit must not be negative: %v", c.RateLimit)
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("timeout must be positive: %s", c.Timeout)
	}
	return nil
}
