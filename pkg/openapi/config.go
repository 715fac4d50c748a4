package openapi

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the document metadata and where the reference UI is served.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	DocsPath    string `toml:"docs_path"`
	DisableDocs bool   `toml:"disable_docs"`
}

// ConfigEnv names the environment variables that override Config fields.
type ConfigEnv struct {
	Title       string
	Description string
	DocsPath    string
	DisableDocs string
}

// DocsEnabled reports whether the reference UI should be mounted.
func (c *Config) DocsEnabled() bool {
	return !c.DisableDocs && c.DocsPath != ""
}

func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay. DisableDocs can only be
// switched on by an overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if overlay.DocsPath != "" {
		c.DocsPath = overlay.DocsPath
	}
	if overlay.DisableDocs {
		c.DisableDocs = true
	}
}

func (c *Config) loadDefaults() {
	if c.Title == "" {
		c.Title = "DrinkChain API"
	}
	if c.Description == "" {
		c.Description = "Strategy-driven market trend, supply board and advisor synthesis for the beverage supply chain."
	}
	if c.DocsPath == "" {
		c.DocsPath = "/scalar"
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	lookup := func(name string) (string, bool) {
		if name == "" {
			return "", false
		}
		v := os.Getenv(name)
		return v, v != ""
	}

	if v, ok := lookup(env.Title); ok {
		c.Title = v
	}
	if v, ok := lookup(env.Description); ok {
		c.Description = v
	}
	if v, ok := lookup(env.DocsPath); ok {
		c.DocsPath = v
	}
	if v, ok := lookup(env.DisableDocs); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.DisableDocs = b
		}
	}
}

// The docs path is mounted as a module, so it must be a single segment.
func (c *Config) validate() error {
	if c.DisableDocs {
		return nil
	}
	if !strings.HasPrefix(c.DocsPath, "/") || strings.Count(c.DocsPath, "/") != 1 || len(c.DocsPath) < 2 {
		return fmt.Errorf("invalid docs_path %q: must be a single segment such as /scalar", c.DocsPath)
	}
	return nil
}
