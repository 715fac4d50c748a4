package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/drinkchain/pkg/formatting"
	"github.com/JaimeStill/drinkchain/pkg/middleware"
	"github.com/JaimeStill/drinkchain/pkg/openapi"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "DRINKCHAIN_CORS_ENABLED",
	Origins:          "DRINKCHAIN_CORS_ORIGINS",
	AllowedMethods:   "DRINKCHAIN_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "DRINKCHAIN_CORS_ALLOWED_HEADERS",
	AllowCredentials: "DRINKCHAIN_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "DRINKCHAIN_CORS_MAX_AGE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "DRINKCHAIN_OPENAPI_TITLE",
	Description: "DRINKCHAIN_OPENAPI_DESCRIPTION",
	DocsPath:    "DRINKCHAIN_OPENAPI_DOCS_PATH",
	DisableDocs: "DRINKCHAIN_OPENAPI_DISABLE_DOCS",
}

// APIConfig holds API routing, request size, CORS and OpenAPI settings.
type APIConfig struct {
	BasePath    string                `toml:"base_path"`
	MaxBodySize string                `toml:"max_body_size"`
	CORS        middleware.CORSConfig `toml:"cors"`
	OpenAPI     openapi.Config        `toml:"openapi"`
}

// MaxBodySizeBytes returns MaxBodySize in bytes.
func (c *APIConfig) MaxBodySizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxBodySize)
	if err != nil {
		return 1024 * 1024 // 1MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS and OpenAPI configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if _, err := formatting.ParseBytes(c.MaxBodySize); err != nil {
		return fmt.Errorf("invalid max_body_size: %w", err)
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	if c.OpenAPI.DocsEnabled() && c.OpenAPI.DocsPath == c.BasePath {
		return fmt.Errorf("openapi: docs_path %s collides with base_path", c.OpenAPI.DocsPath)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}

	c.CORS.Merge(&overlay.CORS)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "1MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("DRINKCHAIN_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("DRINKCHAIN_API_MAX_BODY_SIZE"); v != "" {
		c.MaxBodySize = v
	}
}
