package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JaimeStill/drinkchain/internal/config"
	"github.com/JaimeStill/drinkchain/pkg/database"
	"github.com/JaimeStill/drinkchain/pkg/storage"
)

const baseConfig = `
shutdown_timeout = "30s"
version = "0.2.0"

[server]
host = "0.0.0.0"
port = 8080

[database]
driver = "sqlite"
path = "base.db"
auto_migrate = true

[storage]
provider = "sql"

[synthesis]
model = "gemini-2.5-flash"
period = "2024/2025"
trend_items = 5
supply_listings = 6
timeout = "60s"

[api]
base_path = "/api"
max_body_size = "2MB"
`

const overlayConfig = `
[server]
port = 9090

[storage]
provider = "memory"
`

func writeConfig(t *testing.T, dir, filename, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", filename, err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(orig) })
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	chdir(t, dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server port: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Driver != database.DriverSQLite || cfg.Database.Path != "base.db" {
		t.Errorf("database: got %s %s", cfg.Database.Driver, cfg.Database.Path)
	}
	if cfg.Storage.Provider != storage.ProviderSQL {
		t.Errorf("storage provider: got %s, want sql", cfg.Storage.Provider)
	}
	if cfg.Synthesis.TimeoutDuration() != time.Minute {
		t.Errorf("synthesis timeout: got %v, want 1m", cfg.Synthesis.TimeoutDuration())
	}
	if cfg.API.MaxBodySizeBytes() != 2*1024*1024 {
		t.Errorf("max body size: got %d", cfg.API.MaxBodySizeBytes())
	}
	if cfg.Telemetry.ServiceVersion != "0.2.0" {
		t.Errorf("telemetry version: got %s, want 0.2.0", cfg.Telemetry.ServiceVersion)
	}
	if cfg.Telemetry.Environment != "local" {
		t.Errorf("telemetry environment: got %s, want local", cfg.Telemetry.Environment)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("shutdown timeout: got %v, want 30s", cfg.ShutdownTimeoutDuration())
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("server addr: got %s", cfg.Server.Addr())
	}
	timeouts := cfg.Server.Timeouts()
	if timeouts.ReadHeader != 5*time.Second {
		t.Errorf("read header timeout: got %v, want 5s", timeouts.ReadHeader)
	}
	if timeouts.Write != 3*time.Minute {
		t.Errorf("write timeout: got %v, want 3m", timeouts.Write)
	}
	if timeouts.Idle != 2*time.Minute {
		t.Errorf("idle timeout: got %v, want 2m", timeouts.Idle)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("base path: got %s, want /api", cfg.API.BasePath)
	}
	if cfg.Synthesis.APIKey != "" {
		t.Error("api key should default empty")
	}
	if cfg.API.OpenAPI.Title != "DrinkChain API" {
		t.Errorf("openapi title: got %s, want DrinkChain API", cfg.API.OpenAPI.Title)
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	writeConfig(t, dir, "config.staging.toml", overlayConfig)
	chdir(t, dir)
	t.Setenv(config.EnvDrinkchainEnv, "staging")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server port: got %d, want 9090", cfg.Server.Port)
	}
	if cfg.Storage.Provider != storage.ProviderMemory {
		t.Errorf("storage provider: got %s, want memory", cfg.Storage.Provider)
	}
	if cfg.Database.Path != "base.db" {
		t.Errorf("database path: got %s, want base.db from base", cfg.Database.Path)
	}
	if cfg.Telemetry.Environment != "staging" {
		t.Errorf("telemetry environment: got %s, want staging", cfg.Telemetry.Environment)
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	chdir(t, dir)

	t.Setenv("DRINKCHAIN_SERVER_PORT", "7070")
	t.Setenv("DRINKCHAIN_DB_PATH", "env.db")
	t.Setenv("DRINKCHAIN_STORAGE_PROVIDER", "memory")
	t.Setenv("DRINKCHAIN_SYNTHESIS_API_KEY", "secret")
	t.Setenv("DRINKCHAIN_SYNTHESIS_RATE_LIMIT", "0.5")
	t.Setenv(config.EnvDrinkchainVersion, "1.0.0")
	t.Setenv("DRINKCHAIN_OPENAPI_TITLE", "Supply API")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("server port: got %d, want 7070", cfg.Server.Port)
	}
	if cfg.Database.Path != "env.db" {
		t.Errorf("database path: got %s, want env.db", cfg.Database.Path)
	}
	if cfg.Storage.Provider != storage.ProviderMemory {
		t.Errorf("storage provider: got %s, want memory", cfg.Storage.Provider)
	}
	if cfg.Synthesis.APIKey != "secret" || cfg.Synthesis.RateLimit != 0.5 {
		t.Errorf("synthesis: got key=%q rate=%v", cfg.Synthesis.APIKey, cfg.Synthesis.RateLimit)
	}
	if cfg.Version != "1.0.0" {
		t.Errorf("version: got %s, want 1.0.0", cfg.Version)
	}
	if cfg.API.OpenAPI.Title != "Supply API" {
		t.Errorf("openapi title: got %s, want Supply API", cfg.API.OpenAPI.Title)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed toml", "shutdown_timeout = "},
		{"bad shutdown timeout", `shutdown_timeout = "forever"`},
		{"bad port", "[server]\nport = 70000"},
		{"bad idle timeout", "[server]\nidle_timeout = \"soon\""},
		{"negative header timeout", "[server]\nread_header_timeout = \"-1s\""},
		{"write shorter than synthesis", "[server]\nwrite_timeout = \"30s\"\n[synthesis]\ntimeout = \"60s\""},
		{"bad storage provider", "[storage]\nprovider = \"s3\""},
		{"bad body size", "[api]\nmax_body_size = \"huge\""},
		{"docs collide with base path", "[api.openapi]\ndocs_path = \"/api\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := config.LoadFile(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestServerTimeoutEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(config.EnvServerIdleTimeout, "45s")
	t.Setenv(config.EnvServerWriteTimeout, "5m")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	timeouts := cfg.Server.Timeouts()
	if timeouts.Idle != 45*time.Second {
		t.Errorf("idle timeout: got %v, want 45s", timeouts.Idle)
	}
	if timeouts.Write != 5*time.Minute {
		t.Errorf("write timeout: got %v, want 5m", timeouts.Write)
	}
}

func TestServerMerge(t *testing.T) {
	base := config.ServerConfig{Host: "0.0.0.0", Port: 8080, WriteTimeout: "3m", IdleTimeout: "2m"}
	base.Merge(&config.ServerConfig{Port: 9090, IdleTimeout: "10s"})

	if base.Port != 9090 || base.Host != "0.0.0.0" {
		t.Errorf("addr: got %s", base.Addr())
	}
	if base.IdleTimeout != "10s" || base.WriteTimeout != "3m" {
		t.Errorf("timeouts: idle %s write %s", base.IdleTimeout, base.WriteTimeout)
	}
}
