// Package telemetry provides OpenTelemetry meter provider setup with lifecycle coordination.
package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/JaimeStill/drinkchain/pkg/lifecycle"
)

// System exposes meters and flushes exported metrics on shutdown.
type System interface {
	// Meter returns a named meter. A disabled system returns the global no-op meter.
	Meter(name string, opts ...metric.MeterOption) metric.Meter
	// Start registers a shutdown hook that flushes and stops the exporter.
	Start(lc *lifecycle.Coordinator) error
}

type provider struct {
	mp     *sdkmetric.MeterProvider
	cfg    *Config
	logger *slog.Logger
}

// New creates a telemetry system. When cfg.Enabled is false no exporter is
// created and meters resolve to the global provider.
func New(ctx context.Context, cfg *Config, logger *slog.Logger) (System, error) {
	p := &provider{
		cfg:    cfg,
		logger: logger.With("system", "telemetry"),
	}

	if !cfg.Enabled {
		return p, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", cfg.ServiceName),
			attribute.String("service.version", cfg.ServiceVersion),
			attribute.String("environment", strings.ToLower(cfg.Environment)),
		),
		resource.WithProcessRuntimeName(),
		resource.WithProcessRuntimeVersion(),
	)
	if err != nil {
		return nil, fmt.Errorf("create telemetry resource: %w", err)
	}

	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(stripScheme(cfg.Endpoint)),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create metric exporter: %w", err)
	}

	p.mp = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter,
			sdkmetric.WithInterval(cfg.IntervalDuration()),
		)),
	)
	otel.SetMeterProvider(p.mp)

	return p, nil
}

// NewWithReader creates an enabled telemetry system over a caller-supplied
// reader, typically sdkmetric.NewManualReader in tests.
func NewWithReader(reader sdkmetric.Reader, logger *slog.Logger) System {
	return &provider{
		mp:     sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
		cfg:    &Config{Enabled: true},
		logger: logger.With("system", "telemetry"),
	}
}

func (p *provider) Meter(name string, opts ...metric.MeterOption) metric.Meter {
	if p.mp == nil {
		return otel.Meter(name, opts...)
	}
	return p.mp.Meter(name, opts...)
}

func (p *provider) Start(lc *lifecycle.Coordinator) error {
	if p.mp == nil {
		p.logger.Info("telemetry disabled")
		return nil
	}

	p.logger.Info("telemetry enabled", "endpoint", p.cfg.Endpoint)

	lc.OnShutdown(func() {
		<-lc.Context().Done()

		ctx, cancel := context.WithTimeout(context.Background(), p.cfg.ShutdownTimeoutDuration())
		defer cancel()

		if err := p.mp.Shutdown(ctx); err != nil {
			p.logger.Error("telemetry shutdown failed", "error", err)
			return
		}
		p.logger.Info("telemetry flushed")
	})

	return nil
}

func stripScheme(endpoint string) string {
	endpoint = strings.TrimPrefix(endpoint, "http://")
	return strings.TrimPrefix(endpoint, "https://")
}
