package api

import (
	"fmt"

	"github.com/JaimeStill/drinkchain/internal/config"
	"github.com/JaimeStill/drinkchain/internal/infrastructure"
	"github.com/JaimeStill/drinkchain/internal/normalize"
	"github.com/JaimeStill/drinkchain/internal/synthesis"
)

const meterName = "github.com/JaimeStill/drinkchain"

// Runtime extends Infrastructure with the synthesis pipeline shared by domain systems.
type Runtime struct {
	*infrastructure.Infrastructure
	Synthesis  synthesis.Client
	Normalizer *normalize.Normalizer
}

// NewRuntime creates an API runtime with a module-scoped logger.
// Synthesis runs offline when no API key is configured.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) (*Runtime, error) {
	logger := infra.Logger.With("module", "api")

	client, err := synthesis.NewGenAI(
		infra.Lifecycle.Context(),
		&cfg.Synthesis,
		infra.Telemetry.Meter(meterName),
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("synthesis init failed: %w", err)
	}

	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    logger,
			Database:  infra.Database,
			Storage:   infra.Storage,
			Telemetry: infra.Telemetry,
		},
		Synthesis:  client,
		Normalizer: normalize.New(),
	}, nil
}
