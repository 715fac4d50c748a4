package api

import (
	"github.com/JaimeStill/drinkchain/internal/chat"
	"github.com/JaimeStill/drinkchain/internal/strategies"
	"github.com/JaimeStill/drinkchain/internal/supply"
	"github.com/JaimeStill/drinkchain/internal/trends"
	"github.com/JaimeStill/drinkchain/pkg/lifecycle"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Strategies strategies.System
	Trends     trends.System
	Supply     supply.System
	Chat       chat.System
}

// NewDomain creates all domain systems from the API runtime.
// Trend and supply views read the directive from the strategy system.
func NewDomain(runtime *Runtime) *Domain {
	strategiesSystem := strategies.New(runtime.Storage, runtime.Logger)

	return &Domain{
		Strategies: strategiesSystem,
		Trends: trends.New(
			runtime.Synthesis,
			strategiesSystem,
			runtime.Normalizer,
			runtime.Logger,
		),
		Supply: supply.New(
			runtime.Synthesis,
			strategiesSystem,
			runtime.Normalizer,
			runtime.Logger,
		),
		Chat: chat.New(runtime.Synthesis, runtime.Logger),
	}
}

// Start starts domain systems that hold persisted state.
// Infrastructure must be started first.
func (d *Domain) Start(lc *lifecycle.Coordinator) error {
	return d.Strategies.Start(lc)
}
