// Package strategies manages user-defined prioritization strategies and the
// single active selection that shapes every synthesis directive.
package strategies

import (
	"github.com/JaimeStill/drinkchain/internal/prompts"
)

// FactorSlots is the number of prioritized factors a custom strategy holds.
const FactorSlots = 3

// CustomStrategy is a named, persisted list of prioritized factors.
// Factors always has FactorSlots entries; Factors[0] is never blank.
type CustomStrategy struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Factors []string `json:"factors"`
}

// CreateCommand carries the data needed to save a new custom strategy.
type CreateCommand struct {
	Name    string   `json:"name"`
	Factors []string `json:"factors"`
}

// SelectCommand is a selection event raised by the presentation layer.
// ID takes precedence when it names a saved strategy. A CUSTOM selection
// without a saved ID becomes ephemeral, using Context or, when Context is
// blank, the rendered Factors.
type SelectCommand struct {
	Type    prompts.Strategy `json:"type"`
	Context string           `json:"context,omitempty"`
	Factors []string         `json:"factors,omitempty"`
	ID      string           `json:"id,omitempty"`
}

// Active is the resolved active selection: the lens and directive it yields.
type Active struct {
	Selection Selection        `json:"selection"`
	Strategy  prompts.Strategy `json:"strategy"`
	Context   string           `json:"context,omitempty"`
	Name      string           `json:"name,omitempty"`
	Directive string           `json:"directive"`
}
