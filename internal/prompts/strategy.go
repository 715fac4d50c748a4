// Package prompts builds the deterministic directive text that encodes a
// strategy lens, and the fixed task templates and system framings sent to the
// generative backend for each request kind.
package prompts

import (
	"slices"

	json "github.com/goccy/go-json"
)

// Strategy is the analytical lens applied to every synthesis request.
type Strategy string

// Closed set of strategies.
const (
	StrategyDefault Strategy = "DEFAULT"
	StrategyCost    Strategy = "COST"
	StrategyUnique  Strategy = "UNIQUE"
	StrategyQuality Strategy = "QUALITY"
	StrategyCustom  Strategy = "CUSTOM"
)

var strategies = []Strategy{
	StrategyDefault,
	StrategyCost,
	StrategyUnique,
	StrategyQuality,
	StrategyCustom,
}

// Strategies returns every valid strategy in display order.
func Strategies() []Strategy {
	return slices.Clone(strategies)
}

// System reports whether s is one of the four built-in lenses.
func (s Strategy) System() bool {
	return s != StrategyCustom && slices.Contains(strategies, s)
}

// UnmarshalJSON validates that the decoded string is a known strategy.
func (s *Strategy) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseStrategy(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseStrategy validates a string as a known strategy.
// Returns ErrInvalidStrategy if the value is not recognized.
func ParseStrategy(s string) (Strategy, error) {
	v := Strategy(s)
	if !slices.Contains(strategies, v) {
		return "", ErrInvalidStrategy
	}
	return v, nil
}
