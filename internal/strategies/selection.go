package strategies

import (
	json "github.com/goccy/go-json"

	"github.com/JaimeStill/drinkchain/internal/prompts"
)

// SelectionKind discriminates the three selection variants.
type SelectionKind string

// Selection variants.
const (
	KindSystem    SelectionKind = "system"
	KindSaved     SelectionKind = "saved"
	KindEphemeral SelectionKind = "ephemeral"
)

// Selection is exactly one of Builtin(strategy), Saved(id) or Ephemeral(context).
// The zero Selection is Builtin(DEFAULT).
type Selection struct {
	kind     SelectionKind
	strategy prompts.Strategy
	id       string
	context  string
}

// Builtin selects a built-in strategy. CUSTOM or unknown values select DEFAULT.
func Builtin(s prompts.Strategy) Selection {
	if !s.System() {
		s = prompts.StrategyDefault
	}
	return Selection{kind: KindSystem, strategy: s}
}

// Saved selects a persisted custom strategy by id.
func Saved(id string) Selection {
	return Selection{kind: KindSaved, id: id}
}

// Ephemeral selects an unsaved custom context. It is never persisted.
func Ephemeral(context string) Selection {
	return Selection{kind: KindEphemeral, context: context}
}

// Kind returns the selection variant.
func (s Selection) Kind() SelectionKind {
	if s.kind == "" {
		return KindSystem
	}
	return s.kind
}

// Strategy returns the built-in strategy of a Builtin selection and CUSTOM otherwise.
func (s Selection) Strategy() prompts.Strategy {
	switch s.Kind() {
	case KindSystem:
		if s.strategy == "" {
			return prompts.StrategyDefault
		}
		return s.strategy
	default:
		return prompts.StrategyCustom
	}
}

// ID returns the saved strategy id, empty for other variants.
func (s Selection) ID() string { return s.id }

// Context returns the ephemeral context, empty for other variants.
func (s Selection) Context() string { return s.context }

// Is reports whether s and other denote the same selection.
func (s Selection) Is(other Selection) bool {
	return s.Kind() == other.Kind() &&
		s.Strategy() == other.Strategy() &&
		s.id == other.id &&
		s.context == other.context
}

type selectionJSON struct {
	Kind     SelectionKind    `json:"kind"`
	Strategy prompts.Strategy `json:"strategy"`
	ID       string           `json:"id,omitempty"`
	Context  string           `json:"context,omitempty"`
}

// MarshalJSON encodes the variant with its single payload field.
func (s Selection) MarshalJSON() ([]byte, error) {
	return json.Marshal(selectionJSON{
		Kind:     s.Kind(),
		Strategy: s.Strategy(),
		ID:       s.id,
		Context:  s.context,
	})
}
