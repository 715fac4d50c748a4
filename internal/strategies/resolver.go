package strategies

import (
	"strings"
	"sync"

	"github.com/JaimeStill/drinkchain/internal/prompts"
)

// Lookup finds saved strategies by id.
type Lookup interface {
	Find(id string) (CustomStrategy, bool)
}

// Resolver tracks the single active selection.
type Resolver struct {
	mu     sync.RWMutex
	active Selection
	lookup Lookup
}

// NewResolver creates a Resolver whose active selection is Builtin(DEFAULT).
func NewResolver(lookup Lookup) *Resolver {
	return &Resolver{
		active: Builtin(prompts.StrategyDefault),
		lookup: lookup,
	}
}

// Select applies a selection event and returns the new active selection.
// An id that names a saved strategy selects it; a CUSTOM event without one
// becomes ephemeral; anything else selects the named built-in strategy.
func (r *Resolver) Select(cmd SelectCommand) Selection {
	var next Selection

	switch {
	case cmd.ID != "" && r.exists(cmd.ID):
		next = Saved(cmd.ID)
	case cmd.Type == prompts.StrategyCustom:
		context := strings.TrimSpace(cmd.Context)
		if context == "" {
			context = prompts.FactorContext(cmd.Factors)
		}
		next = Ephemeral(context)
	default:
		next = Builtin(cmd.Type)
	}

	r.mu.Lock()
	r.active = next
	r.mu.Unlock()

	return next
}

// Promote makes the saved strategy id active.
func (r *Resolver) Promote(id string) Selection {
	next := Saved(id)

	r.mu.Lock()
	r.active = next
	r.mu.Unlock()

	return next
}

// Forget resets the active selection to Builtin(DEFAULT) if it is Saved(id).
// Reports whether a reset happened.
func (r *Resolver) Forget(id string) (Selection, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active.Kind() == KindSaved && r.active.ID() == id {
		r.active = Builtin(prompts.StrategyDefault)
		return r.active, true
	}
	return r.active, false
}

// Active returns the current selection.
func (r *Resolver) Active() Selection {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// Resolve derives the lens for sel. A saved selection whose strategy no
// longer exists resolves to DEFAULT.
func (r *Resolver) Resolve(sel Selection) Active {
	switch sel.Kind() {
	case KindSaved:
		c, ok := r.lookup.Find(sel.ID())
		if !ok {
			return resolved(Builtin(prompts.StrategyDefault), prompts.StrategyDefault, "", "")
		}
		return resolved(sel, prompts.StrategyCustom, prompts.FactorContext(c.Factors), c.Name)
	case KindEphemeral:
		return resolved(sel, prompts.StrategyCustom, sel.Context(), "")
	default:
		return resolved(sel, sel.Strategy(), "", "")
	}
}

func (r *Resolver) exists(id string) bool {
	_, ok := r.lookup.Find(id)
	return ok
}

func resolved(sel Selection, strategy prompts.Strategy, context, name string) Active {
	return Active{
		Selection: sel,
		Strategy:  strategy,
		Context:   context,
		Name:      name,
		Directive: prompts.Directive(strategy, context),
	}
}
