package strategies

import (
	"context"
	"log/slog"

	"github.com/JaimeStill/drinkchain/internal/prompts"
	"github.com/JaimeStill/drinkchain/pkg/lifecycle"
	"github.com/JaimeStill/drinkchain/pkg/storage"
)

// System manages saved strategies and the active selection.
type System interface {
	Handler() *Handler

	// Start loads persisted strategies. Storage must already be started.
	Start(lc *lifecycle.Coordinator) error

	// List returns saved strategies in insertion order.
	List() []CustomStrategy
	// Find returns a saved strategy. Returns ErrNotFound if absent.
	Find(id string) (CustomStrategy, error)
	// Save creates a strategy and makes it the active selection.
	Save(ctx context.Context, cmd CreateCommand) (CustomStrategy, Active, error)
	// Remove deletes a strategy. If it was active, the selection resets to DEFAULT.
	Remove(ctx context.Context, id string) (Active, error)
	// Select applies a selection event.
	Select(cmd SelectCommand) Active
	// Active returns the resolved active selection.
	Active() Active
	// Directive returns the directive text of the active selection.
	Directive() string
}

type system struct {
	store    *Store
	resolver *Resolver
	logger   *slog.Logger
}

// New creates the strategy system over st. Persisted strategies are read on Start.
func New(st storage.System, logger *slog.Logger) System {
	logger = logger.With("system", "strategies")
	store := NewStore(st, logger)

	return &system{
		store:    store,
		resolver: NewResolver(store),
		logger:   logger,
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) Start(lc *lifecycle.Coordinator) error {
	s.store.Load(lc.Context())
	return nil
}

func (s *system) List() []CustomStrategy {
	return s.store.List()
}

func (s *system) Find(id string) (CustomStrategy, error) {
	c, ok := s.store.Find(id)
	if !ok {
		return CustomStrategy{}, ErrNotFound
	}
	return c, nil
}

func (s *system) Save(ctx context.Context, cmd CreateCommand) (CustomStrategy, Active, error) {
	c, err := s.store.Create(ctx, cmd.Name, cmd.Factors)
	if err != nil {
		return CustomStrategy{}, Active{}, err
	}

	sel := s.resolver.Promote(c.ID)
	s.logger.Info("strategy saved", "id", c.ID, "name", c.Name)

	return c, s.resolver.Resolve(sel), nil
}

func (s *system) Remove(ctx context.Context, id string) (Active, error) {
	if err := s.store.Delete(ctx, id); err != nil {
		return Active{}, err
	}

	sel, reset := s.resolver.Forget(id)
	s.logger.Info("strategy removed", "id", id, "selection_reset", reset)

	return s.resolver.Resolve(sel), nil
}

func (s *system) Select(cmd SelectCommand) Active {
	sel := s.resolver.Select(cmd)
	active := s.resolver.Resolve(sel)
	s.logger.Info("strategy selected", "kind", sel.Kind(), "strategy", active.Strategy)
	return active
}

func (s *system) Active() Active {
	return s.resolver.Resolve(s.resolver.Active())
}

func (s *system) Directive() string {
	return s.Active().Directive
}

// TypeInfo describes a strategy for selection surfaces.
type TypeInfo struct {
	Type      prompts.Strategy `json:"type"`
	System    bool             `json:"system"`
	Directive string           `json:"directive"`
}

// Types lists every strategy with its directive. CUSTOM is rendered with the
// general context.
func Types() []TypeInfo {
	all := prompts.Strategies()
	out := make([]TypeInfo, len(all))
	for i, t := range all {
		out[i] = TypeInfo{
			Type:      t,
			System:    t.System(),
			Directive: prompts.Directive(t, ""),
		}
	}
	return out
}
