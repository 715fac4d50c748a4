package strategies

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/JaimeStill/drinkchain/pkg/storage"
)

// StorageKey is the document key under which saved strategies are persisted.
const StorageKey = "drinkchain_strategies"

// Store holds saved custom strategies in insertion order and writes the whole
// collection through to storage on every mutation. Storage failures are logged
// and never surface to callers; the in-memory collection stays authoritative.
type Store struct {
	mu      sync.RWMutex
	items   []CustomStrategy
	storage storage.System
	logger  *slog.Logger
}

// NewStore creates an empty Store backed by st. It logs through logger as
// given, so callers pass a logger already scoped to their system.
func NewStore(st storage.System, logger *slog.Logger) *Store {
	return &Store{
		storage: st,
		logger:  logger,
	}
}

// Load replaces the in-memory collection with the persisted one.
// A missing or unreadable payload yields an empty collection.
// Entries without an id or a primary factor are dropped.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil

	data, err := s.storage.Read(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("strategies unavailable, starting empty", "error", err)
		}
		return
	}

	var raw []CustomStrategy
	if err := json.Unmarshal(data, &raw); err != nil {
		s.logger.Warn("corrupt strategies payload, starting empty", "error", err)
		return
	}

	for _, c := range raw {
		if c.ID == "" {
			continue
		}
		factors, err := normalizeFactors(c.Factors)
		if err != nil {
			continue
		}
		c.Factors = factors
		s.items = append(s.items, c)
	}

	s.logger.Info("strategies loaded", "count", len(s.items))
}

// Create validates and appends a new strategy, then persists the collection.
// Factors are trimmed and padded to FactorSlots entries.
func (s *Store) Create(ctx context.Context, name string, factors []string) (CustomStrategy, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CustomStrategy{}, ErrNameRequired
	}

	factors, err := normalizeFactors(factors)
	if err != nil {
		return CustomStrategy{}, err
	}

	c := CustomStrategy{
		ID:      uuid.NewString(),
		Name:    name,
		Factors: factors,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, c)
	s.persist(ctx)

	return clone(c), nil
}

// Delete removes the strategy with id and persists the collection.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.items, func(c CustomStrategy) bool { return c.ID == id })
	if i < 0 {
		return ErrNotFound
	}

	s.items = slices.Delete(s.items, i, i+1)
	s.persist(ctx)

	return nil
}

// List returns a copy of the saved strategies in insertion order.
func (s *Store) List() []CustomStrategy {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]CustomStrategy, len(s.items))
	for i, c := range s.items {
		out[i] = clone(c)
	}
	return out
}

// Find returns the strategy with id.
func (s *Store) Find(id string) (CustomStrategy, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.items {
		if c.ID == id {
			return clone(c), true
		}
	}
	return CustomStrategy{}, false
}

// persist must be called with mu held.
func (s *Store) persist(ctx context.Context) {
	items := s.items
	if items == nil {
		items = []CustomStrategy{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		s.logger.Error("encode strategies failed", "error", err)
		return
	}

	if err := s.storage.Write(ctx, StorageKey, data); err != nil {
		s.logger.Error("persist strategies failed", "error", err, "count", len(items))
	}
}

func normalizeFactors(factors []string) ([]string, error) {
	if len(factors) > FactorSlots {
		return nil, ErrTooManyFactors
	}

	out := make([]string, FactorSlots)
	for i, f := range factors {
		out[i] = strings.TrimSpace(f)
	}

	if out[0] == "" {
		return nil, ErrPrimaryFactorRequired
	}
	return out, nil
}

func clone(c CustomStrategy) CustomStrategy {
	c.Factors = slices.Clone(c.Factors)
	return c
}
