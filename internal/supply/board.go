package supply

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/drinkchain/internal/contract"
	"github.com/JaimeStill/drinkchain/internal/normalize"
	"github.com/JaimeStill/drinkchain/internal/prompts"
	"github.com/JaimeStill/drinkchain/internal/synthesis"
	"github.com/JaimeStill/drinkchain/pkg/generation"
)

// Validity bounds for published listings. DefaultValidityDays applies when
// a listing states none.
const (
	DefaultValidityDays = 7
	MaxValidityDays     = 365
)

// Lens supplies the directive of the active strategy selection.
type Lens interface {
	Directive() string
}

// PublishCommand carries a user-authored listing.
type PublishCommand struct {
	Type         contract.ListingType `json:"type"`
	Product      string               `json:"product"`
	CompanyName  string               `json:"companyName"`
	Price        string               `json:"price"`
	Location     string               `json:"location"`
	ValidityDays int                  `json:"validityDays,omitempty"`
}

// Batch is the outcome of one refresh.
// Stale is set when a newer refresh superseded this one; its items were not added to the board.
type Batch struct {
	Category  string                `json:"category"`
	Directive string                `json:"directive"`
	Items     []contract.SupplyItem `json:"items"`
	Recovered bool                  `json:"recovered"`
	Stale     bool                  `json:"stale,omitempty"`
}

// System is the supply board.
type System interface {
	Handler() *Handler

	// Refresh synthesizes listings for category under the current lens and
	// appends them to the board. Failures yield an empty batch.
	Refresh(ctx context.Context, category string) Batch
	// Publish adds a user listing to the front of the board.
	Publish(cmd PublishCommand) (contract.SupplyItem, error)
	// List returns the visible listings at the current time.
	List(filter TypeFilter) []Entry
}

type board struct {
	client     synthesis.Client
	lens       Lens
	normalizer *normalize.Normalizer
	now        func() time.Time
	logger     *slog.Logger
	gen        generation.Counter

	mu    sync.RWMutex
	items []contract.SupplyItem
}

// New creates an empty supply board.
func New(client synthesis.Client, lens Lens, normalizer *normalize.Normalizer, logger *slog.Logger) System {
	return &board{
		client:     client,
		lens:       lens,
		normalizer: normalizer,
		now:        time.Now,
		logger:     logger.With("system", "supply"),
	}
}

func (b *board) Handler() *Handler {
	return NewHandler(b, b.logger)
}

func (b *board) Refresh(ctx context.Context, category string) Batch {
	category = strings.TrimSpace(category)
	if category == "" {
		category = prompts.DefaultCategory
	}

	token := b.gen.Next()
	batch := Batch{
		Category:  category,
		Directive: b.lens.Directive(),
	}

	items, err := b.synthesize(ctx, category, batch.Directive)
	if err != nil {
		b.logger.Warn("supply synthesis failed, returning empty batch", "category", category, "error", err)
		batch.Items = []contract.SupplyItem{}
		batch.Recovered = true
		return batch
	}
	batch.Items = items

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.gen.Current(token) {
		b.logger.Info("discarding superseded supply batch", "token", token, "latest", b.gen.Latest())
		batch.Stale = true
		return batch
	}

	b.items = append(b.items, items...)
	b.logger.Info("supply batch added", "category", category, "count", len(items))

	return batch
}

func (b *board) Publish(cmd PublishCommand) (contract.SupplyItem, error) {
	if err := cmd.validate(); err != nil {
		return contract.SupplyItem{}, err
	}

	days := cmd.ValidityDays
	if days == 0 {
		days = DefaultValidityDays
	}

	item := normalize.Stamp(contract.Listing{
		ID:          uuid.NewString(),
		Type:        cmd.Type,
		Product:     strings.TrimSpace(cmd.Product),
		CompanyName: strings.TrimSpace(cmd.CompanyName),
		Price:       strings.TrimSpace(cmd.Price),
		Location:    strings.TrimSpace(cmd.Location),
	}, b.now(), days)

	b.mu.Lock()
	b.items = slices.Insert(b.items, 0, item)
	b.mu.Unlock()

	b.logger.Info("listing published", "id", item.ID, "type", item.Type, "validity_days", days)
	return item, nil
}

func (b *board) List(filter TypeFilter) []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Visible(b.items, b.now(), filter)
}

func (b *board) synthesize(ctx context.Context, category, directive string) ([]contract.SupplyItem, error) {
	raw, err := b.client.SynthesizeSupply(ctx, category, directive)
	if err != nil {
		return nil, err
	}

	listings, err := contract.ParseSupply(raw)
	if err != nil {
		return nil, err
	}

	return b.normalizer.Supply(listings), nil
}

func (c PublishCommand) validate() error {
	if _, err := contract.ParseListingType(string(c.Type)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidType, c.Type)
	}

	fields := []struct {
		name, value string
	}{
		{"product", c.Product},
		{"companyName", c.CompanyName},
		{"price", c.Price},
		{"location", c.Location},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrFieldRequired, f.name)
		}
	}

	if c.ValidityDays < 0 || c.ValidityDays > MaxValidityDays {
		return fmt.Errorf("%w: got %d", ErrInvalidValidity, c.ValidityDays)
	}
	return nil
}
