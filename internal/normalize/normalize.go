// Package normalize enriches validated synthesis payloads with the fields the
// backend is not trusted to produce: illustrative imagery and listing timestamps.
package normalize

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/JaimeStill/drinkchain/internal/contract"
)

// Listing validity bounds used when the backend states no validity period.
const (
	MinValidityDays = 3
	MaxValidityDays = 13
)

// Day is the validity unit for listings.
const Day = 24 * time.Hour

const imageURLPattern = "https://picsum.photos/400/300?random=%d"

// Normalizer assigns imagery and timestamps. Clock and random source are
// injectable so tests can pin both.
type Normalizer struct {
	now  func() time.Time
	mu   sync.Mutex
	rand *rand.Rand
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) { n.now = now }
}

// WithRand replaces the random source used for fallback validity.
func WithRand(r *rand.Rand) Option {
	return func(n *Normalizer) { n.rand = r }
}

// New creates a Normalizer using the wall clock and a randomly seeded source.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		now:  time.Now,
		rand: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// ImageURL returns the placeholder image for the item at ordinal position i.
func ImageURL(i int) string {
	return fmt.Sprintf(imageURLPattern, i+10)
}

// Trends assigns each item a placeholder image keyed by its position.
// The input is not modified.
func (n *Normalizer) Trends(result contract.TrendAnalysis) contract.TrendAnalysis {
	items := make([]contract.TrendItem, len(result.Items))
	for i, item := range result.Items {
		item.ImageURL = ImageURL(i)
		items[i] = item
	}
	result.Items = items
	return result
}

// Supply stamps listings with the synthesis time. A backend ValidityDays in
// [MinValidityDays, MaxValidityDays] sets the expiry; anything else, stated
// or not, is replaced by a draw from that range.
func (n *Normalizer) Supply(listings []contract.Listing) []contract.SupplyItem {
	now := n.now()
	items := make([]contract.SupplyItem, 0, len(listings))
	for _, l := range listings {
		days := l.ValidityDays
		if days < MinValidityDays || days > MaxValidityDays {
			days = n.validityDays()
		}
		items = append(items, Stamp(l, now, days))
	}
	return items
}

func (n *Normalizer) validityDays() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return MinValidityDays + n.rand.IntN(MaxValidityDays-MinValidityDays+1)
}

// Stamp converts a listing into a SupplyItem created at t and valid for days.
// Days below one are raised to one so ExpiresAt stays after CreatedAt.
func Stamp(l contract.Listing, t time.Time, days int) contract.SupplyItem {
	days = max(days, 1)
	return contract.SupplyItem{
		ID:          l.ID,
		Type:        l.Type,
		Product:     l.Product,
		CompanyName: l.CompanyName,
		Price:       l.Price,
		Location:    l.Location,
		Verified:    l.Verified,
		CreatedAt:   t,
		ExpiresAt:   t.Add(time.Duration(days) * Day),
	}
}
