// Package supply is the supply/demand board: synthesized and user-published
// listings with read-time expiry filtering.
package supply

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/JaimeStill/drinkchain/internal/contract"
	"github.com/JaimeStill/drinkchain/internal/normalize"
)

// TypeFilter narrows visible listings by type.
type TypeFilter string

// Closed set of filters.
const (
	FilterAll    TypeFilter = "ALL"
	FilterSupply TypeFilter = TypeFilter(contract.ListingSupply)
	FilterDemand TypeFilter = TypeFilter(contract.ListingDemand)
)

// ParseTypeFilter validates a filter value. Empty input selects FilterAll.
func ParseTypeFilter(s string) (TypeFilter, error) {
	switch f := TypeFilter(strings.ToUpper(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterSupply, FilterDemand:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFilter, s)
	}
}

// Entry is a visible listing with its remaining validity.
type Entry struct {
	contract.SupplyItem
	RemainingDays int `json:"remainingDays"`
}

// Visible returns the items that have not expired at now and match filter,
// preserving collection order. An item expiring exactly at now is visible.
func Visible(items []contract.SupplyItem, now time.Time, filter TypeFilter) []Entry {
	out := make([]Entry, 0, len(items))
	for _, item := range items {
		if now.After(item.ExpiresAt) {
			continue
		}
		if filter != FilterAll && TypeFilter(item.Type) != filter {
			continue
		}
		out = append(out, Entry{SupplyItem: item, RemainingDays: RemainingDays(item, now)})
	}
	return out
}

// RemainingDays is the number of whole or partial days until item expires,
// never negative.
func RemainingDays(item contract.SupplyItem, now time.Time) int {
	left := item.ExpiresAt.Sub(now)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(float64(left) / float64(normalize.Day)))
}
