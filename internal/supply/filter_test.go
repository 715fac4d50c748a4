package supply_test

import (
	"errors"
	"testing"
	"time"

	"github.com/JaimeStill/drinkchain/internal/contract"
	"github.com/JaimeStill/drinkchain/internal/normalize"
	"github.com/JaimeStill/drinkchain/internal/supply"
)

var now = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

func item(id string, typ contract.ListingType, expires time.Time) contract.SupplyItem {
	return contract.SupplyItem{
		ID:        id,
		Type:      typ,
		CreatedAt: now.Add(-normalize.Day),
		ExpiresAt: expires,
	}
}

func TestVisible(t *testing.T) {
	items := []contract.SupplyItem{
		item("expired", contract.ListingSupply, now.Add(-time.Second)),
		item("boundary", contract.ListingDemand, now),
		item("supply", contract.ListingSupply, now.Add(3*normalize.Day)),
		item("demand", contract.ListingDemand, now.Add(time.Hour)),
	}

	tests := []struct {
		name   string
		filter supply.TypeFilter
		want   []string
	}{
		{"all", supply.FilterAll, []string{"boundary", "supply", "demand"}},
		{"supply", supply.FilterSupply, []string{"supply"}},
		{"demand", supply.FilterDemand, []string{"boundary", "demand"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := supply.Visible(items, now, tt.filter)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d entries, want %d", len(got), len(tt.want))
			}
			for i, e := range got {
				if e.ID != tt.want[i] {
					t.Errorf("entry %d = %s, want %s", i, e.ID, tt.want[i])
				}
			}
		})
	}
}

func TestRemainingDays(t *testing.T) {
	tests := []struct {
		name    string
		expires time.Time
		want    int
	}{
		{"exact days", now.Add(3 * normalize.Day), 3},
		{"partial rounds up", now.Add(2*normalize.Day + time.Minute), 3},
		{"under a day", now.Add(time.Hour), 1},
		{"at expiry", now, 0},
		{"past expiry", now.Add(-normalize.Day), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := supply.RemainingDays(item("x", contract.ListingSupply, tt.expires), now)
			if got != tt.want {
				t.Errorf("RemainingDays() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseTypeFilter(t *testing.T) {
	tests := []struct {
		in   string
		want supply.TypeFilter
	}{
		{"", supply.FilterAll},
		{"all", supply.FilterAll},
		{" supply ", supply.FilterSupply},
		{"DEMAND", supply.FilterDemand},
	}

	for _, tt := range tests {
		got, err := supply.ParseTypeFilter(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseTypeFilter(%q) = %s, %v; want %s", tt.in, got, err, tt.want)
		}
	}

	if _, err := supply.ParseTypeFilter("RENT"); !errors.Is(err, supply.ErrInvalidFilter) {
		t.Errorf("error = %v, want ErrInvalidFilter", err)
	}
}
