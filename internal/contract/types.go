package contract

import (
	"fmt"
	"slices"
	"time"
)

// TrendItem is one predicted drink or ingredient trend.
type TrendItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	GrowthRate  string     `json:"growthRate"`
	Category    string     `json:"category"`
	ImageURL    string     `json:"imageUrl"`
	Source      DataSource `json:"source"`
}

// TrendAnalysis is the trend-query response shape. Warnings lists soft
// contract downgrades accepted during validation.
type TrendAnalysis struct {
	MarketAnalysis      string      `json:"marketAnalysis"`
	StrategicConclusion string      `json:"strategicConclusion"`
	Source              DataSource  `json:"source"`
	Items               []TrendItem `json:"items"`
	Warnings            []string    `json:"warnings,omitempty"`
}

// ListingType distinguishes offers from purchase requests.
type ListingType string

// Closed set of listing types.
const (
	ListingSupply ListingType = "SUPPLY"
	ListingDemand ListingType = "DEMAND"
)

// ParseListingType validates a string as a known listing type.
func ParseListingType(s string) (ListingType, error) {
	t := ListingType(s)
	if !slices.Contains([]ListingType{ListingSupply, ListingDemand}, t) {
		return "", fmt.Errorf("listing type %q not in SUPPLY|DEMAND", s)
	}
	return t, nil
}

// Listing is a validated supply-query record before timestamps are assigned.
// ValidityDays is zero when the backend did not state a validity period.
type Listing struct {
	ID           string
	Type         ListingType
	Product      string
	CompanyName  string
	Price        string
	Location     string
	Verified     bool
	ValidityDays int
}

// SupplyItem is a timestamped listing. ExpiresAt is always after CreatedAt.
type SupplyItem struct {
	ID          string      `json:"id"`
	Type        ListingType `json:"type"`
	Product     string      `json:"product"`
	CompanyName string      `json:"companyName"`
	Price       string      `json:"price"`
	Location    string      `json:"location"`
	Verified    bool        `json:"verified"`
	CreatedAt   time.Time   `json:"createdAt"`
	ExpiresAt   time.Time   `json:"expiresAt"`
}
