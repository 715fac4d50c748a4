// Package contract defines the structured response shapes expected from the
// generative backend, validates raw payloads against them, and publishes the
// matching response schemas sent with each request.
package contract

import (
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/JaimeStill/drinkchain/pkg/formatting"
)

// ErrUnparseable indicates a payload that is not JSON or misses a required field.
var ErrUnparseable = errors.New("unparseable response")

type violations struct {
	hard []string
	soft []string
}

func (v *violations) missing(path string) {
	v.hard = append(v.hard, path+" missing")
}

func (v *violations) invalid(path string, err error) {
	v.hard = append(v.hard, path+": "+err.Error())
}

func (v *violations) warn(msg string) {
	v.soft = append(v.soft, msg)
}

func (v *violations) err() error {
	if len(v.hard) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnparseable, strings.Join(v.hard, "; "))
}

func requireString(p *string, path string, v *violations) string {
	if p == nil {
		v.missing(path)
		return ""
	}
	return *p
}

type wireSource struct {
	Type    *string  `json:"type"`
	Name    *string  `json:"name"`
	Factors []string `json:"factors"`
}

func (w *wireSource) build(path string, v *violations) (DataSource, bool) {
	if w == nil {
		v.missing(path)
		return DataSource{}, false
	}

	typ := requireString(w.Type, path+".type", v)
	name := requireString(w.Name, path+".name", v)
	if w.Type == nil {
		return DataSource{}, false
	}

	kind, err := ParseSourceKind(typ)
	if err != nil {
		v.invalid(path+".type", err)
		return DataSource{}, false
	}

	switch kind {
	case SourceWeb:
		return Web(name), true
	case SourceDB:
		return Database(name), true
	default:
		if len(w.Factors) == 0 {
			v.warn(path + ": AI source without factors")
		}
		return Inference(name, w.Factors...), true
	}
}

type wireTrendItem struct {
	ID          *string     `json:"id"`
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	GrowthRate  *string     `json:"growthRate"`
	Category    *string     `json:"category"`
	ImageURL    *string     `json:"imageUrl"`
	Source      *wireSource `json:"source"`
}

type wireTrends struct {
	MarketAnalysis      *string          `json:"marketAnalysis"`
	StrategicConclusion *string          `json:"strategicConclusion"`
	Source              *wireSource      `json:"source"`
	Items               *[]wireTrendItem `json:"items"`
}

type wireListing struct {
	ID           *string `json:"id"`
	CompanyName  *string `json:"companyName"`
	Product      *string `json:"product"`
	Price        *string `json:"price"`
	Location     *string `json:"location"`
	Type         *string `json:"type"`
	Verified     *bool   `json:"verified"`
	ValidityDays *int    `json:"validityDays"`
}

// ParseTrends validates a raw trend payload. Any missing required field or
// unknown enumeration value rejects the whole payload with ErrUnparseable.
// AI sources without factors are accepted and reported in Warnings.
func ParseTrends(raw string) (TrendAnalysis, error) {
	data, err := formatting.Extract(raw)
	if err != nil {
		return TrendAnalysis{}, fmt.Errorf("%w: %w", ErrUnparseable, err)
	}

	var w wireTrends
	if err := json.Unmarshal(data, &w); err != nil {
		return TrendAnalysis{}, fmt.Errorf("%w: %w", ErrUnparseable, err)
	}

	var v violations
	result := TrendAnalysis{
		MarketAnalysis:      requireString(w.MarketAnalysis, "marketAnalysis", &v),
		StrategicConclusion: requireString(w.StrategicConclusion, "strategicConclusion", &v),
	}
	result.Source, _ = w.Source.build("source", &v)

	if w.Items == nil {
		v.missing("items")
	} else {
		result.Items = make([]TrendItem, 0, len(*w.Items))
		for i, item := range *w.Items {
			result.Items = append(result.Items, buildTrendItem(item, fmt.Sprintf("items[%d]", i), &v))
		}
	}

	if err := v.err(); err != nil {
		return TrendAnalysis{}, err
	}

	result.Warnings = v.soft
	return result, nil
}

func buildTrendItem(w wireTrendItem, path string, v *violations) TrendItem {
	item := TrendItem{
		ID:          requireString(w.ID, path+".id", v),
		Title:       requireString(w.Title, path+".title", v),
		Description: requireString(w.Description, path+".description", v),
		GrowthRate:  requireString(w.GrowthRate, path+".growthRate", v),
		Category:    requireString(w.Category, path+".category", v),
	}
	if w.ImageURL != nil {
		item.ImageURL = *w.ImageURL
	}
	item.Source, _ = w.Source.build(path+".source", v)
	return item
}

// ParseSupply validates a raw supply payload: a JSON array of listings, each
// carrying every field except the timestamps.
func ParseSupply(raw string) ([]Listing, error) {
	data, err := formatting.Extract(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnparseable, err)
	}

	var w []wireListing
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnparseable, err)
	}
	if w == nil {
		return nil, fmt.Errorf("%w: listing array missing", ErrUnparseable)
	}

	var v violations
	listings := make([]Listing, 0, len(w))
	for i, item := range w {
		listings = append(listings, buildListing(item, fmt.Sprintf("[%d]", i), &v))
	}

	if err := v.err(); err != nil {
		return nil, err
	}
	return listings, nil
}

func buildListing(w wireListing, path string, v *violations) Listing {
	l := Listing{
		ID:          requireString(w.ID, path+".id", v),
		CompanyName: requireString(w.CompanyName, path+".companyName", v),
		Product:     requireString(w.Product, path+".product", v),
		Price:       requireString(w.Price, path+".price", v),
		Location:    requireString(w.Location, path+".location", v),
	}

	if w.Type == nil {
		v.missing(path + ".type")
	} else if t, err := ParseListingType(*w.Type); err != nil {
		v.invalid(path+".type", err)
	} else {
		l.Type = t
	}

	if w.Verified == nil {
		v.missing(path + ".verified")
	} else {
		l.Verified = *w.Verified
	}

	if w.ValidityDays != nil {
		l.ValidityDays = *w.ValidityDays
	}

	return l
}
