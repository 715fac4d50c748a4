package contract

import (
	"fmt"
	"slices"

	json "github.com/goccy/go-json"
)

// SourceKind tags the provenance of a data point.
type SourceKind string

// Closed set of source kinds.
const (
	SourceWeb SourceKind = "WEB"
	SourceDB  SourceKind = "DB"
	SourceAI  SourceKind = "AI"
)

var sourceKinds = []SourceKind{SourceWeb, SourceDB, SourceAI}

// ParseSourceKind validates a string as a known source kind.
func ParseSourceKind(s string) (SourceKind, error) {
	k := SourceKind(s)
	if !slices.Contains(sourceKinds, k) {
		return "", fmt.Errorf("source type %q not in WEB|DB|AI", s)
	}
	return k, nil
}

// DataSource records where a data point came from. Influencing factors exist
// only on AI sources; the constructors are the only way to build one, so a
// WEB or DB source carrying factors cannot be represented.
type DataSource struct {
	kind    SourceKind
	name    string
	factors []string
}

// Web returns a source backed by public web data.
func Web(name string) DataSource {
	return DataSource{kind: SourceWeb, name: name}
}

// Database returns a source backed by stored or historical statistics.
func Database(name string) DataSource {
	return DataSource{kind: SourceDB, name: name}
}

// Inference returns a model-inferred source with its key influencing factors.
func Inference(name string, factors ...string) DataSource {
	return DataSource{kind: SourceAI, name: name, factors: slices.Clone(factors)}
}

// Kind returns the source kind. The zero DataSource reports an empty kind.
func (s DataSource) Kind() SourceKind { return s.kind }

// Name returns the source label.
func (s DataSource) Name() string { return s.name }

// Factors returns the influencing factors of an AI source, nil otherwise.
func (s DataSource) Factors() []string { return slices.Clone(s.factors) }

type sourceJSON struct {
	Type    SourceKind `json:"type"`
	Name    string     `json:"name"`
	Factors []string   `json:"factors,omitempty"`
}

// MarshalJSON encodes the source as {"type","name","factors"?}.
func (s DataSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(sourceJSON{Type: s.kind, Name: s.name, Factors: s.factors})
}

// UnmarshalJSON decodes a source. Factors present on WEB or DB sources are
// tolerated and dropped.
func (s *DataSource) UnmarshalJSON(data []byte) error {
	var w wireSource
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	var v violations
	src, _ := w.build("source", &v)
	if err := v.err(); err != nil {
		return err
	}
	*s = src
	return nil
}
