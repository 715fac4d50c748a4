// Package trends is the market-trend view: it synthesizes an analysis under
// the active strategy lens and holds the latest accepted result.
package trends

import (
	"context"
	"log/slog"
	"sync"

	"github.com/JaimeStill/drinkchain/internal/contract"
	"github.com/JaimeStill/drinkchain/internal/normalize"
	"github.com/JaimeStill/drinkchain/internal/synthesis"
	"github.com/JaimeStill/drinkchain/pkg/generation"
)

// Lens supplies the directive of the active strategy selection.
type Lens interface {
	Directive() string
}

// Recovery returns the well-formed analysis shown when synthesis fails.
func Recovery() contract.TrendAnalysis {
	return contract.TrendAnalysis{
		MarketAnalysis:      "暂时无法获取市场分析。",
		StrategicConclusion: "请稍后重试。",
		Source:              contract.Database("System Recovery"),
		Items:               []contract.TrendItem{},
	}
}

// Result is a refreshed analysis with the directive it was synthesized under.
// Stale is set when a newer refresh was issued while this one was in flight.
type Result struct {
	Directive string                 `json:"directive"`
	Analysis  contract.TrendAnalysis `json:"analysis"`
	Recovered bool                   `json:"recovered"`
	Stale     bool                   `json:"stale,omitempty"`
}

// System is the trend view.
type System interface {
	Handler() *Handler

	// Refresh synthesizes an analysis under the current lens. It never fails:
	// backend or contract failures yield Recovery(). The result becomes the
	// current analysis only if no newer refresh was issued meanwhile.
	Refresh(ctx context.Context) Result
	// Current returns the latest accepted result, if any.
	Current() (Result, bool)
}

type system struct {
	client     synthesis.Client
	lens       Lens
	normalizer *normalize.Normalizer
	logger     *slog.Logger
	gen        generation.Counter

	mu      sync.RWMutex
	current *Result
}

// New creates the trend view.
func New(client synthesis.Client, lens Lens, normalizer *normalize.Normalizer, logger *slog.Logger) System {
	return &system{
		client:     client,
		lens:       lens,
		normalizer: normalizer,
		logger:     logger.With("system", "trends"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) Refresh(ctx context.Context) Result {
	token := s.gen.Next()
	directive := s.lens.Directive()

	result := Result{Directive: directive}

	analysis, err := s.synthesize(ctx, directive)
	if err != nil {
		s.logger.Warn("trend synthesis failed, using recovery", "error", err)
		result.Analysis = Recovery()
		result.Recovered = true
	} else {
		result.Analysis = analysis
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.gen.Current(token) {
		s.logger.Info("discarding superseded trend result", "token", token, "latest", s.gen.Latest())
		result.Stale = true
		return result
	}

	s.current = &result
	return result
}

func (s *system) Current() (Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return Result{}, false
	}
	return *s.current, true
}

func (s *system) synthesize(ctx context.Context, directive string) (contract.TrendAnalysis, error) {
	raw, err := s.client.SynthesizeTrends(ctx, directive)
	if err != nil {
		return contract.TrendAnalysis{}, err
	}

	analysis, err := contract.ParseTrends(raw)
	if err != nil {
		return contract.TrendAnalysis{}, err
	}

	for _, w := range analysis.Warnings {
		s.logger.Warn("trend contract downgrade", "warning", w)
	}

	return s.normalizer.Trends(analysis), nil
}
