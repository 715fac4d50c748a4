package synthesis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/JaimeStill/drinkchain/internal/contract"
	"github.com/JaimeStill/drinkchain/internal/prompts"
	"github.com/JaimeStill/drinkchain/pkg/formatting"
)

const meterName = "github.com/JaimeStill/drinkchain/internal/synthesis"

// Generator is the subset of the genai models service the client uses.
// *genai.Models satisfies it.
type Generator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

type gemini struct {
	gen     Generator
	cfg     *Config
	limiter *rate.Limiter
	logger  *slog.Logger

	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// NewGenAI creates a Gemini-backed client from configuration. When no API key
// is configured it returns the Offline client.
func NewGenAI(ctx context.Context, cfg *Config, meter metric.Meter, logger *slog.Logger) (Client, error) {
	if cfg.APIKey == "" {
		logger.Warn("no synthesis api key configured; synthesis runs offline")
		return Offline(), nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return New(client.Models, cfg, meter, logger)
}

// New creates a client over an arbitrary Generator.
func New(gen Generator, cfg *Config, meter metric.Meter, logger *slog.Logger) (Client, error) {
	requests, err := meter.Int64Counter(
		"synthesis.requests",
		metric.WithDescription("Synthesis requests by kind and outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("create request counter: %w", err)
	}

	duration, err := meter.Float64Histogram(
		"synthesis.duration",
		metric.WithDescription("Synthesis request duration"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), max(cfg.Burst, 1))
	}

	return &gemini{
		gen:      gen,
		cfg:      cfg,
		limiter:  limiter,
		logger:   logger.With("system", "synthesis", "model", cfg.Model),
		requests: requests,
		duration: duration,
	}, nil
}

func (g *gemini) SynthesizeTrends(ctx context.Context, directive string) (string, error) {
	task := prompts.TrendTask(g.cfg.Period, g.cfg.TrendItems, directive)
	contents := []*genai.Content{genai.NewContentFromText(task, genai.RoleUser)}
	config := g.jsonConfig(prompts.RequestTrends, contract.TrendSchema())

	return g.call(ctx, prompts.RequestTrends, contents, config, decodeJSON)
}

func (g *gemini) SynthesizeSupply(ctx context.Context, category, directive string) (string, error) {
	task := prompts.SupplyTask(category, g.cfg.SupplyListings, directive)
	contents := []*genai.Content{genai.NewContentFromText(task, genai.RoleUser)}
	config := g.jsonConfig(prompts.RequestSupply, contract.SupplySchema())

	return g.call(ctx, prompts.RequestSupply, contents, config, decodeJSON)
}

func (g *gemini) Converse(ctx context.Context, transcript []Turn, message string) (string, error) {
	contents := make([]*genai.Content, 0, len(transcript)+1)
	for _, turn := range transcript {
		contents = append(contents, genai.NewContentFromText(turn.Text, genai.Role(turn.Role)))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(prompts.Instructions(prompts.RequestChat), genai.RoleUser),
	}

	return g.call(ctx, prompts.RequestChat, contents, config, decodeText)
}

func (g *gemini) jsonConfig(req prompts.Request, schema *genai.Schema) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType:  "application/json",
		ResponseSchema:    schema,
		SystemInstruction: genai.NewContentFromText(prompts.Instructions(req), genai.RoleUser),
	}
}

func (g *gemini) call(
	ctx context.Context,
	req prompts.Request,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
	decode func(string) (string, error),
) (string, error) {
	start := time.Now()
	payload, err := g.generate(ctx, req, contents, config, decode)
	elapsed := time.Since(start)

	outcome := "ok"
	switch {
	case errors.Is(err, ErrUnreachable):
		outcome = "unreachable"
	case err != nil:
		outcome = "unparseable"
	}

	g.record(ctx, req, outcome, elapsed)

	if err != nil {
		g.logger.WarnContext(ctx, "synthesis failed", "request", req, "outcome", outcome, "error", err, "duration", elapsed)
		return "", err
	}

	g.logger.InfoContext(ctx, "synthesis complete", "request", req, "duration", elapsed)
	return payload, nil
}

func (g *gemini) generate(
	ctx context.Context,
	req prompts.Request,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
	decode func(string) (string, error),
) (string, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: rate limit wait: %w", ErrUnreachable, err)
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, g.cfg.TimeoutDuration())
	defer cancel()

	resp, err := g.gen.GenerateContent(callCtx, g.cfg.Model, contents, config)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrUnreachable, req, err)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: %s: empty response", contract.ErrUnparseable, req)
	}

	payload, err := decode(resp.Text())
	if err != nil {
		return "", fmt.Errorf("%s: %w", req, err)
	}
	return payload, nil
}

func decodeJSON(text string) (string, error) {
	data, err := formatting.Extract(text)
	if err != nil {
		return "", fmt.Errorf("%w: %w", contract.ErrUnparseable, err)
	}
	return string(data), nil
}

func decodeText(text string) (string, error) {
	reply := strings.TrimSpace(text)
	if reply == "" {
		return "", fmt.Errorf("%w: empty reply", contract.ErrUnparseable)
	}
	return reply, nil
}

func (g *gemini) record(ctx context.Context, req prompts.Request, outcome string, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("kind", string(req)),
		attribute.String("outcome", outcome),
	)
	g.requests.Add(ctx, 1, attrs)
	g.duration.Record(ctx, elapsed.Seconds(), attrs)
}
