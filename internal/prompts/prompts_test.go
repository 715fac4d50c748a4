package prompts_test

import (
	"errors"
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/JaimeStill/drinkchain/internal/prompts"
)

func TestDirective(t *testing.T) {
	tests := []struct {
		name     string
		strategy prompts.Strategy
		context  string
		contains string
	}{
		{"default", prompts.StrategyDefault, "", "全品类"},
		{"cost", prompts.StrategyCost, "ignored", "低成本替代品"},
		{"unique", prompts.StrategyUnique, "", "猎奇口味"},
		{"quality", prompts.StrategyQuality, "", "有机认证"},
		{"custom", prompts.StrategyCustom, "1. 成本, 2. 口感", "1. 成本, 2. 口感"},
		{"custom blank", prompts.StrategyCustom, "   ", prompts.GeneralContext},
		{"unknown falls back", prompts.Strategy("BOGUS"), "", "全品类"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := prompts.Directive(tt.strategy, tt.context)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("Directive() = %q, want substring %q", got, tt.contains)
			}
		})
	}
}

func TestDirectiveDeterministic(t *testing.T) {
	for _, s := range prompts.Strategies() {
		a := prompts.Directive(s, "x")
		b := prompts.Directive(s, "x")
		if a != b {
			t.Errorf("%s: directive not stable: %q vs %q", s, a, b)
		}
	}

	if prompts.Directive(prompts.StrategyCost, "a") != prompts.Directive(prompts.StrategyCost, "b") {
		t.Error("built-in directive must ignore context")
	}
}

func TestFactorContext(t *testing.T) {
	tests := []struct {
		name    string
		factors []string
		want    string
	}{
		{"three", []string{"成本", "口感", "颜值"}, "1. 成本, 2. 口感, 3. 颜值"},
		{"gap renumbers", []string{"成本", "", "颜值"}, "1. 成本, 2. 颜值"},
		{"trims", []string{"  成本 "}, "1. 成本"},
		{"empty", []string{"", " "}, ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := prompts.FactorContext(tt.factors); got != tt.want {
				t.Errorf("FactorContext() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range []string{"DEFAULT", "COST", "UNIQUE", "QUALITY", "CUSTOM"} {
		if _, err := prompts.ParseStrategy(s); err != nil {
			t.Errorf("ParseStrategy(%q) error = %v", s, err)
		}
	}

	for _, s := range []string{"", "cost", "CHEAP"} {
		if _, err := prompts.ParseStrategy(s); !errors.Is(err, prompts.ErrInvalidStrategy) {
			t.Errorf("ParseStrategy(%q) error = %v, want ErrInvalidStrategy", s, err)
		}
	}
}

func TestStrategyUnmarshalJSON(t *testing.T) {
	var s prompts.Strategy
	if err := json.Unmarshal([]byte(`"QUALITY"`), &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if s != prompts.StrategyQuality {
		t.Errorf("got %s, want QUALITY", s)
	}

	if err := json.Unmarshal([]byte(`"LUXURY"`), &s); err == nil {
		t.Error("expected error for unknown strategy")
	}
}

func TestSystem(t *testing.T) {
	if !prompts.StrategyDefault.System() || !prompts.StrategyQuality.System() {
		t.Error("built-in strategies should report System() true")
	}
	if prompts.StrategyCustom.System() || prompts.Strategy("X").System() {
		t.Error("CUSTOM and unknown strategies should report System() false")
	}
}

func TestTasks(t *testing.T) {
	trend := prompts.TrendTask("2024/2025", 4, "DIRECTIVE")
	for _, want := range []string{"2024/2025", "DIRECTIVE", "4个"} {
		if !strings.Contains(trend, want) {
			t.Errorf("TrendTask missing %q", want)
		}
	}

	supply := prompts.SupplyTask(" ", 6, "DIRECTIVE")
	for _, want := range []string{"6条", prompts.DefaultCategory, "DIRECTIVE"} {
		if !strings.Contains(supply, want) {
			t.Errorf("SupplyTask missing %q", want)
		}
	}

	for _, req := range []prompts.Request{prompts.RequestTrends, prompts.RequestSupply, prompts.RequestChat} {
		if prompts.Instructions(req) == "" {
			t.Errorf("Instructions(%s) empty", req)
		}
	}
}
