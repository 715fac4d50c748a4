package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JaimeStill/drinkchain/internal/prompts"
	"github.com/JaimeStill/drinkchain/internal/strategies"
	"github.com/JaimeStill/drinkchain/pkg/lifecycle"
	"github.com/JaimeStill/drinkchain/pkg/storage"
)

func newStrategies(t *testing.T) strategies.System {
	t.Helper()
	sys := strategies.New(storage.NewMemory(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	lc := lifecycle.New()
	require.NoError(t, sys.Start(lc))
	t.Cleanup(func() { lc.Shutdown(time.Second) })
	return sys
}

func lensCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "lens"}
	addLensFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestApplyLens(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		strategy prompts.Strategy
		context  string
	}{
		{"no flags keeps default", nil, prompts.StrategyDefault, ""},
		{"fixed strategy", []string{"--strategy", "COST"}, prompts.StrategyCost, ""},
		{"factors alone imply custom", []string{"--factor", "有机", "--factor", "产地"}, prompts.StrategyCustom, "1. 有机, 2. 产地"},
		{"context alone implies custom", []string{"--context", "低糖"}, prompts.StrategyCustom, "低糖"},
		{"explicit custom with factors", []string{"--strategy", "CUSTOM", "--factor", "冷链"}, prompts.StrategyCustom, "1. 冷链"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := newStrategies(t)

			require.NoError(t, applyLens(lensCmd(t, tt.args...), sys))

			active := sys.Active()
			assert.Equal(t, tt.strategy, active.Strategy)
			assert.Equal(t, tt.context, active.Context)
		})
	}
}

func TestApplyLensSavedID(t *testing.T) {
	sys := newStrategies(t)
	saved, _, err := sys.Save(context.Background(), strategies.CreateCommand{Name: "精品", Factors: []string{"有机"}})
	require.NoError(t, err)
	sys.Select(strategies.SelectCommand{Type: prompts.StrategyDefault})

	require.NoError(t, applyLens(lensCmd(t, "--id", saved.ID), sys))

	active := sys.Active()
	assert.Equal(t, prompts.StrategyCustom, active.Strategy)
	assert.Equal(t, "精品", active.Name)
}

func TestApplyLensRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown strategy", []string{"--strategy", "CHEAP"}, prompts.ErrInvalidStrategy},
		{"unknown id", []string{"--id", "missing"}, strategies.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := newStrategies(t)

			err := applyLens(lensCmd(t, tt.args...), sys)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, prompts.StrategyDefault, sys.Active().Strategy)
		})
	}
}
