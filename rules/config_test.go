package rules

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 20, cfg.Columns())
	require.Equal(t, 20, cfg.Rows())
	require.Equal(t, Position{X: 200, Y: 200}, cfg.Start())
	require.Equal(t, 100*time.Millisecond, cfg.TickInterval)
}

func TestConfigValidate(t *testing.T) {
	tests := map[string]Config{
		"ZeroWidth":      {Width: 0, Height: 400, CellSize: 20, TickInterval: time.Millisecond},
		"NegativeHeight": {Width: 400, Height: -20, CellSize: 20, TickInterval: time.Millisecond},
		"ZeroCell":       {Width: 400, Height: 400, CellSize: 0, TickInterval: time.Millisecond},
		"CellWidth":      {Width: 410, Height: 400, CellSize: 20, TickInterval: time.Millisecond},
		"CellHeight":     {Width: 400, Height: 390, CellSize: 20, TickInterval: time.Millisecond},
		"ZeroInterval":   {Width: 400, Height: 400, CellSize: 20},
	}
	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			err := cfg.Validate()
			require.Error(t, err)
			require.Equal(t, ErrInvalidConfig, errors.Cause(err))
		})
	}
}

func TestConfigStartOddGrid(t *testing.T) {
	cfg := Config{Width: 100, Height: 60, CellSize: 20, TickInterval: time.Millisecond}
	require.NoError(t, cfg.Validate())
	require.Equal(t, Position{X: 40, Y: 20}, cfg.Start())
}

func TestRandomFoodSourceIsSeeded(t *testing.T) {
	a, b := NewRandomFoodSource(99), NewRandomFoodSource(99)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Intn(20), b.Intn(20))
	}
}

func TestConfigContains(t *testing.T) {
	cfg := DefaultConfig()
	require.True(t, cfg.Contains(Position{X: 0, Y: 0}))
	require.True(t, cfg.Contains(Position{X: 380, Y: 380}))
	require.False(t, cfg.Contains(Position{X: 400, Y: 0}))
	require.False(t, cfg.Contains(Position{X: 0, Y: -20}))
	require.False(t, cfg.Contains(Position{X: 15, Y: 20}))
}
