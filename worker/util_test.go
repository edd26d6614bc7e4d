package worker

import (
	"testing"
	"time"

	"github.com/neonsnake/engine/rules"
	"github.com/stretchr/testify/require"
)

// fixedSource always draws n-1, parking food in the bottom right cell unless
// a test places it explicitly.
type fixedSource struct{}

func (fixedSource) Intn(n int) int { return n - 1 }

// fakeClock returns t and then moves it forward by step.
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) now() time.Time {
	t := c.t
	c.t = c.t.Add(c.step)
	return t
}

func testConfig() rules.Config {
	cfg := rules.DefaultConfig()
	cfg.TickInterval = time.Millisecond
	return cfg
}

func newState(t *testing.T, opts ...rules.StateOption) *rules.GameState {
	s, err := rules.NewGameState(testConfig(), fixedSource{}, opts...)
	require.NoError(t, err)
	return s
}

// collidingState turns into its own body as soon as it moves down.
func collidingState(t *testing.T) *rules.GameState {
	return newState(t,
		rules.WithSnake(
			rules.Position{X: 100, Y: 100},
			rules.Position{X: 80, Y: 100},
			rules.Position{X: 80, Y: 120},
			rules.Position{X: 100, Y: 120},
			rules.Position{X: 120, Y: 120},
		),
		rules.WithDirection(rules.Right),
		rules.WithFood(rules.Position{X: 0, Y: 0}),
	)
}
