package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsTerminalSingleSegment(t *testing.T) {
	for _, p := range []Position{{X: 0, Y: 0}, {X: 200, Y: 200}, {X: 380, Y: 380}} {
		s := newTestState(t, &sequenceSource{}, WithSnake(p))
		require.False(t, s.IsTerminal(), p.String())
	}
}

func TestIsTerminalSelfCollision(t *testing.T) {
	s := newTestState(t, &sequenceSource{}, WithSnake(
		Position{X: 100, Y: 100},
		Position{X: 120, Y: 100},
		Position{X: 120, Y: 120},
		Position{X: 100, Y: 120},
		Position{X: 100, Y: 100},
	))
	require.True(t, s.IsTerminal())
}

func TestIsTerminalOnlyChecksHead(t *testing.T) {
	// duplicate segments behind the head are not a collision
	s := newTestState(t, &sequenceSource{}, WithSnake(
		Position{X: 60, Y: 100},
		Position{X: 100, Y: 100},
		Position{X: 100, Y: 100},
	))
	require.False(t, s.IsTerminal())
}

func TestIsTerminalAfterTurningIntoBody(t *testing.T) {
	s := newTestState(t, &sequenceSource{},
		WithSnake(
			Position{X: 100, Y: 100},
			Position{X: 80, Y: 100},
			Position{X: 80, Y: 120},
			Position{X: 100, Y: 120},
			Position{X: 120, Y: 120},
		),
		WithDirection(Right),
		WithFood(Position{X: 0, Y: 0}),
	)
	require.True(t, s.SetDirection(Down))
	s.Advance()
	require.Equal(t, Position{X: 100, Y: 120}, s.Head())
	require.True(t, s.IsTerminal())
}
