package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		move Move
		ok   bool
	}{
		{"up", MoveUp, true},
		{"DOWN", MoveDown, true},
		{" left ", MoveLeft, true},
		{"Right", MoveRight, true},
		{"sideways", "", false},
		{"", "", false},
	}
	for _, test := range tests {
		m, ok := ParseMove(test.in)
		require.Equal(t, test.ok, ok, test.in)
		require.Equal(t, test.move, m, test.in)
	}
}

func TestMoveDirection(t *testing.T) {
	require.Equal(t, Direction{X: 0, Y: -1}, MoveUp.Direction())
	require.Equal(t, Direction{X: 0, Y: 1}, MoveDown.Direction())
	require.Equal(t, Direction{X: -1, Y: 0}, MoveLeft.Direction())
	require.Equal(t, Direction{X: 1, Y: 0}, MoveRight.Direction())
	require.Equal(t, Idle, Move("nope").Direction())
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	s := newTestState(t, &sequenceSource{})

	require.True(t, s.SetDirection(Right))
	require.False(t, s.SetDirection(Left), "reversal was accepted")
	require.Equal(t, Right, s.Direction())

	require.True(t, s.SetDirection(Up))
	require.False(t, s.SetDirection(Down))
	require.Equal(t, Up, s.Direction())
}

func TestSetDirectionFromIdle(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		s := newTestState(t, &sequenceSource{})
		require.True(t, s.SetDirection(d), d.String())
		require.Equal(t, d, s.Direction())
	}
}

func TestSetDirectionRejectsNonUnit(t *testing.T) {
	s := newTestState(t, &sequenceSource{})
	require.False(t, s.SetDirection(Direction{X: 1, Y: 1}))
	require.False(t, s.SetDirection(Idle))
	require.Equal(t, Idle, s.Direction())

	require.True(t, s.SetDirection(Left))
	require.False(t, s.SetDirection(Idle))
	require.Equal(t, Left, s.Direction())
}

func TestSetDirectionSameIsAccepted(t *testing.T) {
	s := newTestState(t, &sequenceSource{})
	require.True(t, s.SetDirection(Down))
	require.True(t, s.SetDirection(Down))
	require.Equal(t, Down, s.Direction())
}
