package rules

import "strings"

// Move is a direction request coming from an input device.
type Move string

// Valid moves.
const (
	MoveUp    Move = "up"
	MoveDown  Move = "down"
	MoveLeft  Move = "left"
	MoveRight Move = "right"
)

// Direction is a unit step on the grid, or the zero vector while the snake is
// idle.
type Direction struct {
	X int `json:"x"`
	Y int `json:"y"`
}

var (
	// Idle is the direction before the first move is accepted.
	Idle  = Direction{}
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// ParseMove converts a textual move, case insensitive, into a Move.
func ParseMove(s string) (Move, bool) {
	m := Move(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MoveUp, MoveDown, MoveLeft, MoveRight:
		return m, true
	}
	return "", false
}

// Direction returns the unit vector for the move. Unknown moves map to Idle.
func (m Move) Direction() Direction {
	switch m {
	case MoveUp:
		return Up
	case MoveDown:
		return Down
	case MoveLeft:
		return Left
	case MoveRight:
		return Right
	}
	return Idle
}

// IsIdle reports whether d is the zero vector.
func (d Direction) IsIdle() bool {
	return d == Idle
}

// IsUnit reports whether d is one of the four grid steps.
func (d Direction) IsUnit() bool {
	return d == Up || d == Down || d == Left || d == Right
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return string(MoveUp)
	case Down:
		return string(MoveDown)
	case Left:
		return string(MoveLeft)
	case Right:
		return string(MoveRight)
	}
	return "idle"
}
