package rules

import "fmt"

// Position is a cell coordinate on the board in board units. Both axes are
// multiples of the cell size.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Equal checks if 2 positions are the same x,y coordinate
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// wrap folds v into [0, n).
func wrap(v, n int) int {
	return ((v % n) + n) % n
}
