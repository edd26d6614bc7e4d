package rules

// GameStatus is the state of a game loop.
type GameStatus string

const (
	// GameStatusRunning represents a game that is still ticking
	GameStatusRunning GameStatus = "running"
	// GameStatusOver represents a game that ended with a self collision
	GameStatusOver GameStatus = "over"
)
