package rules

// Frame is an immutable snapshot of a game handed to renderers.
type Frame struct {
	Turn      int        `json:"turn"`
	Elapsed   int        `json:"elapsed"`
	Snake     []Position `json:"snake"`
	Food      Position   `json:"food"`
	Score     int        `json:"score"`
	Direction Direction  `json:"direction"`
}

// Head returns the first segment of the snake, or false for an empty frame.
func (f Frame) Head() (Position, bool) {
	if len(f.Snake) == 0 {
		return Position{}, false
	}
	return f.Snake[0], true
}
