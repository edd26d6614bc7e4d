package worker

import "github.com/neonsnake/engine/rules"

// Autopilot steers a snake toward the food along the shortest wrapped path,
// avoiding reversals and, when it can, its own body.
type Autopilot struct {
	cfg rules.Config
}

// NewAutopilot returns an autopilot for a board.
func NewAutopilot(cfg rules.Config) *Autopilot {
	return &Autopilot{cfg: cfg}
}

// Next picks the move to request after frame.
func (a *Autopilot) Next(frame rules.Frame) rules.Move {
	head, ok := frame.Head()
	if !ok {
		return rules.MoveRight
	}
	candidates := a.preferred(head, frame.Food)
	for _, m := range []rules.Move{rules.MoveUp, rules.MoveRight, rules.MoveDown, rules.MoveLeft} {
		candidates = appendMissing(candidates, m)
	}

	var fallback rules.Move
	for _, m := range candidates {
		d := m.Direction()
		if !frame.Direction.IsIdle() && d == frame.Direction.Opposite() {
			continue
		}
		if fallback == "" {
			fallback = m
		}
		if !a.blocked(frame.Snake, a.step(head, d)) {
			return m
		}
	}
	return fallback
}

// preferred returns the moves that shorten the distance to the food.
func (a *Autopilot) preferred(from, to rules.Position) []rules.Move {
	dx := shortest((to.X-from.X)/a.cfg.CellSize, a.cfg.Columns())
	dy := shortest((to.Y-from.Y)/a.cfg.CellSize, a.cfg.Rows())

	moves := []rules.Move{}
	switch {
	case dx > 0:
		moves = append(moves, rules.MoveRight)
	case dx < 0:
		moves = append(moves, rules.MoveLeft)
	}
	switch {
	case dy > 0:
		moves = append(moves, rules.MoveDown)
	case dy < 0:
		moves = append(moves, rules.MoveUp)
	}
	return moves
}

func (a *Autopilot) step(p rules.Position, d rules.Direction) rules.Position {
	w, h := a.cfg.Width, a.cfg.Height
	return rules.Position{
		X: ((p.X+d.X*a.cfg.CellSize)%w + w) % w,
		Y: ((p.Y+d.Y*a.cfg.CellSize)%h + h) % h,
	}
}

// blocked ignores the tail, which moves out of the way on the same tick.
func (a *Autopilot) blocked(body []rules.Position, p rules.Position) bool {
	if len(body) < 2 {
		return false
	}
	for _, b := range body[:len(body)-1] {
		if b.Equal(p) {
			return true
		}
	}
	return false
}

// shortest folds a cell delta onto the shorter way around a ring of n cells.
func shortest(d, n int) int {
	if d > n/2 {
		return d - n
	}
	if d < -n/2 {
		return d + n
	}
	return d
}

func appendMissing(moves []rules.Move, m rules.Move) []rules.Move {
	for _, existing := range moves {
		if existing == m {
			return moves
		}
	}
	return append(moves, m)
}
