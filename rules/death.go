package rules

// IsTerminal reports whether the head collides with any other segment of the
// body. A single segment snake never collides.
func (s *GameState) IsTerminal() bool {
	return selfCollision(s.snake)
}

func selfCollision(body []Position) bool {
	if len(body) < 2 {
		return false
	}
	head := body[0]
	for _, b := range body[1:] {
		if deathByBodyCollision(head, b) {
			return true
		}
	}
	return false
}

func deathByBodyCollision(head, body Position) bool {
	return head.Equal(body)
}
