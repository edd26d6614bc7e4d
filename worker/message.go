package worker

import "fmt"

// FormatElapsed renders whole seconds as "Xm Ys".
func FormatElapsed(elapsed int) string {
	return fmt.Sprintf("%dm %ds", elapsed/60, elapsed%60)
}

// GameOverMessage is the text shown to the player when the game ends.
func GameOverMessage(score, elapsed int) string {
	return fmt.Sprintf("Game Over! Your score: %d. Time survived: %d minutes %d seconds.",
		score, elapsed/60, elapsed%60)
}
