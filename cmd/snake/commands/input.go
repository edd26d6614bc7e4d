package commands

import (
	"github.com/neonsnake/engine/rules"
	termbox "github.com/nsf/termbox-go"
)

var keyMoves = map[termbox.Key]rules.Move{
	termbox.KeyArrowUp:    rules.MoveUp,
	termbox.KeyArrowDown:  rules.MoveDown,
	termbox.KeyArrowLeft:  rules.MoveLeft,
	termbox.KeyArrowRight: rules.MoveRight,
}

var runeMoves = map[rune]rules.Move{
	'w': rules.MoveUp,
	'k': rules.MoveUp,
	's': rules.MoveDown,
	'j': rules.MoveDown,
	'a': rules.MoveLeft,
	'h': rules.MoveLeft,
	'd': rules.MoveRight,
	'l': rules.MoveRight,
}

// keyMove maps a key event onto a direction request.
func keyMove(ev termbox.Event) (rules.Move, bool) {
	if ev.Type != termbox.EventKey {
		return "", false
	}
	if ev.Ch == 0 {
		m, ok := keyMoves[ev.Key]
		return m, ok
	}
	m, ok := runeMoves[ev.Ch]
	return m, ok
}

func quitKey(ev termbox.Event) bool {
	if ev.Type == termbox.EventInterrupt {
		return true
	}
	if ev.Type != termbox.EventKey {
		return false
	}
	return ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q'
}

func restartKey(ev termbox.Event) bool {
	return ev.Type == termbox.EventKey && (ev.Ch == 'r' || ev.Ch == 'R')
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}
