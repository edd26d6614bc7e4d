package worker

import (
	"github.com/neonsnake/engine/rules"
	log "github.com/sirupsen/logrus"
)

// Sink receives the output of a game loop. Render and Tick are called once
// per live tick, in that order. GameOver is called exactly once when the
// snake collides with itself.
type Sink interface {
	Render(frame rules.Frame)
	Tick(score, elapsed int)
	GameOver(score, elapsed int)
}

// SinkFuncs adapts plain functions to a Sink. Nil functions are skipped.
type SinkFuncs struct {
	RenderFunc   func(rules.Frame)
	TickFunc     func(score, elapsed int)
	GameOverFunc func(score, elapsed int)
}

// Render implements Sink.
func (s SinkFuncs) Render(frame rules.Frame) {
	if s.RenderFunc != nil {
		s.RenderFunc(frame)
	}
}

// Tick implements Sink.
func (s SinkFuncs) Tick(score, elapsed int) {
	if s.TickFunc != nil {
		s.TickFunc(score, elapsed)
	}
}

// GameOver implements Sink.
func (s SinkFuncs) GameOver(score, elapsed int) {
	if s.GameOverFunc != nil {
		s.GameOverFunc(score, elapsed)
	}
}

// MultiSink fans every call out to each sink in order.
type MultiSink []Sink

// Render implements Sink.
func (m MultiSink) Render(frame rules.Frame) {
	for _, s := range m {
		s.Render(frame)
	}
}

// Tick implements Sink.
func (m MultiSink) Tick(score, elapsed int) {
	for _, s := range m {
		s.Tick(score, elapsed)
	}
}

// GameOver implements Sink.
func (m MultiSink) GameOver(score, elapsed int) {
	for _, s := range m {
		s.GameOver(score, elapsed)
	}
}

// LogSink writes ticks and the game over to a logrus entry.
func LogSink(entry *log.Entry) Sink {
	return &logSink{entry: entry}
}

type logSink struct {
	entry *log.Entry
	turn  int
}

func (s *logSink) Render(frame rules.Frame) {
	s.turn = frame.Turn
	head, _ := frame.Head()
	s.entry.WithFields(log.Fields{
		"turn":      frame.Turn,
		"head":      head,
		"length":    len(frame.Snake),
		"direction": frame.Direction,
		"food":      frame.Food,
	}).Debug("frame")
}

func (s *logSink) Tick(score, elapsed int) {
	s.entry.WithFields(log.Fields{
		"turn":    s.turn,
		"score":   score,
		"elapsed": elapsed,
	}).Debug("tick")
}

func (s *logSink) GameOver(score, elapsed int) {
	s.entry.WithFields(log.Fields{
		"score":   score,
		"elapsed": elapsed,
	}).Info(GameOverMessage(score, elapsed))
}
