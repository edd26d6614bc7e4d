// Package worker provides the actual running of games. It owns the tick loop
// that advances a rules.GameState on a fixed delay, applies queued direction
// requests between ticks and hands every frame to a Sink.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/neonsnake/engine/rules"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// inputBuffer bounds the direction requests queued between two ticks.
const inputBuffer = 16

var (
	// ErrGameOver is returned by Run when the loop already reached game over.
	ErrGameOver = errors.New("worker: game is over")
	// ErrRunning is returned by Run when another Run call owns the loop.
	ErrRunning = errors.New("worker: game is already running")
)

// Result is the final outcome of a game.
type Result struct {
	Score   int
	Elapsed int
	Turns   int
}

// Loop runs a single game to completion.
type Loop struct {
	id       string
	state    *rules.GameState
	sink     Sink
	interval time.Duration
	now      func() time.Time
	inputs   chan rules.Move

	mu      sync.Mutex
	status  rules.GameStatus
	running bool
	turn    int
	start   time.Time
	final   Result
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock replaces time.Now for elapsed time computation.
func WithClock(now func() time.Time) Option {
	return func(l *Loop) { l.now = now }
}

// WithInterval overrides the tick interval of the state's config.
func WithInterval(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithGameID sets the id used in logs. A random one is generated otherwise.
func WithGameID(id string) Option {
	return func(l *Loop) { l.id = id }
}

// NewLoop creates a loop over state that reports to sink. A nil sink
// discards everything.
func NewLoop(state *rules.GameState, sink Sink, opts ...Option) *Loop {
	if sink == nil {
		sink = SinkFuncs{}
	}
	l := &Loop{
		id:       uuid.NewV4().String(),
		state:    state,
		sink:     sink,
		interval: state.Config().TickInterval,
		now:      time.Now,
		inputs:   make(chan rules.Move, inputBuffer),
		status:   rules.GameStatusRunning,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ID returns the game id.
func (l *Loop) ID() string { return l.id }

// Status returns the current game status.
func (l *Loop) Status() rules.GameStatus {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// Turn returns the number of ticks processed so far.
func (l *Loop) Turn() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.turn
}

// RequestDirection queues a direction change. It is safe to call from any
// goroutine. Requests are applied in order right before the next tick; the
// request is dropped when the queue is full or the game is over.
func (l *Loop) RequestDirection(m rules.Move) {
	if l.Status() != rules.GameStatusRunning {
		return
	}
	select {
	case l.inputs <- m:
	default:
		log.WithField("game", l.id).
			WithField("move", m).
			Debug("input queue full, dropping move")
	}
}

// Run ticks the game until the snake collides with itself or ctx is done.
// Each tick is scheduled one interval after the previous tick finished, so
// ticks never overlap. The game over sink is invoked exactly once. Only one
// Run may own the loop at a time; concurrent calls return ErrRunning.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	l.mu.Lock()
	if l.status != rules.GameStatusRunning {
		l.mu.Unlock()
		return l.result(), ErrGameOver
	}
	if l.running {
		l.mu.Unlock()
		return Result{}, ErrRunning
	}
	l.running = true
	l.start = l.now()
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.running = false
		l.mu.Unlock()
	}()

	log.WithFields(log.Fields{
		"game":     l.id,
		"interval": l.interval,
	}).Info("game starting")

	timer := time.NewTimer(l.interval)
	defer timer.Stop()

	for {
		if l.Status() != rules.GameStatusRunning {
			return l.result(), ErrGameOver
		}
		// a sink may cancel ctx during a tick; stop before waiting again
		select {
		case <-ctx.Done():
			return l.cancelled(ctx)
		default:
		}

		select {
		case <-ctx.Done():
			return l.cancelled(ctx)
		case <-timer.C:
		}

		if over := l.tick(); over {
			res := l.result()
			log.WithFields(log.Fields{
				"game":    l.id,
				"turn":    res.Turns,
				"score":   res.Score,
				"elapsed": res.Elapsed,
			}).Info("game over")
			return res, nil
		}
		timer.Reset(l.interval)
	}
}

func (l *Loop) cancelled(ctx context.Context) (Result, error) {
	log.WithField("game", l.id).
		WithField("turn", l.Turn()).
		Info("game cancelled")
	return l.result(), ctx.Err()
}

// tick advances the game once and reports whether it ended.
func (l *Loop) tick() bool {
	l.drainInputs()
	ate := l.state.Advance()

	l.mu.Lock()
	l.turn++
	turn := l.turn
	l.mu.Unlock()

	elapsed := l.elapsed()
	score := l.state.Score()
	if ate {
		log.WithFields(log.Fields{
			"game":  l.id,
			"turn":  turn,
			"score": score,
			"food":  l.state.Food(),
		}).Debug("snake ate")
	}

	if l.state.IsTerminal() {
		l.mu.Lock()
		l.status = rules.GameStatusOver
		l.final = Result{Score: score, Elapsed: elapsed, Turns: turn}
		l.mu.Unlock()
		l.sink.GameOver(score, elapsed)
		return true
	}

	frame := l.state.Frame()
	frame.Turn = turn
	frame.Elapsed = elapsed
	l.sink.Render(frame)
	l.sink.Tick(score, elapsed)
	return false
}

func (l *Loop) drainInputs() {
	for {
		select {
		case m := <-l.inputs:
			if !l.state.SetDirection(m.Direction()) {
				log.WithField("game", l.id).
					WithField("move", m).
					Debug("move rejected")
			}
		default:
			return
		}
	}
}

// elapsed is recomputed from the start time on every call.
func (l *Loop) elapsed() int {
	l.mu.Lock()
	start := l.start
	l.mu.Unlock()
	return int(l.now().Sub(start) / time.Second)
}

func (l *Loop) result() Result {
	l.mu.Lock()
	if l.status == rules.GameStatusOver {
		defer l.mu.Unlock()
		return l.final
	}
	l.mu.Unlock()
	return Result{
		Score:   l.state.Score(),
		Elapsed: l.elapsed(),
		Turns:   l.Turn(),
	}
}
