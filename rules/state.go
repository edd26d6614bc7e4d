package rules

import "github.com/pkg/errors"

var (
	// ErrNoFoodSource is returned by NewGameState for a nil FoodSource.
	ErrNoFoodSource = errors.New("rules: food source is required")
	// ErrInvalidPosition is the cause of errors for option positions that are
	// off the board or off the grid.
	ErrInvalidPosition = errors.New("rules: invalid position")
)

// GameState owns the snake, its direction, the food and the score of a
// single game. It is not safe for concurrent use; the game loop is its only
// mutator.
type GameState struct {
	cfg       Config
	src       FoodSource
	snake     []Position
	direction Direction
	food      Position
	score     int
}

// StateOption customises a new GameState.
type StateOption func(*GameState)

// WithSnake replaces the initial single segment snake. The head is the
// first position. An empty body is ignored. NewGameState rejects segments
// that are not grid aligned cells of the board.
func WithSnake(body ...Position) StateOption {
	return func(s *GameState) {
		if len(body) == 0 {
			return
		}
		s.snake = append([]Position(nil), body...)
	}
}

// WithDirection sets the initial direction.
func WithDirection(d Direction) StateOption {
	return func(s *GameState) { s.direction = d }
}

// WithFood places the initial food instead of drawing it from the source.
func WithFood(p Position) StateOption {
	return func(s *GameState) { s.food = p }
}

// NewGameState validates cfg and returns a fresh game: a single segment
// snake at the board centre, no direction, food drawn from src. src must not
// be nil.
func NewGameState(cfg Config, src FoodSource, opts ...StateOption) (*GameState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, ErrNoFoodSource
	}
	s := &GameState{
		cfg:   cfg,
		src:   src,
		snake: []Position{cfg.Start()},
	}
	s.RegenerateFood()
	for _, opt := range opts {
		opt(s)
	}
	for i, p := range s.snake {
		if !cfg.Contains(p) {
			return nil, errors.Wrapf(ErrInvalidPosition, "snake segment %d at %v", i, p)
		}
	}
	if !cfg.Contains(s.food) {
		return nil, errors.Wrapf(ErrInvalidPosition, "food at %v", s.food)
	}
	return s, nil
}

// Config returns the board configuration.
func (s *GameState) Config() Config { return s.cfg }

// Snake returns a copy of the body, head first.
func (s *GameState) Snake() []Position {
	return append([]Position(nil), s.snake...)
}

// Head returns the first segment.
func (s *GameState) Head() Position { return s.snake[0] }

// Food returns the current food position.
func (s *GameState) Food() Position { return s.food }

// Score returns the amount of food eaten.
func (s *GameState) Score() int { return s.score }

// Direction returns the direction used by the next Advance.
func (s *GameState) Direction() Direction { return s.direction }

// SetDirection changes the direction of travel. Requests that reverse the
// current direction, or that are not unit steps, are ignored. It reports
// whether the direction was accepted.
func (s *GameState) SetDirection(d Direction) bool {
	if !d.IsUnit() {
		return false
	}
	if !s.direction.IsIdle() && d == s.direction.Opposite() {
		return false
	}
	s.direction = d
	return true
}

// Advance moves the snake one cell, wrapping around the board edges. When
// the new head lands on the food the snake keeps its tail, the score goes up
// and new food is drawn. It reports whether food was eaten. An idle snake
// does not move.
func (s *GameState) Advance() bool {
	if s.direction.IsIdle() {
		return false
	}
	h := s.Head()
	head := Position{
		X: wrap(h.X+s.direction.X*s.cfg.CellSize, s.cfg.Width),
		Y: wrap(h.Y+s.direction.Y*s.cfg.CellSize, s.cfg.Height),
	}
	s.snake = append([]Position{head}, s.snake...)

	if head.Equal(s.food) {
		s.score++
		s.RegenerateFood()
		return true
	}
	s.snake = s.snake[:len(s.snake)-1]
	return false
}

// RegenerateFood draws a new grid aligned food position. Cells occupied by
// the snake are not excluded.
func (s *GameState) RegenerateFood() {
	s.food = Position{
		X: randomCoordinate(s.src, s.cfg.Width, s.cfg.CellSize),
		Y: randomCoordinate(s.src, s.cfg.Height, s.cfg.CellSize),
	}
}

// Frame returns a snapshot of the state for renderers. Turn and Elapsed are
// left for the caller to fill.
func (s *GameState) Frame() Frame {
	return Frame{
		Snake:     s.Snake(),
		Food:      s.food,
		Score:     s.score,
		Direction: s.direction,
	}
}
