package rules

import (
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is the cause of every error returned by Config.Validate.
var ErrInvalidConfig = errors.New("rules: invalid config")

// Config is the board geometry and tick cadence of a game. It is fixed for
// the lifetime of a GameState.
type Config struct {
	Width        int
	Height       int
	CellSize     int
	TickInterval time.Duration
}

// DefaultConfig returns a 400x400 board with 20 unit cells ticking every
// 100ms.
func DefaultConfig() Config {
	return Config{
		Width:        400,
		Height:       400,
		CellSize:     20,
		TickInterval: 100 * time.Millisecond,
	}
}

// Validate makes sure the wrap arithmetic is well defined for the config.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "board must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "cell size must be positive, got %d", c.CellSize)
	}
	if c.Width%c.CellSize != 0 || c.Height%c.CellSize != 0 {
		return errors.Wrapf(ErrInvalidConfig, "cell size %d does not divide board %dx%d", c.CellSize, c.Width, c.Height)
	}
	if c.TickInterval <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "tick interval must be positive, got %v", c.TickInterval)
	}
	return nil
}

// Columns is the number of cells across the board.
func (c Config) Columns() int { return c.Width / c.CellSize }

// Rows is the number of cells down the board.
func (c Config) Rows() int { return c.Height / c.CellSize }

// Start is the spawn position of the snake, the board centre snapped down to
// the grid.
func (c Config) Start() Position {
	return Position{
		X: (c.Columns() / 2) * c.CellSize,
		Y: (c.Rows() / 2) * c.CellSize,
	}
}

// Contains reports whether p is a grid aligned cell inside the board.
func (c Config) Contains(p Position) bool {
	return p.X >= 0 && p.X < c.Width && p.Y >= 0 && p.Y < c.Height &&
		p.X%c.CellSize == 0 && p.Y%c.CellSize == 0
}
