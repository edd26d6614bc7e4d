package commands

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/neonsnake/engine/rules"
	"github.com/neonsnake/engine/worker"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	foodColor    = termbox.ColorRed

	// each board cell is drawn two terminal columns wide
	cellColumns = 2
	left        = 2
	top         = 2
	food        = '🍎'
)

var neonAttributes = map[string]termbox.Attribute{
	"#00ff00": termbox.ColorGreen,
	"#ff00ff": termbox.ColorMagenta,
	"#00ffff": termbox.ColorCyan,
	"#ff0000": termbox.ColorRed,
	"#ffff00": termbox.ColorYellow,
	"#ff7f00": termbox.ColorYellow | termbox.AttrBold,
}

// colorAttribute maps a palette color onto the closest terminal color.
func colorAttribute(hex string) termbox.Attribute {
	if a, ok := neonAttributes[hex]; ok {
		return a
	}
	return defaultColor
}

// screen draws a game with termbox. It implements worker.Sink.
type screen struct {
	cfg       rules.Config
	palette   *rules.Palette
	border    termbox.Attribute
	score     int
	direction rules.Direction
}

func newScreen(cfg rules.Config) *screen {
	return &screen{
		cfg:     cfg,
		palette: rules.NewPalette(),
		border:  defaultColor,
	}
}

// Render clears and redraws the board. The frame is flushed by Tick.
func (s *screen) Render(frame rules.Frame) {
	s.updateBorder(frame)
	_ = termbox.Clear(defaultColor, bgColor)

	s.renderBoard()
	renderFood(s.cfg, frame.Food)
	renderSnake(s.cfg, frame.Snake)
}

// Tick prints the score and timer and flushes the frame.
func (s *screen) Tick(score, elapsed int) {
	y := top + s.cfg.Rows() + 2
	tbprint(left, y, defaultColor, defaultColor, fmt.Sprintf("Score: %d", score))
	tbprint(left+s.cfg.Columns()*cellColumns-timerWidth(elapsed), y, defaultColor, defaultColor,
		"Time: "+worker.FormatElapsed(elapsed))
	_ = termbox.Flush()
}

// GameOver prints the final message over the last frame.
func (s *screen) GameOver(score, elapsed int) {
	y := top + s.cfg.Rows() + 2
	fill(left, y, s.cfg.Columns()*cellColumns, 1, termbox.Cell{Ch: ' '})
	tbprint(left, y, termbox.ColorRed|termbox.AttrBold, defaultColor, worker.GameOverMessage(score, elapsed))
	tbprint(left, y+1, defaultColor, defaultColor, "Press r to play again, Esc to quit")
	_ = termbox.Flush()
}

// updateBorder tints the border with the glow of a new direction and cycles
// the neon palette whenever the score goes up.
func (s *screen) updateBorder(frame rules.Frame) {
	if frame.Direction != s.direction {
		s.direction = frame.Direction
		if glow := rules.GlowColor(frame.Direction); glow != "" {
			s.border = colorAttribute(glow)
		}
	}
	if frame.Score > s.score {
		s.score = frame.Score
		s.border = colorAttribute(s.palette.Next())
	}
}

func (s *screen) renderBoard() {
	w := s.cfg.Columns() * cellColumns
	bottom := top + s.cfg.Rows() + 1
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', s.border, bgColor)
		termbox.SetCell(left+w, i, '│', s.border, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', s.border, bgColor)
	termbox.SetCell(left-1, bottom, '└', s.border, bgColor)
	termbox.SetCell(left+w, top, '┐', s.border, bgColor)
	termbox.SetCell(left+w, bottom, '┘', s.border, bgColor)

	fill(left, top, w, 1, termbox.Cell{Ch: '─', Fg: s.border})
	fill(left, bottom, w, 1, termbox.Cell{Ch: '─', Fg: s.border})
}

func renderSnake(cfg rules.Config, body []rules.Position) {
	for i, b := range body {
		color := snakeColor
		if i == 0 {
			color = snakeColor | termbox.AttrBold
		}
		x, y := cellOrigin(cfg, b)
		fill(x, y, cellColumns, 1, termbox.Cell{Ch: ' ', Fg: color, Bg: color})
	}
}

func renderFood(cfg rules.Config, p rules.Position) {
	x, y := cellOrigin(cfg, p)
	if runewidth.RuneWidth(food) == cellColumns {
		termbox.SetCell(x, y, food, foodColor, bgColor)
		return
	}
	fill(x, y, cellColumns, 1, termbox.Cell{Ch: '●', Fg: foodColor, Bg: bgColor})
}

// cellOrigin converts a board position into the terminal cell of its left
// column.
func cellOrigin(cfg rules.Config, p rules.Position) (int, int) {
	return left + (p.X/cfg.CellSize)*cellColumns, top + 1 + p.Y/cfg.CellSize
}

func timerWidth(elapsed int) int {
	return runewidth.StringWidth("Time: " + worker.FormatElapsed(elapsed))
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
