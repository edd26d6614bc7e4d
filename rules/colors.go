package rules

var neonColors = []string{
	"#00ff00",
	"#ff00ff",
	"#00ffff",
	"#ff0000",
	"#ffff00",
	"#ff7f00",
}

var glowColors = map[Direction]string{
	Left:  "#ff0000",
	Up:    "#00ffff",
	Right: "#ffff00",
	Down:  "#ff7f00",
}

// Palette cycles through the neon colors used to highlight the board each
// time the score goes up. The zero value uses the default colors.
type Palette struct {
	colors []string
	index  int
}

// NewPalette returns a palette over colors, or the neon defaults when colors
// is empty.
func NewPalette(colors ...string) *Palette {
	if len(colors) == 0 {
		colors = neonColors
	}
	return &Palette{colors: colors}
}

// Next returns the current color and moves to the next one, wrapping around.
func (p *Palette) Next() string {
	if len(p.colors) == 0 {
		p.colors = neonColors
	}
	current := p.colors[p.index]
	p.index = (p.index + 1) % len(p.colors)
	return current
}

// GlowColor is the highlight color for a direction of travel. Idle has no
// glow and returns "".
func GlowColor(d Direction) string {
	return glowColors[d]
}
