package mesh

import "image/color"

var (
	White  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Red    = color.RGBA{R: 0xff, A: 0xff}
	Yellow = color.RGBA{R: 0xff, G: 0xff, A: 0xff}
	Green  = color.RGBA{G: 0xff, A: 0xff}
	Blue   = color.RGBA{B: 0xff, A: 0xff}
)

var palette = [...]color.RGBA{White, Red, Yellow, Green, Blue}

// Palette returns a copy of the colors handed out by a ColorCycler, in order.
func Palette() []color.RGBA {
	out := make([]color.RGBA, len(palette))
	copy(out, palette[:])
	return out
}

// ColorCycler hands out palette colors round-robin. Its position survives
// regenerations; only wraparound brings it back to the first entry.
type ColorCycler struct {
	next int
}

// NewColorCycler returns a cycler positioned on the first palette entry.
func NewColorCycler() *ColorCycler { return &ColorCycler{} }

// Next returns the current color and advances the rotation.
func (c *ColorCycler) Next() color.RGBA {
	col := palette[c.next]
	c.next = (c.next + 1) % len(palette)
	return col
}
