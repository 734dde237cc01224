// Package render draws the scenario onto a core.Screen. It implements
// game.Sink by mapping the logical scene onto terminal cells: positions are
// scaled, alpha picks a glyph, and RGB picks the nearest palette color.
package render

import (
	"github.com/vovakirdan/jezrium/internal/core"
	"github.com/vovakirdan/jezrium/internal/particles"
)

type paletteEntry struct {
	color   core.Color
	r, g, b int
}

// palette lists the terminal colors particles may be drawn in, with the
// RGB value the terminal is expected to show for each.
var palette = []paletteEntry{
	{core.ColorRed, 205, 0, 0},
	{core.ColorGreen, 0, 205, 0},
	{core.ColorYellow, 205, 205, 0},
	{core.ColorBlue, 0, 0, 238},
	{core.ColorMagenta, 205, 0, 205},
	{core.ColorCyan, 0, 205, 205},
	{core.ColorWhite, 229, 229, 229},
	{core.ColorBrightRed, 255, 0, 0},
	{core.ColorBrightGreen, 0, 255, 0},
	{core.ColorBrightYellow, 255, 255, 0},
	{core.ColorBrightBlue, 92, 92, 255},
	{core.ColorBrightMagenta, 255, 0, 255},
	{core.ColorBrightCyan, 0, 255, 255},
	{core.ColorBrightWhite, 255, 255, 255},
	{core.ColorOrange, 255, 135, 0},
	{core.ColorGray, 138, 138, 138},
	{core.ColorPurple, 154, 65, 232},
	{core.ColorPink, 241, 133, 207},
}

// nearestColor returns the palette color closest to c.
func nearestColor(c particles.RGBA) core.Color {
	best := core.ColorDefault
	bestDist := -1
	for _, p := range palette {
		dr := int(c.R) - p.r
		dg := int(c.G) - p.g
		db := int(c.B) - p.b
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best = p.color
			bestDist = d
		}
	}
	return best
}

// Alpha below this is not drawn at all.
const minVisibleAlpha = 0.08

// dotGlyph picks a glyph for a small dot of the given opacity.
func dotGlyph(alpha float64) rune {
	switch {
	case alpha < 0.3:
		return '·'
	case alpha < 0.6:
		return '∙'
	case alpha < 0.85:
		return '•'
	default:
		return '●'
	}
}

// starGlyph picks a glyph for a star of the given opacity and radius.
func starGlyph(alpha, radius float64) rune {
	if radius > 4 {
		return '✦'
	}
	switch {
	case alpha < 0.35:
		return '.'
	case alpha < 0.7:
		return '+'
	default:
		return '*'
	}
}

// shadeGlyph picks a block shade for a filled area of the given opacity.
func shadeGlyph(alpha float64) rune {
	switch {
	case alpha < 0.3:
		return '░'
	case alpha < 0.6:
		return '▒'
	case alpha < 0.85:
		return '▓'
	default:
		return '█'
	}
}
