package render

import (
	"math"

	"github.com/vovakirdan/jezrium/internal/core"
	"github.com/vovakirdan/jezrium/internal/game"
)

// Layout splits the screen into the HUD row, the scene and the two charts.
type Layout struct {
	HUD    core.Rect
	Scene  core.Rect
	Linear core.Rect
	Log    core.Rect
}

// chartMinWidth keeps the charts readable on narrow terminals.
const chartMinWidth = 24

// NewLayout computes the layout for a screen of the given size.
// The charts take about a third of the width on the right.
func NewLayout(w, h int) Layout {
	chartW := core.Max(chartMinWidth, w/3)
	if chartW > w/2 {
		chartW = w / 2
	}
	sceneW := w - chartW
	bodyH := core.Max(0, h-1)
	topH := bodyH / 2

	return Layout{
		HUD:    core.NewRect(0, 0, w, 1),
		Scene:  core.NewRect(0, 1, sceneW, bodyH),
		Linear: core.NewRect(sceneW, 1, chartW, topH),
		Log:    core.NewRect(sceneW, 1+topH, chartW, bodyH-topH),
	}
}

// TermSink implements game.Sink on top of a Screen.
type TermSink struct {
	dst    *core.Screen
	layout Layout
	sceneW float64
	sceneH float64
	phase  game.Phase
}

// NewTermSink creates a sink for a logical scene of sceneW x sceneH units.
func NewTermSink(dst *core.Screen, sceneW, sceneH float64) *TermSink {
	return &TermSink{
		dst:    dst,
		layout: NewLayout(dst.Width(), dst.Height()),
		sceneW: sceneW,
		sceneH: sceneH,
	}
}

// Layout returns the areas the sink draws into.
func (t *TermSink) Layout() Layout {
	return t.layout
}

// Draw clears dst and renders one frame of g onto it.
func Draw(dst *core.Screen, g *game.Game, sceneW, sceneH float64) *TermSink {
	dst.Clear()
	sink := NewTermSink(dst, sceneW, sceneH)
	g.Render(sink)
	return sink
}

// toCell maps a scene position to the screen cell containing it.
func (t *TermSink) toCell(p core.Vec) (int, int) {
	r := t.layout.Scene
	x := r.X + int(math.Floor(p.X/t.sceneW*float64(r.W)))
	y := r.Y + int(math.Floor(p.Y/t.sceneH*float64(r.H)))
	return x, y
}

// toScene maps the center of a screen cell back to scene units.
func (t *TermSink) toScene(x, y int) core.Vec {
	r := t.layout.Scene
	return core.V(
		(float64(x-r.X)+0.5)/float64(r.W)*t.sceneW,
		(float64(y-r.Y)+0.5)/float64(r.H)*t.sceneH,
	)
}

// set writes a cell only if it lies inside the scene area.
func (t *TermSink) set(x, y int, r rune, c core.Color) {
	if t.layout.Scene.Contains(x, y) {
		t.dst.SetCell(x, y, r, c)
	}
}

// cellSpan returns the scene units covered by one cell horizontally and vertically.
func (t *TermSink) cellSpan() (float64, float64) {
	r := t.layout.Scene
	if r.W == 0 || r.H == 0 {
		return t.sceneW, t.sceneH
	}
	return t.sceneW / float64(r.W), t.sceneH / float64(r.H)
}

// disc calls fn for every scene cell whose center lies within radius of c.
// A disc smaller than a cell still covers the cell containing c.
func (t *TermSink) disc(c core.Vec, radius float64, fn func(x, y int, d float64)) {
	cx, cy := t.toCell(c)
	sx, sy := t.cellSpan()
	rx := int(radius/sx) + 1
	ry := int(radius/sy) + 1

	hit := false
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			d := t.toScene(x, y).Sub(c).Len()
			if d <= radius {
				fn(x, y, d)
				hit = true
			}
		}
	}
	if !hit {
		fn(cx, cy, 0)
	}
}
