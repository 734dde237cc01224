package render

import (
	"fmt"
	"math"

	"github.com/vovakirdan/jezrium/internal/core"
	"github.com/vovakirdan/jezrium/internal/game"
	"github.com/vovakirdan/jezrium/internal/table"
)

// Axis labels on each scale, with their normalized heights.
var (
	linearTicks = []float64{0, 250, 500, 750, 1000}
	logTicks    = []float64{1, 10, 100, 1000}
)

const labelWidth = 5

// DrawChartFrame draws one chart into its box. The linear chart goes on
// top, the logarithmic one below it.
func (t *TermSink) DrawChartFrame(f game.ChartFrame) {
	box := t.layout.Linear
	title := " Marginal utility: linear "
	ticks := linearTicks
	norm := func(v float64) float64 { return v / table.MaxUtility }
	if f.Mode == table.Log {
		box = t.layout.Log
		title = " Marginal utility: log "
		ticks = logTicks
		norm = func(v float64) float64 { return math.Log10(v) / math.Log10(table.MaxUtility) }
	}
	if box.W < 4 || box.H < 4 {
		return
	}

	frameColor := core.ColorGray
	if f.Highlight {
		frameColor = core.ColorPink
		title = "◆" + title + "◆"
	}
	t.dst.DrawBoxColor(box, frameColor)
	t.dst.DrawTextColor(box.X+2, box.Y, title, frameColor)

	inner := box.Inset(1)
	plot := core.NewRect(inner.X+labelWidth, inner.Y, inner.W-labelWidth-1, inner.H-1)
	if plot.W < 2 || plot.H < 2 {
		return
	}

	toCell := func(p table.Point) (int, int) {
		x := plot.X + int(math.Round(p.X*float64(plot.W-1)))
		y := plot.Y + int(math.Round((1-p.Y)*float64(plot.H-1)))
		return x, y
	}

	// Grid and axis labels.
	for _, v := range ticks {
		_, y := toCell(table.Point{Y: norm(v)})
		for x := plot.X; x < plot.Right(); x++ {
			t.dst.SetCell(x, y, '·', core.ColorDarkGray)
		}
		label := fmt.Sprintf("%*s", labelWidth-1, fmt.Sprintf("%g", v))
		t.dst.DrawTextColor(inner.X, y, label, core.ColorWhite)
	}
	for i := 0; i <= table.LastIndex; i++ {
		x, _ := toCell(table.Point{X: float64(i) / table.LastIndex})
		for y := plot.Y; y < plot.Bottom(); y++ {
			if t.dst.Get(x, y) == ' ' {
				t.dst.SetCell(x, y, '·', core.ColorDarkGray)
			}
		}
		t.dst.SetCell(x, plot.Bottom(), rune('0'+i), core.ColorWhite)
	}

	// Revealed line, then the segment being drawn, then the dots on top.
	for i := 1; i < len(f.Points); i++ {
		x0, y0 := toCell(f.Points[i-1])
		x1, y1 := toCell(f.Points[i])
		t.dst.DrawLine(x0, y0, x1, y1, '•', core.ColorPurple)
	}
	if f.Pending != nil {
		s := f.Pending
		head := table.Point{
			X: s.From.X + (s.To.X-s.From.X)*s.Progress,
			Y: s.From.Y + (s.To.Y-s.From.Y)*s.Progress,
		}
		x0, y0 := toCell(s.From)
		x1, y1 := toCell(head)
		t.dst.DrawLine(x0, y0, x1, y1, '•', core.ColorPurple)
	}
	for _, p := range f.Points {
		x, y := toCell(p)
		t.dst.SetCell(x, y, '●', core.ColorPurple)
	}
	if f.Pending != nil {
		x, y := toCell(f.Pending.To)
		t.dst.SetCell(x, y, dotGlyph(f.Pending.Progress), core.ColorPurple)
	}
}
