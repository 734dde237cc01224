package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/jezrium/internal/core"
	"github.com/vovakirdan/jezrium/internal/game"
)

// DrawOverlayHUD draws the status row: threat, crystals, shot counter and
// the fire control.
func (t *TermSink) DrawOverlayHUD(h game.HUD) {
	r := t.layout.HUD
	for x := r.X; x < r.Right(); x++ {
		t.dst.SetCell(x, r.Y, ' ', core.ColorDefault)
	}

	x := r.X + 1
	put := func(s string, c core.Color) {
		t.dst.DrawTextColor(x, r.Y, s, c)
		x += len([]rune(s))
	}

	threatColor := core.ColorBrightRed
	switch {
	case h.ThreatPercent <= 25:
		threatColor = core.ColorBrightGreen
	case h.ThreatPercent <= 50:
		threatColor = core.ColorBrightYellow
	}
	put("THREAT ", core.ColorWhite)
	put(fmt.Sprintf("%3.0f%%", h.ThreatPercent), threatColor)

	put("   JEZRIUM ", core.ColorWhite)
	put(strings.Repeat("◆", h.Resource), core.ColorPurple)
	put(strings.Repeat("◇", core.Max(0, h.MaxResource-h.Resource)), core.ColorDarkGray)

	put(fmt.Sprintf("   SHOT %d/%d", h.Shot, h.MaxResource), core.ColorWhite)

	if h.FireReady {
		put("   [ FIRE ]", core.ColorBrightMagenta)
	} else if h.Phase == game.PhaseNormal {
		put("   [ .... ]", core.ColorGray)
	}

	phase := h.Phase.String()
	t.dst.DrawTextColor(r.Right()-len(phase)-1, r.Y, phase, core.ColorGray)
}
