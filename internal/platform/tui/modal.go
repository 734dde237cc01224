package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jezrium/internal/core"
	"github.com/vovakirdan/jezrium/internal/game"
)

// Modal layout constants
const (
	modalMaxWidth = 64
	modalMinWidth = 20
	modalPadding  = 2
)

// Modal is the narrator of a terminal session. It holds the message the
// game presented and the choice the player is pointing at.
type Modal struct {
	msg    *game.Message
	cursor int
}

// NewModal creates an empty modal.
func NewModal() *Modal {
	return &Modal{}
}

// PresentMessage shows msg, replacing any message already shown.
func (m *Modal) PresentMessage(msg game.Message) {
	m.msg = &msg
	m.cursor = 0
}

// DismissMessage hides the current message.
func (m *Modal) DismissMessage() {
	m.msg = nil
	m.cursor = 0
}

// Visible reports whether a message is shown.
func (m *Modal) Visible() bool {
	return m.msg != nil
}

// Message returns the shown message.
func (m *Modal) Message() (game.Message, bool) {
	if m.msg == nil {
		return game.Message{}, false
	}
	return *m.msg, true
}

// Cursor returns the index of the highlighted choice.
func (m *Modal) Cursor() int {
	return m.cursor
}

// Next moves the highlight to the next choice, wrapping around.
func (m *Modal) Next() {
	if n := m.choiceCount(); n > 0 {
		m.cursor = (m.cursor + 1) % n
	}
}

// Prev moves the highlight to the previous choice, wrapping around.
func (m *Modal) Prev() {
	if n := m.choiceCount(); n > 0 {
		m.cursor = (m.cursor - 1 + n) % n
	}
}

// Select highlights choice i. Returns false if i is out of range.
func (m *Modal) Select(i int) bool {
	if i < 0 || i >= m.choiceCount() {
		return false
	}
	m.cursor = i
	return true
}

// Selected returns the highlighted choice.
func (m *Modal) Selected() (game.Choice, bool) {
	if m.choiceCount() == 0 {
		return game.Choice{}, false
	}
	return m.msg.Choices[m.cursor], true
}

func (m *Modal) choiceCount() int {
	if m.msg == nil {
		return 0
	}
	return len(m.msg.Choices)
}

// Draw renders the message as a box centered in area.
func (m *Modal) Draw(s *core.Screen, area core.Rect) {
	if m.msg == nil || area.W < modalMinWidth || area.H < 5 {
		return
	}

	boxW := core.Min(modalMaxWidth, area.W-2)
	textW := boxW - 2*modalPadding

	textColor := core.ColorBrightWhite
	if m.msg.Grayscale {
		textColor = core.ColorGray
	}

	lines := wrap(m.msg.Text, textW)
	imageLines := 0
	if m.msg.Image != "" {
		lines = append([]string{"[ " + m.msg.Image + " ]", ""}, lines...)
		imageLines = 2
	}

	choiceLines := m.choiceLines(textW)
	boxH := len(lines) + len(choiceLines) + 3
	if boxH > area.H {
		// Keep the choices; clip the text from the bottom
		keep := core.Max(0, area.H-len(choiceLines)-3)
		lines = lines[:core.Min(keep, len(lines))]
		boxH = core.Min(area.H, len(lines)+len(choiceLines)+3)
	}

	cx, cy := area.Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)
	s.DrawRect(box, ' ')
	s.DrawBoxColor(box, core.ColorPurple)

	y := box.Y + 1
	for i, line := range lines {
		if y >= box.Bottom()-1 {
			return
		}
		c := textColor
		if i < imageLines {
			c = core.ColorDarkGray
		}
		s.DrawTextColor(box.X+modalPadding, y, line, c)
		y++
	}
	y++

	for _, cl := range choiceLines {
		if y >= box.Bottom()-1 {
			return
		}
		s.DrawTextColor(box.X+modalPadding, y, cl.text, cl.color)
		y++
	}
}

type choiceLine struct {
	text  string
	color core.Color
}

func (m *Modal) choiceLines(width int) []choiceLine {
	var out []choiceLine
	for i, c := range m.msg.Choices {
		label := "  " + c.Label
		color := core.ColorWhite
		if i == m.cursor {
			label = "▶ " + c.Label
			color = core.ColorPink
		}
		if len(m.msg.Choices) > 1 {
			label += "  (" + string(rune('1'+i)) + ")"
		}
		out = append(out, choiceLine{text: label, color: color})
		if c.Hint != "" {
			for _, h := range wrap(c.Hint, width-4) {
				out = append(out, choiceLine{text: "    " + h, color: core.ColorGray})
			}
		}
	}
	return out
}

// wrap word-wraps text to width cells and drops the trailing padding
// lipgloss adds to every line.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	rendered := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(rendered, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}
