package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/invasion/internal/core"
)

// cellColors is the styling key of a run of cells.
type cellColors struct {
	fg, bg core.Color
}

// style builds the lipgloss style for a color pair. Default colors are left
// to the terminal.
func (c cellColors) style() lipgloss.Style {
	st := lipgloss.NewStyle()
	if !c.fg.IsDefault() {
		st = st.Foreground(lipgloss.Color(c.fg.Hex()))
	}
	if !c.bg.IsDefault() {
		st = st.Background(lipgloss.Color(c.bg.Hex()))
	}
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[cellColors]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellColors{fg: cell.FG, bg: cell.BG}

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellColors{fg: cell.FG, bg: cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[start]
			if !ok {
				style = start.style()
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
