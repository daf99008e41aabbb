package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// Styles maps core.Color roles to lipgloss styles.
type Styles map[core.Color]lipgloss.Style

// NewStyles builds the role styles from a theme. Empty theme entries fall
// back to the terminal default colour.
func NewStyles(theme config.ThemeConfig) Styles {
	fg := func(c string) lipgloss.Style {
		s := lipgloss.NewStyle()
		if c != "" {
			s = s.Foreground(lipgloss.Color(c))
		}
		return s
	}

	return Styles{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorBlock:   fg(theme.Filled),
		core.ColorEmpty:   fg(theme.Empty),
		core.ColorBorder:  fg(theme.Border),
		core.ColorText:    fg(theme.Text).Bold(true),
		core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		core.ColorMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		core.ColorError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Style returns the style for a role.
func (s Styles) Style(c core.Color) lipgloss.Style {
	if style, ok := s[c]; ok {
		return style
	}
	return s[core.ColorDefault]
}

// RenderCanvas converts a Canvas to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderCanvas(c *core.Canvas, styles Styles) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(c.Width()*c.Height()*2 + c.Height())

	for y := range c.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < c.Width() {
			cell := c.Get(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < c.Width() {
				cell = c.Get(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
