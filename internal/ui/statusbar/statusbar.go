// Package statusbar renders the bottom bar: the active screen badge and the
// keybinding hints for it.
package statusbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/meridianfoods/stagehand/internal/types"
	"github.com/meridianfoods/stagehand/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	screen types.Screen
	width  int
	styles *styles.Styles
}

// New creates a new StatusBar with the given screen, width, and styles
func New(screen types.Screen, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		screen: screen,
		width:  width,
		styles: styles,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	badge := sb.styles.StatusMode.Render(" " + sb.screen.String() + " ")

	hints := GetHints(sb.screen)
	hintsRendered := sb.styles.StatusHint.Render(hints)

	var content string
	if hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		content = lipgloss.JoinHorizontal(lipgloss.Left, badge, separator, hintsRendered)
	} else {
		content = badge
	}

	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
