package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/meridianfoods/stagehand/internal/domain"
)

// Catppuccin Macchiato palette
var (
	// Base colors
	Base     = lipgloss.Color("#24273a")
	Mantle   = lipgloss.Color("#1e2030")
	Surface0 = lipgloss.Color("#363a4f")
	Surface1 = lipgloss.Color("#494d64")
	Surface2 = lipgloss.Color("#5b6078")
	Overlay0 = lipgloss.Color("#6e738d")
	Overlay1 = lipgloss.Color("#8087a2")
	Subtext0 = lipgloss.Color("#a5adcb")
	Subtext1 = lipgloss.Color("#b8c0e0")
	Text     = lipgloss.Color("#cad3f5")

	// Accent colors
	Mauve    = lipgloss.Color("#c6a0f6")
	Red      = lipgloss.Color("#ed8796")
	Peach    = lipgloss.Color("#f5a97f")
	Yellow   = lipgloss.Color("#eed49f")
	Green    = lipgloss.Color("#a6da95")
	Teal     = lipgloss.Color("#8bd5ca")
	Sky      = lipgloss.Color("#91d7e3")
	Blue     = lipgloss.Color("#8aadf4")
	Lavender = lipgloss.Color("#b7bdf8")
)

// StepStatusColors maps routing step status to a color
var StepStatusColors = map[domain.StepStatus]lipgloss.Color{
	domain.StepPending:    Overlay0,
	domain.StepInProgress: Yellow,
	domain.StepCompleted:  Green,
}

// WasteBandColors maps waste banding to a color
var WasteBandColors = map[domain.WasteBand]lipgloss.Color{
	domain.WasteWithinRange:   Green,
	domain.WasteSlightlyAbove: Yellow,
	domain.WasteAboveRange:    Peach,
	domain.WasteHigh:          Red,
}

// TimerStatusColors maps cycle timer status to a color
var TimerStatusColors = map[domain.TimerStatus]lipgloss.Color{
	domain.TimerIdle:    Overlay0,
	domain.TimerRunning: Green,
	domain.TimerPaused:  Yellow,
	domain.TimerStopped: Blue,
}
