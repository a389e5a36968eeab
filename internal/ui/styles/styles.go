package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/meridianfoods/stagehand/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Screen chrome
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Notice   lipgloss.Style
	Warning  lipgloss.Style

	// Work order list
	Row         lipgloss.Style
	RowActive   lipgloss.Style
	OrderNumber lipgloss.Style
	OrderItem   lipgloss.Style

	// Traveler card
	Card          lipgloss.Style
	CardHeader    lipgloss.Style
	StepDone      lipgloss.Style
	StepCurrent   lipgloss.Style
	StepPending   lipgloss.Style
	StepGlyph     func(status domain.StepStatus) lipgloss.Style
	YieldBand     func(band domain.WasteBand) lipgloss.Style
	TimerReadout  func(status domain.TimerStatus) lipgloss.Style

	// Forms
	Section        lipgloss.Style
	SectionFocused lipgloss.Style
	Label          lipgloss.Style
	Required       lipgloss.Style
	Value          lipgloss.Style
	MenuItem       lipgloss.Style
	MenuItemActive lipgloss.Style
	FieldError     lipgloss.Style
	CostReadout    lipgloss.Style
	SubmitHint     lipgloss.Style
	Submitting     lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with the Catppuccin Macchiato theme
func New() *Styles {
	toast := lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(Base)

	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(Lavender).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(Subtext0),

		Notice: lipgloss.NewStyle().
			Foreground(Subtext1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(1, 2),

		Warning: lipgloss.NewStyle().
			Foreground(Peach).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Peach).
			Padding(1, 2),

		Row: lipgloss.NewStyle().
			Padding(0, 1),

		RowActive: lipgloss.NewStyle().
			Padding(0, 1).
			Background(Surface0).
			Foreground(Text).
			Bold(true),

		OrderNumber: lipgloss.NewStyle().
			Foreground(Overlay1).
			Bold(true),

		OrderItem: lipgloss.NewStyle().
			Foreground(Text),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1).
			MarginBottom(1),

		CardHeader: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true),

		StepDone: lipgloss.NewStyle().
			Foreground(Green),

		StepCurrent: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		StepPending: lipgloss.NewStyle().
			Foreground(Overlay0),

		StepGlyph: func(status domain.StepStatus) lipgloss.Style {
			return lipgloss.NewStyle().Foreground(StepStatusColors[status]).Bold(true)
		},

		YieldBand: func(band domain.WasteBand) lipgloss.Style {
			return lipgloss.NewStyle().Foreground(WasteBandColors[band]).Bold(true)
		},

		TimerReadout: func(status domain.TimerStatus) lipgloss.Style {
			return lipgloss.NewStyle().Foreground(TimerStatusColors[status]).Bold(true)
		},

		Section: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1).
			MarginBottom(1),

		SectionFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(0, 1).
			MarginBottom(1),

		Label: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true),

		Required: lipgloss.NewStyle().
			Foreground(Red),

		Value: lipgloss.NewStyle().
			Foreground(Text),

		MenuItem: lipgloss.NewStyle().
			Foreground(Subtext1).
			Padding(0, 1),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(Text).
			Background(Surface0).
			Bold(true).
			Padding(0, 1),

		FieldError: lipgloss.NewStyle().
			Foreground(Red),

		CostReadout: lipgloss.NewStyle().
			Foreground(Teal).
			Bold(true),

		SubmitHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		Submitting: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		ToastInfo:    toast.Background(Blue),
		ToastSuccess: toast.Background(Green),
		ToastWarning: toast.Background(Peach),
		ToastError:   toast.Background(Red),
	}
}
