package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meridianfoods/stagehand/internal/domain"
	"github.com/meridianfoods/stagehand/internal/ui/styles"
)

// EquipmentPicker selects the equipment unit the stage ran on
type EquipmentPicker struct {
	units   []domain.EquipmentUnit
	cursor  int
	chosen  *domain.EquipmentUnit
	focused bool
	styles  *styles.Styles
}

// NewEquipmentPicker creates a picker over the work center's units
func NewEquipmentPicker(units []domain.EquipmentUnit, st *styles.Styles) *EquipmentPicker {
	return &EquipmentPicker{units: units, styles: st}
}

// Chosen returns the selected unit, nil if none yet
func (w *EquipmentPicker) Chosen() *domain.EquipmentUnit {
	return w.chosen
}

// Focus gives the widget keyboard focus
func (w *EquipmentPicker) Focus() tea.Cmd {
	w.focused = true
	return nil
}

// Blur removes keyboard focus
func (w *EquipmentPicker) Blur() {
	w.focused = false
}

// Focused reports whether the widget has keyboard focus
func (w *EquipmentPicker) Focused() bool {
	return w.focused
}

// Update handles messages
func (w *EquipmentPicker) Update(msg tea.Msg) (Widget, tea.Cmd) {
	if !w.focused {
		return w, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if w.cursor > 0 {
				w.cursor--
			}
		case "down", "j":
			if w.cursor < len(w.units)-1 {
				w.cursor++
			}
		case "enter", " ":
			if len(w.units) == 0 {
				return w, nil
			}
			unit := w.units[w.cursor]
			if !unit.Available {
				return w, nil
			}
			w.chosen = &unit
			return w, emit(EquipmentChosenMsg{Unit: unit})
		}
	}
	return w, nil
}

// View renders the picker
func (w *EquipmentPicker) View() string {
	var b strings.Builder
	b.WriteString(w.styles.Label.Render("Equipment unit"))
	b.WriteString("\n")

	if len(w.units) == 0 {
		b.WriteString(w.styles.SubmitHint.Render("no equipment at this work center"))
		return b.String()
	}

	for i, unit := range w.units {
		line := unit.Name
		if !unit.Available {
			line += " — unavailable"
		}
		mark := "  "
		if w.chosen != nil && w.chosen.ID == unit.ID {
			mark = "✓ "
		}
		style := w.styles.MenuItem
		if w.focused && i == w.cursor {
			style = w.styles.MenuItemActive
		}
		b.WriteString(style.Render(mark + line))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
