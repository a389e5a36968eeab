package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/meridianfoods/stagehand/internal/domain"
	"github.com/meridianfoods/stagehand/internal/ui/styles"
)

// MaterialsList records the quantities actually consumed for each BOM line.
// Lines start at their planned quantity; the operator adjusts the selected
// line in place.
type MaterialsList struct {
	materials []domain.Material
	cursor    int
	editing   bool
	input     textinput.Model
	focused   bool
	styles    *styles.Styles
}

// NewMaterialsList creates the widget seeded with the planned BOM lines
func NewMaterialsList(planned []domain.Material, st *styles.Styles) *MaterialsList {
	ti := textinput.New()
	ti.CharLimit = 12
	ti.Width = 10

	materials := make([]domain.Material, len(planned))
	copy(materials, planned)

	return &MaterialsList{materials: materials, input: ti, styles: st}
}

// Materials returns a copy of the current consumption lines
func (w *MaterialsList) Materials() []domain.Material {
	out := make([]domain.Material, len(w.materials))
	copy(out, w.materials)
	return out
}

// Focus gives the widget keyboard focus
func (w *MaterialsList) Focus() tea.Cmd {
	w.focused = true
	return nil
}

// Blur removes keyboard focus
func (w *MaterialsList) Blur() {
	w.focused = false
	w.editing = false
	w.input.Blur()
}

// Focused reports whether the widget has keyboard focus
func (w *MaterialsList) Focused() bool {
	return w.focused
}

// Update handles messages
func (w *MaterialsList) Update(msg tea.Msg) (Widget, tea.Cmd) {
	if !w.focused {
		return w, nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if w.editing {
			var cmd tea.Cmd
			w.input, cmd = w.input.Update(msg)
			return w, cmd
		}
		return w, nil
	}

	if w.editing {
		switch key.String() {
		case "enter":
			// An empty confirm keeps the planned quantity.
			if strings.TrimSpace(w.input.Value()) != "" {
				w.materials[w.cursor].Qty = parseQty(w.input.Value())
			}
			w.editing = false
			w.input.Blur()
			return w, emit(MaterialsChangedMsg{Materials: w.Materials()})
		case "esc":
			w.editing = false
			w.input.Blur()
			return w, nil
		default:
			var cmd tea.Cmd
			w.input, cmd = w.input.Update(msg)
			return w, cmd
		}
	}

	switch key.String() {
	case "up", "k":
		if w.cursor > 0 {
			w.cursor--
		}
	case "down", "j":
		if w.cursor < len(w.materials)-1 {
			w.cursor++
		}
	case "enter":
		if len(w.materials) == 0 {
			return w, nil
		}
		w.editing = true
		w.input.SetValue("")
		w.input.Placeholder = trimFloat(w.materials[w.cursor].Qty)
		return w, w.input.Focus()
	}
	return w, nil
}

// View renders the consumption lines
func (w *MaterialsList) View() string {
	var b strings.Builder
	b.WriteString(w.styles.Label.Render("Materials consumed"))
	b.WriteString("\n")

	if len(w.materials) == 0 {
		b.WriteString(w.styles.SubmitHint.Render("no BOM lines for this stage"))
		return b.String()
	}

	for i, m := range w.materials {
		qty := trimFloat(m.Qty)
		if w.editing && i == w.cursor {
			qty = w.input.View()
		}
		line := fmt.Sprintf("%s  %s %s", m.Name, qty, m.Unit)
		style := w.styles.MenuItem
		if w.focused && i == w.cursor {
			style = w.styles.MenuItemActive
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(w.styles.SubmitHint.Render("enter: adjust line"))
	return b.String()
}
