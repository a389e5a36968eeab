package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meridianfoods/stagehand/internal/domain"
	"github.com/meridianfoods/stagehand/internal/ui/styles"
)

// OperatorPicker selects the operator responsible for the stage
type OperatorPicker struct {
	operators []domain.Operator
	cursor    int
	chosen    *domain.Operator
	focused   bool
	styles    *styles.Styles
}

// NewOperatorPicker creates an operator picker over the given roster
func NewOperatorPicker(operators []domain.Operator, st *styles.Styles) *OperatorPicker {
	return &OperatorPicker{operators: operators, styles: st}
}

// PreselectBadge moves the cursor to the operator wearing the given badge.
// The operator still has to confirm with enter.
func (w *OperatorPicker) PreselectBadge(badge string) {
	if badge == "" {
		return
	}
	for i, op := range w.operators {
		if op.Badge == badge {
			w.cursor = i
			return
		}
	}
}

// Chosen returns the selected operator, nil if none yet
func (w *OperatorPicker) Chosen() *domain.Operator {
	return w.chosen
}

// Focus gives the widget keyboard focus
func (w *OperatorPicker) Focus() tea.Cmd {
	w.focused = true
	return nil
}

// Blur removes keyboard focus
func (w *OperatorPicker) Blur() {
	w.focused = false
}

// Focused reports whether the widget has keyboard focus
func (w *OperatorPicker) Focused() bool {
	return w.focused
}

// Update handles messages
func (w *OperatorPicker) Update(msg tea.Msg) (Widget, tea.Cmd) {
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
			if w.cursor < len(w.operators)-1 {
				w.cursor++
			}
		case "enter", " ":
			if len(w.operators) == 0 {
				return w, nil
			}
			op := w.operators[w.cursor]
			w.chosen = &op
			return w, emit(OperatorChosenMsg{Operator: op})
		}
	}
	return w, nil
}

// View renders the picker
func (w *OperatorPicker) View() string {
	var b strings.Builder
	b.WriteString(w.styles.Label.Render("Operator"))
	b.WriteString("\n")

	if len(w.operators) == 0 {
		b.WriteString(w.styles.SubmitHint.Render("no operators available"))
		return b.String()
	}

	for i, op := range w.operators {
		line := op.Name
		if op.Badge != "" {
			line += " (" + op.Badge + ")"
		}
		mark := "  "
		if w.chosen != nil && w.chosen.ID == op.ID {
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
