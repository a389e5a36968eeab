package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/meridianfoods/stagehand/internal/domain"
	"github.com/meridianfoods/stagehand/internal/ui/styles"
)

// OutputEntry records the stage's produced quantity and shows the yield
// against the stage input live.
type OutputEntry struct {
	inputQty float64
	qty      float64
	unit     string
	input    textinput.Model
	focused  bool
	styles   *styles.Styles
}

// NewOutputEntry creates an output entry for the given stage input quantity
func NewOutputEntry(inputQty float64, unit string, st *styles.Styles) *OutputEntry {
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.CharLimit = 12
	ti.Width = 12

	return &OutputEntry{inputQty: inputQty, unit: unit, input: ti, styles: st}
}

// Qty returns the entered output quantity
func (w *OutputEntry) Qty() float64 {
	return w.qty
}

// Focus gives the widget keyboard focus
func (w *OutputEntry) Focus() tea.Cmd {
	w.focused = true
	return w.input.Focus()
}

// Blur removes keyboard focus
func (w *OutputEntry) Blur() {
	w.focused = false
	w.input.Blur()
}

// Focused reports whether the widget has keyboard focus
func (w *OutputEntry) Focused() bool {
	return w.focused
}

// Update handles messages
func (w *OutputEntry) Update(msg tea.Msg) (Widget, tea.Cmd) {
	if !w.focused {
		return w, nil
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)

	entered := parseQty(w.input.Value())
	if entered != w.qty {
		w.qty = entered
		return w, tea.Batch(cmd, emit(OutputChangedMsg{Qty: entered}))
	}
	return w, cmd
}

// View renders the entry and the live yield
func (w *OutputEntry) View() string {
	var b strings.Builder
	b.WriteString(w.styles.Label.Render("Output"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("qty %s %s", w.input.View(), w.unit))
	b.WriteString("\n")
	b.WriteString(w.styles.Subtitle.Render(
		fmt.Sprintf("yield %.1f%% of %s input", domain.Yield(w.inputQty, w.qty), trimFloat(w.inputQty))))
	return b.String()
}
