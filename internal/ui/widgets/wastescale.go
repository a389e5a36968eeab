package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/meridianfoods/stagehand/internal/domain"
	"github.com/meridianfoods/stagehand/internal/ui/styles"
)

// WasteScale records the quantity lost during a stage and why. Output and
// waste percent are derived live, and waste entry is clamped to the stage
// input on every keystroke.
type WasteScale struct {
	scale   *domain.WasteScale
	input   textinput.Model
	focused bool
	styles  *styles.Styles
}

// NewWasteScale creates the widget for the given stage input quantity.
// expectedPercent may be nil when the routing has no waste baseline.
func NewWasteScale(inputQty float64, expectedPercent *float64, st *styles.Styles) *WasteScale {
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.CharLimit = 12
	ti.Width = 12

	scale := domain.NewWasteScale(inputQty)
	scale.ExpectedPercent = expectedPercent

	return &WasteScale{scale: scale, input: ti, styles: st}
}

// Scale returns a copy of the current reconciliation state
func (w *WasteScale) Scale() domain.WasteScale {
	return *w.scale
}

// Focus gives the widget keyboard focus
func (w *WasteScale) Focus() tea.Cmd {
	w.focused = true
	return w.input.Focus()
}

// Blur removes keyboard focus
func (w *WasteScale) Blur() {
	w.focused = false
	w.input.Blur()
}

// Focused reports whether the widget has keyboard focus
func (w *WasteScale) Focused() bool {
	return w.focused
}

// Update handles messages
func (w *WasteScale) Update(msg tea.Msg) (Widget, tea.Cmd) {
	if !w.focused {
		return w, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		// Number keys toggle waste reasons; everything else edits the qty.
		s := key.String()
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			idx := int(s[0] - '1')
			if idx < len(domain.AllWasteReasons) {
				w.scale.ToggleReason(domain.AllWasteReasons[idx])
				return w, emit(WasteChangedMsg{Scale: *w.scale})
			}
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)

	entered := parseQty(w.input.Value())
	if entered != w.scale.WasteQty {
		w.scale.SetWaste(entered)
		// Reflect the clamp back into the field so over-entry is visibly
		// capped rather than silently ignored.
		if w.scale.WasteQty != entered {
			w.input.SetValue(trimFloat(w.scale.WasteQty))
			w.input.CursorEnd()
		}
		return w, tea.Batch(cmd, emit(WasteChangedMsg{Scale: *w.scale}))
	}
	return w, cmd
}

// View renders the scale, derived values, banding and reason toggles
func (w *WasteScale) View() string {
	var b strings.Builder
	b.WriteString(w.styles.Label.Render("Waste"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("input %s  waste %s", trimFloat(w.scale.InputQty), w.input.View()))
	b.WriteString("\n")

	band := w.scale.Band()
	b.WriteString(fmt.Sprintf("output %s  ", trimFloat(w.scale.OutputQty())))
	b.WriteString(w.styles.YieldBand(band).Render(
		fmt.Sprintf("%.1f%% — %s", w.scale.WastePercent(), band.Label())))
	b.WriteString("\n")

	var reasons []string
	for i, r := range domain.AllWasteReasons {
		mark := " "
		if w.scale.HasReason(r) {
			mark = "✓"
		}
		reasons = append(reasons, fmt.Sprintf("%d[%s] %s", i+1, mark, r.Label()))
	}
	b.WriteString(w.styles.Subtitle.Render(strings.Join(reasons, "  ")))
	return b.String()
}

// trimFloat renders a quantity without trailing zeros
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
