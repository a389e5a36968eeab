package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/meridianfoods/stagehand/internal/domain"
	"github.com/meridianfoods/stagehand/internal/ui/styles"
)

// quality widget fields, cycled with tab inside the widget
const (
	qfMoisture = iota
	qfVisual
	qfColor
	qfTexture
	qfNotes
	qfCount
)

// QualityEntry records the optional per-batch quality snapshot
type QualityEntry struct {
	metrics  domain.QualityMetrics
	field    int
	moisture textinput.Model
	notes    textinput.Model
	focused  bool
	touched  bool
	styles   *styles.Styles
}

// NewQualityEntry creates the quality snapshot widget
func NewQualityEntry(st *styles.Styles) *QualityEntry {
	moisture := textinput.New()
	moisture.Placeholder = "0.0"
	moisture.CharLimit = 6
	moisture.Width = 6

	notes := textinput.New()
	notes.Placeholder = "notes"
	notes.CharLimit = 120
	notes.Width = 40

	return &QualityEntry{
		metrics: domain.QualityMetrics{
			Visual:           domain.VisualGood,
			ColorConsistency: 3,
			TextureScore:     3,
		},
		moisture: moisture,
		notes:    notes,
		styles:   st,
	}
}

// Metrics returns the snapshot and whether the operator touched the widget
// at all; untouched means "no quality recorded".
func (w *QualityEntry) Metrics() (domain.QualityMetrics, bool) {
	return w.metrics, w.touched
}

// Focus gives the widget keyboard focus
func (w *QualityEntry) Focus() tea.Cmd {
	w.focused = true
	return w.focusField()
}

// Blur removes keyboard focus
func (w *QualityEntry) Blur() {
	w.focused = false
	w.moisture.Blur()
	w.notes.Blur()
}

// Focused reports whether the widget has keyboard focus
func (w *QualityEntry) Focused() bool {
	return w.focused
}

func (w *QualityEntry) focusField() tea.Cmd {
	w.moisture.Blur()
	w.notes.Blur()
	switch w.field {
	case qfMoisture:
		return w.moisture.Focus()
	case qfNotes:
		return w.notes.Focus()
	}
	return nil
}

// Update handles messages
func (w *QualityEntry) Update(msg tea.Msg) (Widget, tea.Cmd) {
	if !w.focused {
		return w, nil
	}

	key, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch key.String() {
		case "down":
			w.field = (w.field + 1) % qfCount
			return w, w.focusField()
		case "up":
			w.field = (w.field + qfCount - 1) % qfCount
			return w, w.focusField()
		case "left", "right":
			if w.adjustOrdinal(key.String() == "right") {
				w.touched = true
				return w, emit(QualityChangedMsg{Metrics: w.metrics})
			}
		}
	}

	switch w.field {
	case qfMoisture:
		var cmd tea.Cmd
		w.moisture, cmd = w.moisture.Update(msg)
		entered := parseQty(w.moisture.Value())
		if entered != w.metrics.MoisturePercent {
			w.metrics.MoisturePercent = entered
			w.touched = true
			return w, tea.Batch(cmd, emit(QualityChangedMsg{Metrics: w.metrics}))
		}
		return w, cmd

	case qfNotes:
		var cmd tea.Cmd
		w.notes, cmd = w.notes.Update(msg)
		if w.notes.Value() != w.metrics.Notes {
			w.metrics.Notes = w.notes.Value()
			w.touched = true
			return w, tea.Batch(cmd, emit(QualityChangedMsg{Metrics: w.metrics}))
		}
		return w, cmd
	}
	return w, nil
}

// adjustOrdinal moves the ordinal field under the cursor one notch
func (w *QualityEntry) adjustOrdinal(up bool) bool {
	delta := -1
	if up {
		delta = 1
	}
	switch w.field {
	case qfVisual:
		// Grades are listed best to worst, so left (-1) improves the grade.
		rank := w.metrics.Visual.Rank() + delta
		if rank >= 0 && rank < len(domain.AllVisualQualities) {
			w.metrics.Visual = domain.AllVisualQualities[rank]
			return true
		}
	case qfColor:
		if next := w.metrics.ColorConsistency + delta; next >= 1 && next <= 5 {
			w.metrics.ColorConsistency = next
			return true
		}
	case qfTexture:
		if next := w.metrics.TextureScore + delta; next >= 1 && next <= 5 {
			w.metrics.TextureScore = next
			return true
		}
	}
	return false
}

// View renders the quality fields
func (w *QualityEntry) View() string {
	moistStyle := w.styles.Value
	if !w.metrics.MoistureOK() && w.touched {
		moistStyle = w.styles.FieldError
	}

	rows := []struct {
		field int
		label string
		value string
	}{
		{qfMoisture, "moisture %", moistStyle.Render(w.moisture.View())},
		{qfVisual, "visual", string(w.metrics.Visual)},
		{qfColor, "color", fmt.Sprintf("%d/5", w.metrics.ColorConsistency)},
		{qfTexture, "texture", fmt.Sprintf("%d/5", w.metrics.TextureScore)},
		{qfNotes, "notes", w.notes.View()},
	}

	var b strings.Builder
	b.WriteString(w.styles.Label.Render("Batch quality"))
	b.WriteString("\n")
	for _, row := range rows {
		marker := "  "
		if w.focused && w.field == row.field {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-11s %s\n", marker, row.label, row.value))
	}
	b.WriteString(w.styles.SubmitHint.Render("↑/↓: field • ←/→: adjust"))
	return b.String()
}
