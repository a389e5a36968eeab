// Package traveler renders the work order traveler: the batch header, the
// routing with per-step status glyphs, and the running yield summary. It is a
// pure view over domain data, all state lives in the orchestrator.
package traveler

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/meridianfoods/stagehand/internal/domain"
	"github.com/meridianfoods/stagehand/internal/ui/styles"
)

// Traveler renders one work order's routing card
type Traveler struct {
	styles *styles.Styles
}

// New creates a Traveler renderer with the given styles
func New(s *styles.Styles) *Traveler {
	return &Traveler{styles: s}
}

// glyphs per step status
const (
	glyphDone    = "✓"
	glyphCurrent = "▶"
	glyphPending = "○"
)

// Render renders the traveler card for a work order. currentStep indexes into
// order.Steps; an index past the last step means the routing is complete.
func (t *Traveler) Render(order domain.WorkOrder, status map[string]domain.StepStatus, currentStep int, width int) string {
	header := t.renderHeader(order)
	routing := t.renderRouting(order, status, currentStep)

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", routing)
	return t.styles.Card.Width(width).Render(content)
}

func (t *Traveler) renderHeader(order domain.WorkOrder) string {
	number := t.styles.OrderNumber.Render(order.Number)
	item := t.styles.OrderItem.Render(order.ItemName)
	batch := t.styles.Subtitle.Render(fmt.Sprintf("%s %s", trimQty(order.BatchQty), order.Unit))
	return lipgloss.JoinHorizontal(lipgloss.Left, number, "  ", item, "  ", batch)
}

// renderRouting lists every step with its status glyph, highlighting the
// step about to be executed.
func (t *Traveler) renderRouting(order domain.WorkOrder, status map[string]domain.StepStatus, currentStep int) string {
	var lines []string
	for i, step := range order.Steps {
		st := status[step.ID]
		if st == "" {
			st = domain.StepPending
		}

		glyph := glyphPending
		lineStyle := t.styles.StepPending
		switch {
		case st == domain.StepCompleted:
			glyph = glyphDone
			lineStyle = t.styles.StepDone
		case i == currentStep:
			glyph = glyphCurrent
			lineStyle = t.styles.StepCurrent
		}

		glyphStyled := t.styles.StepGlyph(st).Render(glyph)
		label := lineStyle.Render(fmt.Sprintf("%d. %s", step.Sequence, step.Name))
		center := t.styles.Subtitle.Render(step.WorkCenter.Name)

		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Left, glyphStyled, " ", label, "  ", center))
	}

	if currentStep >= len(order.Steps) && len(order.Steps) > 0 {
		lines = append(lines, t.styles.StepDone.Render("production complete"))
	}

	return strings.Join(lines, "\n")
}

// YieldSummary renders the cumulative yield line for the results recorded so
// far. Step yields chain multiplicatively along the routing.
func (t *Traveler) YieldSummary(results []domain.StageResult) string {
	if len(results) == 0 {
		return ""
	}

	cumulative := 100.0
	for _, r := range results {
		cumulative = cumulative * r.YieldPercent / 100
	}

	band := domain.WasteWithinRange
	switch {
	case cumulative < 50:
		band = domain.WasteHigh
	case cumulative < 75:
		band = domain.WasteAboveRange
	}

	label := t.styles.Label.Render("cumulative yield ")
	value := t.styles.YieldBand(band).Render(fmt.Sprintf("%.1f%%", cumulative))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, value)
}

// trimQty formats a quantity without trailing zeros
func trimQty(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
