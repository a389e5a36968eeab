// Package widgets contains the self-contained input controls a stage
// execution form is assembled from. Each widget owns its state exclusively
// and reports it upward as an immutable snapshot message via a returned
// command; no mutable state crosses the widget boundary.
package widgets

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meridianfoods/stagehand/internal/domain"
)

// Widget is the common contract the executor drives its controls through
type Widget interface {
	Update(msg tea.Msg) (Widget, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
}

// State snapshot messages emitted by the widgets

// OperatorChosenMsg reports the selected operator
type OperatorChosenMsg struct {
	Operator domain.Operator
}

// EquipmentChosenMsg reports the selected equipment unit
type EquipmentChosenMsg struct {
	Unit domain.EquipmentUnit
}

// TimerChangedMsg reports a cycle timer transition
type TimerChangedMsg struct {
	Timer domain.Timer
}

// WasteChangedMsg reports the waste scale state
type WasteChangedMsg struct {
	Scale domain.WasteScale
}

// OutputChangedMsg reports the entered output quantity
type OutputChangedMsg struct {
	Qty float64
}

// MaterialsChangedMsg reports the consumed material lines
type MaterialsChangedMsg struct {
	Materials []domain.Material
}

// QualityChangedMsg reports the batch quality snapshot
type QualityChangedMsg struct {
	Metrics domain.QualityMetrics
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// parseQty parses a quantity field; empty or partial input counts as 0
func parseQty(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
