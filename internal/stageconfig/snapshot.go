package stageconfig

import (
	"github.com/meridianfoods/stagehand/internal/domain"
)

// Snapshot is the aggregated form state the rule evaluator and cost formulas
// read. Executors build one from their widgets' reported states; rules never
// see widget internals.
type Snapshot struct {
	InputQty   float64
	HourlyRate int64

	OperatorID      string
	OperatorName    string
	EquipmentUnitID string

	OutputQty float64
	WasteQty  float64
	Reasons   []domain.WasteReason

	Timer     *domain.Timer
	Materials []domain.Material
	Quality   *domain.QualityMetrics
}

// Field resolves a rule's field name to its current value. Unknown field
// names resolve to nil, which required-rules treat as missing.
func (s Snapshot) Field(name string) any {
	switch name {
	case "operator":
		return s.OperatorID
	case "operator_name":
		return s.OperatorName
	case "equipment_unit":
		return s.EquipmentUnitID
	case "input_qty":
		return s.InputQty
	case "output_qty":
		return s.OutputQty
	case "waste_qty":
		return s.WasteQty
	case "waste_percent":
		if s.InputQty <= 0 {
			return 0.0
		}
		return s.WasteQty / s.InputQty * 100
	case "waste_reasons":
		return s.Reasons
	case "timer":
		return s.Timer
	case "duration_minutes":
		return s.DurationMinutes()
	case "moisture_percent":
		if s.Quality == nil {
			return nil
		}
		return s.Quality.MoisturePercent
	default:
		return nil
	}
}

// DurationMinutes is the timer's elapsed time in minutes, 0 without a timer.
// Stopped timers report a fixed value, so no clock is needed here.
func (s Snapshot) DurationMinutes() float64 {
	if s.Timer == nil || s.Timer.Status != domain.TimerStopped {
		return 0
	}
	return s.Timer.Elapsed(s.Timer.EndTime).Minutes()
}

// YieldPercent is output over input, 0 when input is 0
func (s Snapshot) YieldPercent() float64 {
	return domain.Yield(s.InputQty, s.OutputQty)
}
