package stageconfig

import (
	"fmt"
	"math"
	"time"

	"github.com/meridianfoods/stagehand/internal/domain"
)

// CostContext is the input to a cost formula. Formulas must be pure
// functions of this context so stage cost stays reproducible.
type CostContext struct {
	DurationMinutes float64
	HourlyRate      int64 // minor currency units per hour
	OutputQty       float64
	Materials       []domain.Material
}

// CostFormula computes a stage cost in minor currency units
type CostFormula func(CostContext) int64

// CostSpec labels and binds the cost calculation for a stage. YAML overlays
// select a formula by name from the built-in formula table.
type CostSpec struct {
	Type    string      `yaml:"type"`
	Formula CostFormula `yaml:"-"`
}

// Cost runs the configuration's formula on the context. A panicking formula
// degrades to cost 0 rather than blocking an otherwise valid submission.
func (c Config) Cost(ctx CostContext) (cost int64) {
	defer func() {
		if r := recover(); r != nil {
			cost = 0
		}
	}()
	if c.Costing.Formula == nil {
		return 0
	}
	return c.Costing.Formula(ctx)
}

// MachineTime charges the work center's hourly rate for the timed cycle
// (the freeze dryer's electricity draw is folded into that rate).
func MachineTime(ctx CostContext) int64 {
	return domain.ElectricityCost(ctx.HourlyRate, time.Duration(ctx.DurationMinutes*float64(time.Minute)))
}

// LaborTime charges the work center's hourly rate for hands-on time
func LaborTime(ctx CostContext) int64 {
	if ctx.DurationMinutes <= 0 {
		return 0
	}
	return int64(math.Round(float64(ctx.HourlyRate) * ctx.DurationMinutes / 60))
}

// NoCost is for stages tracked without a cost posting
func NoCost(CostContext) int64 {
	return 0
}

// formulasByName is the table YAML overlays select from
var formulasByName = map[string]CostFormula{
	"machine_time": MachineTime,
	"labor_time":   LaborTime,
	"none":         NoCost,
}

// FormulaByName resolves a formula name from a YAML overlay
func FormulaByName(name string) (CostFormula, error) {
	if name == "" {
		return NoCost, nil
	}
	f, ok := formulasByName[name]
	if !ok {
		return nil, fmt.Errorf("stageconfig: unknown cost formula %q", name)
	}
	return f, nil
}
