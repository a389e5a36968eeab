package stageconfig

import "github.com/meridianfoods/stagehand/internal/domain"

func bound(v float64) *float64 {
	return &v
}

// reasonRequired blocks submission when waste was recorded without a reason
func reasonRequired(_ any, snap Snapshot) bool {
	return snap.WasteQty <= 0 || len(snap.Reasons) > 0
}

// moistureInSpec accepts a missing quality snapshot; when one is present the
// residual moisture must be under target.
func moistureInSpec(_ any, snap Snapshot) bool {
	return snap.Quality == nil || snap.Quality.MoistureOK()
}

// Builtin returns the stage configurations shipped with the terminal. Stage
// types without one here (receiving, cutting) run through the legacy
// executors until they are migrated.
func Builtin() []Config {
	return []Config{
		{
			StageType:   domain.StageSublimation,
			DisplayName: "Freeze-Drying",
			Description: "Sublimation cycle in the freeze dryer",
			Icon:        "❄",
			Widgets: []WidgetSpec{
				{Type: WidgetOperator, Required: true},
				{Type: WidgetEquipment, Required: true},
				{Type: WidgetStopwatch, Required: true},
				{Type: WidgetOutput, Required: true},
				{Type: WidgetQuality},
			},
			Rules: []Rule{
				{Field: "operator", Type: RuleRequired, ErrorMessage: "Operator is required"},
				{Field: "equipment_unit", Type: RuleRequired, ErrorMessage: "Freeze dryer unit is required"},
				{Field: "timer", Type: RuleTimerStatus, ErrorMessage: "Cycle timer must be stopped with recorded time"},
				// Freeze drying removes most of the water; the plausible
				// yield band is 0.7x to 1.5x the expected 12%.
				{Field: "output_qty", Type: RuleYieldRange, Min: bound(8.4), Max: bound(18), ErrorMessage: "Yield is outside the plausible band for freeze drying"},
				{Field: "moisture_percent", Type: RuleCustom, Custom: moistureInSpec, ErrorMessage: "Residual moisture must be below 5%"},
			},
			ExpectedYield:  12,
			YieldTolerance: 3.6,
			Costing:        CostSpec{Type: "machine_time", Formula: MachineTime},
		},
		{
			StageType:   domain.StageMixing,
			DisplayName: "Mixing",
			Description: "Blend batch components",
			Icon:        "🥣",
			Widgets: []WidgetSpec{
				{Type: WidgetOperator, Required: true},
				{Type: WidgetOutput, Required: true},
				{Type: WidgetMaterials},
			},
			Rules: []Rule{
				{Field: "operator", Type: RuleRequired, ErrorMessage: "Operator is required"},
				{Field: "output_qty", Type: RuleRequired, ErrorMessage: "Output quantity is required"},
				{Field: "output_qty", Type: RuleRange, Min: bound(0), ErrorMessage: "Output quantity cannot be negative"},
			},
			ExpectedYield:  100,
			YieldTolerance: 10,
			Costing:        CostSpec{Type: "labor_time", Formula: LaborTime},
		},
		{
			StageType:   domain.StageCleaning,
			DisplayName: "Cleaning",
			Description: "Wash and clean incoming produce",
			Icon:        "🚿",
			Widgets: []WidgetSpec{
				{Type: WidgetOperator, Required: true},
				{Type: WidgetWaste, Required: true},
			},
			Rules: []Rule{
				{Field: "operator", Type: RuleRequired, ErrorMessage: "Operator is required"},
				{Field: "waste_percent", Type: RuleRange, Max: bound(20), ErrorMessage: "Cleaning waste cannot exceed 20%"},
				{Field: "waste_reasons", Type: RuleCustom, Custom: reasonRequired, ErrorMessage: "Select a waste reason when waste is recorded"},
			},
			ExpectedYield:  95,
			YieldTolerance: 5,
			Costing:        CostSpec{Type: "labor_time", Formula: LaborTime},
		},
		{
			StageType:   domain.StagePackaging,
			DisplayName: "Packing",
			Description: "Bag and seal finished product",
			Icon:        "📦",
			Widgets: []WidgetSpec{
				{Type: WidgetOperator, Required: true},
				{Type: WidgetOutput, Required: true},
				{Type: WidgetWaste},
			},
			Rules: []Rule{
				{Field: "operator", Type: RuleRequired, ErrorMessage: "Operator is required"},
				{Field: "output_qty", Type: RuleRequired, ErrorMessage: "Packed quantity is required"},
				{Field: "waste_percent", Type: RuleRange, Max: bound(5), ErrorMessage: "Packing waste cannot exceed 5%"},
				{Field: "waste_reasons", Type: RuleCustom, Custom: reasonRequired, ErrorMessage: "Select a waste reason when waste is recorded"},
			},
			ExpectedYield:  100,
			YieldTolerance: 2,
			Costing:        CostSpec{Type: "labor_time", Formula: LaborTime},
		},
	}
}
