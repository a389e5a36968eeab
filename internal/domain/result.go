package domain

import (
	"time"

	"github.com/google/uuid"
)

// StageResult is the normalized payload submitted to the ERP when a stage
// completes. SubmissionID is generated client-side and doubles as the
// server's idempotency key.
type StageResult struct {
	SubmissionID    string          `json:"submission_id"`
	StageType       StageType       `json:"stage_type"`
	OperatorID      string          `json:"operator_id"`
	OperatorName    string          `json:"operator_name"`
	EquipmentUnitID string          `json:"equipment_unit_id,omitempty"`
	InputQty        float64         `json:"input_qty"`
	OutputQty       float64         `json:"output_qty"`
	YieldPercent    float64         `json:"yield_percent"`
	WasteQty        float64         `json:"waste_qty"`
	WasteReasons    []WasteReason   `json:"waste_reasons,omitempty"`
	DurationMinutes float64         `json:"duration_minutes"`
	StartTime       *time.Time      `json:"start_time,omitempty"`
	EndTime         *time.Time      `json:"end_time,omitempty"`
	Cost            int64           `json:"cost"`
	Materials       []Material      `json:"materials,omitempty"`
	Quality         *QualityMetrics `json:"quality,omitempty"`
}

// NewStageResult returns a StageResult for the stage type with a fresh
// submission id.
func NewStageResult(stage StageType) StageResult {
	return StageResult{
		SubmissionID: uuid.NewString(),
		StageType:    stage,
	}
}

// Yield returns output as a percentage of input; 0 when input is 0
func Yield(inputQty, outputQty float64) float64 {
	if inputQty <= 0 {
		return 0
	}
	return outputQty / inputQty * 100
}
