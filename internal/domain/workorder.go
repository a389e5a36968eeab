package domain

import "time"

// StepStatus represents the execution status of one routing step
type StepStatus string

const (
	StepPending    StepStatus = "pending"
	StepInProgress StepStatus = "in_progress"
	StepCompleted  StepStatus = "completed"
)

// String returns the display string
func (s StepStatus) String() string {
	return string(s)
}

// WorkCenter is a resource with an hourly operating cost. CostPerHour is in
// minor currency units.
type WorkCenter struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CostPerHour int64  `json:"cost_per_hour"`
}

// RoutingStep is one stage of a work order's routing. Materials lists the
// planned component consumption for the step, empty for steps without a BOM.
type RoutingStep struct {
	ID                   string     `json:"id"`
	Sequence             int        `json:"sequence"`
	Name                 string     `json:"name"`
	WorkCenter           WorkCenter `json:"work_center"`
	ExpectedYieldPercent float64    `json:"expected_yield_percent"`
	ExpectedWastePercent float64    `json:"expected_waste_percent,omitempty"`
	Materials            []Material `json:"materials,omitempty"`
}

// WorkOrder is a production batch following an ordered routing
type WorkOrder struct {
	ID        string        `json:"id"`
	Number    string        `json:"number"`
	ItemName  string        `json:"item_name"`
	BatchQty  float64       `json:"batch_qty"`
	Unit      string        `json:"unit"`
	Steps     []RoutingStep `json:"steps"`
	CreatedAt time.Time     `json:"created_at"`
}

// FirstPendingStep returns the index of the first step that is not completed
// according to the given status map. Steps missing from the map count as
// pending. Returns len(Steps) when every step is completed.
func (w WorkOrder) FirstPendingStep(status map[string]StepStatus) int {
	for i, step := range w.Steps {
		if status[step.ID] != StepCompleted {
			return i
		}
	}
	return len(w.Steps)
}

// StepProgress is the server's view of where a work order currently stands
type StepProgress struct {
	CurrentStepIndex int                   `json:"current_step_index"`
	Status           map[string]StepStatus `json:"status"`
}

// EquipmentUnit is a machine at a work center
type EquipmentUnit struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	WorkCenterID string `json:"work_center_id"`
	Available    bool   `json:"available"`
}

// Operator is a shop-floor worker who can be assigned to a stage
type Operator struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Badge string `json:"badge,omitempty"`
}

// Material is one consumed component line for a stage
type Material struct {
	ItemID string  `json:"item_id"`
	Name   string  `json:"name"`
	Qty    float64 `json:"qty"`
	Unit   string  `json:"unit"`
}
