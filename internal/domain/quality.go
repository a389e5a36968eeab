package domain

// VisualQuality is the ordinal visual grade for a finished batch
type VisualQuality string

const (
	VisualExcellent VisualQuality = "excellent"
	VisualGood      VisualQuality = "good"
	VisualFair      VisualQuality = "fair"
	VisualPoor      VisualQuality = "poor"
)

// AllVisualQualities lists the grades from best to worst
var AllVisualQualities = []VisualQuality{
	VisualExcellent,
	VisualGood,
	VisualFair,
	VisualPoor,
}

// Rank returns the ordinal rank, 0 being best
func (v VisualQuality) Rank() int {
	for i, q := range AllVisualQualities {
		if q == v {
			return i
		}
	}
	return len(AllVisualQualities)
}

// String returns the display string
func (v VisualQuality) String() string {
	return string(v)
}

// MoistureTargetPercent is the upper bound for acceptable residual moisture
// after freeze-drying.
const MoistureTargetPercent = 5.0

// QualityMetrics is an optional per-batch quality snapshot
type QualityMetrics struct {
	MoisturePercent  float64       `json:"moisture_percent"`
	Visual           VisualQuality `json:"visual"`
	ColorConsistency int           `json:"color_consistency"` // 1-5
	TextureScore     int           `json:"texture_score"`     // 1-5
	Notes            string        `json:"notes,omitempty"`
}

// MoistureOK reports whether residual moisture is under the target
func (q QualityMetrics) MoistureOK() bool {
	return q.MoisturePercent < MoistureTargetPercent
}
