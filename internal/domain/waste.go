package domain

// WasteReason is a coded explanation for material lost during a stage
type WasteReason string

const (
	WasteSpoilage      WasteReason = "spoilage"
	WasteTrim          WasteReason = "trim"
	WasteSpill         WasteReason = "spill"
	WasteQualityReject WasteReason = "quality_reject"
	WasteMachineLoss   WasteReason = "machine_loss"
	WasteOther         WasteReason = "other"
)

// AllWasteReasons lists the reason codes in display order
var AllWasteReasons = []WasteReason{
	WasteSpoilage,
	WasteTrim,
	WasteSpill,
	WasteQualityReject,
	WasteMachineLoss,
	WasteOther,
}

// String returns the display string
func (r WasteReason) String() string {
	return string(r)
}

// Label returns a human-readable label for the reason code
func (r WasteReason) Label() string {
	switch r {
	case WasteSpoilage:
		return "Spoilage"
	case WasteTrim:
		return "Trim loss"
	case WasteSpill:
		return "Spillage"
	case WasteQualityReject:
		return "Quality reject"
	case WasteMachineLoss:
		return "Machine loss"
	case WasteOther:
		return "Other"
	default:
		return string(r)
	}
}

// WasteBand classifies actual waste against the expected baseline
type WasteBand string

const (
	WasteWithinRange   WasteBand = "within_range"
	WasteSlightlyAbove WasteBand = "slightly_above"
	WasteAboveRange    WasteBand = "above_range"
	WasteHigh          WasteBand = "high"
)

// Label returns a human-readable label for the band
func (b WasteBand) Label() string {
	switch b {
	case WasteWithinRange:
		return "within expected range"
	case WasteSlightlyAbove:
		return "slightly above expected"
	case WasteAboveRange:
		return "above expected range"
	case WasteHigh:
		return "significantly above expected"
	default:
		return string(b)
	}
}

// WasteScale reconciles one stage's input against waste. OutputQty and
// WastePercent are always derived from InputQty and WasteQty; neither is an
// independent source of truth.
type WasteScale struct {
	InputQty float64       `json:"input_qty"`
	WasteQty float64       `json:"waste_qty"`
	Reasons  []WasteReason `json:"reasons,omitempty"`

	// ExpectedPercent is the baseline waste percentage for banding; nil
	// means no baseline and the fixed 10/15 thresholds apply.
	ExpectedPercent *float64 `json:"expected_percent,omitempty"`
}

// NewWasteScale returns a scale for the given stage input quantity
func NewWasteScale(inputQty float64) *WasteScale {
	if inputQty < 0 {
		inputQty = 0
	}
	return &WasteScale{InputQty: inputQty}
}

// SetWaste stores a waste quantity, clamped to [0, InputQty]. Over-entry is
// capped, not rejected.
func (w *WasteScale) SetWaste(qty float64) {
	if qty < 0 {
		qty = 0
	}
	if qty > w.InputQty {
		qty = w.InputQty
	}
	w.WasteQty = qty
}

// SetInput changes the input quantity and re-clamps the waste quantity
func (w *WasteScale) SetInput(qty float64) {
	if qty < 0 {
		qty = 0
	}
	w.InputQty = qty
	w.SetWaste(w.WasteQty)
}

// ToggleReason adds the reason if absent, removes it if present
func (w *WasteScale) ToggleReason(r WasteReason) {
	for i, existing := range w.Reasons {
		if existing == r {
			w.Reasons = append(w.Reasons[:i], w.Reasons[i+1:]...)
			return
		}
	}
	w.Reasons = append(w.Reasons, r)
}

// HasReason reports whether the reason is currently selected
func (w *WasteScale) HasReason(r WasteReason) bool {
	for _, existing := range w.Reasons {
		if existing == r {
			return true
		}
	}
	return false
}

// OutputQty is the derived stage output, never negative
func (w *WasteScale) OutputQty() float64 {
	out := w.InputQty - w.WasteQty
	if out < 0 {
		return 0
	}
	return out
}

// WastePercent is waste as a percentage of input; 0 when input is 0
func (w *WasteScale) WastePercent() float64 {
	if w.InputQty <= 0 {
		return 0
	}
	return w.WasteQty / w.InputQty * 100
}

// Band classifies the current waste percentage. With a baseline E the bands
// are ≤E, ≤E+5, ≤E+10 and above; without one the thresholds are 10% and 15%.
func (w *WasteScale) Band() WasteBand {
	actual := w.WastePercent()
	if w.ExpectedPercent == nil {
		switch {
		case actual <= 10:
			return WasteWithinRange
		case actual <= 15:
			return WasteAboveRange
		default:
			return WasteHigh
		}
	}
	e := *w.ExpectedPercent
	switch {
	case actual <= e:
		return WasteWithinRange
	case actual <= e+5:
		return WasteSlightlyAbove
	case actual <= e+10:
		return WasteAboveRange
	default:
		return WasteHigh
	}
}
