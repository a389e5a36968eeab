package executor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meridianfoods/stagehand/internal/domain"
	"github.com/meridianfoods/stagehand/internal/ui/widgets"
)

// defaultSublimationYield is used when the routing step carries no expected
// yield. Freeze drying removes most of the product's water.
const defaultSublimationYield = 12.0

// Sublimation is the legacy hardcoded form for the freeze-dry cycle. The
// yield plausibility band is 0.7x to 1.5x the step's expected yield.
type Sublimation struct {
	form
	expectedYield float64
}

// NewSublimation builds the freeze-dry form
func NewSublimation(p Params) *Sublimation {
	expected := p.Step.ExpectedYieldPercent
	if expected <= 0 {
		expected = defaultSublimationYield
	}
	return &Sublimation{
		form: newForm(domain.StageSublimation, p,
			widgets.NewOperatorPicker(p.Operators, p.Styles),
			widgets.NewEquipmentPicker(p.Equipment, p.Styles),
			widgets.NewStopwatch(p.Step.WorkCenter.CostPerHour, p.Styles),
			widgets.NewOutputEntry(p.InputQty, p.Unit, p.Styles),
			widgets.NewQualityEntry(p.Styles),
		),
		expectedYield: expected,
	}
}

// Init focuses the first widget
func (s *Sublimation) Init() tea.Cmd {
	return s.init()
}

// Update handles messages
func (s *Sublimation) Update(msg tea.Msg) (Executor, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+s" {
		return s, s.submit()
	}
	return s, s.update(msg)
}

func (s *Sublimation) submit() tea.Cmd {
	if s.submitting {
		return nil
	}

	var errs []string
	if s.snap.OperatorID == "" {
		errs = append(errs, "Operator is required")
	}
	if s.snap.EquipmentUnitID == "" {
		errs = append(errs, "Freeze dryer unit is required")
	}
	if s.snap.Timer == nil || !s.snap.Timer.CanSubmit() {
		errs = append(errs, "Cycle timer must be stopped with recorded time")
	}
	if s.snap.OutputQty <= 0 {
		errs = append(errs, "Output quantity is required")
	} else {
		yield := s.snap.YieldPercent()
		switch {
		case yield < 0.7*s.expectedYield:
			errs = append(errs, "Yield is below the plausible band, check for excess loss")
		case yield > 1.5*s.expectedYield:
			errs = append(errs, "Yield is above the plausible band, verify the scale reading")
		}
	}
	s.errors = errs
	if len(errs) > 0 {
		return nil
	}

	result := s.result(s.cost())
	return func() tea.Msg { return SubmitRequestMsg{Result: result} }
}

// cost is the freeze dryer's electricity at the work center rate
func (s *Sublimation) cost() int64 {
	if s.snap.Timer == nil {
		return 0
	}
	return domain.ElectricityCost(s.snap.HourlyRate, s.snap.Timer.Elapsed(s.snap.Timer.EndTime))
}

// View renders the form
func (s *Sublimation) View() string {
	var b strings.Builder
	b.WriteString(s.styles.Title.Render("❄ Freeze-Drying"))
	b.WriteString("\n")
	b.WriteString(s.viewWidgets())
	b.WriteString(s.viewFooter(s.cost()))
	return b.String()
}
