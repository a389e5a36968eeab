package executor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meridianfoods/stagehand/internal/domain"
	"github.com/meridianfoods/stagehand/internal/ui/widgets"
)

// maxCleaningWastePercent is the plausibility ceiling for the wash stage
const maxCleaningWastePercent = 20.0

// Cleaning is the legacy hardcoded form for the wash stage. It predates the
// configuration registry; the builtin cleaning configuration normally takes
// precedence in dispatch.
type Cleaning struct {
	form
}

// NewCleaning builds the cleaning form
func NewCleaning(p Params) *Cleaning {
	return &Cleaning{
		form: newForm(domain.StageCleaning, p,
			widgets.NewOperatorPicker(p.Operators, p.Styles),
			widgets.NewWasteScale(p.InputQty, wasteBaseline(p.Step), p.Styles),
		),
	}
}

// Init focuses the first widget
func (c *Cleaning) Init() tea.Cmd {
	return c.init()
}

// Update handles messages
func (c *Cleaning) Update(msg tea.Msg) (Executor, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+s" {
		return c, c.submit()
	}
	return c, c.update(msg)
}

func (c *Cleaning) submit() tea.Cmd {
	if c.submitting {
		return nil
	}

	var errs []string
	if c.snap.OperatorID == "" {
		errs = append(errs, "Operator is required")
	}
	if pct := wastePercent(c.snap.InputQty, c.snap.WasteQty); pct > maxCleaningWastePercent {
		errs = append(errs, "Cleaning waste cannot exceed 20%")
	}
	if c.snap.WasteQty > 0 && len(c.snap.Reasons) == 0 {
		errs = append(errs, "Select a waste reason when waste is recorded")
	}
	c.errors = errs
	if len(errs) > 0 {
		return nil
	}

	result := c.result(0)
	return func() tea.Msg { return SubmitRequestMsg{Result: result} }
}

// View renders the form
func (c *Cleaning) View() string {
	var b strings.Builder
	b.WriteString(c.styles.Title.Render("🚿 Cleaning"))
	b.WriteString("\n")
	b.WriteString(c.viewWidgets())
	b.WriteString(c.viewFooter(0))
	return b.String()
}

func wastePercent(input, waste float64) float64 {
	if input <= 0 {
		return 0
	}
	return waste / input * 100
}

// wasteBaseline returns the routing step's expected waste, nil when unset
func wasteBaseline(step domain.RoutingStep) *float64 {
	if step.ExpectedWastePercent > 0 {
		e := step.ExpectedWastePercent
		return &e
	}
	return nil
}
