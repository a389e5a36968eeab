package executor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meridianfoods/stagehand/internal/domain"
	"github.com/meridianfoods/stagehand/internal/ui/widgets"
)

// Cutting gives more trim loss than washing does, so its ceiling is higher
const maxCuttingWastePercent = 25.0

// Cutting is the legacy hardcoded form for the slicing/dicing prep stage
type Cutting struct {
	form
}

// NewCutting builds the cutting form
func NewCutting(p Params) *Cutting {
	return &Cutting{
		form: newForm(domain.StageCutting, p,
			widgets.NewOperatorPicker(p.Operators, p.Styles),
			widgets.NewWasteScale(p.InputQty, wasteBaseline(p.Step), p.Styles),
		),
	}
}

// Init focuses the first widget
func (c *Cutting) Init() tea.Cmd {
	return c.init()
}

// Update handles messages
func (c *Cutting) Update(msg tea.Msg) (Executor, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+s" {
		return c, c.submit()
	}
	return c, c.update(msg)
}

func (c *Cutting) submit() tea.Cmd {
	if c.submitting {
		return nil
	}

	var errs []string
	if c.snap.OperatorID == "" {
		errs = append(errs, "Operator is required")
	}
	if c.snap.OutputQty <= 0 {
		errs = append(errs, "Cutting must produce output")
	}
	if pct := wastePercent(c.snap.InputQty, c.snap.WasteQty); pct > maxCuttingWastePercent {
		errs = append(errs, "Cutting waste cannot exceed 25%")
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
func (c *Cutting) View() string {
	var b strings.Builder
	b.WriteString(c.styles.Title.Render("🔪 Cutting"))
	b.WriteString("\n")
	b.WriteString(c.viewWidgets())
	b.WriteString(c.viewFooter(0))
	return b.String()
}
