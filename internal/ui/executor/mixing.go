package executor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meridianfoods/stagehand/internal/domain"
	"github.com/meridianfoods/stagehand/internal/ui/widgets"
)

// Mixing is the legacy hardcoded form for the blending stage
type Mixing struct {
	form
}

// NewMixing builds the mixing form
func NewMixing(p Params) *Mixing {
	return &Mixing{
		form: newForm(domain.StageMixing, p,
			widgets.NewOperatorPicker(p.Operators, p.Styles),
			widgets.NewOutputEntry(p.InputQty, p.Unit, p.Styles),
			widgets.NewMaterialsList(p.Materials, p.Styles),
		),
	}
}

// Init focuses the first widget
func (m *Mixing) Init() tea.Cmd {
	return m.init()
}

// Update handles messages
func (m *Mixing) Update(msg tea.Msg) (Executor, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+s" {
		return m, m.submit()
	}
	return m, m.update(msg)
}

func (m *Mixing) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	var errs []string
	if m.snap.OperatorID == "" {
		errs = append(errs, "Operator is required")
	}
	if m.snap.OutputQty <= 0 {
		errs = append(errs, "Output quantity is required")
	}
	m.errors = errs
	if len(errs) > 0 {
		return nil
	}

	result := m.result(0)
	return func() tea.Msg { return SubmitRequestMsg{Result: result} }
}

// View renders the form
func (m *Mixing) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("🥣 Mixing"))
	b.WriteString("\n")
	b.WriteString(m.viewWidgets())
	b.WriteString(m.viewFooter(0))
	return b.String()
}
