package executor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meridianfoods/stagehand/internal/domain"
	"github.com/meridianfoods/stagehand/internal/ui/widgets"
)

// Receiving is the legacy hardcoded form for incoming-goods inspection. The
// waste scale records the rejected quantity and the quality snapshot the
// inspection findings.
type Receiving struct {
	form
}

// NewReceiving builds the receiving inspection form
func NewReceiving(p Params) *Receiving {
	return &Receiving{
		form: newForm(domain.StageReceiving, p,
			widgets.NewOperatorPicker(p.Operators, p.Styles),
			widgets.NewWasteScale(p.InputQty, wasteBaseline(p.Step), p.Styles),
			widgets.NewQualityEntry(p.Styles),
		),
	}
}

// Init focuses the first widget
func (r *Receiving) Init() tea.Cmd {
	return r.init()
}

// Update handles messages
func (r *Receiving) Update(msg tea.Msg) (Executor, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+s" {
		return r, r.submit()
	}
	return r, r.update(msg)
}

func (r *Receiving) submit() tea.Cmd {
	if r.submitting {
		return nil
	}

	var errs []string
	if r.snap.OperatorID == "" {
		errs = append(errs, "Inspector is required")
	}
	if r.snap.WasteQty > 0 && len(r.snap.Reasons) == 0 {
		errs = append(errs, "Select a rejection reason when goods are rejected")
	}
	r.errors = errs
	if len(errs) > 0 {
		return nil
	}

	result := r.result(0)
	return func() tea.Msg { return SubmitRequestMsg{Result: result} }
}

// View renders the form
func (r *Receiving) View() string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("📋 Receiving Inspection"))
	b.WriteString("\n")
	b.WriteString(r.viewWidgets())
	b.WriteString(r.viewFooter(0))
	return b.String()
}
