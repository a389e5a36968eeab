package executor

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meridianfoods/stagehand/internal/domain"
	"github.com/meridianfoods/stagehand/internal/stageconfig"
	"github.com/meridianfoods/stagehand/internal/ui/styles"
	"github.com/meridianfoods/stagehand/internal/ui/widgets"
)

// form is the plumbing every executor shares: a focus ring over its widgets,
// the aggregated snapshot built from widget messages, validation errors and
// the submitting gate. Widget state only enters the snapshot through the
// messages the widgets emit.
type form struct {
	stage      domain.StageType
	widgetList []widgets.Widget
	focus      int
	snap       stageconfig.Snapshot
	errors     []string
	submitting bool
	hasOutput  bool
	styles     *styles.Styles
}

func newForm(stage domain.StageType, p Params, ws ...widgets.Widget) form {
	f := form{
		stage:      stage,
		widgetList: ws,
		snap: stageconfig.Snapshot{
			InputQty:   p.InputQty,
			HourlyRate: p.Step.WorkCenter.CostPerHour,
		},
		styles: p.Styles,
	}
	hasWaste := false
	for _, w := range ws {
		switch w := w.(type) {
		case *widgets.OutputEntry:
			f.hasOutput = true
		case *widgets.WasteScale:
			hasWaste = true
		case *widgets.OperatorPicker:
			w.PreselectBadge(p.DefaultBadge)
		}
	}
	// When the waste scale is the only quantity widget the stage output is
	// derived, starting at the full input until waste is recorded.
	if hasWaste && !f.hasOutput {
		f.snap.OutputQty = p.InputQty
	}
	return f
}

func (f *form) init() tea.Cmd {
	if len(f.widgetList) == 0 {
		return nil
	}
	return f.widgetList[f.focus].Focus()
}

// update absorbs widget snapshots, handles focus cycling and forwards
// everything else to the widgets.
func (f *form) update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case widgets.OperatorChosenMsg:
		f.snap.OperatorID = m.Operator.ID
		f.snap.OperatorName = m.Operator.Name
		return nil
	case widgets.EquipmentChosenMsg:
		f.snap.EquipmentUnitID = m.Unit.ID
		return nil
	case widgets.TimerChangedMsg:
		timer := m.Timer
		f.snap.Timer = &timer
		return nil
	case widgets.WasteChangedMsg:
		f.snap.WasteQty = m.Scale.WasteQty
		f.snap.Reasons = m.Scale.Reasons
		// Without a dedicated output widget the waste scale's derived
		// output is the stage output.
		if !f.hasOutput {
			f.snap.OutputQty = m.Scale.OutputQty()
		}
		return nil
	case widgets.OutputChangedMsg:
		f.snap.OutputQty = m.Qty
		return nil
	case widgets.MaterialsChangedMsg:
		f.snap.Materials = m.Materials
		return nil
	case widgets.QualityChangedMsg:
		metrics := m.Metrics
		f.snap.Quality = &metrics
		return nil

	case tea.KeyMsg:
		switch m.String() {
		case "tab":
			return f.cycleFocus(1)
		case "shift+tab":
			return f.cycleFocus(-1)
		}
	}

	return f.forward(msg)
}

func (f *form) cycleFocus(delta int) tea.Cmd {
	if len(f.widgetList) == 0 {
		return nil
	}
	f.widgetList[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.widgetList)) % len(f.widgetList)
	return f.widgetList[f.focus].Focus()
}

func (f *form) forward(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, w := range f.widgetList {
		next, cmd := w.Update(msg)
		f.widgetList[i] = next
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// result assembles the normalized submission payload from the snapshot
func (f *form) result(cost int64) domain.StageResult {
	res := domain.NewStageResult(f.stage)
	res.OperatorID = f.snap.OperatorID
	res.OperatorName = f.snap.OperatorName
	res.EquipmentUnitID = f.snap.EquipmentUnitID
	res.InputQty = f.snap.InputQty
	res.OutputQty = f.snap.OutputQty
	res.YieldPercent = f.snap.YieldPercent()
	res.WasteQty = f.snap.WasteQty
	res.WasteReasons = f.snap.Reasons
	res.DurationMinutes = f.snap.DurationMinutes()
	res.Cost = cost
	res.Materials = f.snap.Materials
	res.Quality = f.snap.Quality
	if t := f.snap.Timer; t != nil {
		if !t.StartTime.IsZero() {
			start := t.StartTime
			res.StartTime = &start
		}
		if !t.EndTime.IsZero() {
			end := t.EndTime
			res.EndTime = &end
		}
	}
	return res
}

// SetSubmitting disables the submit action while a submission is in flight
func (f *form) SetSubmitting(active bool) {
	f.submitting = active
}

// viewWidgets renders each widget in its section, the focused one
// highlighted.
func (f *form) viewWidgets() string {
	var b strings.Builder
	for i, w := range f.widgetList {
		section := f.styles.Section
		if i == f.focus {
			section = f.styles.SectionFocused
		}
		b.WriteString(section.Render(w.View()))
		b.WriteString("\n")
	}
	return b.String()
}

// viewFooter renders errors, the live yield/cost line and the submit state
func (f *form) viewFooter(cost int64) string {
	var b strings.Builder
	for _, e := range f.errors {
		b.WriteString(f.styles.FieldError.Render("• " + e))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("yield %.1f%%  ", f.snap.YieldPercent()))
	b.WriteString(f.styles.CostReadout.Render(fmt.Sprintf("cost %d", cost)))
	b.WriteString("\n")

	if f.submitting {
		b.WriteString(f.styles.Submitting.Render("submitting…"))
	} else {
		b.WriteString(f.styles.SubmitHint.Render("tab: next field • ctrl+s: submit stage"))
	}
	return b.String()
}
