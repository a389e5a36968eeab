package executor

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meridianfoods/stagehand/internal/stageconfig"
	"github.com/meridianfoods/stagehand/internal/ui/widgets"
)

// Generic interprets a stage configuration: it renders exactly the widgets
// the configuration lists, runs the configuration's rules on submit and
// computes cost with the configuration's formula. Adding a stage type is a
// registry entry, not a new component.
type Generic struct {
	form
	cfg stageconfig.Config
}

// NewGeneric builds the form for a stage configuration
func NewGeneric(cfg stageconfig.Config, p Params) *Generic {
	var ws []widgets.Widget
	for _, spec := range cfg.Widgets {
		switch spec.Type {
		case stageconfig.WidgetOperator:
			ws = append(ws, widgets.NewOperatorPicker(p.Operators, p.Styles))
		case stageconfig.WidgetEquipment:
			ws = append(ws, widgets.NewEquipmentPicker(p.Equipment, p.Styles))
		case stageconfig.WidgetStopwatch:
			ws = append(ws, widgets.NewStopwatch(p.Step.WorkCenter.CostPerHour, p.Styles))
		case stageconfig.WidgetOutput:
			ws = append(ws, widgets.NewOutputEntry(p.InputQty, p.Unit, p.Styles))
		case stageconfig.WidgetMaterials:
			ws = append(ws, widgets.NewMaterialsList(p.Materials, p.Styles))
		case stageconfig.WidgetWaste:
			var expected *float64
			if p.Step.ExpectedWastePercent > 0 {
				e := p.Step.ExpectedWastePercent
				expected = &e
			}
			ws = append(ws, widgets.NewWasteScale(p.InputQty, expected, p.Styles))
		case stageconfig.WidgetQuality:
			ws = append(ws, widgets.NewQualityEntry(p.Styles))
		}
	}

	return &Generic{
		form: newForm(cfg.StageType, p, ws...),
		cfg:  cfg,
	}
}

// Init focuses the first widget
func (g *Generic) Init() tea.Cmd {
	return g.init()
}

// Update handles messages
func (g *Generic) Update(msg tea.Msg) (Executor, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+s" {
		return g, g.submit()
	}
	return g, g.update(msg)
}

// submit validates the whole form and either surfaces every failure or
// emits the normalized result for the orchestrator to persist.
func (g *Generic) submit() tea.Cmd {
	if g.submitting {
		return nil
	}
	g.errors = stageconfig.Evaluate(g.cfg, g.snap)
	if len(g.errors) > 0 {
		return nil
	}

	result := g.result(g.cost())
	return func() tea.Msg { return SubmitRequestMsg{Result: result} }
}

func (g *Generic) cost() int64 {
	return g.cfg.Cost(stageconfig.CostContext{
		DurationMinutes: g.snap.DurationMinutes(),
		HourlyRate:      g.snap.HourlyRate,
		OutputQty:       g.snap.OutputQty,
		Materials:       g.snap.Materials,
	})
}

// View renders the configured form
func (g *Generic) View() string {
	var b strings.Builder
	title := g.cfg.DisplayName
	if g.cfg.Icon != "" {
		title = g.cfg.Icon + " " + title
	}
	b.WriteString(g.styles.Title.Render(title))
	b.WriteString("\n")
	if g.cfg.Description != "" {
		b.WriteString(g.styles.Subtitle.Render(g.cfg.Description))
		b.WriteString("\n")
	}
	b.WriteString(g.viewWidgets())
	b.WriteString(g.viewFooter(g.cost()))
	return b.String()
}
