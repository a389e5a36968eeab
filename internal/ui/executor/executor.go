// Package executor contains the stage execution forms: a generic interpreter
// driven by stage configuration data, and the legacy hardcoded forms for
// stage types that have not been migrated to a configuration yet. Both
// implement the same Executor contract, so the orchestrator's dispatch is a
// single table lookup.
package executor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/meridianfoods/stagehand/internal/domain"
	"github.com/meridianfoods/stagehand/internal/stageconfig"
	"github.com/meridianfoods/stagehand/internal/ui/styles"
)

// Executor is one stage execution form
type Executor interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Executor, tea.Cmd)
	View() string
	// SetSubmitting disables the submit action while the parent's
	// submission call is in flight.
	SetSubmitting(active bool)
}

// SubmitRequestMsg asks the orchestrator to persist a validated stage result
type SubmitRequestMsg struct {
	Result domain.StageResult
}

// Params carries everything an executor needs to assemble its form
type Params struct {
	Step      domain.RoutingStep
	InputQty  float64
	Unit      string
	Operators []domain.Operator
	Equipment []domain.EquipmentUnit
	Materials []domain.Material
	// DefaultBadge names the badge of the operator to preselect in the
	// operator picker, empty for none.
	DefaultBadge string
	Styles       *styles.Styles
}

// legacyFactories maps stage types without a configuration to their
// hardcoded forms.
var legacyFactories = map[domain.StageType]func(Params) Executor{
	domain.StageReceiving:   func(p Params) Executor { return NewReceiving(p) },
	domain.StageCleaning:    func(p Params) Executor { return NewCleaning(p) },
	domain.StageCutting:     func(p Params) Executor { return NewCutting(p) },
	domain.StageMixing:      func(p Params) Executor { return NewMixing(p) },
	domain.StageSublimation: func(p Params) Executor { return NewSublimation(p) },
}

// New picks the executor for a resolved stage type: the configuration-driven
// form when the registry has the type, otherwise a legacy form. The second
// return is false when the stage is not executable at all and the caller
// should render a "not configured" notice.
func New(stage domain.StageType, reg *stageconfig.Registry, p Params) (Executor, bool) {
	if cfg, ok := reg.Get(stage); ok {
		return NewGeneric(cfg, p), true
	}
	if factory, ok := legacyFactories[stage]; ok {
		return factory(p), true
	}
	return nil, false
}
