// Package app contains the main application model and TEA implementation.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/meridianfoods/stagehand/internal/config"
	"github.com/meridianfoods/stagehand/internal/domain"
	"github.com/meridianfoods/stagehand/internal/stageconfig"
	"github.com/meridianfoods/stagehand/internal/types"
	"github.com/meridianfoods/stagehand/internal/ui/executor"
	"github.com/meridianfoods/stagehand/internal/ui/styles"
	"github.com/meridianfoods/stagehand/internal/ui/traveler"
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast
type ToastLevel = types.ToastLevel

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
	ToastError   = types.ToastError
)

// ERPClient is the slice of the ERP client the orchestrator drives
type ERPClient interface {
	ActiveWorkOrders(ctx context.Context) ([]domain.WorkOrder, error)
	WorkOrderSteps(ctx context.Context, workOrderID string) (domain.StepProgress, error)
	SubmitStage(ctx context.Context, workOrderID, stepID string, result domain.StageResult) error
	EquipmentUnits(ctx context.Context, workCenterID string) ([]domain.EquipmentUnit, error)
	Operators(ctx context.Context) ([]domain.Operator, error)
}

// Model is the main application state
type Model struct {
	// Collaborators
	client   ERPClient
	registry *stageconfig.Registry
	config   *config.Config
	logger   *slog.Logger

	// Screen state
	screen types.Screen

	// Work order list
	orders  []domain.WorkOrder
	cursor  int
	loading bool
	spinner spinner.Model

	// Execution state
	order      *domain.WorkOrder
	progress   domain.StepProgress
	stepIndex  int
	operators  []domain.Operator
	equipment  []domain.EquipmentUnit
	exec       executor.Executor
	submitting bool

	// Results recorded this session, in routing order
	results []domain.StageResult

	// Toasts
	toasts []Toast

	// Terminal size
	width  int
	height int

	// Renderers
	styles   *styles.Styles
	traveler *traveler.Traveler
}

// New creates a new application model with the given collaborators
func New(cfg *config.Config, client ERPClient, registry *stageconfig.Registry, logger *slog.Logger) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	st := styles.New()

	return Model{
		client:   client,
		registry: registry,
		config:   cfg,
		logger:   logger,
		screen:   types.ScreenOrders,
		loading:  true,
		spinner:  s,
		styles:   st,
		traveler: traveler.New(st),
	}
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadOrdersCmd(),
		tickEvery(time.Second),
	)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ordersLoadedMsg:
		m.orders = msg.orders
		m.loading = false
		if m.cursor >= len(m.orders) {
			m.cursor = 0
		}
		return m, nil

	case ordersErrorMsg:
		m.loading = false
		m.addToast(ToastError, msg.err.Error())
		return m, nil

	case stepContextMsg:
		return m.enterExecution(msg)

	case executor.SubmitRequestMsg:
		if m.submitting || m.order == nil {
			return m, nil
		}
		m.submitting = true
		if m.exec != nil {
			m.exec.SetSubmitting(true)
		}
		step := m.order.Steps[m.stepIndex]
		return m, m.submitStageCmd(m.order.ID, step.ID, msg.Result)

	case submitResultMsg:
		return m.handleSubmitResult(msg)

	case tickMsg:
		m.expireToasts()
		return m, tickEvery(time.Second)
	}

	// Everything else belongs to the active executor (widget snapshots,
	// stopwatch ticks).
	return m.forwardToExecutor(msg)
}

// handleKey processes keyboard input based on the current screen
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case types.ScreenOrders:
		return m.handleOrdersKey(msg)
	case types.ScreenExecute:
		return m.handleExecuteKey(msg)
	default:
		return m, nil
	}
}

// handleOrdersKey processes keyboard input on the work order list
func (m Model) handleOrdersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.orders)-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "r":
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadOrdersCmd())

	case "enter":
		if len(m.orders) == 0 {
			return m, nil
		}
		order := m.orders[m.cursor]
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.openOrderCmd(order))
	}

	return m, nil
}

// handleExecuteKey processes keyboard input on the execution screen. Only esc
// is intercepted; everything else belongs to the executor's widgets.
func (m Model) handleExecuteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.resetExecution()
		m.screen = types.ScreenOrders
		return m, nil
	}
	return m.forwardToExecutor(msg)
}

// forwardToExecutor routes a message to the active executor, if any
func (m Model) forwardToExecutor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.exec == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.exec, cmd = m.exec.Update(msg)
	return m, cmd
}

// enterExecution applies a fetched step context and builds the stage form
func (m Model) enterExecution(msg stepContextMsg) (tea.Model, tea.Cmd) {
	order := msg.order
	m.order = &order
	m.progress = msg.progress
	m.stepIndex = msg.stepIndex
	m.operators = msg.operators
	m.equipment = msg.equipment
	m.loading = false
	m.screen = types.ScreenExecute
	m.submitting = false

	if msg.warn != "" {
		m.addToast(ToastWarning, msg.warn)
	}

	return m, m.buildExecutor()
}

// buildExecutor creates the form for the current step. A nil executor with
// screen execute means the routing is complete or the step has no form.
func (m *Model) buildExecutor() tea.Cmd {
	m.exec = nil
	if m.order == nil || m.stepIndex >= len(m.order.Steps) {
		return nil
	}

	step := m.order.Steps[m.stepIndex]
	stage := domain.ResolveStageType(step.Name)

	badge := ""
	if m.config != nil {
		badge = m.config.UI.DefaultBadge
	}
	exec, ok := executor.New(stage, m.registry, executor.Params{
		Step:         step,
		InputQty:     m.stageInput(),
		Unit:         m.order.Unit,
		Operators:    m.operators,
		Equipment:    m.equipment,
		Materials:    step.Materials,
		DefaultBadge: badge,
		Styles:       m.styles,
	})
	if !ok {
		m.logger.Warn("no stage form for step", "step", step.Name, "stage", stage)
		return nil
	}

	m.exec = exec
	return exec.Init()
}

// stageInput is the input quantity for the current stage: the previous
// stage's output, or the batch quantity at the head of the routing.
func (m Model) stageInput() float64 {
	if len(m.results) > 0 {
		return m.results[len(m.results)-1].OutputQty
	}
	return m.order.BatchQty
}

// handleSubmitResult finishes a submission: on success the step is marked
// completed and the cursor advances, on failure nothing moves.
func (m Model) handleSubmitResult(msg submitResultMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if m.exec != nil {
		m.exec.SetSubmitting(false)
	}

	if msg.err != nil {
		m.addToast(ToastError, msg.err.Error())
		return m, nil
	}

	step := m.order.Steps[m.stepIndex]
	if m.progress.Status == nil {
		m.progress.Status = map[string]domain.StepStatus{}
	}
	m.progress.Status[step.ID] = domain.StepCompleted
	m.results = append(m.results, msg.result)
	m.addToast(ToastSuccess, "Stage submitted: "+step.Name)

	m.stepIndex = m.order.FirstPendingStep(m.progress.Status)
	if m.stepIndex >= len(m.order.Steps) {
		m.exec = nil
		m.addToast(ToastSuccess, "Production complete: "+m.order.Number)
		return m, nil
	}

	// The next step may run at a different work center.
	return m, m.advanceStepCmd(*m.order, m.progress, m.stepIndex)
}

// resetExecution discards all execution state
func (m *Model) resetExecution() {
	m.order = nil
	m.progress = domain.StepProgress{}
	m.stepIndex = 0
	m.operators = nil
	m.equipment = nil
	m.exec = nil
	m.submitting = false
	m.results = nil
}

// addToast adds a toast notification to the list
func (m *Model) addToast(level ToastLevel, message string) {
	m.toasts = append(m.toasts, types.NewToast(level, message, m.toastLifetime(level)))
}

// toastLifetime derives the toast lifetime from the configured base, with
// warnings and errors lingering longer.
func (m Model) toastLifetime(level ToastLevel) time.Duration {
	base := 4 * time.Second
	if m.config != nil && m.config.UI.ToastLifetimeMs > 0 {
		base = time.Duration(m.config.UI.ToastLifetimeMs) * time.Millisecond
	}
	switch level {
	case ToastError:
		return 2 * base
	case ToastWarning:
		return base * 3 / 2
	default:
		return base
	}
}

// expireToasts removes expired toasts from the list
func (m *Model) expireToasts() {
	now := time.Now()
	filtered := make([]Toast, 0, len(m.toasts))
	for _, t := range m.toasts {
		if !t.Expired(now) {
			filtered = append(filtered, t)
		}
	}
	m.toasts = filtered
}
