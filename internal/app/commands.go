package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meridianfoods/stagehand/internal/domain"
)

// Message types for async operations

type ordersLoadedMsg struct {
	orders []domain.WorkOrder
}

type ordersErrorMsg struct {
	err error
}

// stepContextMsg carries everything needed to start executing a step
type stepContextMsg struct {
	order     domain.WorkOrder
	progress  domain.StepProgress
	stepIndex int
	operators []domain.Operator
	equipment []domain.EquipmentUnit
	warn      string
}

type submitResultMsg struct {
	result domain.StageResult
	err    error
}

type tickMsg time.Time

const defaultRequestTimeout = 10 * time.Second

// requestTimeout is the per-call context deadline, taken from the configured
// ERP timeout when one is set.
func (m Model) requestTimeout() time.Duration {
	if m.config != nil && m.config.ERP.TimeoutMs > 0 {
		return time.Duration(m.config.ERP.TimeoutMs) * time.Millisecond
	}
	return defaultRequestTimeout
}

// Commands

// loadOrdersCmd fetches the active work orders
func (m Model) loadOrdersCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.requestTimeout())
		defer cancel()

		orders, err := m.client.ActiveWorkOrders(ctx)
		if err != nil {
			return ordersErrorMsg{err: err}
		}
		return ordersLoadedMsg{orders: orders}
	}
}

// openOrderCmd fetches the step progress for a work order plus the operator
// and equipment context for the step to execute. A failed step lookup resumes
// at the first pending step with a warning instead of blocking the order.
func (m Model) openOrderCmd(order domain.WorkOrder) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.requestTimeout())
		defer cancel()

		var warn string
		progress, err := m.client.WorkOrderSteps(ctx, order.ID)
		if err != nil {
			m.logger.Warn("step lookup failed, resuming at first pending step",
				"work_order", order.ID, "error", err)
			progress = domain.StepProgress{
				CurrentStepIndex: -1,
				Status:           map[string]domain.StepStatus{},
			}
			warn = "Step lookup failed, resuming at first pending step"
		}

		return m.stepContext(ctx, order, progress, warn)
	}
}

// advanceStepCmd refreshes the step context after a submission advanced the
// cursor. Progress is already known, only the floor context is refetched.
func (m Model) advanceStepCmd(order domain.WorkOrder, progress domain.StepProgress, stepIndex int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.requestTimeout())
		defer cancel()

		msg := m.fetchFloorContext(ctx, order, progress, stepIndex)
		return msg
	}
}

// stepContext resolves the step cursor and gathers the floor context
func (m Model) stepContext(ctx context.Context, order domain.WorkOrder, progress domain.StepProgress, warn string) stepContextMsg {
	idx := progress.CurrentStepIndex
	if idx < 0 || idx > len(order.Steps) {
		idx = order.FirstPendingStep(progress.Status)
	}

	msg := m.fetchFloorContext(ctx, order, progress, idx)
	if msg.warn == "" {
		msg.warn = warn
	}
	return msg
}

// fetchFloorContext loads the operators and the step's equipment units.
// Either call failing degrades to an empty list with a warning; the form can
// still be filled for widgets that do not need the missing data.
func (m Model) fetchFloorContext(ctx context.Context, order domain.WorkOrder, progress domain.StepProgress, stepIndex int) stepContextMsg {
	msg := stepContextMsg{
		order:     order,
		progress:  progress,
		stepIndex: stepIndex,
	}

	operators, err := m.client.Operators(ctx)
	if err != nil {
		m.logger.Warn("operator lookup failed", "error", err)
		msg.warn = "Operator list unavailable"
	}
	msg.operators = operators

	if stepIndex < len(order.Steps) {
		units, err := m.client.EquipmentUnits(ctx, order.Steps[stepIndex].WorkCenter.ID)
		if err != nil {
			m.logger.Warn("equipment lookup failed",
				"work_center", order.Steps[stepIndex].WorkCenter.ID, "error", err)
			msg.warn = "Equipment list unavailable"
		}
		msg.equipment = units
	}

	return msg
}

// submitStageCmd posts a validated stage result
func (m Model) submitStageCmd(workOrderID, stepID string, result domain.StageResult) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.requestTimeout())
		defer cancel()

		if err := m.client.SubmitStage(ctx, workOrderID, stepID, result); err != nil {
			return submitResultMsg{result: result, err: err}
		}
		return submitResultMsg{result: result}
	}
}

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
