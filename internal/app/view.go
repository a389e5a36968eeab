package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/meridianfoods/stagehand/internal/types"
	"github.com/meridianfoods/stagehand/internal/ui/statusbar"
	"github.com/meridianfoods/stagehand/internal/ui/toast"
)

// View renders the current state as a string
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.loading {
		return m.renderLoading()
	}

	var mainView string
	switch m.screen {
	case types.ScreenExecute:
		mainView = m.renderExecuteScreen()
	default:
		mainView = m.renderOrdersScreen()
	}

	sb := statusbar.New(m.screen, m.width, m.styles)
	view := lipgloss.JoinVertical(lipgloss.Left, mainView, sb.Render())

	if len(m.toasts) > 0 {
		renderer := toast.New(m.styles)
		if toastView := renderer.Render(m.toasts, m.width); toastView != "" {
			view = lipgloss.JoinVertical(lipgloss.Left, view, toastView)
		}
	}

	return view
}

// renderOrdersScreen renders the active work order list
func (m Model) renderOrdersScreen() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Active Work Orders"))
	b.WriteString("\n")

	if len(m.orders) == 0 {
		b.WriteString(m.styles.Notice.Render("No active work orders. Press r to refresh."))
		return b.String()
	}

	for i, order := range m.orders {
		number := m.styles.OrderNumber.Render(order.Number)
		item := m.styles.OrderItem.Render(order.ItemName)
		detail := m.styles.Subtitle.Render(fmt.Sprintf("%v %s · %d steps", order.BatchQty, order.Unit, len(order.Steps)))
		line := lipgloss.JoinHorizontal(lipgloss.Left, number, "  ", item, "  ", detail)

		row := m.styles.Row
		if i == m.cursor {
			row = m.styles.RowActive
			line = "▶ " + line
		} else {
			line = "  " + line
		}
		b.WriteString(row.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// renderExecuteScreen renders the traveler card and the active stage form
func (m Model) renderExecuteScreen() string {
	if m.order == nil {
		return m.styles.Notice.Render("No work order selected")
	}

	parts := []string{
		m.traveler.Render(*m.order, m.progress.Status, m.stepIndex, m.contentWidth()),
	}

	if summary := m.traveler.YieldSummary(m.results); summary != "" {
		parts = append(parts, summary)
	}

	switch {
	case m.stepIndex >= len(m.order.Steps):
		parts = append(parts, m.styles.Notice.Render("All routing steps are complete. Press esc to return."))
	case m.exec != nil:
		parts = append(parts, m.exec.View())
	default:
		step := m.order.Steps[m.stepIndex]
		parts = append(parts, m.styles.Warning.Render(
			fmt.Sprintf("No stage form is available for step %q. Press esc to return.", step.Name)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderLoading renders a centered loading spinner with message
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.spinner.View(),
		"Loading work orders...",
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

// contentWidth caps the card width on wide terminals
func (m Model) contentWidth() int {
	if m.width > 90 {
		return 90
	}
	return m.width - 2
}
