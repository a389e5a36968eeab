package widgets

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meridianfoods/stagehand/internal/domain"
	"github.com/meridianfoods/stagehand/internal/ui/styles"
)

// tickInterval is how often the readout refreshes while the cycle runs
const tickInterval = 100 * time.Millisecond

// stopwatchTickMsg drives the live readout; it carries nothing because the
// view recomputes elapsed time from the wall clock.
type stopwatchTickMsg time.Time

// Stopwatch times one processing cycle and shows the live electricity cost
// at the work center's hourly rate.
type Stopwatch struct {
	timer       *domain.Timer
	costPerHour int64
	focused     bool
	styles      *styles.Styles

	// now is swappable for tests
	now func() time.Time
}

// NewStopwatch creates a stopwatch charging at the given hourly rate
func NewStopwatch(costPerHour int64, st *styles.Styles) *Stopwatch {
	return &Stopwatch{
		timer:       domain.NewTimer(),
		costPerHour: costPerHour,
		styles:      st,
		now:         time.Now,
	}
}

// Timer returns a copy of the current timer state
func (w *Stopwatch) Timer() domain.Timer {
	return *w.timer
}

// Focus gives the widget keyboard focus
func (w *Stopwatch) Focus() tea.Cmd {
	w.focused = true
	return nil
}

// Blur removes keyboard focus
func (w *Stopwatch) Blur() {
	w.focused = false
}

// Focused reports whether the widget has keyboard focus
func (w *Stopwatch) Focused() bool {
	return w.focused
}

// tick schedules the next readout refresh. It is only ever scheduled while
// the timer runs; any transition away from running simply stops
// rescheduling, so no interval leaks past the cycle or the component.
func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return stopwatchTickMsg(t)
	})
}

// Update handles messages
func (w *Stopwatch) Update(msg tea.Msg) (Widget, tea.Cmd) {
	switch msg := msg.(type) {
	case stopwatchTickMsg:
		if w.timer.Status == domain.TimerRunning {
			return w, tick()
		}
		return w, nil

	case tea.KeyMsg:
		if !w.focused {
			return w, nil
		}
		switch msg.String() {
		case "s":
			if err := w.timer.Start(w.now()); err != nil {
				return w, nil
			}
			return w, tea.Batch(tick(), emit(TimerChangedMsg{Timer: *w.timer}))

		case " ", "p":
			var err error
			switch w.timer.Status {
			case domain.TimerRunning:
				err = w.timer.Pause(w.now())
			case domain.TimerPaused:
				err = w.timer.Resume(w.now())
			default:
				return w, nil
			}
			if err != nil {
				return w, nil
			}
			cmds := []tea.Cmd{emit(TimerChangedMsg{Timer: *w.timer})}
			if w.timer.Status == domain.TimerRunning {
				cmds = append(cmds, tick())
			}
			return w, tea.Batch(cmds...)

		case "x":
			if err := w.timer.Stop(w.now()); err != nil {
				return w, nil
			}
			return w, emit(TimerChangedMsg{Timer: *w.timer})

		case "r":
			if err := w.timer.Reset(); err != nil {
				return w, nil
			}
			return w, emit(TimerChangedMsg{Timer: *w.timer})
		}
	}
	return w, nil
}

// View renders the readout, current status and the live machine-time cost
func (w *Stopwatch) View() string {
	elapsed := w.timer.Elapsed(w.now())
	status := w.timer.Status
	if status == "" {
		status = domain.TimerIdle
	}

	var b strings.Builder
	b.WriteString(w.styles.Label.Render("Cycle timer"))
	b.WriteString("\n")
	b.WriteString(w.styles.TimerReadout(status).Render(domain.FormatElapsed(elapsed)))
	b.WriteString("  ")
	b.WriteString(w.styles.Subtitle.Render(string(status)))
	b.WriteString("\n")
	b.WriteString(w.styles.CostReadout.Render(
		fmt.Sprintf("electricity %s", formatMinorUnits(domain.ElectricityCost(w.costPerHour, elapsed)))))
	b.WriteString("\n")

	hints := map[domain.TimerStatus]string{
		domain.TimerIdle:    "s: start",
		domain.TimerRunning: "space: pause • x: stop • r: reset",
		domain.TimerPaused:  "space: resume • x: stop • r: reset",
		domain.TimerStopped: "r: reset",
	}
	b.WriteString(w.styles.SubmitHint.Render(hints[status]))
	return b.String()
}

// formatMinorUnits renders a minor-currency amount with thousands separators
func formatMinorUnits(v int64) string {
	s := fmt.Sprintf("%d", v)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}
