package domain

import (
	"fmt"
	"math"
	"time"
)

// TimerStatus is the cycle timer's state machine value
type TimerStatus string

const (
	TimerIdle    TimerStatus = "idle"
	TimerRunning TimerStatus = "running"
	TimerPaused  TimerStatus = "paused"
	TimerStopped TimerStatus = "stopped"
)

// String returns the display string
func (s TimerStatus) String() string {
	return string(s)
}

// PauseInterval is one pause window. ResumedAt stays zero while the pause is
// still open.
type PauseInterval struct {
	PausedAt  time.Time `json:"paused_at"`
	ResumedAt time.Time `json:"resumed_at,omitempty"`
}

// Timer records one processing cycle's timing. All transitions take the
// current time explicitly so callers (and tests) control the clock.
//
// State machine: idle → running ⇄ paused → stopped → (reset) → idle.
// Elapsed time excludes paused time; EndTime is set exactly once, on the
// transition to stopped, and a stopped timer only ever changes via Reset.
type Timer struct {
	Status       TimerStatus     `json:"status"`
	StartTime    time.Time       `json:"start_time,omitempty"`
	EndTime      time.Time       `json:"end_time,omitempty"`
	PauseHistory []PauseInterval `json:"pause_history,omitempty"`
}

// NewTimer returns an idle timer
func NewTimer() *Timer {
	return &Timer{Status: TimerIdle}
}

// current treats the zero value as idle
func (t *Timer) current() TimerStatus {
	if t.Status == "" {
		return TimerIdle
	}
	return t.Status
}

// Start begins a cycle. Only valid from idle.
func (t *Timer) Start(now time.Time) error {
	if t.current() != TimerIdle {
		return &TimerError{Op: "start", From: t.Status}
	}
	t.StartTime = now
	t.Status = TimerRunning
	return nil
}

// Pause opens a pause interval. Only valid while running.
func (t *Timer) Pause(now time.Time) error {
	if t.Status != TimerRunning {
		return &TimerError{Op: "pause", From: t.Status}
	}
	t.PauseHistory = append(t.PauseHistory, PauseInterval{PausedAt: now})
	t.Status = TimerPaused
	return nil
}

// Resume closes the open pause interval. Only valid while paused.
func (t *Timer) Resume(now time.Time) error {
	if t.Status != TimerPaused {
		return &TimerError{Op: "resume", From: t.Status}
	}
	t.PauseHistory[len(t.PauseHistory)-1].ResumedAt = now
	t.Status = TimerRunning
	return nil
}

// Stop ends the cycle. Valid from running or paused; stopping while paused
// closes the open pause interval at the stop instant.
func (t *Timer) Stop(now time.Time) error {
	if t.Status != TimerRunning && t.Status != TimerPaused {
		return &TimerError{Op: "stop", From: t.Status}
	}
	if t.Status == TimerPaused {
		t.PauseHistory[len(t.PauseHistory)-1].ResumedAt = now
	}
	t.EndTime = now
	t.Status = TimerStopped
	return nil
}

// Reset returns the timer to idle. Valid from any state except idle.
func (t *Timer) Reset() error {
	if t.current() == TimerIdle {
		return &TimerError{Op: "reset", From: t.current()}
	}
	*t = Timer{Status: TimerIdle}
	return nil
}

// PausedDuration sums all pause intervals, counting a still-open pause up to
// now.
func (t *Timer) PausedDuration(now time.Time) time.Duration {
	var total time.Duration
	for _, p := range t.PauseHistory {
		if p.ResumedAt.IsZero() {
			total += now.Sub(p.PausedAt)
		} else {
			total += p.ResumedAt.Sub(p.PausedAt)
		}
	}
	return total
}

// Elapsed returns the cycle's active duration (paused time excluded). For a
// stopped timer the result is fixed regardless of now.
func (t *Timer) Elapsed(now time.Time) time.Duration {
	switch t.current() {
	case TimerIdle:
		return 0
	case TimerStopped:
		return t.EndTime.Sub(t.StartTime) - t.PausedDuration(t.EndTime)
	default:
		return now.Sub(t.StartTime) - t.PausedDuration(now)
	}
}

// CanSubmit reports whether this cycle may back a stage submission: stopped
// with a positive elapsed duration.
func (t *Timer) CanSubmit() bool {
	return t.Status == TimerStopped && t.Elapsed(t.EndTime) > 0
}

// ElectricityCost converts an elapsed duration into machine-time cost at the
// given hourly rate. Both rate and result are in minor currency units.
func ElectricityCost(costPerHour int64, elapsed time.Duration) int64 {
	if elapsed <= 0 {
		return 0
	}
	return int64(math.Round(float64(costPerHour) * elapsed.Hours()))
}

// FormatElapsed renders a duration as HH:MM:SS
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}
