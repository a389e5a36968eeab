package domain

import (
	"errors"
	"testing"
	"time"
)

var t0 = time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

func at(offset time.Duration) time.Time {
	return t0.Add(offset)
}

func TestTimer_StartPauseResumeStop(t *testing.T) {
	tm := NewTimer()

	if err := tm.Start(at(0)); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if tm.Status != TimerRunning {
		t.Errorf("status = %v, want running", tm.Status)
	}

	if err := tm.Pause(at(10 * time.Minute)); err != nil {
		t.Fatalf("Pause() error = %v", err)
	}
	if err := tm.Resume(at(15 * time.Minute)); err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	if err := tm.Stop(at(45 * time.Minute)); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	// 45 min wall clock minus 5 min paused = 40 min active
	if got := tm.Elapsed(at(2 * time.Hour)); got != 40*time.Minute {
		t.Errorf("Elapsed() = %v, want 40m", got)
	}
	if tm.EndTime != at(45*time.Minute) {
		t.Errorf("EndTime = %v, want %v", tm.EndTime, at(45*time.Minute))
	}
}

func TestTimer_ElapsedExcludesOpenPause(t *testing.T) {
	tm := NewTimer()
	if err := tm.Start(at(0)); err != nil {
		t.Fatal(err)
	}
	if err := tm.Pause(at(10 * time.Minute)); err != nil {
		t.Fatal(err)
	}

	// While paused, elapsed stays frozen at the pause instant.
	if got := tm.Elapsed(at(30 * time.Minute)); got != 10*time.Minute {
		t.Errorf("Elapsed() during pause = %v, want 10m", got)
	}
}

func TestTimer_StopWhilePausedClosesInterval(t *testing.T) {
	tm := NewTimer()
	if err := tm.Start(at(0)); err != nil {
		t.Fatal(err)
	}
	if err := tm.Pause(at(20 * time.Minute)); err != nil {
		t.Fatal(err)
	}
	if err := tm.Stop(at(50 * time.Minute)); err != nil {
		t.Fatal(err)
	}

	if got := tm.Elapsed(at(3 * time.Hour)); got != 20*time.Minute {
		t.Errorf("Elapsed() = %v, want 20m", got)
	}
	if open := tm.PauseHistory[len(tm.PauseHistory)-1]; open.ResumedAt.IsZero() {
		t.Error("expected stop to close the open pause interval")
	}
}

func TestTimer_MonotonicAcrossPauseSequences(t *testing.T) {
	tests := []struct {
		name    string
		pauses  []struct{ at, until time.Duration }
		stop    time.Duration
		elapsed time.Duration
	}{
		{"no pauses", nil, 30 * time.Minute, 30 * time.Minute},
		{
			"two pauses",
			[]struct{ at, until time.Duration }{
				{5 * time.Minute, 10 * time.Minute},
				{20 * time.Minute, 22 * time.Minute},
			},
			60 * time.Minute,
			53 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := NewTimer()
			if err := tm.Start(at(0)); err != nil {
				t.Fatal(err)
			}
			for _, p := range tt.pauses {
				if err := tm.Pause(at(p.at)); err != nil {
					t.Fatal(err)
				}
				if err := tm.Resume(at(p.until)); err != nil {
					t.Fatal(err)
				}
			}
			if err := tm.Stop(at(tt.stop)); err != nil {
				t.Fatal(err)
			}

			got := tm.Elapsed(at(tt.stop))
			if got != tt.elapsed {
				t.Errorf("Elapsed() = %v, want %v", got, tt.elapsed)
			}
			if got < 0 {
				t.Error("Elapsed() must never be negative")
			}
			want := tm.EndTime.Sub(tm.StartTime) - tm.PausedDuration(tm.EndTime)
			if got != want {
				t.Errorf("Elapsed() = %v, want wall clock minus paused = %v", got, want)
			}
		})
	}
}

func TestTimer_InvalidTransitions(t *testing.T) {
	tm := NewTimer()

	if err := tm.Pause(at(0)); err == nil {
		t.Error("Pause() from idle should fail")
	}
	if err := tm.Stop(at(0)); err == nil {
		t.Error("Stop() from idle should fail")
	}
	if err := tm.Reset(); err == nil {
		t.Error("Reset() from idle should fail")
	}

	if err := tm.Start(at(0)); err != nil {
		t.Fatal(err)
	}
	if err := tm.Start(at(time.Minute)); err == nil {
		t.Error("Start() while running should fail")
	}
	if err := tm.Stop(at(time.Minute)); err != nil {
		t.Fatal(err)
	}

	// Stopped timers are frozen until reset.
	if err := tm.Start(at(2 * time.Minute)); err == nil {
		t.Error("Start() after stop should fail without reset")
	}
	var terr *TimerError
	if err := tm.Pause(at(2 * time.Minute)); !errors.As(err, &terr) {
		t.Errorf("Pause() after stop = %v, want *TimerError", err)
	}
}

func TestTimer_ResetReturnsToIdle(t *testing.T) {
	tm := NewTimer()
	if err := tm.Start(at(0)); err != nil {
		t.Fatal(err)
	}
	if err := tm.Stop(at(time.Hour)); err != nil {
		t.Fatal(err)
	}
	if err := tm.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	if tm.Status != TimerIdle {
		t.Errorf("status = %v, want idle", tm.Status)
	}
	if !tm.StartTime.IsZero() || !tm.EndTime.IsZero() || len(tm.PauseHistory) != 0 {
		t.Error("Reset() must clear all timing fields")
	}
	if err := tm.Start(at(0)); err != nil {
		t.Errorf("Start() after reset error = %v", err)
	}
}

func TestTimer_CanSubmit(t *testing.T) {
	tm := NewTimer()
	if tm.CanSubmit() {
		t.Error("idle timer must not be submittable")
	}

	if err := tm.Start(at(0)); err != nil {
		t.Fatal(err)
	}
	if tm.CanSubmit() {
		t.Error("running timer must not be submittable")
	}

	// Stopping at the same instant it started leaves zero elapsed time.
	if err := tm.Stop(at(0)); err != nil {
		t.Fatal(err)
	}
	if tm.CanSubmit() {
		t.Error("stopped timer with zero elapsed must not be submittable")
	}

	if err := tm.Reset(); err != nil {
		t.Fatal(err)
	}
	if err := tm.Start(at(0)); err != nil {
		t.Fatal(err)
	}
	if err := tm.Stop(at(time.Second)); err != nil {
		t.Fatal(err)
	}
	if !tm.CanSubmit() {
		t.Error("stopped timer with elapsed > 0 must be submittable")
	}
}

func TestElectricityCost(t *testing.T) {
	tests := []struct {
		name        string
		costPerHour int64
		elapsed     time.Duration
		want        int64
	}{
		{"30 minutes at 600000/h", 600_000, 30 * time.Minute, 300_000},
		{"one hour", 450_000, time.Hour, 450_000},
		{"zero elapsed", 600_000, 0, 0},
		{"rounds to nearest", 100, 30*time.Minute + 18*time.Second, 51},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ElectricityCost(tt.costPerHour, tt.elapsed); got != tt.want {
				t.Errorf("ElectricityCost() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{61 * time.Second, "00:01:01"},
		{2*time.Hour + 3*time.Minute + 4*time.Second, "02:03:04"},
		{-time.Minute, "00:00:00"},
	}

	for _, tt := range tests {
		if got := FormatElapsed(tt.d); got != tt.want {
			t.Errorf("FormatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
