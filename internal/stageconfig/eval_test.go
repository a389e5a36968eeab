package stageconfig

import (
	"testing"
	"time"

	"github.com/meridianfoods/stagehand/internal/domain"
)

func stoppedTimer(t *testing.T, d time.Duration) *domain.Timer {
	t.Helper()
	start := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	tm := domain.NewTimer()
	if err := tm.Start(start); err != nil {
		t.Fatal(err)
	}
	if err := tm.Stop(start.Add(d)); err != nil {
		t.Fatal(err)
	}
	return tm
}

func TestEvaluate_CollectsAllFailures(t *testing.T) {
	cfg := Config{
		Rules: []Rule{
			{Field: "operator", Type: RuleRequired, ErrorMessage: "operator missing"},
			{Field: "output_qty", Type: RuleRange, Min: bound(0), ErrorMessage: "output negative"},
			{Field: "timer", Type: RuleTimerStatus, ErrorMessage: "timer not stopped"},
		},
	}

	// Rules 1 and 3 fail, rule 2 passes.
	snap := Snapshot{OutputQty: 10}
	failures := Evaluate(cfg, snap)

	if len(failures) != 2 {
		t.Fatalf("Evaluate() returned %d failures, want 2: %v", len(failures), failures)
	}
	if failures[0] != "operator missing" || failures[1] != "timer not stopped" {
		t.Errorf("failures = %v, want configuration order preserved", failures)
	}
}

func TestEvaluate_RequiredTreatsZeroAsMissing(t *testing.T) {
	cfg := Config{Rules: []Rule{
		{Field: "output_qty", Type: RuleRequired, ErrorMessage: "output required"},
	}}

	if got := Evaluate(cfg, Snapshot{OutputQty: 0}); len(got) != 1 {
		t.Errorf("zero output should fail required, got %v", got)
	}
	if got := Evaluate(cfg, Snapshot{OutputQty: 55}); len(got) != 0 {
		t.Errorf("non-zero output should pass required, got %v", got)
	}
}

func TestEvaluate_YieldRangeBoundaries(t *testing.T) {
	cfg := Config{Rules: []Rule{
		{Field: "output_qty", Type: RuleYieldRange, Min: bound(7), Max: bound(13), ErrorMessage: "yield out of band"},
	}}

	tests := []struct {
		name     string
		input    float64
		output   float64
		wantFail bool
	}{
		{"95% fails above band", 100, 95, true},
		{"9% passes", 100, 9, false},
		{"exact min passes", 100, 7, false},
		{"exact max passes", 100, 13, false},
		{"just under min fails", 100, 6.9, true},
		{"zero input yields 0, fails min", 0, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := Snapshot{InputQty: tt.input, OutputQty: tt.output}
			failures := Evaluate(cfg, snap)
			if (len(failures) > 0) != tt.wantFail {
				t.Errorf("failures = %v, wantFail = %v", failures, tt.wantFail)
			}
		})
	}
}

func TestEvaluate_TimerStatusRule(t *testing.T) {
	cfg := Config{Rules: []Rule{
		{Field: "timer", Type: RuleTimerStatus, ErrorMessage: "cycle not finished"},
	}}

	if got := Evaluate(cfg, Snapshot{}); len(got) != 1 {
		t.Errorf("missing timer should fail, got %v", got)
	}

	running := domain.NewTimer()
	if err := running.Start(time.Now()); err != nil {
		t.Fatal(err)
	}
	if got := Evaluate(cfg, Snapshot{Timer: running}); len(got) != 1 {
		t.Errorf("running timer should fail, got %v", got)
	}

	if got := Evaluate(cfg, Snapshot{Timer: stoppedTimer(t, 30*time.Minute)}); len(got) != 0 {
		t.Errorf("stopped timer with elapsed time should pass, got %v", got)
	}

	if got := Evaluate(cfg, Snapshot{Timer: stoppedTimer(t, 0)}); len(got) != 1 {
		t.Errorf("stopped timer with zero elapsed should fail, got %v", got)
	}
}

func TestEvaluate_RangeWithOptionalBounds(t *testing.T) {
	maxOnly := Config{Rules: []Rule{
		{Field: "waste_percent", Type: RuleRange, Max: bound(20), ErrorMessage: "too much waste"},
	}}

	if got := Evaluate(maxOnly, Snapshot{InputQty: 100, WasteQty: 20}); len(got) != 0 {
		t.Errorf("20%% waste should pass max=20, got %v", got)
	}
	if got := Evaluate(maxOnly, Snapshot{InputQty: 100, WasteQty: 20.5}); len(got) != 1 {
		t.Errorf("20.5%% waste should fail max=20, got %v", got)
	}
}

func TestEvaluate_CustomRule(t *testing.T) {
	cfg := Config{Rules: []Rule{
		{Field: "waste_reasons", Type: RuleCustom, Custom: reasonRequired, ErrorMessage: "reason required"},
	}}

	if got := Evaluate(cfg, Snapshot{WasteQty: 5}); len(got) != 1 {
		t.Errorf("waste without reason should fail, got %v", got)
	}
	snap := Snapshot{WasteQty: 5, Reasons: []domain.WasteReason{domain.WasteTrim}}
	if got := Evaluate(cfg, snap); len(got) != 0 {
		t.Errorf("waste with reason should pass, got %v", got)
	}
	if got := Evaluate(cfg, Snapshot{}); len(got) != 0 {
		t.Errorf("no waste should pass without reasons, got %v", got)
	}

	// A custom rule without a validator is a no-op, not a failure.
	nilCustom := Config{Rules: []Rule{
		{Field: "operator", Type: RuleCustom, ErrorMessage: "never"},
	}}
	if got := Evaluate(nilCustom, Snapshot{}); len(got) != 0 {
		t.Errorf("nil custom validator should pass, got %v", got)
	}
}
