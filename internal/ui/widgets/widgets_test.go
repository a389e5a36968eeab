package widgets

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meridianfoods/stagehand/internal/domain"
	"github.com/meridianfoods/stagehand/internal/ui/styles"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// runCmd executes a command chain and returns every message it produced
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, runCmd(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func findMsg[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, m := range msgs {
		if typed, ok := m.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

var testOperators = []domain.Operator{
	{ID: "op-1", Name: "Ana Flores", Badge: "A12"},
	{ID: "op-2", Name: "Jo Keller", Badge: "B03"},
}

func TestOperatorPicker_SelectEmitsSnapshot(t *testing.T) {
	w := NewOperatorPicker(testOperators, styles.New())
	_ = w.Focus()

	next, _ := w.Update(keyRune('j'))
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})

	chosen, ok := findMsg[OperatorChosenMsg](runCmd(cmd))
	if !ok {
		t.Fatal("expected an OperatorChosenMsg")
	}
	if chosen.Operator.ID != "op-2" {
		t.Errorf("chosen = %s, want op-2", chosen.Operator.ID)
	}
	picker := next.(*OperatorPicker)
	if picker.Chosen() == nil || picker.Chosen().ID != "op-2" {
		t.Error("picker must remember its selection")
	}
}

func TestOperatorPicker_IgnoresInputWhenBlurred(t *testing.T) {
	w := NewOperatorPicker(testOperators, styles.New())

	next, cmd := w.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("blurred widget must not emit")
	}
	if next.(*OperatorPicker).Chosen() != nil {
		t.Error("blurred widget must not change state")
	}
}

func TestEquipmentPicker_SkipsUnavailableUnit(t *testing.T) {
	units := []domain.EquipmentUnit{
		{ID: "fd-1", Name: "Freeze dryer 1", Available: false},
		{ID: "fd-2", Name: "Freeze dryer 2", Available: true},
	}
	w := NewEquipmentPicker(units, styles.New())
	_ = w.Focus()

	_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := findMsg[EquipmentChosenMsg](runCmd(cmd)); ok {
		t.Error("unavailable unit must not be selectable")
	}

	next, _ := w.Update(keyRune('j'))
	_, cmd = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	chosen, ok := findMsg[EquipmentChosenMsg](runCmd(cmd))
	if !ok || chosen.Unit.ID != "fd-2" {
		t.Errorf("chosen = %+v, want fd-2", chosen)
	}
}

func TestStopwatch_Lifecycle(t *testing.T) {
	w := NewStopwatch(600_000, styles.New())
	_ = w.Focus()

	clock := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return clock }

	next, cmd := w.Update(keyRune('s'))
	msgs := runCmd(cmd)
	if _, ok := findMsg[TimerChangedMsg](msgs); !ok {
		t.Fatal("start must emit a timer snapshot")
	}
	sw := next.(*Stopwatch)
	if sw.Timer().Status != domain.TimerRunning {
		t.Errorf("status = %v, want running", sw.Timer().Status)
	}

	clock = clock.Add(30 * time.Minute)
	next, cmd = sw.Update(keyRune('x'))
	sw = next.(*Stopwatch)
	changed, ok := findMsg[TimerChangedMsg](runCmd(cmd))
	if !ok {
		t.Fatal("stop must emit a timer snapshot")
	}
	if changed.Timer.Status != domain.TimerStopped {
		t.Errorf("snapshot status = %v, want stopped", changed.Timer.Status)
	}
	snapshot := sw.Timer()
	if got := snapshot.Elapsed(clock); got != 30*time.Minute {
		t.Errorf("elapsed = %v, want 30m", got)
	}
	if !snapshot.CanSubmit() {
		t.Error("stopped timer with elapsed time must be submittable")
	}
}

func TestStopwatch_TickStopsWhenNotRunning(t *testing.T) {
	w := NewStopwatch(0, styles.New())
	_ = w.Focus()

	_, cmd := w.Update(stopwatchTickMsg(time.Now()))
	if cmd != nil {
		t.Error("tick on an idle timer must not reschedule")
	}

	next, _ := w.Update(keyRune('s'))
	sw := next.(*Stopwatch)
	if _, cmd = sw.Update(stopwatchTickMsg(time.Now())); cmd == nil {
		t.Error("tick on a running timer must reschedule")
	}

	next, _ = sw.Update(keyRune('x'))
	sw = next.(*Stopwatch)
	if _, cmd = sw.Update(stopwatchTickMsg(time.Now())); cmd != nil {
		t.Error("tick on a stopped timer must not reschedule")
	}
}

func typeDigits(t *testing.T, w Widget, digits string) (Widget, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, r := range digits {
		w, cmd = w.Update(keyRune(r))
	}
	return w, cmd
}

func TestWasteScale_EntryAndClamp(t *testing.T) {
	w := NewWasteScale(50, nil, styles.New())
	_ = w.Focus()

	next, cmd := typeDigits(t, Widget(w), "80")
	changed, ok := findMsg[WasteChangedMsg](runCmd(cmd))
	if !ok {
		t.Fatal("waste entry must emit a snapshot")
	}
	if changed.Scale.WasteQty != 50 {
		t.Errorf("WasteQty = %v, want clamped to 50", changed.Scale.WasteQty)
	}
	if changed.Scale.OutputQty() != 0 {
		t.Errorf("OutputQty = %v, want 0", changed.Scale.OutputQty())
	}
	_ = next
}

func TestWasteScale_ReasonToggle(t *testing.T) {
	w := NewWasteScale(100, nil, styles.New())
	_ = w.Focus()

	_, cmd := w.Update(keyRune('2'))
	changed, ok := findMsg[WasteChangedMsg](runCmd(cmd))
	if !ok {
		t.Fatal("reason toggle must emit a snapshot")
	}
	if !changed.Scale.HasReason(domain.WasteTrim) {
		t.Errorf("reasons = %v, want trim selected", changed.Scale.Reasons)
	}
}

func TestOutputEntry_EmitsQty(t *testing.T) {
	w := NewOutputEntry(50, "kg", styles.New())
	_ = w.Focus()

	_, cmd := typeDigits(t, Widget(w), "55")
	changed, ok := findMsg[OutputChangedMsg](runCmd(cmd))
	if !ok {
		t.Fatal("output entry must emit a snapshot")
	}
	if changed.Qty != 55 {
		t.Errorf("Qty = %v, want 55", changed.Qty)
	}
}

func TestQualityEntry_UntouchedReportsNoMetrics(t *testing.T) {
	w := NewQualityEntry(styles.New())

	if _, touched := w.Metrics(); touched {
		t.Error("fresh quality widget must report untouched")
	}

	_ = w.Focus()
	next, _ := w.Update(tea.KeyMsg{Type: tea.KeyDown}) // to visual
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyLeft})
	q := next.(*QualityEntry)

	if _, ok := findMsg[QualityChangedMsg](runCmd(cmd)); !ok {
		t.Fatal("adjusting an ordinal must emit a snapshot")
	}
	metrics, touched := q.Metrics()
	if !touched {
		t.Error("adjusted widget must report touched")
	}
	if metrics.Visual != domain.VisualExcellent {
		t.Errorf("visual = %v, want excellent", metrics.Visual)
	}
}

func TestMaterialsList_AdjustLine(t *testing.T) {
	planned := []domain.Material{
		{ItemID: "i-1", Name: "Strawberries", Qty: 120, Unit: "kg"},
		{ItemID: "i-2", Name: "Citric acid", Qty: 0.5, Unit: "kg"},
	}
	w := NewMaterialsList(planned, styles.New())
	_ = w.Focus()

	next, _ := w.Update(tea.KeyMsg{Type: tea.KeyEnter}) // edit first line
	next, _ = typeDigits(t, next, "118")
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})

	changed, ok := findMsg[MaterialsChangedMsg](runCmd(cmd))
	if !ok {
		t.Fatal("confirming a line must emit a snapshot")
	}
	if changed.Materials[0].Qty != 118 {
		t.Errorf("Qty = %v, want 118", changed.Materials[0].Qty)
	}
	if planned[0].Qty != 120 {
		t.Error("widget must not mutate the caller's slice")
	}
	_ = next
}
