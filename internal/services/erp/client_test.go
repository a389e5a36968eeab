package erp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/meridianfoods/stagehand/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClient_ActiveWorkOrders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/work-orders/active" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []map[string]any{
				{"id": "wo-1", "number": "WO-2026-014", "item_name": "Strawberry slices", "batch_qty": 120.0},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	orders, err := client.ActiveWorkOrders(context.Background())
	if err != nil {
		t.Fatalf("ActiveWorkOrders() error = %v", err)
	}
	if len(orders) != 1 || orders[0].Number != "WO-2026-014" {
		t.Errorf("orders = %+v", orders)
	}
}

func TestClient_EnvelopeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "work order is on hold",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	err := client.SubmitStage(context.Background(), "wo-1", "s1", domain.NewStageResult(domain.StageMixing))
	if err == nil {
		t.Fatal("expected envelope failure to surface as an error")
	}

	var erpErr *domain.ERPError
	if !errors.As(err, &erpErr) {
		t.Fatalf("error = %T, want *domain.ERPError", err)
	}
	if erpErr.Op != "submit_stage" || erpErr.WorkOrderID != "wo-1" {
		t.Errorf("ERPError = %+v", erpErr)
	}
	if got := err.Error(); got != "erp submit_stage [wo-1]: work order is on hold" {
		t.Errorf("Error() = %q", got)
	}
}

func TestClient_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	_, err := client.WorkOrderSteps(context.Background(), "wo-missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	_, err := client.Operators(context.Background())
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestClient_SubmitStagePayload(t *testing.T) {
	var received domain.StageResult
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	result := domain.NewStageResult(domain.StageMixing)
	result.OperatorID = "op-7"
	result.InputQty = 50
	result.OutputQty = 55

	client := NewClient(server.URL, testLogger())
	if err := client.SubmitStage(context.Background(), "wo-1", "s2", result); err != nil {
		t.Fatalf("SubmitStage() error = %v", err)
	}

	if received.SubmissionID == "" {
		t.Error("payload must carry a submission id")
	}
	if received.StageType != domain.StageMixing || received.OutputQty != 55 || received.InputQty != 50 {
		t.Errorf("payload = %+v", received)
	}
}

func TestClient_WorkOrderStepsDefaultsStatusMap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"current_step_index": 1},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, testLogger())
	progress, err := client.WorkOrderSteps(context.Background(), "wo-1")
	if err != nil {
		t.Fatalf("WorkOrderSteps() error = %v", err)
	}
	if progress.CurrentStepIndex != 1 {
		t.Errorf("CurrentStepIndex = %d, want 1", progress.CurrentStepIndex)
	}
	if progress.Status == nil {
		t.Error("Status map must never be nil")
	}
}
