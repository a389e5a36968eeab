// Package erp is the client for the ERP application server. Every server
// action is an opaque request/response call wrapped in the uniform
// {success, error} envelope; this layer never retries.
package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/meridianfoods/stagehand/internal/domain"
)

// Client talks to the ERP server over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an ERP client for the given base URL
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// WithTimeout overrides the default request timeout
func (c *Client) WithTimeout(d time.Duration) *Client {
	if d > 0 {
		c.httpClient.Timeout = d
	}
	return c
}

// envelope is the uniform response wrapper used by every server action
type envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// ActiveWorkOrders fetches the work orders currently released to the floor
func (c *Client) ActiveWorkOrders(ctx context.Context) ([]domain.WorkOrder, error) {
	c.logger.Debug("fetching active work orders")

	var orders []domain.WorkOrder
	if err := c.get(ctx, "/api/v1/work-orders/active", &orders); err != nil {
		return nil, &domain.ERPError{Op: "work_orders", Err: err}
	}

	c.logger.Debug("fetched work orders", "count", len(orders))
	return orders, nil
}

// WorkOrderSteps fetches the current step cursor and per-step statuses for a
// work order.
func (c *Client) WorkOrderSteps(ctx context.Context, workOrderID string) (domain.StepProgress, error) {
	c.logger.Debug("fetching work order steps", "work_order", workOrderID)

	var progress domain.StepProgress
	path := fmt.Sprintf("/api/v1/work-orders/%s/steps", url.PathEscape(workOrderID))
	if err := c.get(ctx, path, &progress); err != nil {
		return domain.StepProgress{}, &domain.ERPError{Op: "work_order_steps", WorkOrderID: workOrderID, Err: err}
	}
	if progress.Status == nil {
		progress.Status = map[string]domain.StepStatus{}
	}
	return progress, nil
}

// SubmitStage posts a completed stage's result. The server treats the
// payload's submission id as an idempotency key.
func (c *Client) SubmitStage(ctx context.Context, workOrderID, stepID string, result domain.StageResult) error {
	c.logger.Debug("submitting stage",
		"work_order", workOrderID,
		"step", stepID,
		"stage", result.StageType,
		"submission", result.SubmissionID)

	path := fmt.Sprintf("/api/v1/work-orders/%s/steps/%s/submit",
		url.PathEscape(workOrderID), url.PathEscape(stepID))
	if err := c.post(ctx, path, result, nil); err != nil {
		return &domain.ERPError{Op: "submit_stage", WorkOrderID: workOrderID, Err: err}
	}

	c.logger.Info("stage submitted", "work_order", workOrderID, "step", stepID, "stage", result.StageType)
	return nil
}

// EquipmentUnits fetches the equipment units at a work center
func (c *Client) EquipmentUnits(ctx context.Context, workCenterID string) ([]domain.EquipmentUnit, error) {
	c.logger.Debug("fetching equipment units", "work_center", workCenterID)

	var units []domain.EquipmentUnit
	path := fmt.Sprintf("/api/v1/work-centers/%s/equipment", url.PathEscape(workCenterID))
	if err := c.get(ctx, path, &units); err != nil {
		return nil, &domain.ERPError{Op: "equipment_units", Err: err}
	}
	return units, nil
}

// Operators fetches the operators who may be assigned to a stage
func (c *Client) Operators(ctx context.Context) ([]domain.Operator, error) {
	c.logger.Debug("fetching operators")

	var operators []domain.Operator
	if err := c.get(ctx, "/api/v1/operators", &operators); err != nil {
		return nil, &domain.ERPError{Op: "operators", Err: err}
	}
	return operators, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: status %d", domain.ErrUnavailable, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		if env.Error != "" {
			return fmt.Errorf("%s", env.Error)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}
