package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("server unavailable")
	ErrUserCanceled = errors.New("user canceled")
)

// ERPError represents a failed call to the ERP server
type ERPError struct {
	Op          string // Operation: "work_orders", "submit_stage", etc.
	WorkOrderID string // Optional: specific work order
	Message     string // Human-readable context
	Err         error  // Underlying error
}

func (e *ERPError) Error() string {
	if e.WorkOrderID != "" {
		return fmt.Sprintf("erp %s [%s]: %s", e.Op, e.WorkOrderID, e.message())
	}
	return fmt.Sprintf("erp %s: %s", e.Op, e.message())
}

func (e *ERPError) message() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "failed"
}

func (e *ERPError) Unwrap() error {
	return e.Err
}

// TimerError represents an invalid cycle timer transition
type TimerError struct {
	Op   string
	From TimerStatus
}

func (e *TimerError) Error() string {
	return fmt.Sprintf("timer: cannot %s from %s", e.Op, e.From)
}
