// Package types contains shared types used across the application.
package types

// Screen represents the top-level screen the terminal is showing
type Screen int

const (
	ScreenOrders Screen = iota
	ScreenExecute
)

// String returns the string representation of the screen
func (s Screen) String() string {
	switch s {
	case ScreenOrders:
		return "ORDERS"
	case ScreenExecute:
		return "EXECUTE"
	default:
		return "UNKNOWN"
	}
}
