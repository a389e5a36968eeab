package statusbar

import "github.com/meridianfoods/stagehand/internal/types"

// GetHints returns the keybinding hints for the given screen
func GetHints(screen types.Screen) string {
	switch screen {
	case types.ScreenOrders:
		return "j/k: orders  Enter: execute  r: refresh  q: quit"
	case types.ScreenExecute:
		return "Tab: next field  Ctrl+s: submit  Esc: back"
	default:
		return ""
	}
}
