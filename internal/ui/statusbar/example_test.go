package statusbar_test

import (
	"fmt"

	"github.com/meridianfoods/stagehand/internal/types"
	"github.com/meridianfoods/stagehand/internal/ui/statusbar"
	"github.com/meridianfoods/stagehand/internal/ui/styles"
)

// Example demonstrates how to use the StatusBar
func Example() {
	style := styles.New()

	// Create a status bar for the work order list
	sb := statusbar.New(types.ScreenOrders, 80, style)

	// Render it (output will include ANSI codes for styling)
	rendered := sb.Render()

	// For this example, we just verify it's not empty
	fmt.Println(len(rendered) > 0)
	// Output: true
}

// ExampleGetHints shows how to get hints for different screens
func ExampleGetHints() {
	hints := statusbar.GetHints(types.ScreenOrders)
	fmt.Println(hints)
	// Output: j/k: orders  Enter: execute  r: refresh  q: quit
}
