package toast

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/meridianfoods/stagehand/internal/types"
	"github.com/meridianfoods/stagehand/internal/ui/styles"
)

func TestRenderer_Render_Empty(t *testing.T) {
	renderer := New(styles.New())

	result := renderer.Render([]types.Toast{}, 80)

	assert.Equal(t, "", result, "Empty toast list should return empty string")
}

func TestRenderer_Render_SingleToast(t *testing.T) {
	renderer := New(styles.New())

	toasts := []types.Toast{
		types.NewToast(types.ToastSuccess, "Stage submitted", 5*time.Second),
	}

	result := renderer.Render(toasts, 80)

	assert.NotEmpty(t, result, "Should render toast")
	assert.Contains(t, result, "Stage submitted", "Should contain toast message")
}

func TestRenderer_Render_MultipleToasts(t *testing.T) {
	renderer := New(styles.New())

	toasts := []types.Toast{
		types.NewToast(types.ToastInfo, "Loading work orders", 5*time.Second),
		types.NewToast(types.ToastWarning, "Step lookup failed", 5*time.Second),
		types.NewToast(types.ToastError, "ERP unreachable", 5*time.Second),
	}

	result := renderer.Render(toasts, 80)

	assert.NotEmpty(t, result, "Should render toasts")
	assert.Contains(t, result, "Loading work orders")
	assert.Contains(t, result, "Step lookup failed")
	assert.Contains(t, result, "ERP unreachable")

	lines := strings.Split(result, "\n")
	assert.Greater(t, len(lines), 1, "Multiple toasts should create multiple lines")
}

func TestRenderer_styleForLevel(t *testing.T) {
	renderer := New(styles.New())

	tests := []struct {
		name  string
		level types.ToastLevel
	}{
		{"Info returns ToastInfo style", types.ToastInfo},
		{"Success returns ToastSuccess style", types.ToastSuccess},
		{"Warning returns ToastWarning style", types.ToastWarning},
		{"Error returns ToastError style", types.ToastError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := renderer.styleForLevel(tt.level)
			assert.NotNil(t, style, "Style should not be nil")
		})
	}
}

func TestToastExpiry(t *testing.T) {
	toast := types.NewToast(types.ToastInfo, "hello", 100*time.Millisecond)
	assert.False(t, toast.Expired(time.Now()))
	assert.True(t, toast.Expired(time.Now().Add(time.Second)))
}
