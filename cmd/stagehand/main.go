// Package main provides the entry point for the Stagehand terminal.
//
// Stagehand is a TUI a shop-floor operator runs at a work center to execute
// production stages of a work order against the ERP server: pick a work
// order, fill in the stage form, submit the result, advance the routing.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/meridianfoods/stagehand/internal/app"
	"github.com/meridianfoods/stagehand/internal/config"
	"github.com/meridianfoods/stagehand/internal/services/erp"
	"github.com/meridianfoods/stagehand/internal/stageconfig"
)

func main() {
	// .env is optional, absence is not an error
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	registry, err := stageconfig.Load(cfg.Stages.OverlayDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stage configurations: %v\n", err)
		os.Exit(1)
	}

	client := erp.NewClient(cfg.ERP.BaseURL, logger).
		WithTimeout(time.Duration(cfg.ERP.TimeoutMs) * time.Millisecond)

	model := app.New(cfg, client, registry, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger opens the configured log file. The TUI owns stdout, so slog
// writes to a file only.
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Logging.File), 0755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	level := slog.LevelInfo
	if cfg.Logging.Level == "debug" {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}
