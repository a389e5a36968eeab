// Package config loads the terminal's configuration from .stagehand.json,
// falling back to defaults for anything missing.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the full Stagehand configuration
type Config struct {
	ERP     ERPConfig     `json:"erp"`
	Stages  StagesConfig  `json:"stages"`
	Logging LoggingConfig `json:"logging"`
	UI      UIConfig      `json:"ui"`
}

// ERPConfig contains the ERP connection settings
type ERPConfig struct {
	BaseURL   string `json:"baseUrl"`
	TimeoutMs int    `json:"timeoutMs"`
}

// StagesConfig contains stage configuration overlay settings
type StagesConfig struct {
	// OverlayDir holds YAML stage configurations layered over the
	// builtins. Empty or missing means builtins only.
	OverlayDir string `json:"overlayDir"`
}

// LoggingConfig contains log output settings
type LoggingConfig struct {
	File  string `json:"file"`
	Level string `json:"level"`
}

// UIConfig contains terminal behavior settings
type UIConfig struct {
	ToastLifetimeMs int    `json:"toastLifetimeMs"`
	DefaultBadge    string `json:"defaultBadge"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		ERP: ERPConfig{
			BaseURL:   "http://localhost:8080",
			TimeoutMs: 30000,
		},
		Stages: StagesConfig{
			OverlayDir: "",
		},
		Logging: LoggingConfig{
			File:  filepath.Join(homeDir, ".stagehand", "stagehand.log"),
			Level: "info",
		},
		UI: UIConfig{
			ToastLifetimeMs: 4000,
			DefaultBadge:    "",
		},
	}
}

// LoadConfig loads configuration from the directory with priority:
// 1. STAGEHAND_ERP_URL environment variable (ERP base URL only)
// 2. .stagehand.json in the directory
// 3. Defaults
func LoadConfig(dir string) (*Config, error) {
	cfg := DefaultConfig()

	path := filepath.Join(dir, ".stagehand.json")
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg Config
		if err := json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse .stagehand.json: %w", err)
		}
		cfg = MergeWithDefaults(&fileCfg)
	}

	if url := os.Getenv("STAGEHAND_ERP_URL"); url != "" {
		cfg.ERP.BaseURL = url
	}

	return cfg, nil
}

// SaveConfig saves configuration to the specified path
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.ERP.BaseURL == "" {
		cfg.ERP.BaseURL = defaults.ERP.BaseURL
	}
	if cfg.ERP.TimeoutMs == 0 {
		cfg.ERP.TimeoutMs = defaults.ERP.TimeoutMs
	}

	if cfg.Logging.File == "" {
		cfg.Logging.File = defaults.Logging.File
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}

	if cfg.UI.ToastLifetimeMs == 0 {
		cfg.UI.ToastLifetimeMs = defaults.UI.ToastLifetimeMs
	}

	return cfg
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}
