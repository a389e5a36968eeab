package stageconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlConfig is the on-disk shape of an overlay. Cost formulas and custom
// validators are code, not data, so the file can only name a formula and use
// the declarative rule kinds.
type yamlConfig struct {
	Config  `yaml:",inline"`
	Formula string `yaml:"formula"`
}

// ParseYAML decodes and validates a single stage configuration payload
func ParseYAML(data []byte) (Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Config{}, errors.New("stageconfig: definition payload is empty")
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Config{}, fmt.Errorf("stageconfig: decode definition: %w", err)
	}
	for _, rule := range yc.Rules {
		if rule.Type == RuleCustom {
			return Config{}, fmt.Errorf("stageconfig: %s: custom rules cannot be defined in YAML", yc.StageType)
		}
	}
	formula, err := FormulaByName(yc.Formula)
	if err != nil {
		return Config{}, err
	}
	cfg := yc.Config
	cfg.Costing = CostSpec{Type: yc.Formula, Formula: formula}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("stageconfig: %s: %w", cfg.StageType, err)
	}
	return cfg, nil
}

// LoadDir scans a directory for *.yaml stage configurations. A missing
// directory means "no overlays" to keep startup simple.
func LoadDir(dir string) ([]Config, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(trimmed)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("stageconfig: read %s: %w", trimmed, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var configs []Config
	for _, name := range names {
		path := filepath.Join(trimmed, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("stageconfig: read %s: %w", path, err)
		}
		cfg, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("stageconfig: %s: %w", path, err)
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

// Load builds the registry from the builtins plus any overlays in dir.
// Overlays win on stage-type collisions.
func Load(dir string) (*Registry, error) {
	overlays, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	return NewRegistry(append(Builtin(), overlays...)...), nil
}
