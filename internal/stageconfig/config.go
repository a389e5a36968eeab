// Package stageconfig holds the declarative stage configuration registry:
// which widgets a stage execution form shows, the validation rules run at
// submit, the expected yield band and the cost formula. Configurations are
// built once at startup and are immutable afterwards.
package stageconfig

import (
	"github.com/go-playground/validator/v10"

	"github.com/meridianfoods/stagehand/internal/domain"
)

// WidgetType enumerates the input widgets a stage form can include
type WidgetType string

const (
	WidgetOperator  WidgetType = "operator"
	WidgetEquipment WidgetType = "equipment_unit"
	WidgetStopwatch WidgetType = "stopwatch"
	WidgetOutput    WidgetType = "output"
	WidgetMaterials WidgetType = "materials"
	WidgetWaste     WidgetType = "waste"
	WidgetQuality   WidgetType = "batch_quality"
)

// WidgetSpec names one widget on a stage form
type WidgetSpec struct {
	Type     WidgetType `yaml:"type" validate:"required,oneof=operator equipment_unit stopwatch output materials waste batch_quality"`
	Required bool       `yaml:"required"`
}

// RuleType enumerates the validation rule kinds
type RuleType string

const (
	RuleRequired    RuleType = "required"
	RuleRange       RuleType = "range"
	RuleTimerStatus RuleType = "timer_status"
	RuleYieldRange  RuleType = "yield_range"
	RuleCustom      RuleType = "custom"
)

// Rule is one declarative validation rule. Custom validators can only be
// attached in code; YAML overlays are restricted to the declarative kinds.
type Rule struct {
	Field        string   `yaml:"field" validate:"required"`
	Type         RuleType `yaml:"type" validate:"required,oneof=required range timer_status yield_range custom"`
	Min          *float64 `yaml:"min,omitempty"`
	Max          *float64 `yaml:"max,omitempty"`
	ErrorMessage string   `yaml:"error_message" validate:"required"`

	Custom func(value any, snap Snapshot) bool `yaml:"-"`
}

// Config describes one production stage archetype
type Config struct {
	StageType      domain.StageType `yaml:"stage_type" validate:"required"`
	DisplayName    string           `yaml:"display_name" validate:"required"`
	Description    string           `yaml:"description"`
	Icon           string           `yaml:"icon"`
	Widgets        []WidgetSpec     `yaml:"widgets" validate:"required,min=1,dive"`
	Rules          []Rule           `yaml:"rules" validate:"dive"`
	ExpectedYield  float64          `yaml:"expected_yield" validate:"gte=0,lte=200"`
	YieldTolerance float64          `yaml:"yield_tolerance" validate:"gte=0"`
	Costing        CostSpec         `yaml:"cost"`
}

// HasWidget reports whether the configuration includes the widget type
func (c Config) HasWidget(t WidgetType) bool {
	for _, w := range c.Widgets {
		if w.Type == t {
			return true
		}
	}
	return false
}

var validate = validator.New()

// Validate checks the declarative fields of a configuration
func (c Config) Validate() error {
	return validate.Struct(c)
}

// Registry is an immutable lookup table from stage type to configuration.
// Construct it once at startup and inject it; there is no global instance.
type Registry struct {
	configs map[domain.StageType]Config
}

// NewRegistry builds a registry from the given configurations. A later
// configuration for the same stage type replaces an earlier one, which is
// how YAML overlays override the builtins.
func NewRegistry(configs ...Config) *Registry {
	m := make(map[domain.StageType]Config, len(configs))
	for _, c := range configs {
		m[c.StageType] = c
	}
	return &Registry{configs: m}
}

// Get looks up the configuration for a stage type. The second return is
// false for unknown types; callers fall back to a legacy execution path.
func (r *Registry) Get(t domain.StageType) (Config, bool) {
	c, ok := r.configs[t]
	return c, ok
}

// Has reports whether a configuration exists for the stage type
func (r *Registry) Has(t domain.StageType) bool {
	_, ok := r.configs[t]
	return ok
}

// Len returns the number of registered configurations
func (r *Registry) Len() int {
	return len(r.configs)
}
