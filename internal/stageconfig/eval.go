package stageconfig

import "github.com/meridianfoods/stagehand/internal/domain"

// Evaluate runs every rule of the configuration in order against the
// snapshot and returns all failure messages. It never fails fast: the
// operator sees everything wrong with the form at once.
func Evaluate(cfg Config, snap Snapshot) []string {
	var failures []string
	for _, rule := range cfg.Rules {
		if !rulePasses(rule, snap) {
			failures = append(failures, rule.ErrorMessage)
		}
	}
	return failures
}

func rulePasses(rule Rule, snap Snapshot) bool {
	switch rule.Type {
	case RuleRequired:
		return !isEmpty(snap.Field(rule.Field))

	case RuleRange:
		v, ok := toFloat(snap.Field(rule.Field))
		if !ok {
			return false
		}
		return inRange(v, rule.Min, rule.Max)

	case RuleTimerStatus:
		return snap.Timer != nil && snap.Timer.CanSubmit()

	case RuleYieldRange:
		return inRange(snap.YieldPercent(), rule.Min, rule.Max)

	case RuleCustom:
		if rule.Custom == nil {
			return true
		}
		return rule.Custom(snap.Field(rule.Field), snap)

	default:
		return true
	}
}

// isEmpty mirrors the falsy-check semantics of required rules: nil, empty
// string, zero number, false and nil-ish composites all count as missing.
func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case float64:
		return val == 0
	case int:
		return val == 0
	case int64:
		return val == 0
	case []domain.WasteReason:
		return len(val) == 0
	case *domain.Timer:
		return val == nil
	default:
		return false
	}
}

func toFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	default:
		return 0, false
	}
}

func inRange(v float64, min, max *float64) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}
