// Package domain contains the core entities for production stage execution:
// work orders, routing steps, the cycle timer, waste reconciliation and
// stage submission payloads.
package domain

import "strings"

// StageType identifies a production stage archetype in a routing.
type StageType string

const (
	StageReceiving   StageType = "receiving"
	StageCleaning    StageType = "cleaning"
	StageCutting     StageType = "cutting"
	StageMixing      StageType = "mixing"
	StageSublimation StageType = "sublimation"
	StagePackaging   StageType = "packaging"
	StageUnknown     StageType = "unknown"
)

// String returns the display string
func (s StageType) String() string {
	return string(s)
}

// stageKeywords maps stage types to the step-name fragments that identify
// them. Order matters: inspection steps mention other stages by name often
// enough that receiving is matched first.
var stageKeywords = []struct {
	stage    StageType
	keywords []string
}{
	{StageReceiving, []string{"receiv", "inspect", "incoming"}},
	{StageCleaning, []string{"clean", "wash"}},
	{StageCutting, []string{"cut", "slice", "dice", "prep"}},
	{StageMixing, []string{"mix", "blend"}},
	{StageSublimation, []string{"sublim", "freeze"}},
	{StagePackaging, []string{"pack", "bag"}},
}

// ResolveStageType maps a routing step name to a stage type by keyword
// matching. Unrecognized names resolve to StageUnknown; the caller decides
// how to degrade.
func ResolveStageType(stepName string) StageType {
	name := strings.ToLower(stepName)
	for _, entry := range stageKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(name, kw) {
				return entry.stage
			}
		}
	}
	return StageUnknown
}
