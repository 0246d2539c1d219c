package layers

import (
	"fmt"
	"slices"

	"github.com/fixlayer/fixlayer/pkg/issue"
	"github.com/fixlayer/fixlayer/pkg/layer"
)

// recurringThreshold is the issue count at which a rule is reported as a
// recurring pattern.
const recurringThreshold = 3

// adaptiveLayer is layer 7. It is a stateless heuristic pass: it consumes
// only the issues accumulated earlier in the same call, never history
// from previous runs, so per-call purity holds.
type adaptiveLayer struct{}

// NewAdaptiveLayer creates layer 7.
func NewAdaptiveLayer() layer.Layer {
	return &adaptiveLayer{}
}

func (l *adaptiveLayer) Number() int { return layer.Adaptive }

func (l *adaptiveLayer) Name() string { return "adaptive" }

func (l *adaptiveLayer) Description() string {
	return "Cross-rule pattern analysis within a single run"
}

func (l *adaptiveLayer) Rules() []layer.RuleInfo {
	return []layer.RuleInfo{{
		Name:        "recurring-pattern",
		Description: "A rule fired repeatedly in this file, suggesting a systemic habit.",
		Severity:    issue.SeverityInfo,
		Fixable:     false,
	}}
}

func (l *adaptiveLayer) Detect(_ string, ctx *layer.Context) ([]issue.Issue, error) {
	counts := make(map[string]int)
	for _, iss := range ctx.Accumulated {
		if iss.Layer < layer.Adaptive {
			counts[iss.RuleName]++
		}
	}

	// Iterate rule names in sorted order for deterministic output.
	names := make([]string, 0, len(counts))
	for name, n := range counts {
		if n >= recurringThreshold {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	var issues []issue.Issue
	for _, name := range names {
		issues = append(issues, issue.Issue{
			Severity:    issue.SeverityInfo,
			Message:     fmt.Sprintf("Rule %s fired %d times in this file", name, counts[name]),
			Description: "Repeated violations of one rule usually mean a habit worth fixing at the source.",
			Layer:       layer.Adaptive,
			Location:    issue.Location{Line: 1, Column: 1},
			RuleName:    "recurring-pattern",
		})
	}

	return issues, nil
}
