package layers

import (
	"regexp"

	"github.com/fixlayer/fixlayer/pkg/issue"
	"github.com/fixlayer/fixlayer/pkg/layer"
)

// NewTestingLayer creates layer 6, which checks test hygiene.
func NewTestingLayer() layer.Layer {
	return &tableLayer{
		number: layer.Testing,
		name:   "testing",
		desc:   "Test compatibility fixes",
		rules: []layer.LineRule{
			{
				Name:        "no-focused-tests",
				Severity:    issue.SeverityError,
				Message:     "Focused test excludes the rest of the suite",
				Description: ".only() silently skips every other test in CI.",
				Pattern:     regexp.MustCompile(`\b(describe|it|test)\.only\(`),
			},
			{
				Name:        "no-skipped-tests",
				Severity:    issue.SeverityInfo,
				Message:     "Skipped test",
				Description: "Skipped tests rot; either fix or delete them.",
				Pattern:     regexp.MustCompile(`\b(describe|it|test)\.skip\(`),
			},
		},
	}
}
