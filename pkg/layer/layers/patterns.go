package layers

import (
	"regexp"

	"github.com/fixlayer/fixlayer/pkg/issue"
	"github.com/fixlayer/fixlayer/pkg/layer"
)

// NewPatternsLayer creates layer 2, which normalizes general code
// patterns. Later layers assume this normalization already happened, so
// the layer must run before them in fix mode.
func NewPatternsLayer() layer.Layer {
	return &tableLayer{
		number: layer.Patterns,
		name:   "patterns",
		desc:   "General code pattern fixes",
		rules: []layer.LineRule{
			{
				Name:        "no-console",
				Severity:    issue.SeverityWarning,
				Message:     "Unexpected console statement",
				Description: "Console statements should not ship in production code.",
				Pattern:     regexp.MustCompile(`console\.(log|warn|error|debug|info|trace)\(`),
				Skip:        regexp.MustCompile(`^\s*//`),
			},
			{
				Name:        "no-debugger",
				Severity:    issue.SeverityError,
				Message:     "Unexpected debugger statement",
				Description: "Debugger statements halt execution in production.",
				Pattern:     regexp.MustCompile(`\bdebugger\b`),
				Skip:        regexp.MustCompile(`^\s*//`),
			},
			{
				Name:        "no-var",
				Severity:    issue.SeverityWarning,
				Message:     "Unexpected var declaration",
				Description: "var is function-scoped; prefer block-scoped let or const.",
				Pattern:     regexp.MustCompile(`\bvar\s`),
				Skip:        regexp.MustCompile(`^\s*(//|\*)`),
			},
			{
				Name:        "eqeqeq",
				Severity:    issue.SeverityWarning,
				Message:     "Loose equality comparison",
				Description: "Loose equality coerces types; use === and !==.",
				Pattern:     regexp.MustCompile(`[^=!<>](==|!=)[^=]`),
				Skip:        regexp.MustCompile(`^\s*(//|\*)`),
			},
		},
	}
}
