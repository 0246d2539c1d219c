package layers

import (
	"regexp"

	"github.com/fixlayer/fixlayer/pkg/issue"
	"github.com/fixlayer/fixlayer/pkg/layer"
)

// NewConfigurationLayer creates layer 1, which checks compiler and
// framework configuration files for outdated or unsafe settings.
func NewConfigurationLayer() layer.Layer {
	return &tableLayer{
		number: layer.Configuration,
		name:   "configuration",
		desc:   "Compiler and framework configuration fixes",
		rules: []layer.LineRule{
			{
				Name:        "tsconfig-target",
				Severity:    issue.SeverityWarning,
				Message:     "Compilation target es5 is outdated",
				Description: "Modern runtimes support ES2020; targeting es5 produces larger, slower output.",
				Pattern:     regexp.MustCompile(`"target"\s*:\s*"(es5|ES5)"`),
			},
			{
				Name:        "no-reactstrictmode-off",
				Severity:    issue.SeverityWarning,
				Message:     "React strict mode is disabled",
				Description: "Disabling reactStrictMode hides double-render bugs and deprecated API usage.",
				Pattern:     regexp.MustCompile(`reactStrictMode\s*:\s*false`),
			},
		},
	}
}
