package layers

import (
	"regexp"

	"github.com/fixlayer/fixlayer/pkg/issue"
	"github.com/fixlayer/fixlayer/pkg/layer"
)

// NewComponentsLayer creates layer 3, which checks component rendering
// and accessibility. It expects layer 2 to have normalized general
// patterns first; constructs it does not recognize are left unflagged.
func NewComponentsLayer() layer.Layer {
	return &tableLayer{
		number: layer.Components,
		name:   "components",
		desc:   "Component and accessibility fixes",
		rules: []layer.LineRule{
			{
				Name:        "react-key",
				Severity:    issue.SeverityWarning,
				Message:     "Mapped element is missing a key attribute",
				Description: "Elements produced inside map() need a stable key for reconciliation.",
				Pattern:     regexp.MustCompile(`\.map\(.*=>\s*<[A-Za-z]`),
				Skip:        regexp.MustCompile(`key=`),
			},
			{
				Name:        "img-alt",
				Severity:    issue.SeverityWarning,
				Message:     "Image element is missing alt text",
				Description: "Images without alt attributes are invisible to screen readers.",
				Pattern:     regexp.MustCompile(`<img\b`),
				Skip:        regexp.MustCompile(`alt=`),
			},
		},
	}
}
