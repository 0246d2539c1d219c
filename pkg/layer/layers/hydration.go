package layers

import (
	"regexp"

	"github.com/fixlayer/fixlayer/pkg/issue"
	"github.com/fixlayer/fixlayer/pkg/layer"
)

// NewHydrationLayer creates layer 4, which guards browser-global access
// that breaks server-side rendering and hydration.
func NewHydrationLayer() layer.Layer {
	return &tableLayer{
		number: layer.Hydration,
		name:   "hydration",
		desc:   "Hydration and server-side rendering safety fixes",
		rules: []layer.LineRule{
			{
				Name:        "ssr-window-guard",
				Severity:    issue.SeverityError,
				Message:     "Unguarded window access",
				Description: "window is undefined during server rendering; guard with a typeof check.",
				Pattern:     regexp.MustCompile(`\bwindow\.`),
				Skip:        regexp.MustCompile(`typeof window|^\s*(//|\*)`),
			},
			{
				Name:        "ssr-localstorage-guard",
				Severity:    issue.SeverityError,
				Message:     "Unguarded localStorage access",
				Description: "localStorage is unavailable during server rendering; guard with a typeof check.",
				Pattern:     regexp.MustCompile(`\blocalStorage\.`),
				Skip:        regexp.MustCompile(`typeof window|^\s*(//|\*)`),
			},
		},
	}
}
