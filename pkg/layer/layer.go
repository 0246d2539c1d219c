// Package layer defines the analysis layer contract, the closed registry
// of the eight layers, and the layer selector.
package layer

import (
	"github.com/fixlayer/fixlayer/pkg/issue"
)

// Fixed layer numbers. The set is closed: the numeric ordering is domain
// knowledge, not an extension point.
const (
	Configuration = 1
	Patterns      = 2
	Components    = 3
	Hydration     = 4
	NextJS        = 5
	Testing       = 6
	Adaptive      = 7
	Security      = 8
)

// RuleInfo describes one check a layer performs, for listing and docs.
type RuleInfo struct {
	// Name is the stable rule identifier (e.g. "no-console").
	Name string

	// Description explains what the rule detects.
	Description string

	// Severity is the severity issues from this rule carry.
	Severity issue.Severity

	// Fixable is true when the fix applier knows a rewrite for the rule.
	Fixable bool
}

// Layer is one unit of the analysis pipeline. Implementations must be
// pure functions of (source, context): no global state, no I/O, no
// randomness. That purity is what guarantees identical results across
// CLI, editor, and API callers.
//
// A layer run in isolation must behave correctly on input that
// earlier-numbered layers would normally have normalized: patterns it
// does not recognize are simply not flagged, never treated as fatal.
type Layer interface {
	// Number returns the layer's fixed position (1-8).
	Number() int

	// Name returns the layer's human-readable name.
	Name() string

	// Description explains what category of problem the layer covers.
	Description() string

	// Rules lists the checks this layer performs.
	Rules() []RuleInfo

	// Detect scans source text and returns the issues found. It must
	// return an error only for internal failures, never for findings.
	Detect(source string, ctx *Context) ([]issue.Issue, error)
}

// Fixer is implemented by layers that can rewrite source to resolve the
// issues they detect. The orchestrator threads each layer's fixed output
// into the next layer in fix mode.
type Fixer interface {
	// Fix returns the source with this layer's issues resolved. Issues
	// it cannot rewrite are left in place.
	Fix(source string, issues []issue.Issue, ctx *Context) (string, error)
}
