// Package issue defines the canonical representation of a detected problem.
// Issues are the shared vocabulary between layers, the fix applier, and
// every caller of the core adapter.
package issue

import (
	"cmp"
	"slices"
)

// Severity represents the severity level of an issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid returns true if the severity is a known value.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// MinLayer and MaxLayer bound the fixed set of analysis layers.
const (
	MinLayer = 1
	MaxLayer = 8
)

// Location is a 1-based position in the source text as seen by the layer
// that produced the issue.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Issue represents a single problem detected by a layer.
//
// Issues are immutable once created: a later layer must not claim or
// modify an earlier layer's issue. The fix applier consumes issues by
// RuleName and Location; everything else is surfaced verbatim to callers.
type Issue struct {
	// Severity drives exit-code and UI classification. Set at creation,
	// never inferred afterwards.
	Severity Severity `json:"severity"`

	// Message is a short human-readable summary of the problem.
	Message string `json:"message"`

	// Description is a longer explanation (may be empty).
	Description string `json:"description,omitempty"`

	// Layer identifies which layer (1-8) produced the issue.
	Layer int `json:"layer"`

	// Location is where the issue was found.
	Location Location `json:"location"`

	// RuleName is the stable identifier for the specific check. It is
	// used for cross-platform parity comparison and suppression.
	RuleName string `json:"ruleName"`

	// CVE is set only for security findings that map to a known
	// vulnerability identifier.
	CVE string `json:"cve,omitempty"`

	// Remediation is optional human guidance.
	Remediation string `json:"remediation,omitempty"`
}

// Same reports whether two issues are equal under the parity contract:
// {Message, Layer, Location, RuleName}. Two pipeline runs over
// byte-identical input with the same layer selection must produce
// pairwise-Same issues regardless of caller.
func (i Issue) Same(other Issue) bool {
	return i.Message == other.Message &&
		i.Layer == other.Layer &&
		i.Location == other.Location &&
		i.RuleName == other.RuleName
}

// Compare orders issues by line, column, layer, then rule name.
func Compare(a, b Issue) int {
	if c := cmp.Compare(a.Location.Line, b.Location.Line); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Location.Column, b.Location.Column); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Layer, b.Layer); c != 0 {
		return c
	}
	return cmp.Compare(a.RuleName, b.RuleName)
}

// Sort sorts issues into the canonical deterministic order.
func Sort(issues []Issue) {
	slices.SortStableFunc(issues, Compare)
}

// ByLayer groups issues by their producing layer.
func ByLayer(issues []Issue) map[int][]Issue {
	grouped := make(map[int][]Issue)
	for _, iss := range issues {
		grouped[iss.Layer] = append(grouped[iss.Layer], iss)
	}
	return grouped
}

// CountBySeverity tallies issues per severity.
func CountBySeverity(issues []Issue) map[Severity]int {
	counts := make(map[Severity]int)
	for _, iss := range issues {
		counts[iss.Severity]++
	}
	return counts
}
