package fix

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/fixlayer/fixlayer/pkg/issue"
)

// AppliedFix records one rewrite the applier performed (or skipped).
type AppliedFix struct {
	// RuleName identifies the rewrite that was applied.
	RuleName string `json:"rule"`

	// Description summarizes what changed.
	Description string `json:"description"`

	// Location is the issue location the fix targeted.
	Location issue.Location `json:"location"`

	// Layer is the layer that produced the originating issue.
	Layer int `json:"layer"`

	// OldCode is the replaced span of the original source.
	OldCode string `json:"oldCode,omitempty"`

	// NewCode is the replacement text.
	NewCode string `json:"newCode,omitempty"`
}

// Result is the outcome of applying a set of issues to source text.
type Result struct {
	// Success is true unless a structural failure occurred. Zero
	// applicable fixes is still a success.
	Success bool `json:"success"`

	// Code is the rewritten source. On failure it is the original input,
	// byte for byte, never a partial mutation.
	Code string `json:"code"`

	// AppliedFixes lists every rewrite performed, in application order.
	AppliedFixes []AppliedFix `json:"appliedFixes"`

	// SkippedFixes lists rewrites dropped because their spans overlapped
	// an earlier-layer fix.
	SkippedFixes []AppliedFix `json:"skippedFixes,omitempty"`

	// TotalFixes is len(AppliedFixes).
	TotalFixes int `json:"totalFixes"`

	// Error describes the structural failure when Success is false.
	Error string `json:"error,omitempty"`
}

// Apply rewrites content according to the accepted issues.
//
// Issues are processed in ascending line order, then ascending layer, so
// output is deterministic when several fixes touch nearby regions. When
// two fixes overlap, the earlier layer wins and the later fix is reported
// in SkippedFixes. Issues whose rule name has no registered rewrite, or
// whose pattern is no longer present at the recorded location, are
// silently omitted: that is what makes a second pass over fixed text a
// no-op.
//
// A location pointing past the end of the source is a structural failure:
// the result carries Success=false and the original content unchanged.
func Apply(content string, issues []issue.Issue) *Result {
	result := &Result{
		Success:      true,
		Code:         content,
		AppliedFixes: []AppliedFix{},
	}
	if len(issues) == 0 {
		return result
	}

	ordered := make([]issue.Issue, len(issues))
	copy(ordered, issues)
	slices.SortStableFunc(ordered, func(a, b issue.Issue) int {
		if c := cmp.Compare(a.Location.Line, b.Location.Line); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Layer, b.Layer); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Location.Column, b.Location.Column); c != 0 {
			return c
		}
		return cmp.Compare(a.RuleName, b.RuleName)
	})

	lines := SplitLines(content)

	var edits []TextEdit
	var applied []AppliedFix

	for _, iss := range ordered {
		rw, known := LookupRewriter(iss.RuleName)
		if !known {
			continue
		}

		if iss.Location.Line > len(lines) || iss.Location.Line < 1 {
			return &Result{
				Success:      false,
				Code:         content,
				AppliedFixes: []AppliedFix{},
				Error: fmt.Sprintf("fix target line %d outside source (%d lines)",
					iss.Location.Line, len(lines)),
			}
		}

		edit, ok := rw.Rewrite(content, lines, iss.Location)
		if !ok {
			continue
		}

		record := AppliedFix{
			RuleName:    iss.RuleName,
			Description: rw.Description,
			Location:    iss.Location,
			Layer:       iss.Layer,
			OldCode:     content[edit.StartOffset:edit.EndOffset],
			NewCode:     edit.NewText,
		}

		if overlapsAny(edit, edits) {
			result.SkippedFixes = append(result.SkippedFixes, record)
			continue
		}

		edits = append(edits, edit)
		applied = append(applied, record)
	}

	if err := ValidateEdits(edits, len(content)); err != nil {
		return &Result{
			Success:      false,
			Code:         content,
			AppliedFixes: []AppliedFix{},
			Error:        err.Error(),
		}
	}

	SortEdits(edits)
	result.Code = ApplyEdits(content, edits)
	if len(applied) > 0 {
		result.AppliedFixes = applied
	}
	result.TotalFixes = len(applied)
	return result
}

// overlapsAny reports whether an edit's span intersects any accepted edit.
// Pure insertions (zero-width spans) only conflict with an identical
// insertion point inside a replaced span.
func overlapsAny(edit TextEdit, accepted []TextEdit) bool {
	for _, other := range accepted {
		if edit.StartOffset < other.EndOffset && other.StartOffset < edit.EndOffset {
			return true
		}
		// Two inserts at the same offset would be order-ambiguous.
		if edit.StartOffset == edit.EndOffset &&
			other.StartOffset == other.EndOffset &&
			edit.StartOffset == other.StartOffset {
			return true
		}
	}
	return false
}
