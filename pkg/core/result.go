package core

import (
	"github.com/fixlayer/fixlayer/pkg/issue"
)

// Summary aggregates one analysis run.
type Summary struct {
	// TotalIssues counts every issue across layers.
	TotalIssues int `json:"totalIssues"`

	// IssuesByLayer groups issues by their producing layer.
	IssuesByLayer map[int][]issue.Issue `json:"issuesByLayer"`

	// Filename echoes the caller-supplied filename verbatim.
	Filename string `json:"filename"`
}

// AnalysisResult is the outcome of one Analyze call.
type AnalysisResult struct {
	// Success is false only for fatal errors (invalid layer selection,
	// empty or oversized input, timeout).
	Success bool `json:"success"`

	// Issues lists everything found, in canonical deterministic order.
	Issues []issue.Issue `json:"issues"`

	// Summary aggregates the run.
	Summary Summary `json:"summary"`

	// TransformedCode carries the rewritten source when fixes were
	// requested and the text changed.
	TransformedCode string `json:"transformedCode,omitempty"`

	// Layers lists the layers that ran, in execution order.
	Layers []int `json:"layers"`

	// LayerErrors records non-fatal per-layer failures. When present
	// with Success=true, callers should surface a degraded-results
	// warning rather than treating the run as fully trustworthy.
	LayerErrors map[int]string `json:"layerErrors,omitempty"`

	// Error is set when Success is false, or annotates a partial result.
	Error string `json:"error,omitempty"`
}

func newSummary(issues []issue.Issue, filename string) Summary {
	return Summary{
		TotalIssues:   len(issues),
		IssuesByLayer: issue.ByLayer(issues),
		Filename:      filename,
	}
}

func failedAnalysis(filename, errMsg string) *AnalysisResult {
	return &AnalysisResult{
		Success: false,
		Issues:  []issue.Issue{},
		Summary: newSummary(nil, filename),
		Error:   errMsg,
	}
}
