package runner

import (
	"github.com/fixlayer/fixlayer/pkg/core"
	"github.com/fixlayer/fixlayer/pkg/fix"
	"github.com/fixlayer/fixlayer/pkg/issue"
)

// FileOutcome captures everything that happened to a single file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Analysis contains the analysis result for this file.
	// May be nil if the file could not be read.
	Analysis *core.AnalysisResult

	// Fixes contains the fix application result when fixing was
	// requested and the file had fixable issues.
	Fixes *fix.Result

	// Written reports whether the file was rewritten on disk.
	Written bool

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully processed.
	FilesProcessed int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// IssuesTotal is the total number of issues across all files.
	IssuesTotal int

	// IssuesBySeverity maps severity levels to counts.
	IssuesBySeverity map[string]int

	// FilesWithIssues is the number of files with at least one issue.
	FilesWithIssues int

	// FilesModified is the number of files rewritten by fixes.
	FilesModified int

	// IssuesFixed is the total number of fixes applied across all files.
	IssuesFixed int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered
	// deterministically by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any error-severity issues occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.IssuesBySeverity[string(issue.SeverityError)] > 0
}

// HasIssues reports whether any issues were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.IssuesTotal > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		IssuesBySeverity: make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++

	if outcome.Written {
		r.Stats.FilesModified++
	}

	if outcome.Fixes != nil {
		r.Stats.IssuesFixed += len(outcome.Fixes.AppliedFixes)
	}

	if outcome.Analysis != nil {
		count := len(outcome.Analysis.Issues)
		r.Stats.IssuesTotal += count
		if count > 0 {
			r.Stats.FilesWithIssues++
		}
		for _, iss := range outcome.Analysis.Issues {
			r.Stats.IssuesBySeverity[string(iss.Severity)]++
		}
	}
}
