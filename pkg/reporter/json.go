package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/fixlayer/fixlayer/pkg/fix"
	"github.com/fixlayer/fixlayer/pkg/issue"
	"github.com/fixlayer/fixlayer/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results. The field set and
// naming are shared with the other pipeline frontends, so downstream
// consumers can diff outputs across platforms byte for byte.
type JSONFileResult struct {
	Success      bool             `json:"success"`
	FilePath     string           `json:"filePath"`
	Layers       []int            `json:"layers"`
	Issues       []issue.Issue    `json:"issues"`
	IssueCount   int              `json:"issueCount"`
	Error        string           `json:"error,omitempty"`
	Modified     bool             `json:"modified,omitempty"`
	AppliedFixes []fix.AppliedFix `json:"appliedFixes,omitempty"`
	SkippedFixes []fix.AppliedFix `json:"skippedFixes,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesModified   int            `json:"filesModified"`
	FilesErrored    int            `json:"filesErrored"`
	TotalIssues     int            `json:"totalIssues"`
	IssuesFixed     int            `json:"issuesFixed"`
	BySeverity      map[string]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalIssues, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			FilePath: displayPath(file.Path, r.opts.WorkingDir),
			Layers:   []int{},
			Issues:   []issue.Issue{},
			Modified: file.Written,
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		if file.Analysis != nil {
			fileResult.Success = file.Analysis.Success
			if file.Analysis.Layers != nil {
				fileResult.Layers = file.Analysis.Layers
			}
			if file.Analysis.Issues != nil {
				fileResult.Issues = file.Analysis.Issues
			}
			fileResult.IssueCount = len(file.Analysis.Issues)
			if fileResult.Error == "" {
				fileResult.Error = file.Analysis.Error
			}

			output.Summary.TotalIssues += fileResult.IssueCount
			for _, iss := range file.Analysis.Issues {
				output.Summary.BySeverity[string(iss.Severity)]++
			}
		}

		if file.Fixes != nil {
			fileResult.AppliedFixes = file.Fixes.AppliedFixes
			fileResult.SkippedFixes = file.Fixes.SkippedFixes
			output.Summary.IssuesFixed += len(file.Fixes.AppliedFixes)
		}

		if fileResult.IssueCount > 0 {
			output.Summary.FilesWithIssues++
		}
		if fileResult.Modified {
			output.Summary.FilesModified++
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}

	return output
}
