package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fixlayer/fixlayer/internal/ui/pretty"
	"github.com/fixlayer/fixlayer/pkg/runner"
)

func TestFormatSummaryOneLine_NoIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:   5,
		IssuesBySeverity: map[string]int{},
	}

	out := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, out, "No issues found")
	assert.Contains(t, out, "(5 files checked)")
}

func TestFormatSummaryOneLine_Issues(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:  10,
		FilesWithIssues: 3,
		IssuesTotal:     15,
		IssuesBySeverity: map[string]int{
			"error":   5,
			"warning": 9,
			"info":    1,
		},
	}

	out := styles.FormatSummaryOneLine(stats)

	assert.Equal(t, "15 issues (5 errors, 9 warnings, 1 info), in 3 files\n", out)
}

func TestFormatSummaryOneLine_SingularForms(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:   1,
		FilesWithIssues:  1,
		IssuesTotal:      1,
		IssuesBySeverity: map[string]int{"warning": 1},
	}

	out := styles.FormatSummaryOneLine(stats)

	assert.Equal(t, "1 issue (1 warnings), in 1 file\n", out)
}

func TestFormatSummaryOneLine_Fixed(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:   4,
		FilesWithIssues:  2,
		FilesModified:    2,
		IssuesTotal:      6,
		IssuesFixed:      4,
		IssuesBySeverity: map[string]int{"warning": 6},
	}

	out := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, out, "6 issues (6 warnings), in 2 files")
	assert.Contains(t, out, "4 fixed in 2 files")
}

func TestFormatSummaryOneLine_AllFixedCleanRun(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:   1,
		FilesModified:    1,
		IssuesFixed:      2,
		IssuesBySeverity: map[string]int{},
	}

	out := styles.FormatSummaryOneLine(stats)

	assert.Contains(t, out, "No issues found")
	assert.Contains(t, out, "2 fixed in 1 file")
}

func TestFormatSummary_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:  10,
		FilesWithIssues: 3,
		IssuesTotal:     15,
		IssuesBySeverity: map[string]int{
			"error":   5,
			"warning": 10,
		},
	}

	out := styles.FormatSummary(stats)

	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "Files checked:")
	assert.Contains(t, out, "10")
	assert.Contains(t, out, "Files with issues:")
	assert.Contains(t, out, "Total issues:")
	assert.Contains(t, out, "15")
	assert.Contains(t, out, "Errors:")
	assert.Contains(t, out, "Warnings:")
	assert.Contains(t, out, "Analysis failed with errors")
}

func TestFormatSummary_NoIssues(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:   5,
		IssuesBySeverity: map[string]int{},
	}

	out := styles.FormatSummary(stats)

	assert.Contains(t, out, "Analysis passed")
	assert.NotContains(t, out, "Files with issues:")
}

func TestFormatSummary_WarningsOnly(t *testing.T) {
	styles := pretty.NewStyles(false)

	stats := runner.Stats{
		FilesProcessed:   2,
		FilesWithIssues:  1,
		IssuesTotal:      3,
		IssuesBySeverity: map[string]int{"warning": 3},
	}

	out := styles.FormatSummary(stats)

	assert.Contains(t, out, "Analysis completed with warnings")
	assert.NotContains(t, out, "Errors:")
}
