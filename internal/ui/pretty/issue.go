package pretty

import (
	"fmt"
	"strings"

	"github.com/fixlayer/fixlayer/pkg/issue"
)

// FormatIssue formats a single issue for terminal output.
func (s *Styles) FormatIssue(path string, iss *issue.Issue) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(path),
		iss.Location.Line,
		iss.Location.Column,
	)

	severity := s.FormatSeverity(iss.Severity)

	ruleDisplay := s.RuleName.Render("(" + iss.RuleName + ")")
	layerTag := s.LayerTag.Render(fmt.Sprintf("[L%d]", iss.Layer))

	builder.WriteString(fmt.Sprintf("  %s  %s  %s %s  %s\n",
		location,
		severity,
		layerTag,
		s.Message.Render(iss.Message),
		ruleDisplay,
	))

	if iss.CVE != "" {
		builder.WriteString("    " + s.Dim.Render("CVE:") + " " +
			s.Error.Render(iss.CVE) + "\n")
	}

	if iss.Remediation != "" {
		builder.WriteString("    " + s.Dim.Render("Remediation:") + " " +
			s.Suggestion.Render(iss.Remediation) + "\n")
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev issue.Severity) string {
	switch sev {
	case issue.SeverityError:
		return s.Error.Render("error")
	case issue.SeverityWarning:
		return s.Warning.Render("warning")
	case issue.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount > 0 {
		word := "issues"
		if issueCount == 1 {
			word = "issue"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", issueCount, word))
	}
	return header
}
