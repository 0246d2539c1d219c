package layer

import (
	"errors"
	"regexp"
	"strings"

	"github.com/fixlayer/fixlayer/pkg/fix"
	"github.com/fixlayer/fixlayer/pkg/issue"
)

// LineRule is one line-scoped detection heuristic. The rule tables are
// policy, not pipeline logic: layers own their tables and the pipeline
// never inspects them.
type LineRule struct {
	// Name is the stable rule identifier.
	Name string

	// Severity for issues this rule produces.
	Severity issue.Severity

	// Message is the short issue summary.
	Message string

	// Description is the longer explanation.
	Description string

	// Pattern flags a line when it matches.
	Pattern *regexp.Regexp

	// Skip suppresses the rule on lines matching it (already-fixed or
	// intentionally guarded code).
	Skip *regexp.Regexp

	// CVE is set for security rules mapping to a known vulnerability.
	CVE string

	// Remediation is optional guidance attached to each issue.
	Remediation string

	// Applies gates the rule on file context (path, test file, ...).
	// A nil Applies means the rule always runs.
	Applies func(ctx *Context) bool
}

// Info converts the rule to its listing form.
func (r LineRule) Info() RuleInfo {
	return RuleInfo{
		Name:        r.Name,
		Description: r.Description,
		Severity:    r.Severity,
		Fixable:     fix.Fixable(r.Name),
	}
}

// ScanLines runs a rule table over source text and returns issues in line
// order. Column numbers are 1-based byte positions of the match start.
func ScanLines(source string, ctx *Context, layerNumber int, rules []LineRule) []issue.Issue {
	var issues []issue.Issue

	lines := strings.Split(source, "\n")
	for idx, lineText := range lines {
		lineText = strings.TrimSuffix(lineText, "\r")
		for _, rule := range rules {
			if rule.Applies != nil && !rule.Applies(ctx) {
				continue
			}
			if rule.Skip != nil && rule.Skip.MatchString(lineText) {
				continue
			}
			loc := rule.Pattern.FindStringIndex(lineText)
			if loc == nil {
				continue
			}
			issues = append(issues, issue.Issue{
				Severity:    rule.Severity,
				Message:     rule.Message,
				Description: rule.Description,
				Layer:       layerNumber,
				Location:    issue.Location{Line: idx + 1, Column: loc[0] + 1},
				RuleName:    rule.Name,
				CVE:         rule.CVE,
				Remediation: rule.Remediation,
			})
		}
	}

	return issues
}

// ApplyOwn rewrites source using only the issues belonging to the given
// layer. It is the shared Fix implementation for rule-table layers.
func ApplyOwn(layerNumber int, source string, issues []issue.Issue) (string, error) {
	var own []issue.Issue
	for _, iss := range issues {
		if iss.Layer == layerNumber {
			own = append(own, iss)
		}
	}
	if len(own) == 0 {
		return source, nil
	}

	result := fix.Apply(source, own)
	if !result.Success {
		return source, errors.New(result.Error)
	}
	return result.Code, nil
}
