package layers

import (
	"regexp"

	"github.com/fixlayer/fixlayer/pkg/issue"
	"github.com/fixlayer/fixlayer/pkg/layer"
)

// NewSecurityLayer creates layer 8, the security forensics pass. Its
// findings are detection-only: security rewrites need human review.
func NewSecurityLayer() layer.Layer {
	return &tableLayer{
		number: layer.Security,
		name:   "security",
		desc:   "Security forensics",
		rules: []layer.LineRule{
			{
				Name:        "no-eval",
				Severity:    issue.SeverityError,
				Message:     "eval() executes arbitrary code",
				Description: "eval turns any injected string into executable code.",
				Pattern:     regexp.MustCompile(`\beval\(`),
				Skip:        regexp.MustCompile(`^\s*(//|\*)`),
				Remediation: "Replace eval with JSON.parse or an explicit dispatch table.",
			},
			{
				Name:        "no-document-write",
				Severity:    issue.SeverityWarning,
				Message:     "document.write enables markup injection",
				Description: "document.write bypasses the DOM sanitization path entirely.",
				Pattern:     regexp.MustCompile(`document\.write\(`),
				Skip:        regexp.MustCompile(`^\s*(//|\*)`),
				Remediation: "Build nodes with createElement/textContent instead.",
			},
			{
				Name:        "hardcoded-secret",
				Severity:    issue.SeverityError,
				Message:     "Possible hardcoded secret",
				Description: "Credentials committed to source leak through history and bundles.",
				Pattern:     regexp.MustCompile(`(?i)(api[_-]?key|secret|password|token)\s*[:=]\s*['"][A-Za-z0-9_\-/+]{8,}['"]`),
				Skip:        regexp.MustCompile(`process\.env|^\s*(//|\*)`),
				Remediation: "Move the value to an environment variable or secret store.",
			},
			{
				Name:        "vulnerable-serialize",
				Severity:    issue.SeverityError,
				Message:     "serialize-javascript below 3.1.0 allows XSS",
				Description: "Versions before 3.1.0 fail to escape object keys during serialization.",
				Pattern:     regexp.MustCompile(`(from\s+['"]serialize-javascript['"]|require\(['"]serialize-javascript['"]\))`),
				CVE:         "CVE-2020-7660",
				Remediation: "Upgrade serialize-javascript to 3.1.0 or later.",
			},
		},
	}
}
