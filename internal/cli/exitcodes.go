package cli

import (
	"fmt"

	"github.com/fixlayer/fixlayer/pkg/runner"
)

// Exit codes for fixlayer.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitIssuesFound indicates analysis completed but found errors.
	ExitIssuesFound = 1

	// ExitWarningsFound indicates analysis found warnings (strict mode only).
	ExitWarningsFound = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitError carries a process exit code up to main. Codes below
// ExitInvalidUsage signal issue counts rather than failures and are not
// logged as errors.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Silent reports whether the error is an exit-code signal that needs no
// log output.
func (e *ExitError) Silent() bool {
	return e.Code < ExitInvalidUsage
}

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	errors := result.Stats.IssuesBySeverity["error"]
	warnings := result.Stats.IssuesBySeverity["warning"]

	if errors > 0 {
		return ExitIssuesFound
	}

	if strict && warnings > 0 {
		return ExitWarningsFound
	}

	return ExitSuccess
}
