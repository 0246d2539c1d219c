package fix

import (
	"regexp"
	"strings"

	"github.com/fixlayer/fixlayer/pkg/issue"
)

// RewriteFunc computes the text edit for one issue. It receives the full
// source, the line index, and the issue location. It returns ok=false when
// the expected pattern is no longer present at the location, which makes
// every rewrite idempotent: a second pass over already-fixed text is a
// no-op.
type RewriteFunc func(content string, lines []Line, loc issue.Location) (TextEdit, bool)

// Rewriter pairs a rewrite function with the layer that owns the rule.
type Rewriter struct {
	// Layer is the layer number the rule belongs to.
	Layer int

	// Description summarizes the rewrite for applied-fix reporting.
	Description string

	// Rewrite computes the edit.
	Rewrite RewriteFunc
}

var (
	consoleCallRe   = regexp.MustCompile(`console\.(log|warn|error|debug|info|trace)\(`)
	debuggerRe      = regexp.MustCompile(`\bdebugger\b`)
	varDeclRe       = regexp.MustCompile(`\bvar\s`)
	looseEqRe       = regexp.MustCompile(`([^=!<>])(==|!=)([^=])`)
	mapSingleArgRe  = regexp.MustCompile(`\.map\(\s*\(?\s*([A-Za-z_$][\w$]*)\s*\)?\s*=>\s*<([A-Za-z][\w.]*)`)
	mapTwoArgRe     = regexp.MustCompile(`\.map\(\s*\(\s*([A-Za-z_$][\w$]*)\s*,\s*([A-Za-z_$][\w$]*)\s*\)\s*=>\s*<([A-Za-z][\w.]*)`)
	imgTagRe        = regexp.MustCompile(`<img\b`)
	tsTargetRe      = regexp.MustCompile(`"target"\s*:\s*"(es5|ES5)"`)
	strictModeOffRe = regexp.MustCompile(`reactStrictMode\s*:\s*false`)
	focusedTestRe   = regexp.MustCompile(`\.only\(`)
	leadingSpaceRe  = regexp.MustCompile(`^[\t ]*`)
)

// rewriters is the closed table of known, idempotent rewrites keyed by
// rule name. Issues whose rule name is absent from this table are skipped
// by the applier, never errored.
var rewriters = map[string]Rewriter{
	"tsconfig-target": {
		Layer:       1,
		Description: "Upgrade compilation target from es5 to ES2020",
		Rewrite: lineRewrite(func(line string) (string, bool) {
			if !tsTargetRe.MatchString(line) {
				return "", false
			}
			return tsTargetRe.ReplaceAllString(line, `"target": "ES2020"`), true
		}),
	},
	"no-reactstrictmode-off": {
		Layer:       1,
		Description: "Enable React strict mode",
		Rewrite: lineRewrite(func(line string) (string, bool) {
			if !strictModeOffRe.MatchString(line) {
				return "", false
			}
			return strictModeOffRe.ReplaceAllString(line, "reactStrictMode: true"), true
		}),
	},
	"no-console": {
		Layer:       2,
		Description: "Remove console statement",
		Rewrite: func(content string, lines []Line, loc issue.Location) (TextEdit, bool) {
			line, ok := lineAt(lines, loc.Line)
			if !ok || !consoleCallRe.MatchString(line.Text(content)) {
				return TextEdit{}, false
			}
			// Delete the whole statement line, terminator included.
			return TextEdit{StartOffset: line.StartOffset, EndOffset: line.NextOffset}, true
		},
	},
	"no-debugger": {
		Layer:       2,
		Description: "Remove debugger statement",
		Rewrite: func(content string, lines []Line, loc issue.Location) (TextEdit, bool) {
			line, ok := lineAt(lines, loc.Line)
			if !ok || !debuggerRe.MatchString(line.Text(content)) {
				return TextEdit{}, false
			}
			return TextEdit{StartOffset: line.StartOffset, EndOffset: line.NextOffset}, true
		},
	},
	"no-var": {
		Layer:       2,
		Description: "Replace var declaration with let",
		Rewrite: lineRewrite(func(line string) (string, bool) {
			m := varDeclRe.FindStringIndex(line)
			if m == nil {
				return "", false
			}
			return line[:m[0]] + "let " + line[m[1]:], true
		}),
	},
	"eqeqeq": {
		Layer:       2,
		Description: "Replace loose equality with strict equality",
		Rewrite: lineRewrite(func(line string) (string, bool) {
			if !looseEqRe.MatchString(line) {
				return "", false
			}
			return looseEqRe.ReplaceAllString(line, "$1$2=$3"), true
		}),
	},
	"react-key": {
		Layer:       3,
		Description: "Add key attribute to mapped element",
		Rewrite: lineRewrite(func(line string) (string, bool) {
			if strings.Contains(line, "key=") {
				return "", false
			}
			if mapTwoArgRe.MatchString(line) {
				return mapTwoArgRe.ReplaceAllString(line,
					".map(($1, $2) => <$3 key={$2}"), true
			}
			if mapSingleArgRe.MatchString(line) {
				return mapSingleArgRe.ReplaceAllString(line,
					".map(($1, index) => <$2 key={index}"), true
			}
			return "", false
		}),
	},
	"img-alt": {
		Layer:       3,
		Description: "Add empty alt attribute to image element",
		Rewrite: lineRewrite(func(line string) (string, bool) {
			if !imgTagRe.MatchString(line) || strings.Contains(line, "alt=") {
				return "", false
			}
			loc := imgTagRe.FindStringIndex(line)
			return line[:loc[1]] + ` alt=""` + line[loc[1]:], true
		}),
	},
	"ssr-window-guard": {
		Layer:       4,
		Description: "Guard window access for server-side rendering",
		Rewrite:     guardRewrite("window."),
	},
	"ssr-localstorage-guard": {
		Layer:       4,
		Description: "Guard localStorage access for server-side rendering",
		Rewrite:     guardRewrite("localStorage."),
	},
	"use-client-directive": {
		Layer:       5,
		Description: "Insert 'use client' directive",
		Rewrite: func(content string, lines []Line, loc issue.Location) (TextEdit, bool) {
			if strings.Contains(content, "'use client'") || strings.Contains(content, `"use client"`) {
				return TextEdit{}, false
			}
			return TextEdit{StartOffset: 0, EndOffset: 0, NewText: "'use client';\n\n"}, true
		},
	},
	"no-focused-tests": {
		Layer:       6,
		Description: "Remove .only from focused test",
		Rewrite: lineRewrite(func(line string) (string, bool) {
			if !focusedTestRe.MatchString(line) {
				return "", false
			}
			return strings.Replace(line, ".only(", "(", 1), true
		}),
	},
}

// LookupRewriter returns the rewriter registered for a rule name.
func LookupRewriter(ruleName string) (Rewriter, bool) {
	rw, ok := rewriters[ruleName]
	return rw, ok
}

// Fixable reports whether the applier knows a rewrite for the rule.
func Fixable(ruleName string) bool {
	_, ok := rewriters[ruleName]
	return ok
}

// lineAt returns the Line for a 1-based line number.
func lineAt(lines []Line, number int) (Line, bool) {
	if number < 1 || number > len(lines) {
		return Line{}, false
	}
	return lines[number-1], true
}

// lineRewrite adapts a whole-line transform into a RewriteFunc. The
// transform returns the replacement line text, or ok=false when the
// pattern is absent.
func lineRewrite(transform func(line string) (string, bool)) RewriteFunc {
	return func(content string, lines []Line, loc issue.Location) (TextEdit, bool) {
		line, ok := lineAt(lines, loc.Line)
		if !ok {
			return TextEdit{}, false
		}
		replaced, ok := transform(line.Text(content))
		if !ok {
			return TextEdit{}, false
		}
		return TextEdit{
			StartOffset: line.StartOffset,
			EndOffset:   line.EndOffset,
			NewText:     replaced,
		}, true
	}
}

// guardRewrite wraps a browser-global statement in a typeof window check.
func guardRewrite(marker string) RewriteFunc {
	return lineRewrite(func(line string) (string, bool) {
		if !strings.Contains(line, marker) || strings.Contains(line, "typeof window") {
			return "", false
		}
		indent := leadingSpaceRe.FindString(line)
		stmt := strings.TrimSpace(line)
		return indent + "if (typeof window !== 'undefined') { " + stmt + " }", true
	})
}
