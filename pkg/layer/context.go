package layer

import (
	"path/filepath"
	"strings"

	"github.com/fixlayer/fixlayer/pkg/issue"
)

// Context carries everything a layer may consult besides the source text.
//
// Filename and FilePath are forwarded verbatim from the caller, never
// normalized: layer heuristics key off path substrings such as "/app/" or
// "/page.", and relative and absolute forms are both valid.
type Context struct {
	// Filename is the base name of the file being analyzed.
	Filename string

	// FilePath is the caller-supplied path, relative or absolute.
	FilePath string

	// Language is the detected language of the source.
	Language string

	// Accumulated holds the issues produced by earlier-numbered layers
	// in the same call. Only the adaptive layer reads it; it carries no
	// state between calls.
	Accumulated []issue.Issue
}

// PathContains reports whether the file path (or filename, when no path
// was supplied) contains the given substring. Matching is done on the
// verbatim path with separators normalized to forward slashes.
func (c *Context) PathContains(sub string) bool {
	path := c.FilePath
	if path == "" {
		path = c.Filename
	}
	return strings.Contains(filepath.ToSlash(path), sub)
}

// IsTestFile reports whether the file looks like a test module.
func (c *Context) IsTestFile() bool {
	name := c.Filename
	if name == "" {
		name = filepath.Base(c.FilePath)
	}
	return strings.Contains(name, ".test.") ||
		strings.Contains(name, ".spec.") ||
		c.PathContains("__tests__/")
}
