// Package langdetect identifies the language of a source file so the layer
// selector can decide which layers apply. It combines extension lookup with
// go-enry content classification.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language constants for the languages the pipeline understands.
const (
	LangJavaScript = "javascript"
	LangTypeScript = "typescript"
	LangJSX        = "jsx"
	LangTSX        = "tsx"
	LangJSON       = "json"
	LangUnknown    = "unknown"
)

// extensions maps file extensions to languages. Extension wins over
// content classification because it is the caller's declared intent.
var extensions = map[string]string{
	".js":   LangJavaScript,
	".mjs":  LangJavaScript,
	".cjs":  LangJavaScript,
	".jsx":  LangJSX,
	".ts":   LangTypeScript,
	".mts":  LangTypeScript,
	".cts":  LangTypeScript,
	".tsx":  LangTSX,
	".json": LangJSON,
}

// Detect returns the detected language for a file. Detection is a pure
// function of (filename, content): the same inputs always produce the
// same language, which the auto layer selection depends on.
func Detect(filename string, content []byte) string {
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" {
		if lang, ok := extensions[ext]; ok {
			return lang
		}
		// A file extension outside our table is unsupported regardless
		// of content.
		return LangUnknown
	}

	if len(content) == 0 {
		return LangUnknown
	}

	// No extension: fall back to content classification.
	if lang := detectByPattern(content); lang != "" {
		return lang
	}

	candidates := []string{"JavaScript", "TypeScript", "JSON"}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return LangUnknown
}

// IsSupported reports whether any layer can analyze the given language.
func IsSupported(lang string) bool {
	switch lang {
	case LangJavaScript, LangTypeScript, LangJSX, LangTSX, LangJSON:
		return true
	default:
		return false
	}
}

// IsScript reports whether the language is a JavaScript/TypeScript family
// source file (as opposed to a JSON configuration file).
func IsScript(lang string) bool {
	switch lang {
	case LangJavaScript, LangTypeScript, LangJSX, LangTSX:
		return true
	default:
		return false
	}
}

// detectByPattern checks for highly indicative language patterns before
// handing off to the classifier.
func detectByPattern(content []byte) string {
	text := string(content)
	trimmed := strings.TrimSpace(text)

	// JSON: object or array of quoted members with no script syntax.
	if (strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")) &&
		strings.Contains(trimmed, `"`) &&
		!strings.Contains(trimmed, "=>") &&
		!strings.Contains(trimmed, "function") {
		return LangJSON
	}

	// TypeScript: type annotations or interface declarations.
	if strings.Contains(text, "interface ") || strings.Contains(text, ": string") ||
		strings.Contains(text, ": number") {
		if containsElement(text) {
			return LangTSX
		}
		return LangTypeScript
	}

	// JSX: JavaScript with markup elements.
	if containsElement(text) && looksLikeScript(text) {
		return LangJSX
	}

	if looksLikeScript(text) {
		return LangJavaScript
	}

	return ""
}

// containsElement checks for an element returned or produced from an
// expression, the usual JSX shape.
func containsElement(text string) bool {
	return strings.Contains(text, "=> <") ||
		strings.Contains(text, "return <") ||
		strings.Contains(text, "=> (")
}

func looksLikeScript(text string) bool {
	return strings.Contains(text, "=>") ||
		strings.Contains(text, "const ") ||
		strings.Contains(text, "let ") ||
		strings.Contains(text, "function ") ||
		strings.Contains(text, "console.")
}

// normalize maps enry language names to our constants.
func normalize(lang string) string {
	switch strings.ToLower(lang) {
	case "javascript":
		return LangJavaScript
	case "typescript":
		return LangTypeScript
	case "jsx":
		return LangJSX
	case "tsx":
		return LangTSX
	case "json":
		return LangJSON
	default:
		return LangUnknown
	}
}
