package layer

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/fixlayer/fixlayer/pkg/langdetect"
)

// ErrInvalidLayer indicates a requested layer number outside 1-8.
// Unknown numbers are an input error, never silently dropped.
var ErrInvalidLayer = errors.New("invalid layer")

// Resolve determines which layers run and in what order.
//
// An explicit request is validated against 1-8, deduplicated, and sorted
// ascending. Ascending numeric order is the only valid execution order:
// later layers assume earlier layers already normalized the code, so no
// reordering is permitted.
//
// An empty request means auto selection, derived purely from the file
// context and content so the same file resolves to the same set on every
// call, regardless of which platform asked.
func Resolve(requested []int, ctx *Context, content string) ([]int, error) {
	if len(requested) == 0 {
		return Auto(ctx, content), nil
	}

	seen := make(map[int]bool, len(requested))
	result := make([]int, 0, len(requested))
	for _, n := range requested {
		if n < 1 || n > 8 {
			return nil, fmt.Errorf("%w: %d (valid layers are 1-8)", ErrInvalidLayer, n)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		result = append(result, n)
	}

	slices.Sort(result)
	return result, nil
}

// Auto derives a layer selection from file characteristics alone.
// JSON configuration files get the configuration layer only; unsupported
// languages get no layers (the pipeline reports zero issues for them).
func Auto(ctx *Context, content string) []int {
	lang := ctx.Language
	if lang == "" {
		lang = langdetect.Detect(selectName(ctx), []byte(content))
	}

	switch {
	case lang == langdetect.LangJSON:
		return []int{Configuration}
	case !langdetect.IsScript(lang):
		return nil
	}

	selected := []int{Configuration, Patterns, Adaptive, Security}

	if lang == langdetect.LangJSX || lang == langdetect.LangTSX || hasElementMarkers(content) {
		selected = append(selected, Components)
	}

	if hasNextMarkers(ctx, content) {
		selected = append(selected, Hydration, NextJS)
	}

	if ctx.IsTestFile() {
		selected = append(selected, Testing)
	}

	slices.Sort(selected)
	return selected
}

func selectName(ctx *Context) string {
	if ctx.Filename != "" {
		return ctx.Filename
	}
	return ctx.FilePath
}

// hasElementMarkers checks for JSX-style element production.
func hasElementMarkers(content string) bool {
	return strings.Contains(content, "=> <") ||
		strings.Contains(content, "return <") ||
		strings.Contains(content, "React.createElement")
}

// hasNextMarkers checks for Next.js framework usage.
func hasNextMarkers(ctx *Context, content string) bool {
	return strings.Contains(content, "next/") ||
		strings.Contains(content, "use client") ||
		ctx.PathContains("/app/") ||
		ctx.PathContains("/pages/")
}
