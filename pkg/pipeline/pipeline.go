// Package pipeline orchestrates layer execution over a single input.
//
// A run is single-pass and synchronous: layers execute sequentially in
// ascending numeric order, with no shared mutable state between calls.
// In fix mode the progressively-modified source threads through each
// layer so every layer sees the prior layer's output.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/fixlayer/fixlayer/pkg/issue"
	"github.com/fixlayer/fixlayer/pkg/layer"
)

// DefaultMaxInputBytes bounds input size when the caller configures no
// ceiling of its own.
const DefaultMaxInputBytes = 1 << 20

// Mode selects between detection-only and fix-threading execution.
type Mode int

const (
	// ModeAnalyze runs every layer's detection against the original,
	// unmodified source.
	ModeAnalyze Mode = iota

	// ModeFix threads each layer's rewritten output into the next
	// layer's detection and fix steps.
	ModeFix
)

// Options controls one pipeline run.
type Options struct {
	// Mode selects analyze-only or fix execution.
	Mode Mode

	// MaxInputBytes rejects oversized input before any layer runs.
	// Zero means DefaultMaxInputBytes.
	MaxInputBytes int
}

// Result is the outcome of one pipeline run.
type Result struct {
	// Issues holds all issues pooled across layers, in detection order.
	Issues []issue.Issue

	// LayerErrors records non-fatal per-layer failures. A failed layer's
	// issues for that pass are dropped; sibling layers still ran.
	LayerErrors map[int]error

	// LayersRun lists the layers that completed, in execution order.
	LayersRun []int

	// TransformedCode is the fully-rewritten source. Set only in fix
	// mode when the text changed; never a partially-rewritten
	// intermediate state.
	TransformedCode string

	// Modified is true when TransformedCode differs from the input.
	Modified bool
}

// Pipeline runs selected layers over one input.
type Pipeline struct {
	// Registry holds the layers available to run.
	Registry *layer.Registry
}

// New creates a Pipeline backed by the given registry.
func New(registry *layer.Registry) *Pipeline {
	return &Pipeline{Registry: registry}
}

// Run executes the selected layers over source.
//
// Empty and oversized input are fatal before any layer runs. Timeout and
// cancellation are observed only between layer boundaries; on abort the
// already-collected issues are returned alongside the error, but
// TransformedCode stays empty. One layer failing drops only that layer's
// issues; the rest of the run continues.
func (p *Pipeline) Run(
	ctx context.Context,
	source string,
	layerNumbers []int,
	lctx *layer.Context,
	opts Options,
) (*Result, error) {
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("%w: refusing to analyze blank input", ErrEmptySource)
	}

	maxBytes := opts.MaxInputBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxInputBytes
	}
	if len(source) > maxBytes {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrOversizedInput, len(source), maxBytes)
	}

	ordered, err := layer.Resolve(layerNumbers, lctx, source)
	if err != nil {
		return nil, err
	}

	result := &Result{
		LayerErrors: make(map[int]error),
	}

	current := source

	for _, number := range ordered {
		if err := ctx.Err(); err != nil {
			// Abort at the layer boundary: keep collected issues, never
			// surface partially-threaded text.
			return result, boundaryError(err)
		}

		l, ok := p.Registry.Get(number)
		if !ok {
			return nil, fmt.Errorf("%w: %d is not registered", layer.ErrInvalidLayer, number)
		}

		// The adaptive layer consumes the issues accumulated so far in
		// this call; everything else ignores the field.
		lctx.Accumulated = slices.Clone(result.Issues)

		detectInput := source
		if opts.Mode == ModeFix {
			detectInput = current
		}

		found, detectErr := safeDetect(l, detectInput, lctx)
		if detectErr != nil {
			result.LayerErrors[number] = detectErr
			result.LayersRun = append(result.LayersRun, number)
			continue
		}
		result.Issues = append(result.Issues, found...)

		if opts.Mode == ModeFix {
			if fixer, canFix := l.(layer.Fixer); canFix && len(found) > 0 {
				fixed, fixErr := safeFix(fixer, l.Number(), current, found, lctx)
				if fixErr != nil {
					result.LayerErrors[number] = fixErr
				} else {
					current = fixed
				}
			}
		}

		result.LayersRun = append(result.LayersRun, number)
	}

	if opts.Mode == ModeFix && current != source {
		result.TransformedCode = current
		result.Modified = true
	}

	return result, nil
}

// boundaryError maps context errors onto the pipeline taxonomy.
func boundaryError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("analysis cancelled: %w", err)
}

// safeDetect converts a layer panic into a per-layer error so one
// malformed layer cannot abort its siblings.
func safeDetect(l layer.Layer, source string, lctx *layer.Context) (issues []issue.Issue, err error) {
	defer func() {
		if r := recover(); r != nil {
			issues = nil
			err = fmt.Errorf("layer %d detect panicked: %v", l.Number(), r)
		}
	}()
	return l.Detect(source, lctx)
}

// safeFix mirrors safeDetect for the fix step. On failure the input text
// is returned unchanged.
func safeFix(
	f layer.Fixer,
	number int,
	source string,
	issues []issue.Issue,
	lctx *layer.Context,
) (fixed string, err error) {
	defer func() {
		if r := recover(); r != nil {
			fixed = source
			err = fmt.Errorf("layer %d fix panicked: %v", number, r)
		}
	}()
	fixed, err = f.Fix(source, issues, lctx)
	if err != nil {
		return source, err
	}
	return fixed, nil
}
