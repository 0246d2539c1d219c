// Package core is the single call surface for every caller of the
// analysis pipeline. The CLI, the editor extension, and the web API all
// link this adapter unmodified, which is what guarantees that the same
// input produces the same result on every platform.
package core

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fixlayer/fixlayer/internal/logging"
	"github.com/fixlayer/fixlayer/pkg/fix"
	"github.com/fixlayer/fixlayer/pkg/issue"
	"github.com/fixlayer/fixlayer/pkg/langdetect"
	"github.com/fixlayer/fixlayer/pkg/layer"
	"github.com/fixlayer/fixlayer/pkg/pipeline"
)

// Options controls one Analyze call.
//
// Behavior-affecting inputs are only the code, Filename/FilePath, Layers,
// and MaxInputBytes. Platform is observability metadata: it is logged
// with every call and must never influence detection or fixing.
type Options struct {
	// Filename is the base name of the file, forwarded verbatim.
	Filename string

	// FilePath is the caller's path, relative or absolute, forwarded
	// verbatim: layer heuristics key off path substrings, so the
	// adapter never normalizes it.
	FilePath string

	// Layers is the explicit layer selection. Empty means auto.
	Layers []int

	// Fix requests transformed code alongside the issue list.
	Fix bool

	// MaxInputBytes overrides the input ceiling. Zero keeps the default.
	MaxInputBytes int

	// Platform identifies the caller (cli, extension, api) for logging.
	Platform string
}

// FixOptions controls one ApplyFixes call.
type FixOptions struct {
	// DryRun reports what would change without returning modified code.
	DryRun bool

	// Filename and FilePath are forwarded verbatim, as in Options.
	Filename string
	FilePath string

	// Platform identifies the caller for logging only.
	Platform string
}

// Adapter binds the layer registry and pipeline into the two-method
// surface callers use. It holds no per-call state: concurrent calls are
// fully independent.
type Adapter struct {
	registry *layer.Registry
	pipe     *pipeline.Pipeline
}

// New creates an Adapter backed by the default layer registry.
func New() *Adapter {
	return NewWithRegistry(layer.DefaultRegistry)
}

// NewWithRegistry creates an Adapter with an explicit registry, which
// tests use to inject misbehaving layers.
func NewWithRegistry(registry *layer.Registry) *Adapter {
	return &Adapter{
		registry: registry,
		pipe:     pipeline.New(registry),
	}
}

// Analyze runs the selected layers over code and returns the pooled
// issues. With opts.Fix set, the transformed source is included and each
// layer saw the prior layer's output.
func (a *Adapter) Analyze(ctx context.Context, code string, opts Options) *AnalysisResult {
	started := time.Now()
	logger := logging.FromContext(ctx).With(
		logging.FieldRunID, uuid.NewString(),
		logging.FieldPlatform, platformOrDefault(opts.Platform),
		logging.FieldFilename, opts.Filename,
	)

	lctx := &layer.Context{
		Filename: opts.Filename,
		FilePath: opts.FilePath,
		Language: langdetect.Detect(nameForDetection(opts), []byte(code)),
	}

	// Unsupported file types yield zero issues under auto selection;
	// an explicit selection still runs (the caller asked for it).
	if len(opts.Layers) == 0 && !langdetect.IsSupported(lctx.Language) {
		logger.Debug("no layer recognizes file type",
			logging.FieldLanguage, lctx.Language)
		return &AnalysisResult{
			Success: true,
			Issues:  []issue.Issue{},
			Summary: newSummary(nil, opts.Filename),
		}
	}

	selected, err := layer.Resolve(opts.Layers, lctx, code)
	if err != nil {
		logger.Warn("layer selection rejected", logging.FieldError, err)
		return failedAnalysis(opts.Filename, err.Error())
	}

	mode := pipeline.ModeAnalyze
	if opts.Fix {
		mode = pipeline.ModeFix
	}

	run, err := a.pipe.Run(ctx, code, selected, lctx, pipeline.Options{
		Mode:          mode,
		MaxInputBytes: opts.MaxInputBytes,
	})
	if err != nil {
		result := failedAnalysis(opts.Filename, err.Error())
		if run != nil {
			// Timeout at a layer boundary: completed layers' issues are
			// still valid as a partial result.
			issue.Sort(run.Issues)
			result.Issues = run.Issues
			result.Summary = newSummary(run.Issues, opts.Filename)
			result.Layers = run.LayersRun
		}
		logger.Warn("analysis failed", logging.FieldError, err)
		return result
	}

	issue.Sort(run.Issues)

	result := &AnalysisResult{
		Success:         true,
		Issues:          run.Issues,
		Summary:         newSummary(run.Issues, opts.Filename),
		TransformedCode: run.TransformedCode,
		Layers:          run.LayersRun,
	}
	if len(run.LayerErrors) > 0 {
		result.LayerErrors = make(map[int]string, len(run.LayerErrors))
		for n, layerErr := range run.LayerErrors {
			result.LayerErrors[n] = layerErr.Error()
		}
	}
	if result.Issues == nil {
		result.Issues = []issue.Issue{}
	}

	logger.Debug("analysis complete",
		logging.FieldLayers, result.Layers,
		logging.FieldIssues, len(result.Issues),
		logging.FieldDuration, time.Since(started),
	)
	return result
}

// ApplyFixes rewrites code according to the accepted issues. The result
// is deterministic for a given (code, issues) pair regardless of caller.
func (a *Adapter) ApplyFixes(ctx context.Context, code string, issues []issue.Issue, opts FixOptions) *fix.Result {
	logger := logging.FromContext(ctx).With(
		logging.FieldRunID, uuid.NewString(),
		logging.FieldPlatform, platformOrDefault(opts.Platform),
		logging.FieldFilename, opts.Filename,
	)

	if strings.TrimSpace(code) == "" {
		return &fix.Result{
			Success:      false,
			Code:         code,
			AppliedFixes: []fix.AppliedFix{},
			Error:        pipeline.ErrEmptySource.Error(),
		}
	}

	result := fix.Apply(code, issues)
	if opts.DryRun && result.Success {
		// Dry run reports the would-be fixes but hands back the
		// original text untouched.
		result.Code = code
	}

	logger.Debug("fixes applied",
		logging.FieldFixes, result.TotalFixes,
		logging.FieldDryRun, opts.DryRun,
	)
	return result
}

func platformOrDefault(platform string) string {
	if platform == "" {
		return "unknown"
	}
	return platform
}

func nameForDetection(opts Options) string {
	if opts.Filename != "" {
		return opts.Filename
	}
	return filepath.Base(opts.FilePath)
}
