package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/fixlayer/fixlayer/pkg/config"
	"github.com/fixlayer/fixlayer/pkg/core"
	"github.com/fixlayer/fixlayer/pkg/fsutil"
)

// Runner orchestrates multi-file analysis using a core.Adapter.
type Runner struct {
	// Adapter handles per-file analysis and fix application.
	Adapter *core.Adapter
}

// New creates a new Runner with the given adapter.
func New(adapter *core.Adapter) *Runner {
	return &Runner{Adapter: adapter}
}

// Run discovers files under opts.Paths and processes them concurrently.
// It returns a deterministic collection of FileOutcome values and
// aggregate stats.
//
// The runner:
//   - Discovers files matching the options criteria
//   - Processes files concurrently using a worker pool
//   - Aggregates results into a single Result with statistics
//   - Respects context cancellation
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh, opts)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; key by path so the final result
	// can follow discovery order.
	outcomes := make(map[string]FileOutcome, len(files))

	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker processes files from workCh and sends outcomes to outCh.
func (r *Runner) worker(
	ctx context.Context,
	workCh <-chan string,
	outCh chan<- FileOutcome,
	opts Options,
) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.processFile(ctx, path, opts)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// processFile analyzes one file and, when fixing is enabled, applies
// fixes and rewrites the file in place.
func (r *Runner) processFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewConfig()
	}

	data, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = fmt.Errorf("read %s: %w", path, err)
		return outcome
	}
	content := string(data)

	analysis := r.Adapter.Analyze(ctx, content, core.Options{
		Filename:      filepath.Base(path),
		FilePath:      path,
		Layers:        opts.Layers,
		MaxInputBytes: cfg.MaxInputBytes,
		Platform:      opts.Platform,
	})
	outcome.Analysis = analysis

	if !cfg.Fix || !analysis.Success || len(analysis.Issues) == 0 {
		return outcome
	}

	fixes := r.Adapter.ApplyFixes(ctx, content, analysis.Issues, core.FixOptions{
		DryRun:   cfg.DryRun,
		Filename: filepath.Base(path),
		FilePath: path,
		Platform: opts.Platform,
	})
	outcome.Fixes = fixes

	if !fixes.Success || cfg.DryRun || fixes.Code == content {
		return outcome
	}

	// Never clobber edits made while the pipeline was running.
	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		outcome.Error = fmt.Errorf("check %s: %w", path, err)
		return outcome
	}
	if modified {
		outcome.Error = fmt.Errorf("skipping %s: file changed during analysis", path)
		return outcome
	}

	if cfg.Backups.Enabled {
		backupCfg := fsutil.BackupConfig{Enabled: true, Mode: fsutil.BackupModeSidecar}
		if _, err := fsutil.CreateBackup(ctx, path, backupCfg); err != nil {
			outcome.Error = fmt.Errorf("backup %s: %w", path, err)
			return outcome
		}
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, []byte(fixes.Code), 0)
	if err != nil {
		outcome.Error = fmt.Errorf("write %s: %w", path, err)
		return outcome
	}
	outcome.Written = written

	return outcome
}
