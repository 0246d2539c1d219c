package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/fixlayer/fixlayer/internal/ui/pretty"
	"github.com/fixlayer/fixlayer/pkg/runner"
)

const defaultTermWidth = 80

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int

	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Analysis == nil {
			continue
		}

		if file.Analysis.Error != "" {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render("error: "+file.Analysis.Error),
			)
			continue
		}

		issues := file.Analysis.Issues
		if len(issues) == 0 {
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(issues)))

		for i := range issues {
			fmt.Fprint(r.bw, r.styles.FormatIssue(path, &issues[i]))
			total++
		}

		if file.Fixes != nil && len(file.Fixes.AppliedFixes) > 0 {
			verb := "fixed"
			if !file.Written {
				verb = "fixable"
			}
			fmt.Fprintf(r.bw, "  %s\n",
				r.styles.Success.Render(fmt.Sprintf("%d %s", len(file.Fixes.AppliedFixes), verb)))
		}

		fmt.Fprintln(r.bw)
	}

	if r.opts.ShowSummary {
		if total > 0 {
			width := terminalWidth(r.opts.Writer)
			fmt.Fprintln(r.bw, r.styles.Dim.Render(strings.Repeat("-", width)))
		}
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

// terminalWidth attempts to get the terminal width from the writer.
func terminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
