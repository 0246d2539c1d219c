package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixlayer/fixlayer/pkg/core"
	"github.com/fixlayer/fixlayer/pkg/issue"
	_ "github.com/fixlayer/fixlayer/pkg/layer/layers"
)

func TestAnalyzeFindsIssues(t *testing.T) {
	t.Parallel()

	adapter := core.New()
	code := "var x = 1;\nconsole.log(x);\n"

	result := adapter.Analyze(context.Background(), code, core.Options{
		Filename: "app.js",
		Layers:   []int{2},
	})

	require.True(t, result.Success)
	require.Len(t, result.Issues, 2)
	assert.Equal(t, "no-var", result.Issues[0].RuleName)
	assert.Equal(t, "no-console", result.Issues[1].RuleName)
	assert.Equal(t, []int{2}, result.Layers)
	assert.Empty(t, result.TransformedCode)
	assert.Equal(t, 2, result.Summary.TotalIssues)
	assert.Equal(t, "app.js", result.Summary.Filename)
	assert.Len(t, result.Summary.IssuesByLayer[2], 2)
}

func TestAnalyzeCleanFile(t *testing.T) {
	t.Parallel()

	adapter := core.New()

	result := adapter.Analyze(context.Background(), "const x = 1;\n", core.Options{
		Filename: "app.js",
	})

	require.True(t, result.Success)
	assert.NotNil(t, result.Issues)
	assert.Empty(t, result.Issues)
	assert.Equal(t, 0, result.Summary.TotalIssues)
	assert.Equal(t, []int{1, 2, 7, 8}, result.Layers)
}

func TestAnalyzeIssuesAreSorted(t *testing.T) {
	t.Parallel()

	adapter := core.New()
	// Security issue on line 1, pattern issue on line 2: canonical order
	// is by line, not by layer execution order.
	code := "eval(payload);\nvar x = 1;\n"

	result := adapter.Analyze(context.Background(), code, core.Options{
		Filename: "app.js",
		Layers:   []int{2, 8},
	})

	require.True(t, result.Success)
	require.Len(t, result.Issues, 2)
	assert.Equal(t, "no-eval", result.Issues[0].RuleName)
	assert.Equal(t, "no-var", result.Issues[1].RuleName)
}

func TestAnalyzeEmptyCodeFails(t *testing.T) {
	t.Parallel()

	adapter := core.New()

	result := adapter.Analyze(context.Background(), "   \n", core.Options{Filename: "app.js"})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "empty source")
	assert.NotNil(t, result.Issues)
	assert.Empty(t, result.Issues)
}

func TestAnalyzeOversizedCodeFails(t *testing.T) {
	t.Parallel()

	adapter := core.New()

	result := adapter.Analyze(context.Background(), "const x = 1; // some padding\n", core.Options{
		Filename:      "app.js",
		MaxInputBytes: 8,
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "size limit")
}

func TestAnalyzeInvalidLayerFails(t *testing.T) {
	t.Parallel()

	adapter := core.New()

	result := adapter.Analyze(context.Background(), "const x = 1;\n", core.Options{
		Filename: "app.js",
		Layers:   []int{42},
	})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "invalid layer")
}

func TestAnalyzeUnsupportedLanguageAutoSelection(t *testing.T) {
	t.Parallel()

	adapter := core.New()

	result := adapter.Analyze(context.Background(), "# A markdown heading\n", core.Options{
		Filename: "README.md",
	})

	require.True(t, result.Success)
	assert.Empty(t, result.Issues)
	assert.Empty(t, result.Layers)
}

func TestAnalyzeExplicitLayersRunOnAnyFile(t *testing.T) {
	t.Parallel()

	adapter := core.New()

	// An explicit selection overrides the unsupported-language shortcut.
	result := adapter.Analyze(context.Background(), "var x = 1;\n", core.Options{
		Filename: "snippet.txt",
		Layers:   []int{2},
	})

	require.True(t, result.Success)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "no-var", result.Issues[0].RuleName)
}

func TestAnalyzeWithFix(t *testing.T) {
	t.Parallel()

	adapter := core.New()
	code := "var x = 1;\nconsole.log(x);\n"

	result := adapter.Analyze(context.Background(), code, core.Options{
		Filename: "app.js",
		Layers:   []int{2},
		Fix:      true,
	})

	require.True(t, result.Success)
	assert.Equal(t, "let x = 1;\n", result.TransformedCode)
}

func TestAnalyzeFixIsIdempotent(t *testing.T) {
	t.Parallel()

	adapter := core.New()
	code := "var x = 1;\nif (x == 1) {\n}\n"
	opts := core.Options{Filename: "app.js", Layers: []int{2}, Fix: true}

	first := adapter.Analyze(context.Background(), code, opts)
	require.True(t, first.Success)
	require.NotEmpty(t, first.TransformedCode)

	second := adapter.Analyze(context.Background(), first.TransformedCode, opts)
	require.True(t, second.Success)
	assert.Empty(t, second.Issues)
	assert.Empty(t, second.TransformedCode)
}

func TestAnalyzePlatformDoesNotAffectResults(t *testing.T) {
	t.Parallel()

	adapter := core.New()
	code := "var x = 1;\nwindow.alert(x);\neval(x);\n"
	platforms := []string{"", "cli", "extension", "api"}

	var reference *core.AnalysisResult
	for _, platform := range platforms {
		result := adapter.Analyze(context.Background(), code, core.Options{
			Filename: "app.js",
			Platform: platform,
		})
		require.True(t, result.Success)

		if reference == nil {
			reference = result
			continue
		}

		require.Len(t, result.Issues, len(reference.Issues))
		for i := range reference.Issues {
			assert.True(t, reference.Issues[i].Same(result.Issues[i]),
				"platform %q produced a different issue %d", platform, i)
		}
		assert.Equal(t, reference.Layers, result.Layers)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	t.Parallel()

	adapter := core.New()
	code := "var a = 1;\nconsole.log(a);\nlocalStorage.setItem('a', a);\n"
	opts := core.Options{Filename: "store.js", FilePath: "src/app/store.js"}

	first := adapter.Analyze(context.Background(), code, opts)
	require.True(t, first.Success)

	for range 5 {
		again := adapter.Analyze(context.Background(), code, opts)
		require.True(t, again.Success)
		require.Len(t, again.Issues, len(first.Issues))
		for i := range first.Issues {
			assert.True(t, first.Issues[i].Same(again.Issues[i]))
		}
	}
}

func TestApplyFixes(t *testing.T) {
	t.Parallel()

	adapter := core.New()
	code := "var x = 1;\n"
	issues := []issue.Issue{
		{Layer: 2, Location: issue.Location{Line: 1, Column: 1}, RuleName: "no-var"},
	}

	result := adapter.ApplyFixes(context.Background(), code, issues, core.FixOptions{
		Filename: "app.js",
	})

	require.True(t, result.Success)
	assert.Equal(t, "let x = 1;\n", result.Code)
	assert.Equal(t, 1, result.TotalFixes)
}

func TestApplyFixesDryRun(t *testing.T) {
	t.Parallel()

	adapter := core.New()
	code := "var x = 1;\n"
	issues := []issue.Issue{
		{Layer: 2, Location: issue.Location{Line: 1, Column: 1}, RuleName: "no-var"},
	}

	result := adapter.ApplyFixes(context.Background(), code, issues, core.FixOptions{
		Filename: "app.js",
		DryRun:   true,
	})

	require.True(t, result.Success)
	// Dry run reports the fixes but returns the original text.
	assert.Equal(t, code, result.Code)
	assert.Equal(t, 1, result.TotalFixes)
	require.Len(t, result.AppliedFixes, 1)
	assert.Equal(t, "no-var", result.AppliedFixes[0].RuleName)
}

func TestApplyFixesEmptyCode(t *testing.T) {
	t.Parallel()

	adapter := core.New()

	result := adapter.ApplyFixes(context.Background(), "  ", nil, core.FixOptions{Filename: "app.js"})

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "empty source")
	assert.NotNil(t, result.AppliedFixes)
}

func TestApplyFixesOutOfRange(t *testing.T) {
	t.Parallel()

	adapter := core.New()
	code := "var x = 1;\n"
	issues := []issue.Issue{
		{Layer: 2, Location: issue.Location{Line: 9, Column: 1}, RuleName: "no-var"},
	}

	result := adapter.ApplyFixes(context.Background(), code, issues, core.FixOptions{Filename: "app.js"})

	assert.False(t, result.Success)
	assert.Equal(t, code, result.Code)
	assert.Contains(t, result.Error, "outside source")
}
