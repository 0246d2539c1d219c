package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixlayer/fixlayer/pkg/issue"
	"github.com/fixlayer/fixlayer/pkg/layer"
)

func TestPatternsLayerDetect(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		wantRules []string
	}{
		{
			name:      "console statement",
			source:    "console.log('hello');\n",
			wantRules: []string{"no-console"},
		},
		{
			name:      "console variants",
			source:    "console.warn(a);\nconsole.error(b);\nconsole.debug(c);\n",
			wantRules: []string{"no-console", "no-console", "no-console"},
		},
		{
			name:      "commented console is skipped",
			source:    "// console.log('hello');\n",
			wantRules: nil,
		},
		{
			name:      "console member access without call is clean",
			source:    "const log = console.log;\n",
			wantRules: nil,
		},
		{
			name:      "debugger statement",
			source:    "debugger;\n",
			wantRules: []string{"no-debugger"},
		},
		{
			name:      "var declaration",
			source:    "var count = 0;\n",
			wantRules: []string{"no-var"},
		},
		{
			name:      "var inside identifier is clean",
			source:    "const variance = 1;\n",
			wantRules: nil,
		},
		{
			name:      "loose equality",
			source:    "if (a == b) {\n}\n",
			wantRules: []string{"eqeqeq"},
		},
		{
			name:      "loose inequality",
			source:    "if (a != b) {\n}\n",
			wantRules: []string{"eqeqeq"},
		},
		{
			name:      "strict equality is clean",
			source:    "if (a === b) {\n}\n",
			wantRules: nil,
		},
		{
			name:      "strict inequality is clean",
			source:    "if (a !== b) {\n}\n",
			wantRules: nil,
		},
		{
			name:      "clean source",
			source:    "const x = 1;\nlet y = 2;\n",
			wantRules: nil,
		},
	}

	l := NewPatternsLayer()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := mustDetect(t, l, tt.source, nil)
			assert.Equal(t, tt.wantRules, ruleNames(issues))
		})
	}
}

func TestPatternsLayerSeverities(t *testing.T) {
	l := NewPatternsLayer()

	issues := mustDetect(t, l, "console.log(1);\ndebugger;\n", nil)

	require.Len(t, issues, 2)
	assert.Equal(t, issue.SeverityWarning, issues[0].Severity)
	assert.Equal(t, issue.SeverityError, issues[1].Severity)
}

func TestPatternsLayerDetectDoesNotMutate(t *testing.T) {
	l := NewPatternsLayer()
	source := "var x = 1;\n"

	_ = mustDetect(t, l, source, nil)

	// Detection never rewrites; only Fix does.
	assert.Equal(t, "var x = 1;\n", source)
}

func TestPatternsLayerFix(t *testing.T) {
	l := NewPatternsLayer()
	ctx := &layer.Context{Filename: "app.js"}

	source := "var x = 1;\nconsole.log(x);\nif (x == 1) {\n}\n"
	issues := mustDetect(t, l, source, ctx)
	require.Len(t, issues, 3)

	fixer, ok := l.(layer.Fixer)
	require.True(t, ok)

	fixed, err := fixer.Fix(source, issues, ctx)
	require.NoError(t, err)
	assert.Equal(t, "let x = 1;\nif (x === 1) {\n}\n", fixed)
}

func TestPatternsLayerFixIgnoresForeignIssues(t *testing.T) {
	l := NewPatternsLayer()
	ctx := &layer.Context{Filename: "app.js"}

	source := "window.alert(1);\n"
	foreign := []issue.Issue{
		{Layer: layer.Hydration, Location: issue.Location{Line: 1, Column: 1}, RuleName: "ssr-window-guard"},
	}

	fixer := l.(layer.Fixer)
	fixed, err := fixer.Fix(source, foreign, ctx)

	require.NoError(t, err)
	assert.Equal(t, source, fixed)
}
