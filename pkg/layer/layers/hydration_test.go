package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixlayer/fixlayer/pkg/issue"
	"github.com/fixlayer/fixlayer/pkg/layer"
)

func TestHydrationLayerDetect(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		wantRules []string
	}{
		{
			name:      "unguarded window access",
			source:    "window.scrollTo(0, 0);\n",
			wantRules: []string{"ssr-window-guard"},
		},
		{
			name:      "guarded window access is clean",
			source:    "if (typeof window !== 'undefined') { window.scrollTo(0, 0); }\n",
			wantRules: nil,
		},
		{
			name:      "commented window access is clean",
			source:    "// window.scrollTo(0, 0);\n",
			wantRules: nil,
		},
		{
			name:      "unguarded localStorage access",
			source:    "localStorage.setItem('theme', theme);\n",
			wantRules: []string{"ssr-localstorage-guard"},
		},
		{
			name:      "guarded localStorage access is clean",
			source:    "if (typeof window !== 'undefined') { localStorage.setItem('k', v); }\n",
			wantRules: nil,
		},
		{
			name:      "both globals on separate lines",
			source:    "window.alert(1);\nlocalStorage.clear();\n",
			wantRules: []string{"ssr-window-guard", "ssr-localstorage-guard"},
		},
	}

	l := NewHydrationLayer()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := mustDetect(t, l, tt.source, nil)
			assert.Equal(t, tt.wantRules, ruleNames(issues))
		})
	}
}

func TestHydrationLayerSeverity(t *testing.T) {
	l := NewHydrationLayer()

	issues := mustDetect(t, l, "window.alert(1);\n", nil)

	require.Len(t, issues, 1)
	assert.Equal(t, issue.SeverityError, issues[0].Severity)
}

func TestHydrationLayerFix(t *testing.T) {
	l := NewHydrationLayer()
	ctx := &layer.Context{Filename: "theme.js"}

	source := "  window.scrollTo(0, 0);\n"
	issues := mustDetect(t, l, source, ctx)
	require.Len(t, issues, 1)

	fixer := l.(layer.Fixer)
	fixed, err := fixer.Fix(source, issues, ctx)

	require.NoError(t, err)
	assert.Equal(t, "  if (typeof window !== 'undefined') { window.scrollTo(0, 0); }\n", fixed)

	// The guard suppresses re-detection.
	assert.Empty(t, mustDetect(t, l, fixed, ctx))
}
