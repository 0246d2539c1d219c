package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixlayer/fixlayer/pkg/issue"
	"github.com/fixlayer/fixlayer/pkg/layer"
)

func TestConfigurationLayerMetadata(t *testing.T) {
	l := NewConfigurationLayer()

	assert.Equal(t, layer.Configuration, l.Number())
	assert.Equal(t, "configuration", l.Name())

	rules := l.Rules()
	require.Len(t, rules, 2)
	assert.Equal(t, "tsconfig-target", rules[0].Name)
	assert.True(t, rules[0].Fixable)
	assert.Equal(t, "no-reactstrictmode-off", rules[1].Name)
	assert.True(t, rules[1].Fixable)
}

func TestConfigurationLayerDetect(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		wantRules []string
	}{
		{
			name:      "outdated target",
			source:    "{\n  \"target\": \"es5\",\n}\n",
			wantRules: []string{"tsconfig-target"},
		},
		{
			name:      "uppercase target",
			source:    "{\n  \"target\": \"ES5\"\n}\n",
			wantRules: []string{"tsconfig-target"},
		},
		{
			name:      "modern target is clean",
			source:    "{\n  \"target\": \"ES2020\"\n}\n",
			wantRules: nil,
		},
		{
			name:      "strict mode disabled",
			source:    "module.exports = {\n  reactStrictMode: false,\n}\n",
			wantRules: []string{"no-reactstrictmode-off"},
		},
		{
			name:      "strict mode enabled is clean",
			source:    "module.exports = {\n  reactStrictMode: true,\n}\n",
			wantRules: nil,
		},
	}

	l := NewConfigurationLayer()
	ctx := &layer.Context{Filename: "tsconfig.json"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := mustDetect(t, l, tt.source, ctx)
			assert.Equal(t, tt.wantRules, ruleNames(issues))
		})
	}
}

func TestConfigurationLayerDetectLocation(t *testing.T) {
	l := NewConfigurationLayer()
	ctx := &layer.Context{Filename: "tsconfig.json"}

	issues := mustDetect(t, l, "{\n  \"target\": \"es5\"\n}\n", ctx)

	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].Location.Line)
	assert.Equal(t, 3, issues[0].Location.Column)
	assert.Equal(t, issue.SeverityWarning, issues[0].Severity)
}

func TestConfigurationLayerFix(t *testing.T) {
	l := NewConfigurationLayer()
	ctx := &layer.Context{Filename: "tsconfig.json"}

	source := "{\n  \"target\": \"es5\"\n}\n"
	issues := mustDetect(t, l, source, ctx)
	require.NotEmpty(t, issues)

	fixer, ok := l.(layer.Fixer)
	require.True(t, ok)

	fixed, err := fixer.Fix(source, issues, ctx)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"target\": \"ES2020\"\n}\n", fixed)
}
