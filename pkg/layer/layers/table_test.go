package layers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fixlayer/fixlayer/pkg/issue"
	"github.com/fixlayer/fixlayer/pkg/layer"
)

// mustDetect runs a layer's detection and fails the test on error.
func mustDetect(t *testing.T, l layer.Layer, source string, ctx *layer.Context) []issue.Issue {
	t.Helper()

	if ctx == nil {
		ctx = &layer.Context{Filename: "app.js"}
	}

	issues, err := l.Detect(source, ctx)
	require.NoError(t, err)
	return issues
}

// ruleNames extracts the rule names from issues, in order.
func ruleNames(issues []issue.Issue) []string {
	var names []string
	for _, iss := range issues {
		names = append(names, iss.RuleName)
	}
	return names
}
