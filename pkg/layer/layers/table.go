// Package layers provides the eight built-in analysis layers.
//
// Layer numbering is fixed semantic identity:
//
//  1. Configuration - compiler/framework configuration problems
//  2. Patterns - general code pattern problems
//  3. Components - component and accessibility problems
//  4. Hydration - server-side rendering safety problems
//  5. NextJS - framework migration problems
//  6. Testing - test hygiene problems
//  7. Adaptive - cross-rule patterns within the current call
//  8. Security - security forensics
//
// Each layer's rule table is policy: independently testable heuristics
// behind the layer contract, not pipeline logic.
package layers

import (
	"github.com/fixlayer/fixlayer/pkg/issue"
	"github.com/fixlayer/fixlayer/pkg/layer"
)

// tableLayer implements a layer backed entirely by a line-rule table.
// It satisfies both layer.Layer and layer.Fixer.
type tableLayer struct {
	number int
	name   string
	desc   string
	rules  []layer.LineRule
}

func (l *tableLayer) Number() int { return l.number }

func (l *tableLayer) Name() string { return l.name }

func (l *tableLayer) Description() string { return l.desc }

func (l *tableLayer) Rules() []layer.RuleInfo {
	infos := make([]layer.RuleInfo, 0, len(l.rules))
	for _, r := range l.rules {
		infos = append(infos, r.Info())
	}
	return infos
}

func (l *tableLayer) Detect(source string, ctx *layer.Context) ([]issue.Issue, error) {
	return layer.ScanLines(source, ctx, l.number, l.rules), nil
}

func (l *tableLayer) Fix(source string, issues []issue.Issue, _ *layer.Context) (string, error) {
	return layer.ApplyOwn(l.number, source, issues)
}
