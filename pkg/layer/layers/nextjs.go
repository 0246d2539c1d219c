package layers

import (
	"regexp"
	"strings"

	"github.com/fixlayer/fixlayer/pkg/issue"
	"github.com/fixlayer/fixlayer/pkg/layer"
)

var hookCallRe = regexp.MustCompile(`\buse(State|Effect|Ref|Callback|Memo|Context|Reducer)\(`)

// nextLayer extends the rule table with a file-level check for the
// 'use client' directive.
type nextLayer struct {
	tableLayer
}

// NewNextJSLayer creates layer 5, which migrates code to framework
// conventions: app-router client components and next/image.
func NewNextJSLayer() layer.Layer {
	return &nextLayer{
		tableLayer: tableLayer{
			number: layer.NextJS,
			name:   "nextjs",
			desc:   "Framework migration fixes",
			rules: []layer.LineRule{
				{
					Name:        "next-image",
					Severity:    issue.SeverityInfo,
					Message:     "Plain img element in a Next.js project",
					Description: "next/image provides lazy loading and size optimization; migrate manually.",
					Pattern:     regexp.MustCompile(`<img\b`),
					Applies: func(ctx *layer.Context) bool {
						return ctx.PathContains("/app/") || ctx.PathContains("/pages/")
					},
				},
			},
		},
	}
}

func (l *nextLayer) Rules() []layer.RuleInfo {
	infos := l.tableLayer.Rules()
	return append([]layer.RuleInfo{{
		Name:        "use-client-directive",
		Description: "App-router components using hooks must declare 'use client'.",
		Severity:    issue.SeverityError,
		Fixable:     true,
	}}, infos...)
}

func (l *nextLayer) Detect(source string, ctx *layer.Context) ([]issue.Issue, error) {
	issues, err := l.tableLayer.Detect(source, ctx)
	if err != nil {
		return nil, err
	}

	if needsUseClient(source, ctx) {
		directive := issue.Issue{
			Severity:    issue.SeverityError,
			Message:     "Component uses hooks without a 'use client' directive",
			Description: "App-router files are server components by default; hooks require 'use client' at the top of the file.",
			Layer:       layer.NextJS,
			Location:    issue.Location{Line: 1, Column: 1},
			RuleName:    "use-client-directive",
		}
		issues = append([]issue.Issue{directive}, issues...)
	}

	return issues, nil
}

// needsUseClient reports whether the file is an app-router component that
// calls hooks but never declares 'use client'.
func needsUseClient(source string, ctx *layer.Context) bool {
	if !ctx.PathContains("/app/") {
		return false
	}
	if strings.Contains(source, "'use client'") || strings.Contains(source, `"use client"`) {
		return false
	}
	return hookCallRe.MatchString(source)
}
