package layer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fixlayer/fixlayer/pkg/layer"
)

func TestPathContains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctx  layer.Context
		sub  string
		want bool
	}{
		{
			name: "relative path match",
			ctx:  layer.Context{FilePath: "src/app/page.tsx"},
			sub:  "/app/",
			want: true,
		},
		{
			name: "absolute path match",
			ctx:  layer.Context{FilePath: "/home/dev/project/pages/index.js"},
			sub:  "/pages/",
			want: true,
		},
		{
			name: "windows separators are normalized",
			ctx:  layer.Context{FilePath: `src\app\page.tsx`},
			sub:  "/app/",
			want: true,
		},
		{
			name: "no match",
			ctx:  layer.Context{FilePath: "src/lib/util.js"},
			sub:  "/app/",
			want: false,
		},
		{
			name: "falls back to filename when path empty",
			ctx:  layer.Context{Filename: "__tests__/helper.js"},
			sub:  "__tests__/",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.ctx.PathContains(tt.sub))
		})
	}
}

func TestIsTestFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctx  layer.Context
		want bool
	}{
		{name: "test suffix", ctx: layer.Context{Filename: "util.test.js"}, want: true},
		{name: "spec suffix", ctx: layer.Context{Filename: "api.spec.ts"}, want: true},
		{name: "tests directory", ctx: layer.Context{Filename: "x.js", FilePath: "src/__tests__/x.js"}, want: true},
		{name: "regular source", ctx: layer.Context{Filename: "util.js"}, want: false},
		{name: "testdata is not a test file", ctx: layer.Context{Filename: "testutil.js"}, want: false},
		{name: "filename from path", ctx: layer.Context{FilePath: "src/api.test.ts"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.ctx.IsTestFile())
		})
	}
}
