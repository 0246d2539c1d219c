package layer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixlayer/fixlayer/pkg/langdetect"
	"github.com/fixlayer/fixlayer/pkg/layer"
)

func TestResolveExplicit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requested []int
		want      []int
		wantErr   bool
	}{
		{
			name:      "single layer",
			requested: []int{2},
			want:      []int{2},
		},
		{
			name:      "sorted ascending",
			requested: []int{8, 2, 5},
			want:      []int{2, 5, 8},
		},
		{
			name:      "duplicates removed",
			requested: []int{3, 1, 3, 1},
			want:      []int{1, 3},
		},
		{
			name:      "all layers",
			requested: []int{1, 2, 3, 4, 5, 6, 7, 8},
			want:      []int{1, 2, 3, 4, 5, 6, 7, 8},
		},
		{
			name:      "zero is invalid",
			requested: []int{0},
			wantErr:   true,
		},
		{
			name:      "nine is invalid",
			requested: []int{9},
			wantErr:   true,
		},
		{
			name:      "one invalid layer rejects the whole request",
			requested: []int{1, 2, 42},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := &layer.Context{Filename: "app.js", Language: langdetect.LangJavaScript}
			got, err := layer.Resolve(tt.requested, ctx, "const x = 1;\n")

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, layer.ErrInvalidLayer)
				assert.Contains(t, err.Error(), "valid layers are 1-8")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveEmptyRequestUsesAuto(t *testing.T) {
	t.Parallel()

	ctx := &layer.Context{Filename: "util.js", Language: langdetect.LangJavaScript}

	got, err := layer.Resolve(nil, ctx, "const x = 1;\n")

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 7, 8}, got)
}

func TestAuto(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ctx     *layer.Context
		content string
		want    []int
	}{
		{
			name: "json config gets configuration layer only",
			ctx:  &layer.Context{Filename: "tsconfig.json", Language: langdetect.LangJSON},
			want: []int{1},
		},
		{
			name: "unknown language gets no layers",
			ctx:  &layer.Context{Filename: "README.md", Language: langdetect.LangUnknown},
			want: nil,
		},
		{
			name:    "plain javascript baseline",
			ctx:     &layer.Context{Filename: "util.js", Language: langdetect.LangJavaScript},
			content: "const x = 1;\n",
			want:    []int{1, 2, 7, 8},
		},
		{
			name:    "jsx adds components layer",
			ctx:     &layer.Context{Filename: "Button.jsx", Language: langdetect.LangJSX},
			content: "const Button = () => <button />\n",
			want:    []int{1, 2, 3, 7, 8},
		},
		{
			name:    "tsx adds components layer",
			ctx:     &layer.Context{Filename: "Page.tsx", Language: langdetect.LangTSX},
			content: "export default function Page() { return <div /> }\n",
			want:    []int{1, 2, 3, 7, 8},
		},
		{
			name:    "element markers in plain js add components layer",
			ctx:     &layer.Context{Filename: "render.js", Language: langdetect.LangJavaScript},
			content: "const view = () => <div>hi</div>\n",
			want:    []int{1, 2, 3, 7, 8},
		},
		{
			name:    "next import adds hydration and nextjs layers",
			ctx:     &layer.Context{Filename: "page.js", Language: langdetect.LangJavaScript},
			content: "import Image from 'next/image'\nconst x = 1\n",
			want:    []int{1, 2, 4, 5, 7, 8},
		},
		{
			name: "app directory path adds hydration and nextjs layers",
			ctx: &layer.Context{
				Filename: "page.tsx",
				FilePath: "src/app/dashboard/page.tsx",
				Language: langdetect.LangTSX,
			},
			content: "export default function Page() { return <div /> }\n",
			want:    []int{1, 2, 3, 4, 5, 7, 8},
		},
		{
			name:    "test file adds testing layer",
			ctx:     &layer.Context{Filename: "util.test.js", Language: langdetect.LangJavaScript},
			content: "it('works', () => {})\n",
			want:    []int{1, 2, 6, 7, 8},
		},
		{
			name: "spec file adds testing layer",
			ctx:  &layer.Context{Filename: "api.spec.ts", Language: langdetect.LangTypeScript},
			want: []int{1, 2, 6, 7, 8},
		},
		{
			name: "tsx test under app directory selects everything",
			ctx: &layer.Context{
				Filename: "page.test.tsx",
				FilePath: "src/app/page.test.tsx",
				Language: langdetect.LangTSX,
			},
			content: "it('renders', () => { render(<Page />) })\n",
			want:    []int{1, 2, 3, 4, 5, 6, 7, 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := layer.Auto(tt.ctx, tt.content)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAutoDetectsLanguageWhenUnset(t *testing.T) {
	t.Parallel()

	ctx := &layer.Context{Filename: "index.js"}

	got := layer.Auto(ctx, "console.log('hi')\n")

	assert.Equal(t, []int{1, 2, 7, 8}, got)
}

func TestAutoIsDeterministic(t *testing.T) {
	t.Parallel()

	ctx := &layer.Context{
		Filename: "page.tsx",
		FilePath: "app/page.tsx",
		Language: langdetect.LangTSX,
	}
	content := "'use client'\nexport default function Page() { return <div /> }\n"

	first := layer.Auto(ctx, content)
	for range 5 {
		assert.Equal(t, first, layer.Auto(ctx, content))
	}
}
