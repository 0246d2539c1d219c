package fix_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/fixlayer/fixlayer/pkg/fix"
)

func TestValidateEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		edits      []fix.TextEdit
		contentLen int
		wantErr    bool
		errMsg     string
	}{
		{
			name:       "empty edits",
			edits:      nil,
			contentLen: 10,
			wantErr:    false,
		},
		{
			name: "valid edits",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5, NewText: "hello"},
				{StartOffset: 5, EndOffset: 10, NewText: "world"},
			},
			contentLen: 10,
			wantErr:    false,
		},
		{
			name: "negative start offset",
			edits: []fix.TextEdit{
				{StartOffset: -1, EndOffset: 5, NewText: "hello"},
			},
			contentLen: 10,
			wantErr:    true,
			errMsg:     "start offset is negative",
		},
		{
			name: "end before start",
			edits: []fix.TextEdit{
				{StartOffset: 5, EndOffset: 3, NewText: "hello"},
			},
			contentLen: 10,
			wantErr:    true,
			errMsg:     "end offset is before start offset",
		},
		{
			name: "end exceeds content length",
			edits: []fix.TextEdit{
				{StartOffset: 5, EndOffset: 15, NewText: "hello"},
			},
			contentLen: 10,
			wantErr:    true,
			errMsg:     "exceeds content length",
		},
		{
			name: "zero-length edit (insertion)",
			edits: []fix.TextEdit{
				{StartOffset: 5, EndOffset: 5, NewText: "insert"},
			},
			contentLen: 10,
			wantErr:    false,
		},
		{
			name: "edit spanning full content",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 10, NewText: ""},
			},
			contentLen: 10,
			wantErr:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fix.ValidateEdits(tt.edits, tt.contentLen)

			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
					return
				}

				var valErr *fix.ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("expected ValidationError, got %T", err)
					return
				}

				if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error message %q does not contain %q", err.Error(), tt.errMsg)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSortEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		edits []fix.TextEdit
		want  []fix.TextEdit
	}{
		{
			name:  "empty",
			edits: nil,
			want:  nil,
		},
		{
			name: "already sorted",
			edits: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5},
				{StartOffset: 5, EndOffset: 10},
			},
			want: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5},
				{StartOffset: 5, EndOffset: 10},
			},
		},
		{
			name: "reverse order",
			edits: []fix.TextEdit{
				{StartOffset: 10, EndOffset: 15},
				{StartOffset: 0, EndOffset: 5},
			},
			want: []fix.TextEdit{
				{StartOffset: 0, EndOffset: 5},
				{StartOffset: 10, EndOffset: 15},
			},
		},
		{
			name: "same start sorted by end",
			edits: []fix.TextEdit{
				{StartOffset: 3, EndOffset: 9},
				{StartOffset: 3, EndOffset: 3},
			},
			want: []fix.TextEdit{
				{StartOffset: 3, EndOffset: 3},
				{StartOffset: 3, EndOffset: 9},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			edits := make([]fix.TextEdit, len(tt.edits))
			copy(edits, tt.edits)

			fix.SortEdits(edits)

			for i := range tt.want {
				if edits[i] != tt.want[i] {
					t.Errorf("edit %d: got %+v, want %+v", i, edits[i], tt.want[i])
				}
			}
		})
	}
}
