package configloader

import (
	"strings"
	"testing"

	"github.com/fixlayer/fixlayer/pkg/config"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*config.Config) {},
		},
		{
			name:   "full layer selection",
			mutate: func(c *config.Config) { c.Layers = []int{1, 2, 3, 4, 5, 6, 7, 8} },
		},
		{
			name:    "layer zero",
			mutate:  func(c *config.Config) { c.Layers = []int{0} },
			wantErr: "fails constraint",
		},
		{
			name:    "layer nine",
			mutate:  func(c *config.Config) { c.Layers = []int{2, 9} },
			wantErr: "fails constraint",
		},
		{
			name:    "negative max input bytes",
			mutate:  func(c *config.Config) { c.MaxInputBytes = -1 },
			wantErr: "fails constraint",
		},
		{
			name:    "unknown format",
			mutate:  func(c *config.Config) { c.Format = "xml" },
			wantErr: "unknown output format",
		},
		{
			name:    "negative jobs",
			mutate:  func(c *config.Config) { c.Jobs = -2 },
			wantErr: "non-negative",
		},
		{
			name:   "zero jobs means auto",
			mutate: func(c *config.Config) { c.Jobs = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig()
			tt.mutate(cfg)

			err := Validate(cfg)

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateNil(t *testing.T) {
	if err := Validate(nil); err == nil {
		t.Error("expected error for nil config")
	}
}
