package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/yui/pkg/layout"
)

func TestFormatError(t *testing.T) {
	l, err := layout.New(layout.Entry{Cut: layout.CutLeft, Size: 30})
	if err != nil {
		t.Fatalf("layout.New() error = %v", err)
	}
	_, buildErr := l.Build(context.Background(), 20, 4)
	if buildErr == nil {
		t.Fatal("Build() should fail")
	}

	tests := []struct {
		name    string
		err     error
		want    []string
		notWant []string
	}{
		{
			name:    "layout error",
			err:     fmt.Errorf("build layout: %w", buildErr),
			want:    []string{iconError, "panel 0 (left): amount 30 exceeds available extent 20", "[INVALID_LAYOUT]"},
			notWant: []string{"INVALID_GEOMETRY"},
		},
		{
			name:    "plain error",
			err:     stderrors.New("invalid --fps 0: must be positive"),
			want:    []string{"invalid --fps 0: must be positive"},
			notWant: []string{"[INVALID"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatError(tt.err)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("FormatError() = %q, missing %q", got, w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(got, w) {
					t.Errorf("FormatError() = %q, should not contain %q", got, w)
				}
			}
		})
	}
}
