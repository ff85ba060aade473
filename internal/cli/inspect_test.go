package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/yui/pkg/box"
)

func TestInspectCommand(t *testing.T) {
	c, out := newTestCLI(t, 80, 24)
	root := c.RootCommand()
	root.SetArgs([]string{"inspect", writeLayout(t, boxedLayout), "-W", "6", "-H", "3"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("inspect error = %v", err)
	}

	for _, want := range []string{"6x3", "smooth", "6x3@(0,0)", "4x1", "Domain", "Content"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("inspect output missing %q:\n%s", want, out.String())
		}
	}
}

func TestFormatEdges(t *testing.T) {
	tests := []struct {
		edges box.Edges
		want  string
	}{
		{box.Edges{}, "-"},
		{box.EdgeAll(1), "1 1 1 1"},
		{box.EdgeTRBL(3, 0, 0, 0.5), "3 0 0 0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatEdges(tt.edges); got != tt.want {
				t.Errorf("formatEdges(%v) = %q, want %q", tt.edges, got, tt.want)
			}
		})
	}
}
