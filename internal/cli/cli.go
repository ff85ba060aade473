// Package cli implements the yui command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/yui/internal/term"
	"github.com/matzehuels/yui/pkg/buildinfo"
	"github.com/matzehuels/yui/pkg/canvas"
	"github.com/matzehuels/yui/pkg/layout"
	"github.com/matzehuels/yui/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "yui"

	// defaultFPS is the frame rate of the run loop.
	defaultFPS = 60

	// defaultFrames is how many frames the run loop draws before exiting.
	defaultFrames = defaultFPS * 50
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out  io.Writer
	size canvas.SizeFunc
}

// New creates a new CLI instance with a default logger writing to w.
// Frames and command output go to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		out:    os.Stdout,
		size:   term.Size,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetOutput redirects frames and command output.
func (c *CLI) SetOutput(w io.Writer) { c.out = w }

// SetSizeFunc replaces the display size query.
func (c *CLI) SetSizeFunc(f canvas.SizeFunc) { c.size = f }

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "yui draws box-model panels on a text grid",
		Long:         `yui composes rectangular panels (margin, border, padding and wrapped text) into full-screen text frames.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			installLogger(c.Logger)
			c.Logger.Debug("starting", "version", buildinfo.String())
			c.registerHooks()
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.runCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// registerHooks routes layout and frame events to the logger when debug
// logging is on.
func (c *CLI) registerHooks() {
	if c.Logger.GetLevel() > log.DebugLevel {
		return
	}
	hooks := logHooks{logger: c.Logger}
	observability.SetRenderHooks(hooks)
	observability.SetLayoutHooks(hooks)
}

// =============================================================================
// Helpers
// =============================================================================

// loadLayout reads the layout at path, or returns the demo layout when path
// is empty.
func loadLayout(path string) (*layout.Layout, error) {
	if path == "" {
		return layout.Demo(), nil
	}
	l, err := layout.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", path, err)
	}
	return l, nil
}

// layoutArg returns the optional layout file argument.
func layoutArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// newCanvas builds the layout for an explicit size, or for the detected
// display size when width or height is not positive.
func (c *CLI) newCanvas(ctx context.Context, l *layout.Layout, width, height int) (*canvas.Canvas, error) {
	cv := canvas.New(width, height)
	if width <= 0 || height <= 0 {
		cv.Refresh(c.size)
	}
	w, h := cv.Size()
	panels, err := l.Build(ctx, w, h)
	if err != nil {
		return nil, fmt.Errorf("build layout: %w", err)
	}
	cv.SetPanels(panels)
	return cv, nil
}
