package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/yui/pkg/canvas"
	"github.com/matzehuels/yui/pkg/layout"
	"github.com/matzehuels/yui/pkg/observability"
)

// runOptions holds flags for the run command.
type runOptions struct {
	fps    int
	frames int
	static bool
}

// runCommand creates the run command: the clear-and-redraw display loop.
func (c *CLI) runCommand() *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run [layout.toml]",
		Short: "Redraw a layout full-screen at a fixed frame rate",
		Long: `Run clears the terminal and redraws the layout once per tick.

The display size is re-read every tick. When it changes the layout is rebuilt
for the new size, unless --static is given, in which case the panels keep
their initial geometry and only the canvas is resized.`,
		Example: `  # Demo layout, 50 seconds at 60 fps
  yui run

  # Until interrupted
  yui run panels.toml --frames 0`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadLayout(layoutArg(args))
			if err != nil {
				return err
			}
			ctx := contextWithLogger(cmd.Context(), c.Logger)
			return c.runLoop(ctx, l, opts)
		},
	}

	cmd.Flags().IntVar(&opts.fps, "fps", defaultFPS, "frames per second")
	cmd.Flags().IntVar(&opts.frames, "frames", defaultFrames, "frames to draw before exiting (0 = until interrupted)")
	cmd.Flags().BoolVar(&opts.static, "static", false, "keep the initial layout when the display is resized")

	return cmd
}

// runLoop draws frames until the frame budget is spent or ctx is cancelled.
func (c *CLI) runLoop(ctx context.Context, l *layout.Layout, opts runOptions) error {
	if opts.fps <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", opts.fps)
	}
	logger := loggerFrom(ctx)

	cv := canvas.New(0, 0)
	built := false

	ticker := time.NewTicker(time.Second / time.Duration(opts.fps))
	defer ticker.Stop()

	for i := 0; opts.frames <= 0 || i < opts.frames; i++ {
		if cv.Refresh(c.size) && (!built || !opts.static) {
			w, h := cv.Size()
			panels, err := l.Build(ctx, w, h)
			if err != nil {
				return fmt.Errorf("build layout: %w", err)
			}
			cv.SetPanels(panels)
			built = true
			logger.Debug("layout rebuilt", "width", w, "height", h, "panels", len(panels))
		}

		if err := canvas.Present(c.out, renderFrame(ctx, cv)); err != nil {
			return fmt.Errorf("present frame %d: %w", i, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// renderFrame composites cv and reports the frame to the render hooks.
func renderFrame(ctx context.Context, cv *canvas.Canvas) canvas.Frame {
	hooks := observability.Render()
	w, h := cv.Size()
	hooks.OnFrameStart(ctx, w, h, len(cv.Panels()))

	start := time.Now()
	f := cv.Render()
	hooks.OnFrameComplete(ctx, w, h, time.Since(start), nil)
	return f
}
