package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// renderOptions holds flags for the render command.
type renderOptions struct {
	width  int
	height int
}

// renderCommand creates the render command for printing a single frame.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [layout.toml]",
		Short: "Render one frame of a layout",
		Long: `Render lays out the panels for the given size and prints one frame.

Without a layout file the built-in demo layout is used. Without --width and
--height the terminal size is detected, falling back to 80x5.`,
		Example: `  # Demo layout at the terminal size
  yui render

  # A layout file at a fixed size
  yui render panels.toml --width 120 --height 40`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, layoutArg(args), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "W", 0, "frame width in cells (0 = detect)")
	cmd.Flags().IntVarP(&opts.height, "height", "H", 0, "frame height in cells (0 = detect)")

	return cmd
}

// runRender builds the layout and writes one frame without clearing the screen.
func (c *CLI) runRender(cmd *cobra.Command, path string, opts renderOptions) error {
	ctx := cmd.Context()
	sw := startStopwatch(c.Logger)

	l, err := loadLayout(path)
	if err != nil {
		return err
	}
	cv, err := c.newCanvas(ctx, l, opts.width, opts.height)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprint(c.out, renderFrame(ctx, cv).String()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}

	w, h := cv.Size()
	sw.done("frame rendered", "layout", l.Source, "size", fmt.Sprintf("%dx%d", w, h))
	return nil
}
