package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/yui/pkg/box"
)

// inspectCommand creates the inspect command, which tabulates panel geometry.
func (c *CLI) inspectCommand() *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:     "inspect [layout.toml]",
		Short:   "Show the geometry of each panel in a layout",
		Example: `  yui inspect panels.toml --width 120 --height 40`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd, layoutArg(args), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "W", 0, "display width in cells (0 = detect)")
	cmd.Flags().IntVarP(&opts.height, "height", "H", 0, "display height in cells (0 = detect)")

	return cmd
}

func (c *CLI) runInspect(cmd *cobra.Command, path string, opts renderOptions) error {
	l, err := loadLayout(path)
	if err != nil {
		return err
	}
	cv, err := c.newCanvas(cmd.Context(), l, opts.width, opts.height)
	if err != nil {
		return err
	}

	w, h := cv.Size()
	fmt.Fprintln(c.out, StyleTitle.Render(l.Source))
	printKeyValue(c.out, "Display", fmt.Sprintf("%dx%d", w, h))
	printKeyValue(c.out, "Panels", strconv.Itoa(len(cv.Panels())))
	printNewline(c.out)

	if len(cv.Panels()) == 0 {
		printWarning(c.out, "layout has no panels")
		return nil
	}
	fmt.Fprintln(c.out, panelTable(cv.Panels()))
	return nil
}

// panelTable renders one row per panel, topmost first.
func panelTable(panels []*box.Panel) string {
	rows := make([][]string, 0, len(panels))
	for i, p := range panels {
		cw, ch := p.ContentSize()
		rows = append(rows, []string{
			strconv.Itoa(i),
			p.Domain().String(),
			formatEdges(p.Margin()),
			p.Border().String(),
			formatEdges(p.Padding()),
			fmt.Sprintf("%dx%d", cw, ch),
			strconv.Itoa(len(p.Lines())),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Domain", "Margin", "Border", "Padding", "Content", "Lines").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle()
		})

	return t.Render()
}

// formatEdges prints edges in top/right/bottom/left order, or "-" when zero.
func formatEdges(e box.Edges) string {
	if e.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%g %g %g %g", e.Top, e.Right, e.Bottom, e.Left)
}
