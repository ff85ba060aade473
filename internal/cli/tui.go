package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/yui/pkg/canvas"
	"github.com/matzehuels/yui/pkg/layout"
)

// =============================================================================
// FrameModel - Live layout view
// =============================================================================

// FrameModel is the bubbletea model for the watch command. Every window
// size message rebuilds the layout for the new size.
type FrameModel struct {
	ctx    context.Context
	layout *layout.Layout
	canvas *canvas.Canvas
	Err    error
}

// NewFrameModel creates a frame model with an empty canvas. The layout is
// built when the first window size arrives.
func NewFrameModel(ctx context.Context, l *layout.Layout) FrameModel {
	return FrameModel{
		ctx:    ctx,
		layout: l,
		canvas: canvas.New(0, 0),
	}
}

func (m FrameModel) Init() tea.Cmd {
	return nil
}

func (m FrameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		panels, err := m.layout.Build(m.ctx, msg.Width, msg.Height)
		if err != nil {
			m.Err = err
			return m, tea.Quit
		}
		m.canvas.Resize(msg.Width, msg.Height)
		m.canvas.SetPanels(panels)
	}
	return m, nil
}

func (m FrameModel) View() string {
	if w, h := m.canvas.Size(); w == 0 || h == 0 {
		return ""
	}
	return strings.TrimSuffix(renderFrame(m.ctx, m.canvas).String(), "\n")
}

// =============================================================================
// watch command
// =============================================================================

// watchCommand creates the watch command, a resize-aware full-screen view.
func (c *CLI) watchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [layout.toml]",
		Short: "Show a layout full-screen and re-layout on resize",
		Long: `Watch shows the layout in the alternate screen. Resizing the terminal
rebuilds the layout for the new size. Press q or ctrl+c to quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadLayout(layoutArg(args))
			if err != nil {
				return err
			}
			return c.runWatch(cmd.Context(), l)
		},
	}
}

// runWatch runs the bubbletea program until the user quits or ctx is cancelled.
func (c *CLI) runWatch(ctx context.Context, l *layout.Layout) error {
	p := tea.NewProgram(NewFrameModel(ctx, l), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("watch: %w", err)
	}
	if m, ok := final.(FrameModel); ok && m.Err != nil {
		return fmt.Errorf("build layout: %w", m.Err)
	}
	c.Logger.Debug("watch finished", "source", l.Source)
	return nil
}
