// Package canvas composites panels into full-screen text frames.
//
// A [Canvas] holds an ordered list of panels; the first panel in the list is
// on top. [Canvas.Render] visits every cell of the display once and keeps the
// glyph of the first panel that claims it, falling back to a blank.
//
// The canvas does not re-layout its panels when the display is resized. Build
// new panels for the new size (see package layout) and pass them to
// [Canvas.SetPanels].
package canvas

import (
	"io"
	"strings"

	"github.com/matzehuels/yui/pkg/box"
)

// Display size used when the real size cannot be determined.
const (
	DefaultWidth  = 80
	DefaultHeight = 5
)

// ClearScreen erases the display and homes the cursor. It precedes every
// presented frame.
const ClearScreen = "\x1b[2J\x1b[1;1H"

// SizeFunc reports the display size in cells.
type SizeFunc func() (width, height int, err error)

// Canvas is an ordered stack of panels drawn onto a width x height grid.
// It is not safe for concurrent use; the render loop owns it.
type Canvas struct {
	width, height int
	panels        []*box.Panel
}

// New creates a canvas of the given size holding panels, topmost first.
func New(width, height int, panels ...*box.Panel) *Canvas {
	return &Canvas{width: max(width, 0), height: max(height, 0), panels: panels}
}

// Size returns the display size.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// Resize changes the display size. Panels keep their geometry.
func (c *Canvas) Resize(width, height int) {
	c.width, c.height = max(width, 0), max(height, 0)
}

// Refresh queries the display size and resizes the canvas. When size fails
// or reports a non-positive dimension the default 80x5 is used. It returns
// true if the size changed.
func (c *Canvas) Refresh(size SizeFunc) bool {
	w, h, err := size()
	if err != nil || w <= 0 || h <= 0 {
		w, h = DefaultWidth, DefaultHeight
	}
	changed := w != c.width || h != c.height
	c.Resize(w, h)
	return changed
}

// Add appends panels below the existing ones.
func (c *Canvas) Add(panels ...*box.Panel) { c.panels = append(c.panels, panels...) }

// SetPanels replaces the panel stack.
func (c *Canvas) SetPanels(panels []*box.Panel) { c.panels = panels }

// Panels returns the panel stack, topmost first.
func (c *Canvas) Panels() []*box.Panel { return c.panels }

// At returns the glyph the topmost claiming panel draws at (x, y), or a
// blank when no panel claims it.
func (c *Canvas) At(x, y int) rune {
	for _, p := range c.panels {
		if r, ok := p.Resolve(x, y); ok {
			return r
		}
	}
	return box.Blank
}

// Render composes one frame covering the whole display.
func (c *Canvas) Render() Frame {
	f := Frame{Width: c.width, Height: c.height, cells: make([]rune, c.width*c.height)}
	for y := range c.height {
		for x := range c.width {
			f.cells[y*c.width+x] = c.At(x, y)
		}
	}
	return f
}

// Frame is one rendered grid, stored row-major.
type Frame struct {
	Width, Height int
	cells         []rune
}

// At returns the glyph at (x, y), or a blank outside the frame.
func (f Frame) At(x, y int) rune {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return box.Blank
	}
	return f.cells[y*f.Width+x]
}

// Row returns row y as a string without its line break.
func (f Frame) Row(y int) string {
	if y < 0 || y >= f.Height {
		return ""
	}
	return string(f.cells[y*f.Width : (y+1)*f.Width])
}

// String returns the frame with every row terminated by a line break.
func (f Frame) String() string {
	var b strings.Builder
	b.Grow((f.Width + 1) * f.Height)
	for y := range f.Height {
		for _, r := range f.cells[y*f.Width : (y+1)*f.Width] {
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Present writes the clear sequence followed by the frame to w.
func Present(w io.Writer, f Frame) error {
	_, err := io.WriteString(w, ClearScreen+f.String())
	return err
}
