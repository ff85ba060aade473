package box

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/matzehuels/yui/pkg/geom"
)

// Blank is the glyph emitted for margin, padding and empty content cells.
const Blank = ' '

// Band identifies which concentric region of a panel a cell falls in.
type Band uint8

const (
	BandOutside Band = iota // not part of the panel
	BandMargin              // blank space outside the border
	BandBorder              // drawn with the border style's glyphs
	BandPadding             // blank space inside the border
	BandContent             // wrapped text
)

func (b Band) String() string {
	switch b {
	case BandMargin:
		return "margin"
	case BandBorder:
		return "border"
	case BandPadding:
		return "padding"
	case BandContent:
		return "content"
	}
	return "outside"
}

// cellBox is a half-open integer box [x0, x1) x [y0, y1).
type cellBox struct {
	x0, y0, x1, y1 int
}

func (c cellBox) contains(x, y int) bool {
	return x >= c.x0 && x < c.x1 && y >= c.y0 && y < c.y1
}

func (c cellBox) inset(top, right, bottom, left int) cellBox {
	return cellBox{x0: c.x0 + left, y0: c.y0 + top, x1: c.x1 - right, y1: c.y1 - bottom}
}

func (c cellBox) insetEdges(e Edges) cellBox {
	return c.inset(int(e.Top), int(e.Right), int(e.Bottom), int(e.Left))
}

func (c cellBox) size() (w, h int) {
	return max(c.x1-c.x0, 0), max(c.y1-c.y0, 0)
}

// Panel is a rectangle drawn as a box model: margin, border, padding and a
// word-wrapped content area, from the outside in.
//
// Insets are not validated against the domain. When they add up to more than
// the domain the inner bands are simply empty and cells fall to the
// outermost band that still contains them.
type Panel struct {
	domain  geom.Rect
	margin  Edges
	padding Edges
	border  BorderStyle

	text   string
	lines  [][]rune
	scroll int
}

// Option configures a Panel.
type Option func(*Panel)

// WithMargin sets the blank band outside the border.
func WithMargin(e Edges) Option { return func(p *Panel) { p.margin = e } }

// WithPadding sets the blank band between the border and the content.
func WithPadding(e Edges) Option { return func(p *Panel) { p.padding = e } }

// WithBorder sets the border style. The default is BorderNone.
func WithBorder(b BorderStyle) Option { return func(p *Panel) { p.border = b } }

// WithContent sets the text, wrapped once every option has been applied.
func WithContent(text string) Option { return func(p *Panel) { p.text = text } }

// WithScroll hides that many wrapped lines above the content area.
// Negative values mean zero.
func WithScroll(lines int) Option { return func(p *Panel) { p.scroll = max(lines, 0) } }

// NewPanel creates a panel covering domain. Options are applied in order;
// content given with WithContent is wrapped after all of them, so it sees the
// final insets.
func NewPanel(domain geom.Rect, opts ...Option) *Panel {
	p := &Panel{domain: domain}
	for _, opt := range opts {
		opt(p)
	}
	if p.text != "" {
		p.SetContent(p.text)
	}
	return p
}

// Domain returns the rectangle the panel covers, margin included.
func (p *Panel) Domain() geom.Rect { return p.domain }

// Margin returns the margin edges.
func (p *Panel) Margin() Edges { return p.margin }

// Padding returns the padding edges.
func (p *Panel) Padding() Edges { return p.padding }

// Border returns the border style.
func (p *Panel) Border() BorderStyle { return p.border }

// Text returns the unwrapped content.
func (p *Panel) Text() string { return p.text }

// Scroll returns the number of wrapped lines hidden above the content area.
func (p *Panel) Scroll() int { return p.scroll }

// Lines returns the wrapped content, one string per line.
func (p *Panel) Lines() []string {
	out := make([]string, len(p.lines))
	for i, l := range p.lines {
		out[i] = string(l)
	}
	return out
}

// SetScroll sets the number of wrapped lines hidden above the content area.
// Negative values are treated as zero.
func (p *Panel) SetScroll(lines int) { p.scroll = max(lines, 0) }

// ScrollBy moves the scroll offset by delta lines, stopping at zero.
func (p *Panel) ScrollBy(delta int) { p.SetScroll(p.scroll + delta) }

// ContentSize returns the width and height of the content band in cells.
func (p *Panel) ContentSize() (w, h int) {
	return p.contentBox().size()
}

// SetContent replaces the panel text, greedily word-wrapped to the content
// width. Words longer than the width are left to overflow. The scroll offset
// is kept.
func (p *Panel) SetContent(text string) {
	p.text = text
	w, _ := p.ContentSize()
	wrapped := wordwrap.String(text, w)

	raw := strings.Split(wrapped, "\n")
	p.lines = make([][]rune, len(raw))
	for i, l := range raw {
		p.lines[i] = []rune(l)
	}
}

func (p *Panel) domainBox() cellBox {
	x0, y0, x1, y1 := p.domain.Cells()
	return cellBox{x0: x0, y0: y0, x1: x1, y1: y1}
}

func (p *Panel) marginBox() cellBox { return p.domainBox().insetEdges(p.margin) }

func (p *Panel) borderBox() cellBox {
	b := p.border.Size()
	return p.marginBox().inset(b, b, b, b)
}

func (p *Panel) contentBox() cellBox { return p.borderBox().insetEdges(p.padding) }

// BandAt reports which band of the panel the absolute cell (x, y) is in.
func (p *Panel) BandAt(x, y int) Band {
	switch {
	case !p.domainBox().contains(x, y):
		return BandOutside
	case !p.marginBox().contains(x, y):
		return BandMargin
	case !p.borderBox().contains(x, y):
		return BandBorder
	case !p.contentBox().contains(x, y):
		return BandPadding
	}
	return BandContent
}

// SideAt classifies a border cell. The result is meaningless for cells in
// other bands.
func (p *Panel) SideAt(x, y int) Side {
	m := p.marginBox()
	w, h := m.size()
	return classifySide(x-m.x0, y-m.y0, w, h, p.border.Size())
}

// Resolve returns the glyph the panel draws at the absolute cell (x, y). ok
// is false when the cell is outside the panel, letting panels below show
// through.
func (p *Panel) Resolve(x, y int) (r rune, ok bool) {
	switch p.BandAt(x, y) {
	case BandOutside:
		return 0, false
	case BandMargin, BandPadding:
		return Blank, true
	case BandBorder:
		return p.border.Glyph(p.SideAt(x, y)), true
	}

	c := p.contentBox()
	row := y - c.y0 + p.scroll
	col := x - c.x0
	if row < 0 || row >= len(p.lines) {
		return Blank, true
	}
	line := p.lines[row]
	if col < 0 || col >= len(line) {
		return Blank, true
	}
	return line[col], true
}

// String draws the panel on its own, from the grid origin to its far corner.
func (p *Panel) String() string {
	d := p.domainBox()
	var b strings.Builder
	b.Grow((max(d.x1, 0) + 1) * max(d.y1, 0))
	for y := 0; y < d.y1; y++ {
		for x := 0; x < d.x1; x++ {
			r, ok := p.Resolve(x, y)
			if !ok {
				r = Blank
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
