package box

import (
	"slices"
	"testing"

	"github.com/matzehuels/yui/pkg/geom"
)

func rectAt(x, y, w, h float64) geom.Rect {
	return geom.MustNew(w, h).WithPosition(geom.Point{X: x, Y: y})
}

func TestResolvePlainContent(t *testing.T) {
	p := NewPanel(rectAt(2, 1, 5, 3), WithContent("hello world"))

	if got, want := p.Lines(), []string{"hello", "world"}; !slices.Equal(got, want) {
		t.Fatalf("Lines() = %q, want %q", got, want)
	}

	tests := []struct {
		name   string
		x, y   int
		want   rune
		wantOK bool
	}{
		{"first glyph", 2, 1, 'h', true},
		{"end of first line", 6, 1, 'o', true},
		{"second line", 2, 2, 'w', true},
		{"past content", 4, 3, ' ', true},
		{"left of panel", 1, 1, 0, false},
		{"right edge is outside", 7, 1, 0, false},
		{"above panel", 2, 0, 0, false},
		{"bottom edge is outside", 2, 4, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.Resolve(tt.x, tt.y)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Resolve(%d, %d) = (%q, %v), want (%q, %v)", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolveSmoothBorder(t *testing.T) {
	p := NewPanel(rectAt(0, 0, 10, 5), WithBorder(BorderSmoothCorner))

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"top-left corner", 0, 0, '╭'},
		{"top-right corner", 9, 0, '╮'},
		{"bottom-right corner", 9, 4, '╯'},
		{"bottom-left corner", 0, 4, '╰'},
		{"top edge", 5, 0, '─'},
		{"bottom edge", 5, 4, '─'},
		{"left edge", 0, 2, '│'},
		{"right edge", 9, 2, '│'},
		{"inside", 5, 2, ' '},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.Resolve(tt.x, tt.y)
			if !ok || got != tt.want {
				t.Errorf("Resolve(%d, %d) = (%q, %v), want %q", tt.x, tt.y, got, ok, tt.want)
			}
		})
	}
}

func TestBandAt(t *testing.T) {
	p := NewPanel(rectAt(0, 0, 12, 10),
		WithMargin(EdgeAll(1)),
		WithBorder(BorderSmoothCorner),
		WithPadding(EdgeSymmetric(1, 2)),
	)

	tests := []struct {
		x, y int
		want Band
	}{
		{-1, 0, BandOutside},
		{12, 5, BandOutside},
		{0, 0, BandMargin},
		{11, 9, BandMargin},
		{1, 1, BandBorder},
		{10, 5, BandBorder},
		{2, 2, BandPadding},
		{3, 3, BandPadding},
		{4, 3, BandContent},
		{7, 6, BandContent},
		{8, 6, BandPadding},
		{7, 7, BandPadding},
	}

	for _, tt := range tests {
		if got := p.BandAt(tt.x, tt.y); got != tt.want {
			t.Errorf("BandAt(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	if w, h := p.ContentSize(); w != 4 || h != 4 {
		t.Errorf("ContentSize() = %dx%d, want 4x4", w, h)
	}
}

func TestMarginAndPaddingAreBlank(t *testing.T) {
	p := NewPanel(rectAt(0, 0, 8, 7),
		WithMargin(EdgeAll(1)),
		WithBorder(BorderSmoothCorner),
		WithPadding(EdgeAll(1)),
		WithContent("xxxx xxxx xxxx"),
	)

	for _, c := range [][2]int{{0, 0}, {7, 5}, {2, 2}, {5, 3}} {
		got, ok := p.Resolve(c[0], c[1])
		if !ok || got != ' ' {
			t.Errorf("Resolve(%d, %d) = (%q, %v), want blank", c[0], c[1], got, ok)
		}
	}
	if got, _ := p.Resolve(3, 3); got != 'x' {
		t.Errorf("Resolve(3, 3) = %q, want 'x'", got)
	}
}

func TestContentSizeInsets(t *testing.T) {
	p := NewPanel(rectAt(0, 0, 20, 10),
		WithMargin(EdgeTop(3)),
		WithBorder(BorderSmoothCorner),
		WithPadding(EdgeAll(2)),
	)
	if w, h := p.ContentSize(); w != 14 || h != 1 {
		t.Errorf("ContentSize() = %dx%d, want 14x1", w, h)
	}
}

func TestSetContentWrapsToBand(t *testing.T) {
	p := NewPanel(rectAt(0, 0, 13, 6), WithBorder(BorderSmoothCorner), WithPadding(EdgeSides(1, 1)))
	p.SetContent("the quick brown fox jumps")

	want := []string{"the quick", "brown fox", "jumps"}
	if got := p.Lines(); !slices.Equal(got, want) {
		t.Errorf("Lines() = %q, want %q", got, want)
	}
	if p.Text() != "the quick brown fox jumps" {
		t.Errorf("Text() = %q", p.Text())
	}
}

func TestSetContentLongWordOverflows(t *testing.T) {
	p := NewPanel(rectAt(0, 0, 3, 2), WithContent("abcdefgh ij"))

	if got, want := p.Lines(), []string{"abcdefgh", "ij"}; !slices.Equal(got, want) {
		t.Errorf("Lines() = %q, want %q", got, want)
	}
	if got, _ := p.Resolve(2, 0); got != 'c' {
		t.Errorf("Resolve(2, 0) = %q, want 'c'", got)
	}
	if _, ok := p.Resolve(3, 0); ok {
		t.Error("overflowing text must not leak outside the panel")
	}
}

func TestScroll(t *testing.T) {
	p := NewPanel(rectAt(0, 0, 5, 1), WithContent("one two three"), WithScroll(1))

	if got, _ := p.Resolve(0, 0); got != 't' {
		t.Errorf("Resolve(0, 0) with scroll 1 = %q, want 't'", got)
	}

	p.ScrollBy(1)
	if got, _ := p.Resolve(0, 0); got != 't' {
		t.Errorf("Resolve(0, 0) with scroll 2 = %q, want 't' (three)", got)
	}
	if got, _ := p.Resolve(4, 0); got != 'e' {
		t.Errorf("Resolve(4, 0) with scroll 2 = %q, want 'e'", got)
	}

	p.ScrollBy(5)
	if got, ok := p.Resolve(0, 0); !ok || got != ' ' {
		t.Errorf("Resolve past end = (%q, %v), want blank", got, ok)
	}

	p.ScrollBy(-100)
	if p.Scroll() != 0 {
		t.Errorf("Scroll() = %d, want 0", p.Scroll())
	}
	if got, _ := p.Resolve(0, 0); got != 'o' {
		t.Errorf("Resolve(0, 0) with scroll 0 = %q, want 'o'", got)
	}
}

func TestOverInsetPanelIsAllMargin(t *testing.T) {
	p := NewPanel(rectAt(0, 0, 4, 4), WithMargin(EdgeAll(3)), WithBorder(BorderSmoothCorner))

	for y := range 4 {
		for x := range 4 {
			if got := p.BandAt(x, y); got != BandMargin {
				t.Errorf("BandAt(%d, %d) = %v, want margin", x, y, got)
			}
		}
	}
	if w, h := p.ContentSize(); w != 0 || h != 0 {
		t.Errorf("ContentSize() = %dx%d, want 0x0", w, h)
	}
}

func TestPanelString(t *testing.T) {
	p := NewPanel(rectAt(0, 0, 4, 3), WithBorder(BorderSmoothCorner), WithContent("ab"))
	want := "╭──╮\n│ab│\n╰──╯\n"
	if got := p.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}

	offset := NewPanel(rectAt(1, 1, 2, 1), WithContent("hi"))
	if got, want := offset.String(), "   \n hi\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAccessors(t *testing.T) {
	d := rectAt(1, 2, 30, 10)
	p := NewPanel(d,
		WithMargin(EdgeTop(1)),
		WithPadding(EdgeAll(2)),
		WithBorder(BorderSmoothCorner),
	)
	if p.Domain() != d {
		t.Errorf("Domain() = %v, want %v", p.Domain(), d)
	}
	if p.Margin() != EdgeTop(1) || p.Padding() != EdgeAll(2) || p.Border() != BorderSmoothCorner {
		t.Errorf("config = %+v %+v %v", p.Margin(), p.Padding(), p.Border())
	}
}

func TestResolveBorderInsideMargin(t *testing.T) {
	p := NewPanel(rectAt(2, 1, 8, 6), WithMargin(EdgeTRBL(1, 2, 1, 1)), WithBorder(BorderSmoothCorner))

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"top-left corner", 3, 2, '╭'},
		{"top-right corner", 7, 2, '╮'},
		{"bottom-left corner", 3, 5, '╰'},
		{"bottom-right corner", 7, 5, '╯'},
		{"top edge", 5, 2, '─'},
		{"bottom edge", 5, 5, '─'},
		{"left edge", 3, 3, '│'},
		{"right edge", 7, 4, '│'},
		{"top margin", 3, 1, Blank},
		{"left margin", 2, 3, Blank},
		{"right margin", 8, 3, Blank},
		{"inside", 5, 3, Blank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.Resolve(tt.x, tt.y)
			if !ok || got != tt.want {
				t.Errorf("Resolve(%d, %d) = (%q, %v), want (%q, true)", tt.x, tt.y, got, ok, tt.want)
			}
		})
	}
}
