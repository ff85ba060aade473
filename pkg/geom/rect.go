package geom

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/yui/pkg/errors"
)

// Point is a position on the grid. Y grows downward.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle positioned at Pos.
type Rect struct {
	Pos    Point
	Width  float64
	Height float64
}

// New returns a width x height rectangle at the origin.
// It fails with INVALID_GEOMETRY if either dimension is negative.
func New(width, height float64) (Rect, error) {
	if err := errors.ValidateDimension("width", width); err != nil {
		return Rect{}, err
	}
	if err := errors.ValidateDimension("height", height); err != nil {
		return Rect{}, err
	}
	return Rect{Width: width, Height: height}, nil
}

// MustNew is like New but panics on invalid dimensions.
func MustNew(width, height float64) Rect {
	r, err := New(width, height)
	if err != nil {
		panic(err)
	}
	return r
}

// WithPosition returns a copy of r relocated to p.
func (r Rect) WithPosition(p Point) Rect {
	r.Pos = p
	return r
}

// Aspect returns Width / Height. A zero height yields +Inf (or NaN for an
// empty rectangle).
func (r Rect) Aspect() float64 { return r.Width / r.Height }

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() float64 { return r.Pos.X + r.Width }

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() float64 { return r.Pos.Y + r.Height }

// IsEmpty reports whether r covers no area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Contains reports whether (x, y) lies inside r. The left and top edges are
// inside; the right and bottom edges are outside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Pos.X && x < r.Right() && y >= r.Pos.Y && y < r.Bottom()
}

// Inset returns r shrunk by the given amounts on each side. The result may
// have a negative size when the insets exceed r; callers that care check
// IsEmpty.
func (r Rect) Inset(top, right, bottom, left float64) Rect {
	return Rect{
		Pos:    Point{X: r.Pos.X + left, Y: r.Pos.Y + top},
		Width:  r.Width - left - right,
		Height: r.Height - top - bottom,
	}
}

// Cells returns the half-open integer cell box [x0, x1) x [y0, y1) covered by
// r. Both corners are truncated toward zero, so rectangles that share an
// edge share the cell boundary too.
func (r Rect) Cells() (x0, y0, x1, y1 int) {
	return int(r.Pos.X), int(r.Pos.Y), int(r.Right()), int(r.Bottom())
}

func (r Rect) String() string {
	return fmt.Sprintf("%gx%g@(%g,%g)", r.Width, r.Height, r.Pos.X, r.Pos.Y)
}

// CutTop removes a strip of the given height from the top of r and returns
// it. r keeps the lower part and its origin moves down by amount.
func (r *Rect) CutTop(amount float64) (Rect, error) {
	if err := errors.ValidateAmount(amount, r.Height); err != nil {
		return Rect{}, err
	}
	strip := Rect{Pos: r.Pos, Width: r.Width, Height: amount}
	r.Pos.Y += amount
	r.Height -= amount
	return strip, nil
}

// CutBottom removes a strip of the given height from the bottom of r and
// returns it. r keeps its origin.
func (r *Rect) CutBottom(amount float64) (Rect, error) {
	if err := errors.ValidateAmount(amount, r.Height); err != nil {
		return Rect{}, err
	}
	r.Height -= amount
	return Rect{
		Pos:    Point{X: r.Pos.X, Y: r.Pos.Y + r.Height},
		Width:  r.Width,
		Height: amount,
	}, nil
}

// CutLeft removes a strip of the given width from the left of r and returns
// it. r keeps the right part and its origin moves right by amount.
func (r *Rect) CutLeft(amount float64) (Rect, error) {
	if err := errors.ValidateAmount(amount, r.Width); err != nil {
		return Rect{}, err
	}
	strip := Rect{Pos: r.Pos, Width: amount, Height: r.Height}
	r.Pos.X += amount
	r.Width -= amount
	return strip, nil
}

// CutRight removes a strip of the given width from the right of r and
// returns it. r keeps its origin.
func (r *Rect) CutRight(amount float64) (Rect, error) {
	if err := errors.ValidateAmount(amount, r.Width); err != nil {
		return Rect{}, err
	}
	r.Width -= amount
	return Rect{
		Pos:    Point{X: r.Pos.X + r.Width, Y: r.Pos.Y},
		Width:  amount,
		Height: r.Height,
	}, nil
}

// DivideHorizontally splits r into n columns ordered left to right. The
// receiver is a copy; the caller's rectangle is not modified.
func (r Rect) DivideHorizontally(n int) ([]Rect, error) {
	return r.divide(n, r.Width, (*Rect).CutLeft)
}

// DivideVertically splits r into n rows ordered top to bottom. The receiver
// is a copy; the caller's rectangle is not modified.
func (r Rect) DivideVertically(n int) ([]Rect, error) {
	return r.divide(n, r.Height, (*Rect).CutTop)
}

func (r Rect) divide(n int, extent float64, cut func(*Rect, float64) (Rect, error)) ([]Rect, error) {
	if err := errors.ValidateCount(n); err != nil {
		return nil, err
	}
	if n == 1 {
		log.Warn("dividing a rectangle into a single slice", "rect", r)
		return []Rect{r}, nil
	}

	step := extent / float64(n)
	parts := make([]Rect, 0, n)
	for range n - 1 {
		s, err := cut(&r, step)
		if err != nil {
			return nil, err
		}
		parts = append(parts, s)
	}
	return append(parts, r), nil
}
