package box

// Edges holds one width per side of a box. Panels use it for both margin and
// padding.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(v float64) Edges {
	return Edges{Top: v, Right: v, Bottom: v, Left: v}
}

// EdgeSides creates Edges with only the left and right sides set.
func EdgeSides(left, right float64) Edges {
	return Edges{Right: right, Left: left}
}

// EdgeVertical creates Edges with only the top and bottom sides set.
func EdgeVertical(top, bottom float64) Edges {
	return Edges{Top: top, Bottom: bottom}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// EdgeTop creates Edges with only the top side set.
func EdgeTop(v float64) Edges { return Edges{Top: v} }

// EdgeRight creates Edges with only the right side set.
func EdgeRight(v float64) Edges { return Edges{Right: v} }

// EdgeBottom creates Edges with only the bottom side set.
func EdgeBottom(v float64) Edges { return Edges{Bottom: v} }

// EdgeLeft creates Edges with only the left side set.
func EdgeLeft(v float64) Edges { return Edges{Left: v} }

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float64 { return e.Top + e.Bottom }

// IsZero returns true if all edge values are zero.
func (e Edges) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}
