// Package geom implements the rectangle subdivision algebra used to lay out
// panels on a text grid.
//
// # Rectangles
//
// A [Rect] is an axis-aligned region with a floating-point origin and size.
// Y grows downward, matching terminal rows. Sizes are never negative; every
// constructor and cut validates its arguments before touching the receiver,
// so a returned error leaves the rectangle unchanged.
//
// # Cutting
//
// The Cut methods shrink the receiver in place and return the removed strip
// as a new, independently owned rectangle:
//
//	r := geom.MustNew(640, 480)
//	header, _ := r.CutTop(10)
//	// header: 640x10 at (0,0)
//	// r:      640x470 at (0,10)
//
// The strip and the shrunken receiver are disjoint and together tile the
// original extent.
//
// # Dividing
//
// [Rect.DivideHorizontally] and [Rect.DivideVertically] repeatedly cut equal
// slices from the leading edge. Any remainder left by floating-point division
// ends up in the last slice:
//
//	rows, _ := geom.MustNew(640, 480).DivideVertically(3)
//	// three 640x160 rectangles at y = 0, 160, 320
//
// # Cells
//
// [Rect.Cells] converts the float geometry to a half-open integer cell box by
// truncation; that is the box the panel resolver tests coordinates against.
package geom
