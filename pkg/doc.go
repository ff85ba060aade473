// Package pkg provides the libraries behind yui, a box-model panel renderer
// for text grids.
//
// # Overview
//
// A display is a grid of character cells. yui carves that grid into
// rectangles, wraps each rectangle in a CSS-like box (margin, border,
// padding, content) and composes the stack of panels into one frame:
//
//	display size
//	     ↓
//	[layout] (cut and divide rectangles)
//	     ↓
//	[box] panels (margin → border → padding → wrapped text)
//	     ↓
//	[canvas] (first claiming panel wins per cell)
//	     ↓
//	Frame → stdout
//
// # Quick Start
//
//	screen := geom.MustNew(80, 24)
//	header, _ := screen.CutTop(3)
//	cols, _ := screen.DivideHorizontally(2)
//
//	panels := []*box.Panel{
//	    box.NewPanel(header, box.WithBorder(box.BorderSmoothCorner), box.WithContent("yui")),
//	    box.NewPanel(cols[0], box.WithPadding(box.EdgeAll(1)), box.WithContent(text)),
//	    box.NewPanel(cols[1], box.WithMargin(box.EdgeLeft(1)), box.WithContent(text)),
//	}
//
//	frame := canvas.New(80, 24, panels...).Render()
//	canvas.Present(os.Stdout, frame)
//
// # Packages
//
// [geom] - Rectangles with in-place cut and n-way divide.
//
// [box] - Edges, border styles and panels with cell resolution.
//
// [canvas] - Panel stacking, frames and the clear-and-draw sink.
//
// [layout] - TOML layout files built into panels for a display size.
//
// [errors] - Structured errors with codes.
//
// [observability] - Hooks for layout and frame events.
//
// [buildinfo] - Version information set at build time.
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/yui/pkg/geom
// [box]: https://pkg.go.dev/github.com/matzehuels/yui/pkg/box
// [canvas]: https://pkg.go.dev/github.com/matzehuels/yui/pkg/canvas
// [layout]: https://pkg.go.dev/github.com/matzehuels/yui/pkg/layout
// [errors]: https://pkg.go.dev/github.com/matzehuels/yui/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/yui/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/yui/pkg/buildinfo
package pkg
