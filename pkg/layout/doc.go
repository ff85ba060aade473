// Package layout builds panels from declarative layout files.
//
// # Overview
//
// A layout is an ordered list of panel entries. Building a layout for a
// display size starts from a free rectangle covering the whole display; each
// entry cuts its panel off one side of what is still free, and a final
// "fill" entry takes the rest, optionally divided into equal slices:
//
//	[[panel]]
//	cut = "right"
//	fraction = 0.333
//	border = "smooth"
//	margin = [3, 0, 0, 0]
//	padding = [2]
//	content = "A sentence number 1."
//	repeat = 50
//
//	[[panel]]
//	cut = "fill"
//	divide = "vertical"
//	count = 3
//	border = "smooth"
//
// # Sizes
//
// An entry sizes its cut with either size (cells) or fraction (of the whole
// display along the cut axis). Fractional results are floored to whole
// cells.
//
// # Edges
//
// margin and padding take one value (all sides), two values (vertical,
// horizontal) or four values (top, right, bottom, left).
//
// # Resizing
//
// Panels keep their geometry once built. To follow a display resize, call
// [Layout.Build] again with the new size.
package layout
