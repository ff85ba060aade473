// Package box resolves single grid cells against a panel's box model.
//
// A [Panel] covers a [geom.Rect] and is drawn as four nested bands, from the
// outside in: margin, border, padding and content. Given any absolute cell,
// [Panel.Resolve] reports the glyph the panel draws there, or ok = false when
// the cell is outside the panel so that whatever lies beneath can show
// through.
//
// Margin and padding use [Edges], one width per side. The border width comes
// from the [BorderStyle]: zero for [BorderNone], one cell for
// [BorderSmoothCorner]. Inside the border band every cell is classified into
// one of eight [Side] values, a corner when it is within the border width of
// both a horizontal and a vertical edge, an edge otherwise.
//
// Content is word-wrapped to the width of the content band when it is set and
// may be scrolled vertically by whole lines:
//
//	p := box.NewPanel(domain,
//	    box.WithMargin(box.EdgeTop(1)),
//	    box.WithBorder(box.BorderSmoothCorner),
//	    box.WithPadding(box.EdgeAll(2)),
//	    box.WithContent("some text to wrap"),
//	)
//	r, ok := p.Resolve(x, y)
package box
