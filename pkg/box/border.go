package box

import (
	"strings"

	"github.com/matzehuels/yui/pkg/errors"
)

// BorderStyle selects how the border band of a panel is drawn.
type BorderStyle uint8

const (
	// BorderNone has zero width and draws nothing.
	BorderNone BorderStyle = iota
	// BorderSmoothCorner is one cell wide with rounded corners (╭ ─ ╮ │ ╯ ╰).
	BorderSmoothCorner
)

// Size returns the width of the border band in cells.
func (b BorderStyle) Size() int {
	switch b {
	case BorderSmoothCorner:
		return 1
	default:
		return 0
	}
}

// Glyph returns the character drawn for a border cell on the given side.
func (b BorderStyle) Glyph(s Side) rune {
	if b != BorderSmoothCorner {
		return ' '
	}
	switch s {
	case SideTopLeft:
		return '╭'
	case SideTop, SideBottom:
		return '─'
	case SideTopRight:
		return '╮'
	case SideLeft, SideRight:
		return '│'
	case SideBottomRight:
		return '╯'
	case SideBottomLeft:
		return '╰'
	}
	return ' '
}

func (b BorderStyle) String() string {
	switch b {
	case BorderNone:
		return "none"
	case BorderSmoothCorner:
		return "smooth"
	}
	return "unknown"
}

// ParseBorderStyle maps a name from a layout file or flag to a BorderStyle.
// The empty string means BorderNone.
func ParseBorderStyle(s string) (BorderStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return BorderNone, nil
	case "smooth", "smooth-corner", "rounded":
		return BorderSmoothCorner, nil
	}
	return BorderNone, errors.New(errors.ErrCodeInvalidBorder, "unknown border style %q (must be 'none' or 'smooth')", s)
}

// Side is the position of a cell within a border band. The values run
// clockwise from the top-left corner.
type Side uint8

const (
	SideTopLeft     Side = iota // corner: within the band of the top and left edges
	SideTop                     // top edge, away from both corners
	SideTopRight                // corner: top and right
	SideRight                   // right edge
	SideBottomRight             // corner: bottom and right
	SideBottom                  // bottom edge
	SideBottomLeft              // corner: bottom and left
	SideLeft                    // left edge
)

var sideNames = [...]string{
	SideTopLeft:     "top-left",
	SideTop:         "top",
	SideTopRight:    "top-right",
	SideRight:       "right",
	SideBottomRight: "bottom-right",
	SideBottom:      "bottom",
	SideBottomLeft:  "bottom-left",
	SideLeft:        "left",
}

func (s Side) String() string {
	if int(s) < len(sideNames) {
		return sideNames[s]
	}
	return "unknown"
}

// classifySide places the local cell (x, y) of a w x h border box with a
// band of the given size. A cell within size of both a horizontal and a
// vertical edge is a corner. When the box is too thin for both opposite
// bands, top wins over bottom and left over right.
func classifySide(x, y, w, h, size int) Side {
	top := y < size
	bottom := !top && y >= h-size
	left := x < size
	right := !left && x >= w-size

	switch {
	case top && left:
		return SideTopLeft
	case top && right:
		return SideTopRight
	case bottom && left:
		return SideBottomLeft
	case bottom && right:
		return SideBottomRight
	case top:
		return SideTop
	case bottom:
		return SideBottom
	case left:
		return SideLeft
	default:
		return SideRight
	}
}
