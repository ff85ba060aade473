package layout

import (
	"context"
	"math"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/yui/pkg/box"
	"github.com/matzehuels/yui/pkg/errors"
	"github.com/matzehuels/yui/pkg/geom"
	"github.com/matzehuels/yui/pkg/observability"
)

// Cut directions for an entry.
const (
	CutTop    = "top"
	CutBottom = "bottom"
	CutLeft   = "left"
	CutRight  = "right"
	CutFill   = "fill"
)

// Divide directions for a fill entry.
const (
	DivideHorizontal = "horizontal"
	DivideVertical   = "vertical"
)

// Entry is one [[panel]] table of a layout file.
type Entry struct {
	Name     string    `toml:"name"`
	Cut      string    `toml:"cut"`
	Size     float64   `toml:"size"`
	Fraction float64   `toml:"fraction"`
	Divide   string    `toml:"divide"`
	Count    int       `toml:"count"`
	Border   string    `toml:"border"`
	Margin   []float64 `toml:"margin"`
	Padding  []float64 `toml:"padding"`
	Content  string    `toml:"content"`
	Repeat   int       `toml:"repeat"`
	Scroll   int       `toml:"scroll"`
}

type file struct {
	Panels []Entry `toml:"panel"`
}

// rule is a validated Entry.
type rule struct {
	Entry
	margin  box.Edges
	padding box.Edges
	border  box.BorderStyle
}

// Layout is a validated, buildable list of entries.
type Layout struct {
	// Source names where the layout came from: a file path or "demo".
	Source string
	rules  []rule
}

// Load reads and validates a layout file.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read layout file %s", path)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, err
	}
	l.Source = path
	return l, nil
}

// Parse decodes and validates a TOML layout document.
func Parse(data []byte) (*Layout, error) {
	var f file
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "decode layout")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "unknown layout key %q", undecoded[0].String())
	}
	return New(f.Panels...)
}

// New validates entries and returns a layout built from them.
func New(entries ...Entry) (*Layout, error) {
	if len(entries) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "layout has no panels")
	}
	l := &Layout{rules: make([]rule, 0, len(entries))}
	for i, e := range entries {
		s, err := validate(e, i == len(entries)-1)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "panel %d (%s)", i, e.label())
		}
		l.rules = append(l.rules, s)
	}
	return l, nil
}

// Entries returns the entries the layout was built from.
func (l *Layout) Entries() []Entry {
	out := make([]Entry, len(l.rules))
	for i, s := range l.rules {
		out[i] = s.Entry
	}
	return out
}

func (e Entry) label() string {
	if e.Name != "" {
		return e.Name
	}
	if e.Cut == "" {
		return CutFill
	}
	return e.Cut
}

func validate(e Entry, last bool) (rule, error) {
	s := rule{Entry: e}
	s.Cut = strings.ToLower(strings.TrimSpace(e.Cut))
	if s.Cut == "" {
		s.Cut = CutFill
	}
	s.Divide = strings.ToLower(strings.TrimSpace(e.Divide))

	switch s.Cut {
	case CutTop, CutBottom, CutLeft, CutRight:
		if e.Size != 0 && e.Fraction != 0 {
			return s, errors.New(errors.ErrCodeInvalidLayout, "size and fraction are mutually exclusive")
		}
		if err := errors.ValidateDimension("size", e.Size); err != nil {
			return s, err
		}
		if e.Fraction < 0 || e.Fraction > 1 || math.IsNaN(e.Fraction) {
			return s, errors.New(errors.ErrCodeInvalidLayout, "fraction must be within [0, 1], got %v", e.Fraction)
		}
		if s.Divide != "" {
			return s, errors.New(errors.ErrCodeInvalidLayout, "divide is only allowed on fill panels")
		}
	case CutFill:
		if !last {
			return s, errors.New(errors.ErrCodeInvalidLayout, "fill must be the last panel")
		}
		switch s.Divide {
		case "":
		case DivideHorizontal, DivideVertical:
			if err := errors.ValidateCount(e.Count); err != nil {
				return s, err
			}
		default:
			return s, errors.New(errors.ErrCodeInvalidLayout, "unknown divide %q (must be 'horizontal' or 'vertical')", e.Divide)
		}
	default:
		return s, errors.New(errors.ErrCodeInvalidLayout, "unknown cut %q", e.Cut)
	}

	if e.Repeat < 0 {
		return s, errors.New(errors.ErrCodeInvalidLayout, "repeat must not be negative, got %d", e.Repeat)
	}

	var err error
	if s.margin, err = parseEdges("margin", e.Margin); err != nil {
		return s, err
	}
	if s.padding, err = parseEdges("padding", e.Padding); err != nil {
		return s, err
	}
	if s.border, err = box.ParseBorderStyle(e.Border); err != nil {
		return s, err
	}
	return s, nil
}

func parseEdges(name string, v []float64) (box.Edges, error) {
	for _, x := range v {
		if err := errors.ValidateDimension(name, x); err != nil {
			return box.Edges{}, err
		}
	}
	switch len(v) {
	case 0:
		return box.Edges{}, nil
	case 1:
		return box.EdgeAll(v[0]), nil
	case 2:
		return box.EdgeSymmetric(v[0], v[1]), nil
	case 4:
		return box.EdgeTRBL(v[0], v[1], v[2], v[3]), nil
	}
	return box.Edges{}, errors.New(errors.ErrCodeInvalidLayout, "%s takes 1, 2 or 4 values, got %d", name, len(v))
}

// content returns the entry text, repeated and space-joined when Repeat > 1.
func (s rule) content() string {
	if s.Repeat <= 1 || s.Content == "" {
		return s.Content
	}
	parts := make([]string, s.Repeat)
	for i := range parts {
		parts[i] = s.Content
	}
	return strings.Join(parts, " ")
}

func (s rule) options() []box.Option {
	return []box.Option{
		box.WithMargin(s.margin),
		box.WithPadding(s.padding),
		box.WithBorder(s.border),
		box.WithScroll(s.Scroll),
		box.WithContent(s.content()),
	}
}

// Build cuts the display into panels, topmost first. It reports
// INVALID_LAYOUT when an entry asks for more than is still free.
func (l *Layout) Build(ctx context.Context, width, height int) ([]*box.Panel, error) {
	hooks := observability.Layout()
	hooks.OnLayoutStart(ctx, l.Source, width, height)
	start := time.Now()

	panels, err := l.build(width, height)
	hooks.OnLayoutComplete(ctx, l.Source, len(panels), time.Since(start), err)
	return panels, err
}

func (l *Layout) build(width, height int) ([]*box.Panel, error) {
	free, err := geom.New(float64(width), float64(height))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "display size %dx%d", width, height)
	}

	var panels []*box.Panel
	for i, s := range l.rules {
		rects, err := s.take(&free, float64(width), float64(height))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "panel %d (%s)", i, s.label())
		}
		for _, r := range rects {
			panels = append(panels, box.NewPanel(r, s.options()...))
		}
	}
	return panels, nil
}

// take removes the entry's share from free.
func (s rule) take(free *geom.Rect, width, height float64) ([]geom.Rect, error) {
	switch s.Cut {
	case CutTop:
		r, err := free.CutTop(s.amount(height))
		return []geom.Rect{r}, err
	case CutBottom:
		r, err := free.CutBottom(s.amount(height))
		return []geom.Rect{r}, err
	case CutLeft:
		r, err := free.CutLeft(s.amount(width))
		return []geom.Rect{r}, err
	case CutRight:
		r, err := free.CutRight(s.amount(width))
		return []geom.Rect{r}, err
	}

	rest := *free
	free.Width, free.Height = 0, 0
	switch s.Divide {
	case DivideHorizontal:
		return rest.DivideHorizontally(s.Count)
	case DivideVertical:
		return rest.DivideVertically(s.Count)
	}
	return []geom.Rect{rest}, nil
}

// fractionSlack absorbs float error so that 1/3 of 81 floors to 27.
const fractionSlack = 1e-9

func (s rule) amount(extent float64) float64 {
	if s.Fraction > 0 {
		return math.Floor(s.Fraction*extent + fractionSlack)
	}
	return s.Size
}
