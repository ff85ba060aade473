package layout

import "strings"

// sampleSentences is the filler text cycled through the demo panels.
var sampleSentences = []string{
	"A sentence number 1.",
	"Another example sentence.",
	"Cat.",
	"A sentence number 2.",
	"Molto a qui pensare.",
	"Parrot.",
	"Some more content.",
}

// demoSentences is how many sentences each demo panel receives.
const demoSentences = 50

// SampleText returns n sample sentences, cycling through the list and joined
// by spaces.
func SampleText(n int) string {
	parts := make([]string, max(n, 0))
	for i := range parts {
		parts[i] = sampleSentences[i%len(sampleSentences)]
	}
	return strings.Join(parts, " ")
}

// Demo returns the built-in layout: a bordered right third, a plain left
// third, and the middle split into three bordered rows.
func Demo() *Layout {
	text := SampleText(demoSentences)
	l, err := New(
		Entry{
			Name:     "right",
			Cut:      CutRight,
			Fraction: 1.0 / 3,
			Border:   "smooth",
			Margin:   []float64{3, 0, 0, 0},
			Padding:  []float64{2},
			Content:  text,
		},
		Entry{
			Name:     "left",
			Cut:      CutLeft,
			Fraction: 1.0 / 3,
			Margin:   []float64{1},
			Padding:  []float64{2},
			Content:  text,
		},
		Entry{
			Name:    "middle",
			Cut:     CutFill,
			Divide:  DivideVertical,
			Count:   3,
			Border:  "smooth",
			Margin:  []float64{1, 0, 0, 0},
			Content: text,
		},
	)
	if err != nil {
		panic(err)
	}
	l.Source = "demo"
	return l
}
