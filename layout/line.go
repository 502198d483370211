package layout

import (
	"math"
	"strings"

	"github.com/tsawler/structura/providers"
)

// Line is a visual line: a run of words whose vertical positions fall
// within the grouping tolerance of one another.
type Line struct {
	Words []providers.Word
}

// Text concatenates the line's word texts with single spaces.
func (l Line) Text() string {
	parts := make([]string, len(l.Words))
	for i, w := range l.Words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}

// AvgFontSize returns the mean of the per-word font sizes. Words with
// an unknown size contribute 0 to the mean. Returns 0 for an empty line.
func (l Line) AvgFontSize() float64 {
	if len(l.Words) == 0 {
		return 0
	}
	var sum float64
	for _, w := range l.Words {
		sum += w.Size
	}
	return sum / float64(len(l.Words))
}

// GroupLines groups words into visual lines in a single forward pass
// over extraction order. A word joins the current line when its top
// offset is within tolerance of the line's running vertical anchor (the
// top of the most recently added word); otherwise it starts a new line.
// There is no backtracking.
func GroupLines(words []providers.Word, tolerance float64) []Line {
	var lines []Line
	var current []providers.Word
	anchor := 0.0

	for _, w := range words {
		if len(current) == 0 || math.Abs(w.Top-anchor) < tolerance {
			current = append(current, w)
			anchor = w.Top
			continue
		}
		lines = append(lines, Line{Words: current})
		current = []providers.Word{w}
		anchor = w.Top
	}
	if len(current) > 0 {
		lines = append(lines, Line{Words: current})
	}

	return lines
}
