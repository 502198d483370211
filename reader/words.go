package reader

import (
	"sort"
	"strings"

	"github.com/tsawler/structura/providers"
)

// textRun is one positioned text run from the PDF content stream, in
// PDF coordinates (Y grows upward from the page bottom).
type textRun struct {
	S        string
	X        float64
	Y        float64
	W        float64
	FontSize float64
}

// baselineTolerance is the vertical distance within which two runs are
// considered to share a baseline.
const baselineTolerance = 2.0

// wordGapFactor scales a run's font size to the horizontal gap that
// separates two words on the same baseline.
const wordGapFactor = 0.3

// paragraphGapFactor scales the font size to the vertical gap treated
// as a paragraph break when reconstructing page text.
const paragraphGapFactor = 1.8

// buildWords assembles content-order text runs into positioned words.
// A word ends at a whitespace run, at a baseline change, or at a
// horizontal gap wider than wordGapFactor times the font size. Top is
// measured from the top of the page.
func buildWords(runs []textRun, pageHeight float64) []providers.Word {
	var words []providers.Word

	var buf strings.Builder
	var startX, endX, baseY, size float64
	open := false

	flush := func() {
		if !open || buf.Len() == 0 {
			open = false
			buf.Reset()
			return
		}
		words = append(words, providers.Word{
			Text:  buf.String(),
			Top:   pageHeight - baseY,
			Size:  size,
			X:     startX,
			Width: endX - startX,
		})
		open = false
		buf.Reset()
	}

	for _, run := range runs {
		if strings.TrimSpace(run.S) == "" {
			flush()
			continue
		}

		gap := run.FontSize * wordGapFactor
		if gap <= 0 {
			gap = baselineTolerance
		}
		if open && (abs(run.Y-baseY) > baselineTolerance || run.X-endX > gap) {
			flush()
		}

		if !open {
			open = true
			startX = run.X
			baseY = run.Y
			size = run.FontSize
		}
		buf.WriteString(run.S)
		endX = run.X + run.W
	}
	flush()

	return words
}

// buildPageText reconstructs a plain-text rendering of the page: runs
// grouped into baseline rows, rows ordered top to bottom, words joined
// with single spaces, and a blank line inserted wherever the vertical
// gap between rows exceeds paragraphGapFactor times the row's font
// size.
func buildPageText(runs []textRun) string {
	rows := groupRows(runs)
	if len(rows) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			prev := rows[i-1]
			gapThreshold := row.fontSize() * paragraphGapFactor
			if gapThreshold <= 0 {
				gapThreshold = baselineTolerance * paragraphGapFactor
			}
			if prev.y-row.y > gapThreshold {
				sb.WriteString("\n\n")
			} else {
				sb.WriteString("\n")
			}
		}
		sb.WriteString(row.text())
	}
	return sb.String()
}

// row is a group of runs sharing a baseline.
type row struct {
	y    float64
	runs []textRun
}

// fontSize returns the first positive font size on the row.
func (r row) fontSize() float64 {
	for _, run := range r.runs {
		if run.FontSize > 0 {
			return run.FontSize
		}
	}
	return 0
}

// text joins the row's runs in left-to-right order, collapsing
// whitespace runs and inserting spaces at word gaps.
func (r row) text() string {
	sorted := make([]textRun, len(r.runs))
	copy(sorted, r.runs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var sb strings.Builder
	endX := 0.0
	for i, run := range sorted {
		if strings.TrimSpace(run.S) == "" {
			continue
		}
		gap := run.FontSize * wordGapFactor
		if gap <= 0 {
			gap = baselineTolerance
		}
		if i > 0 && sb.Len() > 0 && run.X-endX > gap {
			sb.WriteString(" ")
		}
		sb.WriteString(run.S)
		endX = run.X + run.W
	}
	return sb.String()
}

// groupRows buckets runs by baseline and orders the rows top to bottom
// (descending Y in PDF coordinates).
func groupRows(runs []textRun) []row {
	var rows []row
	for _, run := range runs {
		placed := false
		for i := range rows {
			if abs(rows[i].y-run.Y) <= baselineTolerance {
				rows[i].runs = append(rows[i].runs, run)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, row{y: run.Y, runs: []textRun{run}})
		}
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].y > rows[j].y })
	return rows
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
