package tables

import (
	"context"
	"sort"
	"strings"

	"github.com/tsawler/structura/layout"
	"github.com/tsawler/structura/providers"
)

// Config holds thresholds for alignment-based table detection.
type Config struct {
	// RowTolerance is the vertical distance within which words belong
	// to the same row.
	RowTolerance float64

	// MinColumnGap is the horizontal gap, in layout units, that
	// separates two cells on a row.
	MinColumnGap float64

	// MinRows is the minimum number of consecutive multi-cell rows
	// required to form a table.
	MinRows int

	// MinColumns is the minimum cell count for a row to be considered
	// tabular.
	MinColumns int
}

// DefaultConfig returns the standard detection thresholds.
func DefaultConfig() Config {
	return Config{
		RowTolerance: 5,
		MinColumnGap: 18,
		MinRows:      2,
		MinColumns:   2,
	}
}

// AlignmentDetector is the primary table extraction method. It groups a
// page's positioned words into rows, splits each row into cells at
// large horizontal gaps, and emits a grid for every run of consecutive
// multi-cell rows.
type AlignmentDetector struct {
	words  providers.WordProvider
	config Config
}

// NewAlignmentDetector creates a detector reading words from the given
// provider, with default configuration.
func NewAlignmentDetector(words providers.WordProvider) *AlignmentDetector {
	return NewAlignmentDetectorWithConfig(words, DefaultConfig())
}

// NewAlignmentDetectorWithConfig creates a detector with the given
// configuration.
func NewAlignmentDetectorWithConfig(words providers.WordProvider, config Config) *AlignmentDetector {
	return &AlignmentDetector{words: words, config: config}
}

// Tables implements providers.TableProvider. Rows inside a detected
// grid may be ragged; rows with fewer than MinColumns cells end the
// current run.
func (d *AlignmentDetector) Tables(ctx context.Context, pageNum int) ([][][]string, error) {
	words, err := d.words.Words(ctx, pageNum)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, nil
	}

	var grids [][][]string
	var run [][]string

	flush := func() {
		if len(run) >= d.config.MinRows {
			grids = append(grids, run)
		}
		run = nil
	}

	for _, line := range layout.GroupLines(words, d.config.RowTolerance) {
		cells := d.splitRow(line.Words)
		if len(cells) >= d.config.MinColumns {
			run = append(run, cells)
			continue
		}
		flush()
	}
	flush()

	return grids, nil
}

// splitRow orders a row's words left to right and merges them into
// cells, starting a new cell wherever the gap between one word's right
// edge and the next word's left edge exceeds MinColumnGap.
func (d *AlignmentDetector) splitRow(words []providers.Word) []string {
	sorted := make([]providers.Word, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var cells []string
	var cell []string
	rightEdge := 0.0

	for i, w := range sorted {
		if i > 0 && w.X-rightEdge > d.config.MinColumnGap {
			cells = append(cells, strings.Join(cell, " "))
			cell = nil
		}
		cell = append(cell, w.Text)
		rightEdge = w.X + w.Width
	}
	if len(cell) > 0 {
		cells = append(cells, strings.Join(cell, " "))
	}

	return cells
}
