package tables

import (
	"context"
	"regexp"
	"strings"

	"github.com/tsawler/structura/providers"
)

// cellSeparator matches a tab or a run of two or more spaces.
var cellSeparator = regexp.MustCompile(`\t| {2,}`)

// TextRuleDetector is the fallback table extraction method. It works on
// the raw page text alone: lines that split into multiple cells on tab
// or wide-space separators, appearing in runs of two or more, are
// treated as table rows.
type TextRuleDetector struct {
	text   providers.TextProvider
	config Config
}

// NewTextRuleDetector creates a fallback detector reading raw text from
// the given provider, with default configuration.
func NewTextRuleDetector(text providers.TextProvider) *TextRuleDetector {
	return NewTextRuleDetectorWithConfig(text, DefaultConfig())
}

// NewTextRuleDetectorWithConfig creates a fallback detector with the
// given configuration. Only MinRows and MinColumns are consulted.
func NewTextRuleDetectorWithConfig(text providers.TextProvider, config Config) *TextRuleDetector {
	return &TextRuleDetector{text: text, config: config}
}

// Tables implements providers.TableProvider.
func (d *TextRuleDetector) Tables(ctx context.Context, pageNum int) ([][][]string, error) {
	pageText, err := d.text.PageText(ctx, pageNum)
	if err != nil {
		return nil, err
	}
	if pageText == "" {
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

	for _, line := range strings.Split(pageText, "\n") {
		cells := splitLine(line)
		if len(cells) >= d.config.MinColumns {
			run = append(run, cells)
			continue
		}
		flush()
	}
	flush()

	return grids, nil
}

// splitLine breaks a text line into trimmed, non-empty cells.
func splitLine(line string) []string {
	var cells []string
	for _, part := range cellSeparator.Split(line, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			cells = append(cells, part)
		}
	}
	return cells
}
