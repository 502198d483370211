package assemble

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/tsawler/structura/layout"
	"github.com/tsawler/structura/model"
	"github.com/tsawler/structura/providers"
)

// Assembler builds one page's ordered content-block list from its
// primitives: segmented paragraphs, detected headings, table grids, and
// extracted images.
type Assembler struct {
	ocr        providers.OCRProvider
	ocrEnabled bool
	logger     *slog.Logger
}

// NewAssembler creates an assembler. ocr may be nil when ocrEnabled is
// false. A nil logger falls back to slog.Default().
func NewAssembler(ocr providers.OCRProvider, ocrEnabled bool, logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{ocr: ocr, ocrEnabled: ocrEnabled, logger: logger}
}

// headingMatch pairs a detected heading with its level for ordered
// application.
type headingMatch struct {
	text  string
	level layout.Level
}

// AssemblePage produces the page's content in assembly order:
// paragraphs, then tables, then charts. Paragraphs are scanned in order
// and update the section tracker when they contain a detected heading;
// tables and charts are stamped with the tracker's state after the
// whole paragraph scan, regardless of their true position on the page.
func (a *Assembler) AssemblePage(
	ctx context.Context,
	pageNum int,
	paragraphs []string,
	headings map[string]layout.Level,
	tables [][][]string,
	images []providers.ImageRef,
	tracker *Context,
) (*model.Page, []Warning) {
	page := model.NewPage(pageNum)
	var warnings []Warning

	for _, paraText := range paragraphs {
		info := tracker.Stamp()

		for _, m := range matchHeadings(paraText, headings) {
			switch m.level {
			case layout.LevelSection:
				tracker.EnterSection(m.text)
				info.Section = tracker.Section
				info.SubSection = nil
			case layout.LevelSubsection:
				tracker.EnterSubsection(m.text)
				info.SubSection = tracker.SubSection
			}
		}

		page.AddBlock(&model.Paragraph{SectionInfo: info, Text: paraText})
	}

	// Tables and charts carry the context left by the paragraph scan.
	stamp := tracker.Stamp()

	for _, grid := range tables {
		rows := dropEmptyRows(grid)
		if len(rows) == 0 {
			continue
		}
		page.AddBlock(&model.Table{SectionInfo: stamp, Data: rows})
	}

	for _, img := range images {
		chart := &model.Chart{
			SectionInfo: stamp,
			Width:       img.Width,
			Height:      img.Height,
		}
		if img.Path != "" {
			path := img.Path
			chart.ImagePath = &path
		}
		if a.ocrEnabled && a.ocr != nil && img.Path != "" {
			desc, err := a.ocr.Recognize(ctx, img.Path)
			if err != nil {
				a.logger.Warn("ocr failed for image",
					"page", pageNum, "path", img.Path, "error", err)
				warnings = append(warnings, Warning{Page: pageNum, Op: "ocr", Err: err})
			} else {
				chart.Description = &desc
			}
		}
		page.AddBlock(chart)
	}

	return page, warnings
}

// matchHeadings returns the detected headings contained in the
// paragraph text, in a deterministic application order: section matches
// before subsection matches, each group sorted by heading text. Within
// a paragraph, later applications override earlier ones, so the
// lexicographically last matching section wins, then the
// lexicographically last matching subsection.
func matchHeadings(paraText string, headings map[string]layout.Level) []headingMatch {
	var matches []headingMatch
	for text, level := range headings {
		if strings.Contains(paraText, text) {
			matches = append(matches, headingMatch{text: text, level: level})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].level != matches[j].level {
			return matches[i].level == layout.LevelSection
		}
		return matches[i].text < matches[j].text
	})

	return matches
}

// dropEmptyRows removes zero-length rows from a grid. Ragged rows are
// kept as-is.
func dropEmptyRows(grid [][]string) [][]string {
	var rows [][]string
	for _, row := range grid {
		if len(row) == 0 {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}
