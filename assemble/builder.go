package assemble

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tsawler/structura/layout"
	"github.com/tsawler/structura/model"
	"github.com/tsawler/structura/providers"
	"github.com/tsawler/structura/text"
)

// Providers bundles the collaborator implementations a build consumes.
// FallbackTables and OCR are optional; the rest are required.
type Providers struct {
	Words          providers.WordProvider
	Text           providers.TextProvider
	Tables         providers.TableProvider
	FallbackTables providers.TableProvider
	Images         providers.ImageProvider
	OCR            providers.OCRProvider
}

// BuilderConfig holds the tunable parts of a document build.
type BuilderConfig struct {
	Heading    layout.HeadingConfig
	Segmenter  text.SegmenterConfig
	OCREnabled bool
}

// DefaultBuilderConfig returns the standard build configuration with
// OCR disabled.
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		Heading:   layout.DefaultHeadingConfig(),
		Segmenter: text.DefaultSegmenterConfig(),
	}
}

// Builder walks a document's pages in order and assembles the final
// model. Page processing is strictly sequential: the section context
// mutated on page N is the starting context for page N+1.
type Builder struct {
	p         Providers
	detector  *layout.HeadingDetector
	segmenter *text.Segmenter
	assembler *Assembler
	logger    *slog.Logger
}

// NewBuilder creates a builder from the given providers and
// configuration. A nil logger falls back to slog.Default().
func NewBuilder(p Providers, config BuilderConfig, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		p:         p,
		detector:  layout.NewHeadingDetectorWithConfig(config.Heading),
		segmenter: text.NewSegmenterWithConfig(config.Segmenter),
		assembler: NewAssembler(p.OCR, config.OCREnabled, logger),
		logger:    logger,
	}
}

// Build assembles pages 1..pageCount into a document. Per-page table
// and image extraction failures degrade to empty results and are
// reported as warnings; a failure fetching the page's glyphs, words, or
// text is fatal and aborts the build.
func (b *Builder) Build(ctx context.Context, pageCount int) (*model.Document, []Warning, error) {
	doc := model.NewDocument()
	tracker := NewContext()
	var warnings []Warning

	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, warnings, err
		}

		b.logger.Debug("processing page", "page", pageNum, "of", pageCount)

		chars, err := b.p.Words.Chars(ctx, pageNum)
		if err != nil {
			return nil, warnings, fmt.Errorf("reading glyphs for page %d: %w", pageNum, err)
		}
		words, err := b.p.Words.Words(ctx, pageNum)
		if err != nil {
			return nil, warnings, fmt.Errorf("reading words for page %d: %w", pageNum, err)
		}
		rawText, err := b.p.Text.PageText(ctx, pageNum)
		if err != nil {
			return nil, warnings, fmt.Errorf("reading text for page %d: %w", pageNum, err)
		}

		fontSizes := layout.FontSizes(chars)
		headings := b.detector.Detect(words, fontSizes)
		paragraphs := b.segmenter.Segment(rawText)

		tables, tableWarnings := b.extractTables(ctx, pageNum)
		warnings = append(warnings, tableWarnings...)

		images, imageWarnings := b.extractImages(ctx, pageNum)
		warnings = append(warnings, imageWarnings...)

		page, pageWarnings := b.assembler.AssemblePage(
			ctx, pageNum, paragraphs, headings, tables, images, tracker)
		warnings = append(warnings, pageWarnings...)

		doc.AddPage(page)
	}

	return doc, warnings, nil
}

// extractTables runs the primary table provider and, only when it
// yields nothing, the fallback provider for that page. Failures in
// either degrade to zero tables.
func (b *Builder) extractTables(ctx context.Context, pageNum int) ([][][]string, []Warning) {
	var warnings []Warning

	tables, err := b.p.Tables.Tables(ctx, pageNum)
	if err != nil {
		b.logger.Warn("table extraction failed", "page", pageNum, "error", err)
		warnings = append(warnings, Warning{Page: pageNum, Op: "tables", Err: err})
		tables = nil
	}

	if len(tables) == 0 && b.p.FallbackTables != nil {
		tables, err = b.p.FallbackTables.Tables(ctx, pageNum)
		if err != nil {
			b.logger.Warn("fallback table extraction failed", "page", pageNum, "error", err)
			warnings = append(warnings, Warning{Page: pageNum, Op: "tables-fallback", Err: err})
			tables = nil
		}
	}

	return tables, warnings
}

// extractImages runs the image provider; failure degrades to zero
// charts for the page.
func (b *Builder) extractImages(ctx context.Context, pageNum int) ([]providers.ImageRef, []Warning) {
	images, err := b.p.Images.Images(ctx, pageNum)
	if err != nil {
		b.logger.Warn("image extraction failed", "page", pageNum, "error", err)
		return nil, []Warning{{Page: pageNum, Op: "images", Err: err}}
	}
	return images, nil
}
