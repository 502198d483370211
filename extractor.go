package structura

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/tsawler/structura/assemble"
	"github.com/tsawler/structura/layout"
	"github.com/tsawler/structura/model"
	"github.com/tsawler/structura/ocr"
	"github.com/tsawler/structura/providers"
	"github.com/tsawler/structura/reader"
	"github.com/tsawler/structura/tables"
)

// Backends supplies explicit provider implementations for an Extractor
// created with FromBackends. Words, Text, Tables, and Images are
// required. FallbackTables and OCR may be nil; a nil FallbackTables
// disables the fallback pass, and a nil OCR leaves chart descriptions
// empty even when OCR is requested.
type Backends struct {
	Words          providers.WordProvider
	Text           providers.TextProvider
	Tables         providers.TableProvider
	FallbackTables providers.TableProvider
	Images         providers.ImageProvider
	OCR            providers.OCRProvider
	PageCount      int
}

// Extractor converts a PDF, or a set of explicit backends, into the
// structured document model. Option methods return a modified copy, so
// a configured Extractor can be stored and reused:
//
//	base := structura.Open("report.pdf")
//	withOCR := base.WithOCR()
//	// base is unchanged
type Extractor struct {
	filename string
	backends *Backends
	options  ExtractOptions
	logger   *slog.Logger
}

// clone returns a copy of the extractor with copied options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		backends: e.backends,
		options:  e.options.clone(),
		logger:   e.logger,
	}
}

// WithOCR enables OCR of persisted chart images. Extraction fails if
// the binary was built without the "ocr" build tag; check
// ocr.Available() first.
func (e *Extractor) WithOCR() *Extractor {
	c := e.clone()
	c.options.ocrEnabled = true
	return c
}

// OCRLanguage sets the recognition language, e.g. "deu". The default
// is English.
func (e *Extractor) OCRLanguage(lang string) *Extractor {
	c := e.clone()
	c.options.ocrLanguage = lang
	return c
}

// ImageDir persists extracted chart images under dir and records their
// paths in the output. Without it, images are measured and discarded.
func (e *Extractor) ImageDir(dir string) *Extractor {
	c := e.clone()
	c.options.imageDir = dir
	return c
}

// MaxParagraphLength sets the length above which paragraphs are
// re-wrapped into shorter ones. Zero or negative keeps the default.
func (e *Extractor) MaxParagraphLength(n int) *Extractor {
	c := e.clone()
	c.options.segmenter.MaxLength = n
	return c
}

// HeadingConfig overrides the heading detection thresholds.
func (e *Extractor) HeadingConfig(config layout.HeadingConfig) *Extractor {
	c := e.clone()
	c.options.heading = config
	return c
}

// Logger sets the logger used during extraction. The default is
// slog.Default().
func (e *Extractor) Logger(logger *slog.Logger) *Extractor {
	c := e.clone()
	c.logger = logger
	return c
}

// Extract runs the full pipeline and returns the assembled document.
// Warnings report content that was dropped without aborting the run;
// the returned document is valid whenever err is nil.
func (e *Extractor) Extract(ctx context.Context) (*model.Document, []Warning, error) {
	backends, cleanup, err := e.resolveBackends()
	if err != nil {
		return nil, nil, err
	}
	defer cleanup()

	builder := assemble.NewBuilder(assemble.Providers{
		Words:          backends.Words,
		Text:           backends.Text,
		Tables:         backends.Tables,
		FallbackTables: backends.FallbackTables,
		Images:         backends.Images,
		OCR:            backends.OCR,
	}, assemble.BuilderConfig{
		Heading:    e.options.heading,
		Segmenter:  e.options.segmenter,
		OCREnabled: e.options.ocrEnabled,
	}, e.logger)

	return builder.Build(ctx, backends.PageCount)
}

// ExtractToFile runs Extract and writes the document as indented JSON
// to outPath. Warnings are returned alongside any error so callers can
// still report them after a successful write.
func (e *Extractor) ExtractToFile(ctx context.Context, outPath string) ([]Warning, error) {
	doc, warnings, err := e.Extract(ctx)
	if err != nil {
		return warnings, err
	}

	data, err := doc.MarshalIndent()
	if err != nil {
		return warnings, fmt.Errorf("failed to encode document: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return warnings, fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return warnings, nil
}

// resolveBackends returns the providers to build from, opening the PDF
// when the extractor was created with Open. The cleanup function closes
// whatever was opened and is safe to call unconditionally.
func (e *Extractor) resolveBackends() (Backends, func(), error) {
	noop := func() {}

	if e.backends != nil {
		b := *e.backends
		if b.OCR == nil && e.options.ocrEnabled {
			return Backends{}, noop, fmt.Errorf("OCR requested but no OCR backend provided")
		}
		return b, noop, nil
	}

	if e.filename == "" {
		return Backends{}, noop, fmt.Errorf("no input: use Open or FromBackends")
	}

	r, err := reader.Open(e.filename)
	if err != nil {
		return Backends{}, noop, err
	}
	cleanup := func() { r.Close() }

	if e.options.imageDir != "" {
		r.SetImageDir(e.options.imageDir)
	}

	b := Backends{
		Words:          r,
		Text:           r,
		Tables:         tables.NewAlignmentDetector(r),
		FallbackTables: tables.NewTextRuleDetector(r),
		Images:         r,
		PageCount:      r.PageCount(),
	}

	if e.options.ocrEnabled {
		client, err := ocr.New()
		if err != nil {
			cleanup()
			return Backends{}, noop, fmt.Errorf("OCR requested but unavailable: %w", err)
		}
		if e.options.ocrLanguage != "" {
			if err := client.SetLanguage(e.options.ocrLanguage); err != nil {
				client.Close()
				cleanup()
				return Backends{}, noop, fmt.Errorf("failed to set OCR language: %w", err)
			}
		}
		b.OCR = client
		inner := cleanup
		cleanup = func() {
			client.Close()
			inner()
		}
	}

	return b, cleanup, nil
}
