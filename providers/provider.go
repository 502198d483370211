package providers

import "context"

// Char is per-glyph metadata used for font-size statistics. HasSize is
// false when the backend could not attribute a size to the glyph.
type Char struct {
	Size    float64
	HasSize bool
}

// Word is a positioned word on a page. Top is the vertical offset from
// the top of the page in layout units; Size is the word's font size, or
// 0 when unknown. X and Width describe horizontal placement and are
// optional: heading detection ignores them, table detection needs them.
type Word struct {
	Text  string
	Top   float64
	Size  float64
	X     float64
	Width float64
}

// ImageRef describes an extracted raster image. Path is empty when the
// image was not persisted to disk. AreaPercent is the image's pixel area
// as a percentage of the page area.
type ImageRef struct {
	Width       int
	Height      int
	Path        string
	AreaPercent float64
}

// WordProvider yields per-page glyph metadata and positioned words in
// extraction order. Page numbers are 1-indexed.
type WordProvider interface {
	Chars(ctx context.Context, pageNum int) ([]Char, error)
	Words(ctx context.Context, pageNum int) ([]Word, error)
}

// TextProvider yields the full extracted text blob for a page.
type TextProvider interface {
	PageText(ctx context.Context, pageNum int) (string, error)
}

// TableProvider yields zero or more cell grids for a page. Rows may be
// ragged. The same contract serves both the primary and the fallback
// extraction method.
type TableProvider interface {
	Tables(ctx context.Context, pageNum int) ([][][]string, error)
}

// ImageProvider yields the images on a page that are large enough to be
// treated as charts. Implementations apply the minimum-area filter
// before returning.
type ImageProvider interface {
	Images(ctx context.Context, pageNum int) ([]ImageRef, error)
}

// OCRProvider recognizes text in a persisted image. An empty string with
// a nil error means the image contained no recognizable text.
type OCRProvider interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
}

// MinChartArea is the pixel-area threshold below which an image is
// considered decorative and excluded from chart extraction.
const MinChartArea = 10000
