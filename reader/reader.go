package reader

import (
	"context"
	"fmt"
	"os"

	ltpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/tsawler/structura/providers"
)

// Reader provides word, text, and image access to a single PDF file.
// It implements providers.WordProvider, providers.TextProvider, and
// providers.ImageProvider. A Reader must be closed when done.
type Reader struct {
	path      string
	file      *os.File
	pdf       *ltpdf.Reader
	pageCount int
	pageDims  []types.Dim
	imageDir  string
}

// Open opens the PDF at path and reads its page inventory. The
// returned Reader keeps the file open until Close is called.
func Open(path string) (*Reader, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("input file not found: %w", err)
	}

	f, r, err := ltpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	count, err := api.PageCountFile(path)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to count pages: %w", err)
	}

	dims, err := api.PageDimsFile(path)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read page dimensions: %w", err)
	}

	return &Reader{
		path:      path,
		file:      f,
		pdf:       r,
		pageCount: count,
		pageDims:  dims,
	}, nil
}

// Close releases the underlying file handle. It is safe to call Close
// multiple times.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// SetImageDir makes extracted images persist under dir. Without a
// directory, images are extracted to a temporary location for
// measurement only and no path is reported.
func (r *Reader) SetImageDir(dir string) {
	r.imageDir = dir
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount() int {
	return r.pageCount
}

// pageHeight returns the height of the given 1-indexed page, or 0 when
// dimensions are unavailable.
func (r *Reader) pageHeight(pageNum int) float64 {
	if pageNum < 1 || pageNum > len(r.pageDims) {
		return 0
	}
	return r.pageDims[pageNum-1].Height
}

// pageArea returns the page area in layout units, or 0 when unknown.
func (r *Reader) pageArea(pageNum int) float64 {
	if pageNum < 1 || pageNum > len(r.pageDims) {
		return 0
	}
	d := r.pageDims[pageNum-1]
	return d.Width * d.Height
}

// runs fetches the page's raw text runs in content order.
func (r *Reader) runs(pageNum int) ([]textRun, error) {
	if pageNum < 1 || pageNum > r.pageCount {
		return nil, fmt.Errorf("page %d out of range 1..%d", pageNum, r.pageCount)
	}
	page := r.pdf.Page(pageNum)
	if page.V.IsNull() {
		return nil, nil
	}

	content := page.Content()
	runs := make([]textRun, 0, len(content.Text))
	for _, t := range content.Text {
		runs = append(runs, textRun{
			S:        t.S,
			X:        t.X,
			Y:        t.Y,
			W:        t.W,
			FontSize: t.FontSize,
		})
	}
	return runs, nil
}

// Chars implements providers.WordProvider. Each text run contributes
// its font size; runs without one are reported as unsized.
func (r *Reader) Chars(ctx context.Context, pageNum int) ([]providers.Char, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	runs, err := r.runs(pageNum)
	if err != nil {
		return nil, err
	}

	chars := make([]providers.Char, 0, len(runs))
	for _, run := range runs {
		chars = append(chars, providers.Char{Size: run.FontSize, HasSize: run.FontSize > 0})
	}
	return chars, nil
}

// Words implements providers.WordProvider, assembling the page's text
// runs into positioned words in extraction order.
func (r *Reader) Words(ctx context.Context, pageNum int) ([]providers.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	runs, err := r.runs(pageNum)
	if err != nil {
		return nil, err
	}
	return buildWords(runs, r.pageHeight(pageNum)), nil
}

// PageText implements providers.TextProvider. Lines are reconstructed
// from run positions; unusually large vertical gaps become blank lines
// so the paragraph segmenter can find paragraph boundaries.
func (r *Reader) PageText(ctx context.Context, pageNum int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	runs, err := r.runs(pageNum)
	if err != nil {
		return "", err
	}
	return buildPageText(runs), nil
}
