package structura

import (
	"github.com/tsawler/structura/layout"
	"github.com/tsawler/structura/text"
)

// ExtractOptions holds configuration for structured extraction.
type ExtractOptions struct {
	// OCR of persisted chart images
	ocrEnabled  bool
	ocrLanguage string

	// Directory for persisted images; empty means measure-and-discard
	imageDir string

	// Heuristic thresholds
	heading   layout.HeadingConfig
	segmenter text.SegmenterConfig
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		ocrEnabled:  false,
		ocrLanguage: "",
		imageDir:    "",
		heading:     layout.DefaultHeadingConfig(),
		segmenter:   text.DefaultSegmenterConfig(),
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		ocrEnabled:  o.ocrEnabled,
		ocrLanguage: o.ocrLanguage,
		imageDir:    o.imageDir,
		heading:     o.heading,
		segmenter:   o.segmenter,
	}
}
