// Package reader implements the pipeline's provider contracts against
// real PDF backends: positioned words, glyph metadata, and raw page
// text come from the ledongthuc/pdf content extractor, while page
// counting, page dimensions, and raster image extraction go through
// pdfcpu.
//
// The layout heuristics upstream never see either backend directly;
// they consume only the providers interfaces this package satisfies.
package reader
