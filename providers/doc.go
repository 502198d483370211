// Package providers defines the collaborator contracts the extraction
// pipeline consumes: positioned words and glyph metadata, raw page text,
// table grids (primary and fallback), extracted images, and OCR.
//
// The core pipeline depends only on these interfaces, so any parsing
// backend can be plugged in and tests can use the in-memory doubles in
// this package.
package providers
