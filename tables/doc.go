// Package tables extracts cell grids from page primitives. Two
// detectors implement the table-provider contract: AlignmentDetector,
// the primary method, infers columns from the horizontal alignment of
// positioned words, and TextRuleDetector, the fallback, splits raw text
// lines on runs of whitespace. The document builder consults the
// fallback only for pages where the primary method finds nothing.
package tables
