// Package text segments a page's raw extracted text into an ordered
// sequence of paragraph strings. Paragraphs are split on blank-line
// boundaries; overlong paragraphs are re-wrapped at line boundaries so
// that no emitted paragraph exceeds the configured maximum length,
// except when a single source line is itself longer than the maximum.
package text
