package text

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultMaxLength is the standard maximum paragraph length in bytes.
const DefaultMaxLength = 500

// paragraphBoundary matches a blank-line boundary: two or more
// consecutive newlines.
var paragraphBoundary = regexp.MustCompile(`\n{2,}`)

// SegmenterConfig holds segmentation options.
type SegmenterConfig struct {
	// MaxLength is the maximum length of an emitted paragraph. A single
	// source line longer than this passes through unchanged.
	MaxLength int
}

// DefaultSegmenterConfig returns the standard segmentation options.
func DefaultSegmenterConfig() SegmenterConfig {
	return SegmenterConfig{MaxLength: DefaultMaxLength}
}

// Segmenter converts raw page text into ordered paragraph strings.
type Segmenter struct {
	config SegmenterConfig
}

// NewSegmenter creates a segmenter with default configuration.
func NewSegmenter() *Segmenter {
	return &Segmenter{config: DefaultSegmenterConfig()}
}

// NewSegmenterWithConfig creates a segmenter with the given
// configuration.
func NewSegmenterWithConfig(config SegmenterConfig) *Segmenter {
	if config.MaxLength <= 0 {
		config.MaxLength = DefaultMaxLength
	}
	return &Segmenter{config: config}
}

// Segment splits pageText into paragraphs on blank-line boundaries,
// then re-wraps any paragraph longer than MaxLength by greedily
// accumulating its lines into buffers that stay within the limit.
// Original paragraph order, and line order within a re-wrapped
// paragraph, are preserved.
func (s *Segmenter) Segment(pageText string) []string {
	if pageText == "" {
		return nil
	}
	pageText = norm.NFC.String(pageText)

	var out []string
	for _, candidate := range paragraphBoundary.Split(pageText, -1) {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		if len(candidate) <= s.config.MaxLength {
			out = append(out, candidate)
			continue
		}
		out = append(out, s.rewrap(candidate)...)
	}
	return out
}

// rewrap splits an overlong paragraph into lines and greedily packs
// them into paragraphs no longer than MaxLength, joining lines with
// single spaces. A buffer is flushed whenever appending the next line
// would push it past the limit.
func (s *Segmenter) rewrap(paragraph string) []string {
	var out []string
	var buf string

	for _, line := range strings.Split(paragraph, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(buf)+len(line) > s.config.MaxLength {
			if buf != "" {
				out = append(out, buf)
			}
			buf = line
			continue
		}
		if buf == "" {
			buf = line
		} else {
			buf += " " + line
		}
	}
	if buf != "" {
		out = append(out, buf)
	}
	return out
}
