package layout

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/structura/providers"
)

// Level is the classification assigned to a heading line.
type Level int

const (
	// LevelSection is a top-level section heading.
	LevelSection Level = iota
	// LevelSubsection is a nested heading beneath a section.
	LevelSubsection
)

// String returns a string representation of the heading level.
func (l Level) String() string {
	switch l {
	case LevelSection:
		return "section"
	case LevelSubsection:
		return "subsection"
	default:
		return "unknown"
	}
}

// HeadingConfig holds tunable thresholds for heading detection.
type HeadingConfig struct {
	// LineTolerance is the maximum vertical distance, in layout units,
	// between a word and the line's running anchor for the word to join
	// the line.
	LineTolerance float64

	// LargeFontRatio scales the page's median font size to produce the
	// large-font threshold.
	LargeFontRatio float64

	// MaxTitleLen is the exclusive upper bound, in runes, for the
	// short-title-case rule.
	MaxTitleLen int

	// MinAllCapsLen is the exclusive lower bound, in runes, for the
	// all-caps rule.
	MinAllCapsLen int
}

// DefaultHeadingConfig returns the standard detection thresholds.
func DefaultHeadingConfig() HeadingConfig {
	return HeadingConfig{
		LineTolerance:  5,
		LargeFontRatio: 1.3,
		MaxTitleLen:    50,
		MinAllCapsLen:  3,
	}
}

// sectionNumberPattern matches a leading integer with an optional period
// followed by whitespace, e.g. "1. Introduction" or "2 Results".
var sectionNumberPattern = regexp.MustCompile(`^\d+\.?\s+`)

// subsectionNumberPattern matches integer.integer with an optional
// trailing period followed by whitespace, e.g. "1.1 Background".
var subsectionNumberPattern = regexp.MustCompile(`^\d+\.\d+\.?\s+`)

// HeadingDetector classifies visual lines as section or subsection
// headings.
type HeadingDetector struct {
	config HeadingConfig
}

// NewHeadingDetector creates a detector with default configuration.
func NewHeadingDetector() *HeadingDetector {
	return &HeadingDetector{config: DefaultHeadingConfig()}
}

// NewHeadingDetectorWithConfig creates a detector with the given
// configuration.
func NewHeadingDetectorWithConfig(config HeadingConfig) *HeadingDetector {
	return &HeadingDetector{config: config}
}

// Detect groups the page's words into visual lines and classifies each
// line. It returns a mapping from stripped line text to heading level;
// when two lines have identical text the later one wins. An empty
// fontSizes slice means no classification is possible and yields an
// empty map.
func (d *HeadingDetector) Detect(words []providers.Word, fontSizes []float64) map[string]Level {
	headings := make(map[string]Level)
	if len(fontSizes) == 0 {
		return headings
	}

	threshold := MedianFontSize(fontSizes) * d.config.LargeFontRatio
	lines := GroupLines(words, d.config.LineTolerance)

	for _, line := range lines {
		text := strings.TrimSpace(line.Text())
		if text == "" {
			continue
		}
		if level, ok := d.classify(text, line.AvgFontSize(), threshold); ok {
			headings[text] = level
		}
	}

	return headings
}

// classify evaluates the rule set against one line. The rules fire
// independently; resolution is fixed: a subsection match takes
// precedence over any section match, and a line matching no rule is
// not a heading.
func (d *HeadingDetector) classify(text string, avgFontSize, largeFontThreshold float64) (Level, bool) {
	isSection := d.isLargeFont(avgFontSize, largeFontThreshold) ||
		d.isNumberedSection(text) ||
		d.isAllCaps(text) ||
		d.hasTrailingColon(text) ||
		d.isShortTitleCase(text)

	if d.isNumberedSubsection(text) {
		return LevelSubsection, true
	}
	if isSection {
		return LevelSection, true
	}
	return 0, false
}

// isLargeFont reports whether the line's average font size exceeds the
// large-font threshold derived from the page median.
func (d *HeadingDetector) isLargeFont(avgFontSize, threshold float64) bool {
	return avgFontSize > threshold
}

// isNumberedSection reports whether the line starts with a section
// number like "3." or "3 ".
func (d *HeadingDetector) isNumberedSection(text string) bool {
	return sectionNumberPattern.MatchString(text)
}

// isNumberedSubsection reports whether the line starts with a nested
// number like "3.2" or "3.2.".
func (d *HeadingDetector) isNumberedSubsection(text string) bool {
	return subsectionNumberPattern.MatchString(text)
}

// isAllCaps reports whether the text contains at least one uppercase
// letter, no lowercase letters, and is longer than the minimum length.
func (d *HeadingDetector) isAllCaps(text string) bool {
	hasUpper := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper && utf8.RuneCountInString(text) > d.config.MinAllCapsLen
}

// hasTrailingColon reports whether the line ends with a colon.
func (d *HeadingDetector) hasTrailingColon(text string) bool {
	return strings.HasSuffix(text, ":")
}

// isShortTitleCase reports whether the line is shorter than the title
// length bound and in title case.
func (d *HeadingDetector) isShortTitleCase(text string) bool {
	return utf8.RuneCountInString(text) < d.config.MaxTitleLen && isTitleCase(text)
}

// isTitleCase reports whether every word that starts with a letter has
// an uppercase first letter followed by only non-uppercase letters, and
// the text contains at least one letter.
func isTitleCase(text string) bool {
	hasLetter := false
	for _, word := range strings.Fields(text) {
		seenLetter := false
		for _, r := range word {
			if !unicode.IsLetter(r) {
				continue
			}
			hasLetter = true
			if !seenLetter {
				if !unicode.IsUpper(r) {
					return false
				}
				seenLetter = true
				continue
			}
			if unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
