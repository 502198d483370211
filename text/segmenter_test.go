package text

import (
	"strings"
	"testing"
)

func TestSegmentEmpty(t *testing.T) {
	s := NewSegmenter()
	if got := s.Segment(""); len(got) != 0 {
		t.Errorf("Segment(\"\") = %v, want empty", got)
	}
	if got := s.Segment("\n\n\n"); len(got) != 0 {
		t.Errorf("Segment of only blank lines = %v, want empty", got)
	}
}

func TestSegmentBlankLineBoundaries(t *testing.T) {
	s := NewSegmenter()
	input := "First paragraph.\n\nSecond paragraph.\n\n\n\nThird paragraph."

	got := s.Segment(input)

	expected := []string{"First paragraph.", "Second paragraph.", "Third paragraph."}
	if len(got) != len(expected) {
		t.Fatalf("Segment returned %d paragraphs, want %d: %v", len(got), len(expected), got)
	}
	for i, want := range expected {
		if got[i] != want {
			t.Errorf("paragraph[%d] = %q, want %q", i, got[i], want)
		}
	}
}

func TestSegmentSingleNewlinesKeptTogether(t *testing.T) {
	s := NewSegmenter()
	input := "Line one\nLine two\nLine three"

	got := s.Segment(input)

	if len(got) != 1 {
		t.Fatalf("Segment returned %d paragraphs, want 1: %v", len(got), got)
	}
	if got[0] != input {
		t.Errorf("short paragraph was altered: %q", got[0])
	}
}

func TestSegmentRewrapsOverlongParagraph(t *testing.T) {
	s := NewSegmenter()

	line := strings.Repeat("word ", 39) + "word" // 199 bytes
	input := line + "\n" + line + "\n" + line + "\n" + line

	got := s.Segment(input)

	if len(got) < 2 {
		t.Fatalf("overlong paragraph was not split: %d paragraphs", len(got))
	}
	for i, para := range got {
		if len(para) > DefaultMaxLength {
			t.Errorf("paragraph[%d] length %d exceeds %d", i, len(para), DefaultMaxLength)
		}
	}
}

// An irreducible line longer than the limit passes through unchanged.
func TestSegmentIrreducibleLine(t *testing.T) {
	s := NewSegmenterWithConfig(SegmenterConfig{MaxLength: 20})
	long := strings.Repeat("x", 45)
	input := "short\n" + long + "\nalso short"

	got := s.Segment(input)

	found := false
	for _, para := range got {
		if para == long {
			found = true
		}
	}
	if !found {
		t.Errorf("irreducible line was altered or dropped: %v", got)
	}
}

// Concatenating the output must reproduce every non-blank input line in
// original order, ignoring the join spaces added during re-wrapping.
func TestSegmentCompleteness(t *testing.T) {
	s := NewSegmenterWithConfig(SegmenterConfig{MaxLength: 30})
	input := "alpha beta\ngamma delta\nepsilon\n\nzeta eta theta\niota kappa\n\nlambda"

	got := s.Segment(input)

	joined := strings.Join(got, " ")
	squash := func(str string) string {
		return strings.Join(strings.Fields(str), " ")
	}
	if squash(joined) != squash(input) {
		t.Errorf("content lost or reordered:\n got: %q\nwant: %q", squash(joined), squash(input))
	}
}

func TestSegmentGreedyFlush(t *testing.T) {
	s := NewSegmenterWithConfig(SegmenterConfig{MaxLength: 11})
	// Paragraph is 17 bytes so it takes the re-wrap path. "aaaa bbbb"
	// is 9 bytes; appending "cccc" would reach 13 > 11, so the buffer
	// flushes first.
	input := "aaaa\nbbbb\ncccc\ndd"

	got := s.Segment(input)

	expected := []string{"aaaa bbbb", "cccc dd"}
	if len(got) != len(expected) {
		t.Fatalf("Segment returned %v, want %v", got, expected)
	}
	for i, want := range expected {
		if got[i] != want {
			t.Errorf("paragraph[%d] = %q, want %q", i, got[i], want)
		}
	}
}

func TestNewSegmenterWithConfigDefaultsZeroMax(t *testing.T) {
	s := NewSegmenterWithConfig(SegmenterConfig{})
	if s.config.MaxLength != DefaultMaxLength {
		t.Errorf("MaxLength = %d, want %d", s.config.MaxLength, DefaultMaxLength)
	}
}
