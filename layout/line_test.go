package layout

import (
	"testing"

	"github.com/tsawler/structura/providers"
)

// makeWord creates a positioned word for line-grouping tests.
func makeWord(text string, top, size float64) providers.Word {
	return providers.Word{Text: text, Top: top, Size: size}
}

func TestGroupLinesSingleLine(t *testing.T) {
	words := []providers.Word{
		makeWord("Hello", 100, 12),
		makeWord("world", 101, 12),
		makeWord("again", 99, 12),
	}

	lines := GroupLines(words, 5)

	if len(lines) != 1 {
		t.Fatalf("GroupLines returned %d lines, want 1", len(lines))
	}
	if got := lines[0].Text(); got != "Hello world again" {
		t.Errorf("line text = %q, want %q", got, "Hello world again")
	}
}

func TestGroupLinesMultipleLines(t *testing.T) {
	words := []providers.Word{
		makeWord("First", 100, 12),
		makeWord("line", 102, 12),
		makeWord("Second", 120, 12),
		makeWord("line", 121, 12),
		makeWord("Third", 140, 12),
	}

	lines := GroupLines(words, 5)

	if len(lines) != 3 {
		t.Fatalf("GroupLines returned %d lines, want 3", len(lines))
	}
	expected := []string{"First line", "Second line", "Third"}
	for i, want := range expected {
		if got := lines[i].Text(); got != want {
			t.Errorf("lines[%d].Text() = %q, want %q", i, got, want)
		}
	}
}

// The anchor follows the most recently added word, so a slowly drifting
// baseline stays one line as long as each step is within tolerance.
func TestGroupLinesRunningAnchor(t *testing.T) {
	words := []providers.Word{
		makeWord("a", 100, 10),
		makeWord("b", 104, 10),
		makeWord("c", 108, 10),
		makeWord("d", 112, 10),
	}

	lines := GroupLines(words, 5)

	if len(lines) != 1 {
		t.Errorf("drifting baseline split into %d lines, want 1", len(lines))
	}
}

func TestGroupLinesEmpty(t *testing.T) {
	if lines := GroupLines(nil, 5); len(lines) != 0 {
		t.Errorf("GroupLines(nil) returned %d lines, want 0", len(lines))
	}
}

func TestLineAvgFontSize(t *testing.T) {
	tests := []struct {
		name     string
		words    []providers.Word
		expected float64
	}{
		{"empty", nil, 0},
		{"uniform", []providers.Word{makeWord("a", 0, 12), makeWord("b", 0, 12)}, 12},
		{"mixed", []providers.Word{makeWord("a", 0, 10), makeWord("b", 0, 20)}, 15},
		// Unknown sizes count as zero, dragging the mean down.
		{"missing size", []providers.Word{makeWord("a", 0, 18), makeWord("b", 0, 0)}, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := Line{Words: tt.words}
			if got := line.AvgFontSize(); got != tt.expected {
				t.Errorf("AvgFontSize() = %v, want %v", got, tt.expected)
			}
		})
	}
}
