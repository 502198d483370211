package tables

import (
	"context"
	"errors"
	"testing"

	"github.com/tsawler/structura/providers"
)

// placeWord positions a word for alignment tests.
func placeWord(text string, x, top, width float64) providers.Word {
	return providers.Word{Text: text, X: x, Top: top, Width: width}
}

func TestAlignmentDetectorFindsGrid(t *testing.T) {
	mock := providers.NewMockProvider()
	mock.WordsByPage[1] = []providers.Word{
		// Header row: two columns separated by a wide gap.
		placeWord("Name", 10, 100, 30),
		placeWord("Value", 120, 100, 35),
		// Data row.
		placeWord("alpha", 10, 115, 32),
		placeWord("42", 120, 115, 14),
		// A plain sentence below the table: single cell, ends the run.
		placeWord("This", 10, 140, 26),
		placeWord("is", 40, 140, 12),
		placeWord("prose", 56, 140, 30),
	}

	d := NewAlignmentDetector(mock)
	grids, err := d.Tables(context.Background(), 1)
	if err != nil {
		t.Fatalf("Tables failed: %v", err)
	}

	if len(grids) != 1 {
		t.Fatalf("expected 1 grid, got %d", len(grids))
	}
	grid := grids[0]
	if len(grid) != 2 {
		t.Fatalf("expected 2 rows, got %v", grid)
	}
	if grid[0][0] != "Name" || grid[0][1] != "Value" {
		t.Errorf("header row = %v", grid[0])
	}
	if grid[1][0] != "alpha" || grid[1][1] != "42" {
		t.Errorf("data row = %v", grid[1])
	}
}

func TestAlignmentDetectorMergesNarrowGaps(t *testing.T) {
	mock := providers.NewMockProvider()
	// "New York" with a small inter-word gap, then a wide gap to "NY".
	mock.WordsByPage[1] = []providers.Word{
		placeWord("New", 10, 100, 24),
		placeWord("York", 38, 100, 28),
		placeWord("NY", 150, 100, 18),
		placeWord("Boston", 10, 115, 40),
		placeWord("MA", 150, 115, 20),
	}

	grids, err := NewAlignmentDetector(mock).Tables(context.Background(), 1)
	if err != nil {
		t.Fatalf("Tables failed: %v", err)
	}
	if len(grids) != 1 {
		t.Fatalf("expected 1 grid, got %d", len(grids))
	}
	if got := grids[0][0][0]; got != "New York" {
		t.Errorf("merged cell = %q, want \"New York\"", got)
	}
}

func TestAlignmentDetectorSingleRowIsNotATable(t *testing.T) {
	mock := providers.NewMockProvider()
	mock.WordsByPage[1] = []providers.Word{
		placeWord("lone", 10, 100, 25),
		placeWord("pair", 150, 100, 25),
	}

	grids, err := NewAlignmentDetector(mock).Tables(context.Background(), 1)
	if err != nil {
		t.Fatalf("Tables failed: %v", err)
	}
	if len(grids) != 0 {
		t.Errorf("single multi-cell row produced a grid: %v", grids)
	}
}

func TestAlignmentDetectorEmptyPage(t *testing.T) {
	mock := providers.NewMockProvider()

	grids, err := NewAlignmentDetector(mock).Tables(context.Background(), 1)
	if err != nil {
		t.Fatalf("Tables failed: %v", err)
	}
	if len(grids) != 0 {
		t.Errorf("empty page produced grids: %v", grids)
	}
}

func TestAlignmentDetectorPropagatesProviderError(t *testing.T) {
	mock := providers.NewMockProvider()
	mock.WordsErr = errors.New("backend failed")

	if _, err := NewAlignmentDetector(mock).Tables(context.Background(), 1); err == nil {
		t.Error("expected provider error to propagate")
	}
}
