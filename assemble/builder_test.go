package assemble

import (
	"context"
	"errors"
	"testing"

	"github.com/tsawler/structura/providers"
)

// newTestBuilder wires a builder to a single mock serving every
// provider role, with a separate mock as the table fallback.
func newTestBuilder(primary, fallback *providers.MockProvider) *Builder {
	p := Providers{
		Words:  primary,
		Text:   primary,
		Tables: primary,
		Images: primary,
	}
	// Assign only when non-nil so a nil *MockProvider becomes a nil
	// interface rather than a typed-nil FallbackTables.
	if fallback != nil {
		p.FallbackTables = fallback
	}
	return NewBuilder(p, DefaultBuilderConfig(), nil)
}

func TestBuildPageNumbering(t *testing.T) {
	mock := providers.NewMockProvider()
	for i := 1; i <= 4; i++ {
		mock.TextByPage[i] = "some body text"
	}

	doc, warnings, err := newTestBuilder(mock, nil).Build(context.Background(), 4)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	if doc.PageCount() != 4 {
		t.Fatalf("PageCount = %d, want 4", doc.PageCount())
	}
	for i, page := range doc.Pages {
		if page.Number != i+1 {
			t.Errorf("pages[%d].Number = %d, want %d", i, page.Number, i+1)
		}
	}
}

func TestBuildContextPersistsAcrossPages(t *testing.T) {
	mock := providers.NewMockProvider()

	// Page 1 ends inside "Methodology"; page 2 has no heading at all.
	mock.CharsByPage[1] = []providers.Char{{Size: 10, HasSize: true}, {Size: 10, HasSize: true}}
	mock.WordsByPage[1] = []providers.Word{{Text: "Methodology:", Top: 40, Size: 10}}
	mock.TextByPage[1] = "Methodology:\n\nWe did things."
	mock.TextByPage[2] = "Continuation on the next page with no heading."

	doc, _, err := newTestBuilder(mock, nil).Build(context.Background(), 2)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	page2 := doc.Pages[1]
	if len(page2.Content) == 0 {
		t.Fatal("page 2 has no content")
	}
	info := page2.Content[0].Context()
	if info.Section == nil || *info.Section != "Methodology:" {
		t.Errorf("page 2 first block section = %v, want Methodology:", info.Section)
	}
}

func TestBuildTableFallbackOnlyWhenPrimaryEmpty(t *testing.T) {
	primary := providers.NewMockProvider()
	fallback := providers.NewMockProvider()

	primary.TablesByPage[1] = [][][]string{{{"p"}}}
	fallback.TablesByPage[1] = [][][]string{{{"f"}}}
	fallback.TablesByPage[2] = [][][]string{{{"f2"}}}

	doc, _, err := newTestBuilder(primary, fallback).Build(context.Background(), 2)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// Page 1: primary produced a table, fallback must not be consulted.
	tables1 := doc.Pages[0].Tables()
	if len(tables1) != 1 || tables1[0].Data[0][0] != "p" {
		t.Errorf("page 1 tables = %v, want primary result", tables1)
	}
	// Page 2: primary empty, fallback result used.
	tables2 := doc.Pages[1].Tables()
	if len(tables2) != 1 || tables2[0].Data[0][0] != "f2" {
		t.Errorf("page 2 tables = %v, want fallback result", tables2)
	}
}

func TestBuildDegradesOnTableAndImageFailure(t *testing.T) {
	mock := providers.NewMockProvider()
	mock.TextByPage[1] = "body"
	mock.TablesErr = errors.New("grid detector broke")
	mock.ImagesErr = errors.New("decoder broke")

	fallback := providers.NewMockProvider()
	fallback.TablesErr = errors.New("fallback broke too")

	doc, warnings, err := newTestBuilder(mock, fallback).Build(context.Background(), 1)
	if err != nil {
		t.Fatalf("Build should degrade, not fail: %v", err)
	}

	page := doc.Pages[0]
	if len(page.Tables()) != 0 || len(page.Charts()) != 0 {
		t.Errorf("failed extraction still produced blocks: %v", page.Content)
	}
	if len(page.Paragraphs()) != 1 {
		t.Errorf("paragraphs lost during degradation: %v", page.Content)
	}
	if len(warnings) != 3 {
		t.Errorf("expected 3 warnings (tables, fallback, images), got %v", warnings)
	}
}

func TestBuildFatalOnTextFailure(t *testing.T) {
	mock := providers.NewMockProvider()
	mock.TextErr = errors.New("document unreadable")

	_, _, err := newTestBuilder(mock, nil).Build(context.Background(), 3)
	if err == nil {
		t.Fatal("expected fatal error, got nil")
	}
}

func TestBuildHonorsCancellation(t *testing.T) {
	mock := providers.NewMockProvider()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := newTestBuilder(mock, nil).Build(ctx, 5)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Build error = %v, want context.Canceled", err)
	}
}

// End-to-end: the heading paragraph opens the section and the following
// body paragraph inherits it.
func TestBuildEndToEndScenario(t *testing.T) {
	mock := providers.NewMockProvider()
	mock.CharsByPage[1] = []providers.Char{
		{Size: 10, HasSize: true}, {Size: 10, HasSize: true}, {Size: 10, HasSize: true},
	}
	mock.WordsByPage[1] = []providers.Word{
		{Text: "1.", Top: 40, Size: 10},
		{Text: "Introduction", Top: 40, Size: 10},
	}
	mock.TextByPage[1] = "1. Introduction\n\nThis is body text."

	doc, _, err := newTestBuilder(mock, nil).Build(context.Background(), 1)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	paras := doc.Pages[0].Paragraphs()
	if len(paras) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(paras))
	}
	if paras[0].Section == nil || *paras[0].Section != "1. Introduction" {
		t.Errorf("first paragraph section = %v, want 1. Introduction", paras[0].Section)
	}
	if paras[1].Section == nil || *paras[1].Section != "1. Introduction" {
		t.Errorf("second paragraph section = %v, want 1. Introduction", paras[1].Section)
	}
	if paras[1].Text != "This is body text." {
		t.Errorf("second paragraph text = %q", paras[1].Text)
	}
}
