// Package structura converts raw per-page document primitives into a
// hierarchical, section-aware structured document model serialized as
// nested JSON.
//
// Basic usage:
//
//	doc, warnings, err := structura.Open("report.pdf").Extract(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", structura.FormatWarnings(warnings))
//	}
//
// With options:
//
//	err := structura.Open("report.pdf").
//	    WithOCR().
//	    ImageDir("extracted_images").
//	    ExtractToFile(ctx, "report.json")
//
// For advanced use cases the lower-level assemble, layout, and reader
// packages are also available.
package structura

// Open prepares an Extractor for the PDF at path. The file is not
// touched until a terminal operation runs.
//
// Example:
//
//	doc, warnings, err := structura.Open("report.pdf").Extract(ctx)
func Open(path string) *Extractor {
	return &Extractor{
		filename: path,
		options:  defaultOptions(),
	}
}

// FromBackends creates an Extractor over explicit provider
// implementations instead of a file. This is how tests plug in
// deterministic doubles, and how callers reuse a backend across runs.
func FromBackends(b Backends) *Extractor {
	return &Extractor{
		backends: &b,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
