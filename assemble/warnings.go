package assemble

import "fmt"

// Warning records a non-fatal problem encountered during assembly, such
// as a failed table extraction or an OCR error on a single image. The
// affected content is simply absent from the output; warnings never
// appear in the serialized document.
type Warning struct {
	Page int
	Op   string
	Err  error
}

// String formats the warning for logs.
func (w Warning) String() string {
	return fmt.Sprintf("page %d: %s: %v", w.Page, w.Op, w.Err)
}
