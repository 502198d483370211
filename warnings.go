package structura

import (
	"strings"

	"github.com/tsawler/structura/assemble"
)

// Warning is a non-fatal problem encountered during extraction. The
// affected content is absent from the output; warnings never appear in
// the serialized document.
type Warning = assemble.Warning

// FormatWarnings renders warnings one per line for logging.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
