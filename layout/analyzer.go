package layout

import (
	"sort"

	"github.com/tsawler/structura/providers"
)

// FontSizes extracts the font size of each glyph that carries one, in
// encounter order. An empty result means no heading is detectable on
// the page.
func FontSizes(chars []providers.Char) []float64 {
	var sizes []float64
	for _, c := range chars {
		if c.HasSize {
			sizes = append(sizes, c.Size)
		}
	}
	return sizes
}

// MedianFontSize returns the lower median of the given sizes: the
// element at index len/2 of the sorted list, not interpolated for even
// counts. Returns 0 for empty input.
func MedianFontSize(sizes []float64) float64 {
	if len(sizes) == 0 {
		return 0
	}
	sorted := make([]float64, len(sizes))
	copy(sorted, sizes)
	sort.Float64s(sorted)
	return sorted[len(sorted)/2]
}
