// Package layout analyzes page layout from positioned word primitives.
// It computes per-page font-size statistics, groups words into visual
// lines by vertical proximity, and classifies lines as section or
// subsection headings using an ordered set of independent heuristic
// rules with a fixed resolution step.
//
// Classification is approximate and rule-based. It combines font-size,
// numbering, casing, and punctuation signals; it does not attempt any
// semantic understanding of the text.
package layout
