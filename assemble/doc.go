// Package assemble combines per-page primitives into the structured
// document model. It tracks the active section and subsection across
// pages, stamps every content block with a copy of that context, and
// builds each page's ordered block list: paragraphs first, then tables,
// then charts.
//
// Assembly is strictly sequential by page number. The section context
// mutated on one page is the starting context for the next, so pages
// cannot be assembled out of order.
package assemble
