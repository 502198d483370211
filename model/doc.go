// Package model defines the structured document model produced by extraction:
// a Document of ordered Pages, each holding an ordered list of content blocks
// (paragraphs, tables, and charts) tagged with the section context that was
// active when the block was created.
//
// The model serializes to a stable JSON schema and round-trips without loss,
// including null section, sub_section, and description fields.
package model
