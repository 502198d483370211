package model

// BlockType identifies the kind of a content block.
type BlockType int

const (
	BlockTypeUnknown BlockType = iota
	BlockTypeParagraph
	BlockTypeTable
	BlockTypeChart
)

// String returns the JSON type tag for the block type.
func (bt BlockType) String() string {
	switch bt {
	case BlockTypeParagraph:
		return "paragraph"
	case BlockTypeTable:
		return "table"
	case BlockTypeChart:
		return "chart"
	default:
		return "unknown"
	}
}

// SectionInfo carries the section context a block was stamped with at
// creation time. Both fields are nil until a matching heading has been
// seen; they hold copies of the tracker's values, never live references.
type SectionInfo struct {
	Section    *string
	SubSection *string
}

// Block is the closed set of content block variants that can appear on a
// page. Only Paragraph, Table, and Chart implement it.
type Block interface {
	Type() BlockType
	Context() SectionInfo
}

// Paragraph is a run of body text.
type Paragraph struct {
	SectionInfo
	Text string
}

func (p *Paragraph) Type() BlockType      { return BlockTypeParagraph }
func (p *Paragraph) Context() SectionInfo { return p.SectionInfo }

// Table is a grid of cell strings. Rows may have different lengths;
// no rectangularity is enforced. Empty rows are dropped during assembly.
type Table struct {
	SectionInfo
	Description *string
	Data        [][]string
}

func (t *Table) Type() BlockType      { return BlockTypeTable }
func (t *Table) Context() SectionInfo { return t.SectionInfo }

// RowCount returns the number of rows in the table.
func (t *Table) RowCount() int { return len(t.Data) }

// Chart is an extracted raster image large enough to be treated as a
// figure rather than a decorative icon. Description is populated by OCR
// when enabled; ImagePath is set only when the image was persisted.
type Chart struct {
	SectionInfo
	Description *string
	Width       int
	Height      int
	ImagePath   *string
}

func (c *Chart) Type() BlockType      { return BlockTypeChart }
func (c *Chart) Context() SectionInfo { return c.SectionInfo }
