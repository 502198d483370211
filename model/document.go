package model

// Document represents a fully extracted document: an ordered sequence of
// pages numbered 1..N, matching input order.
type Document struct {
	Pages []*Page
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{Pages: make([]*Page, 0)}
}

// AddPage appends a page to the document.
func (d *Document) AddPage(p *Page) {
	d.Pages = append(d.Pages, p)
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Page is a single page's ordered content. Within Content, paragraphs come
// first, then tables, then charts; this reflects assembly order, not visual
// position on the page.
type Page struct {
	Number  int // 1-indexed page number
	Content []Block
}

// NewPage creates an empty page with the given 1-indexed number.
func NewPage(number int) *Page {
	return &Page{
		Number:  number,
		Content: make([]Block, 0),
	}
}

// AddBlock appends a content block to the page.
func (p *Page) AddBlock(b Block) {
	p.Content = append(p.Content, b)
}

// Paragraphs returns the paragraph blocks on the page in order.
func (p *Page) Paragraphs() []*Paragraph {
	var out []*Paragraph
	for _, b := range p.Content {
		if para, ok := b.(*Paragraph); ok {
			out = append(out, para)
		}
	}
	return out
}

// Tables returns the table blocks on the page in order.
func (p *Page) Tables() []*Table {
	var out []*Table
	for _, b := range p.Content {
		if t, ok := b.(*Table); ok {
			out = append(out, t)
		}
	}
	return out
}

// Charts returns the chart blocks on the page in order.
func (p *Page) Charts() []*Chart {
	var out []*Chart
	for _, b := range p.Content {
		if c, ok := b.(*Chart); ok {
			out = append(out, c)
		}
	}
	return out
}
