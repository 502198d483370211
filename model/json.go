package model

import (
	"encoding/json"
	"fmt"
)

// The wire schema keeps one fixed field set per block type. Nullable fields
// are emitted explicitly as null rather than omitted so the output is
// structurally stable regardless of content.

type documentJSON struct {
	Pages []*Page `json:"pages"`
}

type pageJSON struct {
	PageNumber int               `json:"page_number"`
	Content    []json.RawMessage `json:"content"`
}

type paragraphJSON struct {
	Type       string  `json:"type"`
	Section    *string `json:"section"`
	SubSection *string `json:"sub_section"`
	Text       string  `json:"text"`
}

type tableJSON struct {
	Type        string     `json:"type"`
	Section     *string    `json:"section"`
	SubSection  *string    `json:"sub_section"`
	Description *string    `json:"description"`
	TableData   [][]string `json:"table_data"`
}

type chartJSON struct {
	Type        string  `json:"type"`
	Section     *string `json:"section"`
	SubSection  *string `json:"sub_section"`
	Description *string `json:"description"`
	Dimensions  [2]int  `json:"dimensions"`
	ImagePath   *string `json:"image_path"`
}

// MarshalJSON serializes the document to the output schema.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(documentJSON{Pages: d.Pages})
}

// UnmarshalJSON restores a document from the output schema.
func (d *Document) UnmarshalJSON(data []byte) error {
	var dj documentJSON
	if err := json.Unmarshal(data, &dj); err != nil {
		return err
	}
	d.Pages = dj.Pages
	if d.Pages == nil {
		d.Pages = make([]*Page, 0)
	}
	return nil
}

// MarshalIndent serializes the document to the output schema with
// two-space indentation, suitable for writing to a file.
func (d *Document) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// MarshalJSON serializes the page with each block tagged by its type.
func (p *Page) MarshalJSON() ([]byte, error) {
	content := make([]json.RawMessage, 0, len(p.Content))
	for _, b := range p.Content {
		raw, err := marshalBlock(b)
		if err != nil {
			return nil, err
		}
		content = append(content, raw)
	}
	return json.Marshal(pageJSON{PageNumber: p.Number, Content: content})
}

// UnmarshalJSON restores a page, dispatching each content entry on its
// "type" tag.
func (p *Page) UnmarshalJSON(data []byte) error {
	var pj pageJSON
	if err := json.Unmarshal(data, &pj); err != nil {
		return err
	}
	p.Number = pj.PageNumber
	p.Content = make([]Block, 0, len(pj.Content))
	for _, raw := range pj.Content {
		b, err := unmarshalBlock(raw)
		if err != nil {
			return err
		}
		p.Content = append(p.Content, b)
	}
	return nil
}

func marshalBlock(b Block) ([]byte, error) {
	switch v := b.(type) {
	case *Paragraph:
		return json.Marshal(paragraphJSON{
			Type:       v.Type().String(),
			Section:    v.Section,
			SubSection: v.SubSection,
			Text:       v.Text,
		})
	case *Table:
		return json.Marshal(tableJSON{
			Type:        v.Type().String(),
			Section:     v.Section,
			SubSection:  v.SubSection,
			Description: v.Description,
			TableData:   v.Data,
		})
	case *Chart:
		return json.Marshal(chartJSON{
			Type:        v.Type().String(),
			Section:     v.Section,
			SubSection:  v.SubSection,
			Description: v.Description,
			Dimensions:  [2]int{v.Width, v.Height},
			ImagePath:   v.ImagePath,
		})
	default:
		return nil, fmt.Errorf("unknown block type %T", b)
	}
}

func unmarshalBlock(raw json.RawMessage) (Block, error) {
	var tag struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, err
	}

	switch tag.Type {
	case "paragraph":
		var pj paragraphJSON
		if err := json.Unmarshal(raw, &pj); err != nil {
			return nil, err
		}
		return &Paragraph{
			SectionInfo: SectionInfo{Section: pj.Section, SubSection: pj.SubSection},
			Text:        pj.Text,
		}, nil
	case "table":
		var tj tableJSON
		if err := json.Unmarshal(raw, &tj); err != nil {
			return nil, err
		}
		return &Table{
			SectionInfo: SectionInfo{Section: tj.Section, SubSection: tj.SubSection},
			Description: tj.Description,
			Data:        tj.TableData,
		}, nil
	case "chart":
		var cj chartJSON
		if err := json.Unmarshal(raw, &cj); err != nil {
			return nil, err
		}
		return &Chart{
			SectionInfo: SectionInfo{Section: cj.Section, SubSection: cj.SubSection},
			Description: cj.Description,
			Width:       cj.Dimensions[0],
			Height:      cj.Dimensions[1],
			ImagePath:   cj.ImagePath,
		}, nil
	default:
		return nil, fmt.Errorf("unknown block type %q", tag.Type)
	}
}
