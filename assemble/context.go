package assemble

import "github.com/tsawler/structura/model"

// Context is the document-scoped section tracker: the currently active
// section and subsection names. It is created empty when a build
// starts, threaded explicitly through every page call, and mutated only
// by the paragraph scan. It is never shared as a hidden global.
type Context struct {
	Section    *string
	SubSection *string
}

// NewContext returns an empty tracker.
func NewContext() *Context {
	return &Context{}
}

// EnterSection makes name the active section and clears the active
// subsection.
func (c *Context) EnterSection(name string) {
	c.Section = &name
	c.SubSection = nil
}

// EnterSubsection makes name the active subsection. The active section
// is unchanged.
func (c *Context) EnterSubsection(name string) {
	c.SubSection = &name
}

// Stamp returns a copy of the tracker's current values for embedding in
// a content block. Blocks never hold a live reference to the tracker.
func (c *Context) Stamp() model.SectionInfo {
	return model.SectionInfo{Section: c.Section, SubSection: c.SubSection}
}
