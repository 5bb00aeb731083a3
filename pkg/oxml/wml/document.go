package wml

import (
	"strings"

	"github.com/benjaminschreck/go-docx/pkg/oxml"
)

// Document is the <w:document> root of the main document part.
type Document struct{ *oxml.Element }

func newDocument(e *oxml.Element) *Document { return &Document{e} }

var (
	documentBackground = oxml.NewZeroOrOne("w:background", []string{"w:body"}, func(e *oxml.Element) *oxml.Element { return e })
	documentBody       = oxml.NewOneAndOnlyOne("w:body", newBody)
)

// NewDocument returns a <w:document> with an empty body.
func NewDocument() *Document {
	d := newDocument(oxml.NewElement("w:document"))
	d.SetAttr("xmlns:r", oxml.NamespaceURI("r"))
	d.Append(oxml.NewElement("w:body"))
	return d
}

// Body returns the document body. A document without one is invalid.
func (d *Document) Body() (*Body, error) { return documentBody.Get(d) }

// Background returns the <w:background> element, or nil.
func (d *Document) Background() *oxml.Element { return documentBackground.Get(d) }

// SectionProperties returns every <w:sectPr> in the document in order:
// those ending a section inside paragraph properties, then the body's
// final one.
func (d *Document) SectionProperties() []*SectionProperties {
	var out []*SectionProperties
	d.Iter(func(e *oxml.Element) bool {
		if e.Is("w:sectPr") {
			out = append(out, newSectionProperties(e))
		}
		return true
	})
	return out
}

// Paragraphs, tables and content controls interleave freely; sectPr
// closes the body.
var blockTags = []string{"w:p", "w:tbl", "w:sdt"}

// blockContainer implements the operations shared by every element that
// holds paragraphs and tables.
type blockContainer struct{ *oxml.Element }

var (
	blockP   = oxml.NewZeroOrMore("w:p", []string{"w:sectPr"}, newParagraph)
	blockTbl = oxml.NewZeroOrMore("w:tbl", []string{"w:sectPr"}, newTable)
)

// Paragraphs returns the direct child paragraphs.
func (b blockContainer) Paragraphs() []*Paragraph { return blockP.All(b) }

// Tables returns the direct child tables.
func (b blockContainer) Tables() []*Table { return blockTbl.All(b) }

// AddParagraph appends a new empty paragraph, before a trailing sectPr.
func (b blockContainer) AddParagraph() *Paragraph { return blockP.Add(b) }

// AddTable appends a rows x cols table with equal column widths, in twips.
func (b blockContainer) AddTable(rows, cols int, widthTwips int) *Table {
	return blockTbl.Insert(b, NewTable(rows, cols, widthTwips))
}

// Content returns the paragraphs, tables and content controls in document
// order.
func (b blockContainer) Content() []BlockItem {
	var out []BlockItem
	for _, c := range b.Children(blockTags...) {
		if item, ok := oxml.Wrap(c).(BlockItem); ok {
			out = append(out, item)
		}
	}
	return out
}

// ClearContent removes every child except a trailing sectPr.
func (b blockContainer) ClearContent() {
	for _, c := range b.Children() {
		if !c.Is("w:sectPr") {
			b.Remove(c)
		}
	}
}

// GetText returns the text of every paragraph, one per line. Table cells
// contribute their paragraphs in row order.
func (b blockContainer) GetText() string {
	var lines []string
	for _, item := range b.Content() {
		switch v := item.(type) {
		case *Paragraph:
			lines = append(lines, v.GetText())
		case *Table:
			lines = append(lines, v.GetText())
		case *StructuredDocumentTag:
			lines = append(lines, v.GetText())
		}
	}
	return strings.Join(lines, "\n")
}

// Body is <w:body>.
type Body struct {
	*oxml.Element
	blockContainer
}

func newBody(e *oxml.Element) *Body { return &Body{Element: e, blockContainer: blockContainer{e}} }

var bodySectPr = oxml.NewZeroOrOne("w:sectPr", nil, newSectionProperties)

// SectionProperties returns the final section properties, or nil.
func (b *Body) SectionProperties() *SectionProperties { return bodySectPr.Get(b) }

// GetOrAddSectionProperties returns the final section properties, adding
// an empty one when absent.
func (b *Body) GetOrAddSectionProperties() *SectionProperties { return bodySectPr.GetOrAdd(b) }

func init() {
	oxml.Register("w:document", func(e *oxml.Element) oxml.Node { return newDocument(e) })
	oxml.Register("w:body", func(e *oxml.Element) oxml.Node { return newBody(e) })
}
