package docx

import (
	"io"
	"strconv"

	"github.com/benjaminschreck/go-docx/pkg/docxerr"
	"github.com/benjaminschreck/go-docx/pkg/opc"
	"github.com/benjaminschreck/go-docx/pkg/oxml"
	"github.com/benjaminschreck/go-docx/pkg/oxml/simpletypes"
	"github.com/benjaminschreck/go-docx/pkg/oxml/wml"
)

// Document is a WordprocessingML document: a package together with its
// main document part.
type Document struct {
	pkg  *opc.Package
	part *DocumentPart
}

// Open opens the .docx file or unzipped package directory at path.
func Open(path string, opts ...opc.Option) (*Document, error) {
	pkg, err := opc.Open(path, withFactory(opts)...)
	if err != nil {
		return nil, err
	}
	return fromPackage(pkg)
}

// OpenReader opens a .docx archive of size bytes read from r.
func OpenReader(r io.ReaderAt, size int64, opts ...opc.Option) (*Document, error) {
	pkg, err := opc.OpenReader(r, size, withFactory(opts)...)
	if err != nil {
		return nil, err
	}
	return fromPackage(pkg)
}

// OpenBytes opens a .docx archive held in memory.
func OpenBytes(data []byte, opts ...opc.Option) (*Document, error) {
	pkg, err := opc.OpenBytes(data, withFactory(opts)...)
	if err != nil {
		return nil, err
	}
	return fromPackage(pkg)
}

// New returns an empty document: one Letter-sized section, a styles part
// with the Normal style, and core properties.
func New(opts ...opc.Option) (*Document, error) {
	pkg := opc.NewPackage(withFactory(opts)...)

	part, err := newDefaultDocumentPart(pkg)
	if err != nil {
		return nil, err
	}
	pkg.RelateTo(part, opc.RTOfficeDocument)
	if _, err := part.Styles(); err != nil {
		return nil, err
	}
	if _, err := pkg.CoreProperties(); err != nil {
		return nil, err
	}
	return &Document{pkg: pkg, part: part}, nil
}

// withFactory puts the WordprocessingML part factory ahead of opts, so a
// caller's own WithPartFactory still wins.
func withFactory(opts []opc.Option) []opc.Option {
	return append([]opc.Option{opc.WithPartFactory(NewPartFactory())}, opts...)
}

func fromPackage(pkg *opc.Package) (*Document, error) {
	main, err := pkg.MainDocumentPart()
	if err != nil {
		return nil, err
	}
	part, ok := main.(*DocumentPart)
	if !ok {
		return nil, docxerr.NewInvalidXML("main part %s is %s, not a WordprocessingML document", main.Partname(), main.ContentType())
	}
	return &Document{pkg: pkg, part: part}, nil
}

// Package returns the underlying package.
func (d *Document) Package() *opc.Package { return d.pkg }

// Part returns the main document part.
func (d *Document) Part() *DocumentPart { return d.part }

// Element returns the <w:document> root.
func (d *Document) Element() *wml.Document { return d.part.Document() }

// Body returns the document body.
func (d *Document) Body() (*wml.Body, error) { return d.Element().Body() }

// Save writes the document to path, replacing any existing file.
func (d *Document) Save(path string) error { return d.pkg.SaveFile(path) }

// SaveTo writes the document as a .docx archive to w.
func (d *Document) SaveTo(w io.Writer) error { return d.pkg.Save(w) }

// Paragraphs returns the paragraphs directly in the body.
func (d *Document) Paragraphs() ([]*wml.Paragraph, error) {
	body, err := d.Body()
	if err != nil {
		return nil, err
	}
	return body.Paragraphs(), nil
}

// Tables returns the tables directly in the body.
func (d *Document) Tables() ([]*wml.Table, error) {
	body, err := d.Body()
	if err != nil {
		return nil, err
	}
	return body.Tables(), nil
}

// AddParagraph appends a paragraph holding text. style is a paragraph
// style id; "" leaves the default style.
func (d *Document) AddParagraph(text, style string) (*wml.Paragraph, error) {
	body, err := d.Body()
	if err != nil {
		return nil, err
	}
	p := body.AddParagraph()
	if style != "" {
		if err := p.SetStyle(style); err != nil {
			return nil, err
		}
	}
	if text != "" {
		p.AddRun(text)
	}
	return p, nil
}

// AddTable appends a rows x cols table spanning the text width of the
// last section.
func (d *Document) AddTable(rows, cols int) (*wml.Table, error) {
	if rows < 0 || cols < 1 {
		return nil, docxerr.NewInvalidArgument("cols", strconv.Itoa(cols), "a table needs at least one column and no negative rows")
	}
	body, err := d.Body()
	if err != nil {
		return nil, err
	}
	return body.AddTable(rows, cols, textWidth(body.SectionProperties())), nil
}

// textWidth returns the page width between the margins of sectPr in
// twips, or that of the default page when sectPr does not say.
func textWidth(sectPr *wml.SectionProperties) int {
	width := int64(pageWidth - 2*pageMargin)
	if sectPr == nil {
		return int(width)
	}
	pgSz, pgMar := sectPr.PageSize(), sectPr.PageMargins()
	if pgSz == nil || pgMar == nil {
		return int(width)
	}
	w, err := pgSz.Width()
	if err != nil {
		return int(width)
	}
	left, errL := pgMar.Get(wml.MarginLeft)
	right, errR := pgMar.Get(wml.MarginRight)
	if errL != nil || errR != nil {
		return int(width)
	}
	if tw := (w - left - right).Twips(); tw > 0 {
		width = tw
	}
	return int(width)
}

// AddHyperlink appends a hyperlink to url at the end of p, styled with
// the Hyperlink character style.
func (d *Document) AddHyperlink(p *wml.Paragraph, url, text string) (*wml.Hyperlink, error) {
	if url == "" {
		return nil, docxerr.NewInvalidArgument("url", url, "hyperlink target must not be empty")
	}
	rID := d.part.RelateToExternal(url, opc.RTHyperlink)
	h, err := p.AddHyperlink(rID, text)
	if err != nil {
		d.dropIfUnused(rID)
		return nil, err
	}
	if err := h.SetHistory(true); err != nil {
		return nil, err
	}
	for _, r := range h.Runs() {
		if err := r.SetStyle("Hyperlink"); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// HyperlinkURL returns the target of h.
func (d *Document) HyperlinkURL(h *wml.Hyperlink) (string, error) {
	if h.ID() == "" {
		return "", docxerr.NewInvalidArgument("hyperlink", h.Anchor(), "internal anchor link has no url")
	}
	return d.part.TargetRef(h.ID())
}

// RemoveHyperlink deletes h from its paragraph, keeping its text as plain
// runs, and drops the relationship when nothing else cites it.
func (d *Document) RemoveHyperlink(h *wml.Hyperlink) error {
	rID := h.ID()
	for _, r := range h.Runs() {
		if err := r.SetStyle(""); err != nil {
			return err
		}
		h.AddPrevious(r)
	}
	if parent := h.Parent(); parent != nil {
		parent.Remove(h)
	}
	if rID != "" {
		d.dropIfUnused(rID)
	}
	return nil
}

// AddHeader returns the header of kind for the last section, adding an
// empty one when the section has none.
func (d *Document) AddHeader(kind wml.HeaderFooterType) (*wml.Header, error) {
	sectPr, err := d.sectPr()
	if err != nil {
		return nil, err
	}
	if ref := sectPr.HeaderReference(kind); ref != nil {
		rID, err := ref.RelID()
		if err != nil {
			return nil, err
		}
		hp, err := d.part.HeaderPart(rID)
		if err != nil {
			return nil, err
		}
		return hp.Header(), nil
	}

	hp, rID, err := d.part.AddHeaderPart()
	if err != nil {
		return nil, err
	}
	if _, err := sectPr.AddHeaderReference(kind, rID); err != nil {
		return nil, err
	}
	return hp.Header(), nil
}

// DropHeader removes the header of kind from the last section. The header
// part goes away with its relationship unless another section still cites
// it.
func (d *Document) DropHeader(kind wml.HeaderFooterType) error {
	sectPr, err := d.sectPr()
	if err != nil {
		return err
	}
	if rID := sectPr.RemoveHeaderReference(kind); rID != "" {
		d.dropIfUnused(rID)
	}
	return nil
}

// AddFooter is AddHeader for footers.
func (d *Document) AddFooter(kind wml.HeaderFooterType) (*wml.Footer, error) {
	sectPr, err := d.sectPr()
	if err != nil {
		return nil, err
	}
	if ref := sectPr.FooterReference(kind); ref != nil {
		rID, err := ref.RelID()
		if err != nil {
			return nil, err
		}
		fp, err := d.part.FooterPart(rID)
		if err != nil {
			return nil, err
		}
		return fp.Footer(), nil
	}

	fp, rID, err := d.part.AddFooterPart()
	if err != nil {
		return nil, err
	}
	if _, err := sectPr.AddFooterReference(kind, rID); err != nil {
		return nil, err
	}
	return fp.Footer(), nil
}

// DropFooter is DropHeader for footers.
func (d *Document) DropFooter(kind wml.HeaderFooterType) error {
	sectPr, err := d.sectPr()
	if err != nil {
		return err
	}
	if rID := sectPr.RemoveFooterReference(kind); rID != "" {
		d.dropIfUnused(rID)
	}
	return nil
}

// dropIfUnused removes rID when no element of the document cites it any
// more. Callers detach their own citation first, so unlike DropRel no
// citation is assumed to belong to the caller.
func (d *Document) dropIfUnused(rID string) {
	if d.part.RelRefCount(rID) == 0 {
		d.part.Rels().Remove(rID)
		d.pkg.Logger().WithFields(opc.Fields{"partname": d.part.Partname(), "rId": rID}).Debug("dropped relationship")
	}
}

func (d *Document) sectPr() (*wml.SectionProperties, error) {
	body, err := d.Body()
	if err != nil {
		return nil, err
	}
	return body.GetOrAddSectionProperties(), nil
}

// AddPicture appends a run holding the image in blob, displayed cx by
// cy, to p. filename decides the image type by its extension.
func (d *Document) AddPicture(p *wml.Paragraph, blob []byte, filename string, cx, cy simpletypes.Length) (*wml.Run, error) {
	if cx <= 0 || cy <= 0 {
		return nil, docxerr.NewInvalidArgument("size", strconv.FormatInt(cx.Emu(), 10)+"x"+strconv.FormatInt(cy.Emu(), 10), "picture extent must be positive")
	}
	_, rID, err := d.part.GetOrAddImagePart(blob, filename)
	if err != nil {
		return nil, err
	}
	r := p.AddRun("")
	r.AddDrawing(wml.NewInlinePicture(d.nextShapeID(), rID, filename, cx, cy))
	return r, nil
}

// nextShapeID returns one more than the largest wp:docPr id in use.
func (d *Document) nextShapeID() int {
	highest := 0
	d.part.Element().Iter(func(e *oxml.Element) bool {
		if !e.Is("wp:docPr") {
			return true
		}
		if n, err := wml.DocPrID(e); err == nil && n > highest {
			highest = n
		}
		return true
	})
	return highest + 1
}

// Styles returns the style definitions, adding a default styles part when
// the document has none.
func (d *Document) Styles() (*wml.Styles, error) {
	sp, err := d.part.Styles()
	if err != nil {
		return nil, err
	}
	return sp.Styles(), nil
}

// CoreProperties returns the document metadata part.
func (d *Document) CoreProperties() (*opc.CorePropertiesPart, error) {
	return d.pkg.CoreProperties()
}

// Text returns the text of the body, one line per paragraph.
func (d *Document) Text() (string, error) {
	body, err := d.Body()
	if err != nil {
		return "", err
	}
	return body.GetText(), nil
}

// Query evaluates an XPath expression against the main document tree.
func (d *Document) Query(expr string) ([]oxml.Match, error) {
	return oxml.Query(d.part.Element(), expr)
}
