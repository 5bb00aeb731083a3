package docx

import (
	"fmt"
	"path"
	"strings"

	"github.com/benjaminschreck/go-docx/pkg/docxerr"
	"github.com/benjaminschreck/go-docx/pkg/opc"
	"github.com/benjaminschreck/go-docx/pkg/oxml"
	"github.com/benjaminschreck/go-docx/pkg/oxml/wml"
)

// DocumentPart is the main document part, /word/document.xml.
type DocumentPart struct {
	*opc.XMLPart
}

// LoadDocumentPart is the PartConstructor of DocumentPart.
func LoadDocumentPart(partname opc.PackURI, contentType string, blob []byte, pkg *opc.Package) (opc.Part, error) {
	xp, err := parseRoot(partname, contentType, blob, pkg, "w:document")
	if err != nil {
		return nil, err
	}
	return &DocumentPart{XMLPart: xp}, nil
}

// Document returns the <w:document> root.
func (p *DocumentPart) Document() *wml.Document {
	doc, _ := oxml.As[*wml.Document](p.Element())
	return doc
}

// Styles returns the styles part, adding a default one when the document
// has none.
func (p *DocumentPart) Styles() (*StylesPart, error) {
	part, err := p.PartRelatedBy(opc.RTStyles)
	if err != nil {
		if !docxerr.IsInvalidArgument(err) || countRels(p, opc.RTStyles) > 0 {
			return nil, err
		}
		sp := newDefaultStylesPart(p.Package())
		p.RelateTo(sp, opc.RTStyles)
		return sp, nil
	}
	sp, ok := part.(*StylesPart)
	if !ok {
		return nil, docxerr.NewInvalidXML("styles part %s has unexpected type %T", part.Partname(), part)
	}
	return sp, nil
}

// AddHeaderPart adds an empty header part related from the document and
// returns it with its rId.
func (p *DocumentPart) AddHeaderPart() (*HeaderPart, string, error) {
	partname, err := p.Package().NextPartname("/word/header%d.xml")
	if err != nil {
		return nil, "", err
	}
	hp := &HeaderPart{XMLPart: opc.NewXMLPart(partname, opc.CTWmlHeader, oxml.NewTree(wml.NewHeader()), p.Package())}
	return hp, p.RelateTo(hp, opc.RTHeader), nil
}

// AddFooterPart adds an empty footer part related from the document and
// returns it with its rId.
func (p *DocumentPart) AddFooterPart() (*FooterPart, string, error) {
	partname, err := p.Package().NextPartname("/word/footer%d.xml")
	if err != nil {
		return nil, "", err
	}
	fp := &FooterPart{XMLPart: opc.NewXMLPart(partname, opc.CTWmlFooter, oxml.NewTree(wml.NewFooter()), p.Package())}
	return fp, p.RelateTo(fp, opc.RTFooter), nil
}

// HeaderPart returns the header part related by rID.
func (p *DocumentPart) HeaderPart(rID string) (*HeaderPart, error) {
	part, err := p.relatedPart(rID)
	if err != nil {
		return nil, err
	}
	hp, ok := part.(*HeaderPart)
	if !ok {
		return nil, docxerr.NewInvalidArgument("rId", rID, "relationship does not target a header part")
	}
	return hp, nil
}

// FooterPart returns the footer part related by rID.
func (p *DocumentPart) FooterPart(rID string) (*FooterPart, error) {
	part, err := p.relatedPart(rID)
	if err != nil {
		return nil, err
	}
	fp, ok := part.(*FooterPart)
	if !ok {
		return nil, docxerr.NewInvalidArgument("rId", rID, "relationship does not target a footer part")
	}
	return fp, nil
}

// GetOrAddImagePart returns the image part holding blob and the rId
// relating it from the document. An image whose bytes already exist in
// the package is reused rather than stored twice.
func (p *DocumentPart) GetOrAddImagePart(blob []byte, filename string) (*ImagePart, string, error) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	contentType := opc.ImageContentType(ext)
	if contentType == "" {
		return nil, "", docxerr.NewInvalidArgument("filename", filename, "not a supported image type")
	}

	digest := opc.DigestBytes(blob)
	used := make(map[int]bool)
	for part := range p.Package().IterParts() {
		img, ok := part.(*ImagePart)
		if !ok {
			continue
		}
		if img.Digest() == digest {
			return img, p.RelateTo(img, opc.RTImage), nil
		}
		if n, ok := img.Partname().Idx(); ok {
			used[n] = true
		}
	}

	// images share one numbering whatever their extension
	n := 1
	for used[n] {
		n++
	}
	partname, err := opc.NewPackURI(fmt.Sprintf("/word/media/image%d.%s", n, ext))
	if err != nil {
		return nil, "", err
	}
	img := NewImagePart(partname, contentType, blob, p.Package())
	img.filename = filename
	return img, p.RelateTo(img, opc.RTImage), nil
}

func (p *DocumentPart) relatedPart(rID string) (opc.Part, error) {
	r, ok := p.Rels().Get(rID)
	if !ok {
		return nil, docxerr.NewInvalidArgument("rId", rID, "no relationship with this id")
	}
	return r.TargetPart()
}

// StylesPart holds the style definitions, /word/styles.xml.
type StylesPart struct {
	*opc.XMLPart
}

// LoadStylesPart is the PartConstructor of StylesPart.
func LoadStylesPart(partname opc.PackURI, contentType string, blob []byte, pkg *opc.Package) (opc.Part, error) {
	xp, err := parseRoot(partname, contentType, blob, pkg, "w:styles")
	if err != nil {
		return nil, err
	}
	return &StylesPart{XMLPart: xp}, nil
}

// Styles returns the <w:styles> root.
func (p *StylesPart) Styles() *wml.Styles {
	s, _ := oxml.As[*wml.Styles](p.Element())
	return s
}

// HeaderPart is a header, /word/headerN.xml.
type HeaderPart struct {
	*opc.XMLPart
}

// LoadHeaderPart is the PartConstructor of HeaderPart.
func LoadHeaderPart(partname opc.PackURI, contentType string, blob []byte, pkg *opc.Package) (opc.Part, error) {
	xp, err := parseRoot(partname, contentType, blob, pkg, "w:hdr")
	if err != nil {
		return nil, err
	}
	return &HeaderPart{XMLPart: xp}, nil
}

// Header returns the <w:hdr> root.
func (p *HeaderPart) Header() *wml.Header {
	h, _ := oxml.As[*wml.Header](p.Element())
	return h
}

// FooterPart is a footer, /word/footerN.xml.
type FooterPart struct {
	*opc.XMLPart
}

// LoadFooterPart is the PartConstructor of FooterPart.
func LoadFooterPart(partname opc.PackURI, contentType string, blob []byte, pkg *opc.Package) (opc.Part, error) {
	xp, err := parseRoot(partname, contentType, blob, pkg, "w:ftr")
	if err != nil {
		return nil, err
	}
	return &FooterPart{XMLPart: xp}, nil
}

// Footer returns the <w:ftr> root.
func (p *FooterPart) Footer() *wml.Footer {
	f, _ := oxml.As[*wml.Footer](p.Element())
	return f
}

// ImagePart is a binary image part. Its digest is kept with the bytes so
// that adding the same picture twice can reuse one part.
type ImagePart struct {
	*opc.BasePart
	digest   opc.Digest
	filename string
}

// NewImagePart returns an image part holding blob.
func NewImagePart(partname opc.PackURI, contentType string, blob []byte, pkg *opc.Package) *ImagePart {
	return &ImagePart{
		BasePart: opc.NewBasePart(partname, contentType, blob, pkg),
		digest:   opc.DigestBytes(blob),
		filename: partname.Filename(),
	}
}

// LoadImagePart is the PartConstructor of ImagePart.
func LoadImagePart(partname opc.PackURI, contentType string, blob []byte, pkg *opc.Package) (opc.Part, error) {
	return NewImagePart(partname, contentType, blob, pkg), nil
}

// SetBlob replaces the image bytes.
func (p *ImagePart) SetBlob(blob []byte) {
	p.BasePart.SetBlob(blob)
	p.digest = opc.DigestBytes(blob)
}

// Digest returns the BLAKE3 digest of the image bytes.
func (p *ImagePart) Digest() opc.Digest { return p.digest }

// Filename returns the name the image was added under, or its partname's
// final segment for a loaded image.
func (p *ImagePart) Filename() string { return p.filename }

// parseRoot parses blob and checks that its root element is tag.
func parseRoot(partname opc.PackURI, contentType string, blob []byte, pkg *opc.Package, tag string) (*opc.XMLPart, error) {
	xp, err := opc.ParseXMLPart(partname, contentType, blob, pkg)
	if err != nil {
		return nil, err
	}
	if root := xp.Element(); !root.Is(tag) {
		return nil, docxerr.NewInvalidXML("part %s: root element is %s, expected %s", partname, root.Tag(), tag)
	}
	return xp, nil
}

func countRels(p opc.Part, relType string) int {
	n := 0
	for _, r := range p.Rels().All() {
		if r.RelType() == relType {
			n++
		}
	}
	return n
}
