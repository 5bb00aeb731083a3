package wml

import (
	"github.com/benjaminschreck/go-docx/pkg/oxml"
	"github.com/benjaminschreck/go-docx/pkg/oxml/simpletypes"
)

var sectPrSeq = oxml.NewSequence(
	"w:headerReference", "w:footerReference", "w:footnotePr", "w:endnotePr",
	"w:type", "w:pgSz", "w:pgMar", "w:paperSrc", "w:pgBorders",
	"w:lnNumType", "w:pgNumType", "w:cols", "w:formProt", "w:vAlign",
	"w:noEndnote", "w:titlePg", "w:textDirection", "w:bidi", "w:rtlGutter",
	"w:docGrid", "w:printerSettings", "w:sectPrChange",
)

// SectionProperties is <w:sectPr>.
type SectionProperties struct{ *oxml.Element }

func newSectionProperties(e *oxml.Element) *SectionProperties { return &SectionProperties{e} }

var (
	sectPrHeaderRef = oxml.NewZeroOrMore("w:headerReference", sectPrSeq.After("w:headerReference"), newHeaderFooterReference)
	sectPrFooterRef = oxml.NewZeroOrMore("w:footerReference", sectPrSeq.After("w:footerReference"), newHeaderFooterReference)
	sectPrType      = oxml.NewZeroOrOne("w:type", sectPrSeq.After("w:type"), func(e *oxml.Element) *oxml.Element { return e })
	sectPrPgSz      = oxml.NewZeroOrOne("w:pgSz", sectPrSeq.After("w:pgSz"), newPageSize)
	sectPrPgMar     = oxml.NewZeroOrOne("w:pgMar", sectPrSeq.After("w:pgMar"), newPageMargins)
	sectPrTitlePg   = oxml.NewZeroOrOne("w:titlePg", sectPrSeq.After("w:titlePg"), newOnOff)
)

// SectionStart is ST_SectionMark.
type SectionStart int

// Section start types.
const (
	SectionNewPage SectionStart = iota
	SectionContinuous
	SectionNewColumn
	SectionEvenPage
	SectionOddPage
)

var stSectionMark = simpletypes.NewEnum("ST_SectionMark",
	simpletypes.EnumMember[SectionStart]{Value: SectionNewPage, XML: "nextPage", Omit: true},
	simpletypes.EnumMember[SectionStart]{Value: SectionContinuous, XML: "continuous"},
	simpletypes.EnumMember[SectionStart]{Value: SectionNewColumn, XML: "nextColumn"},
	simpletypes.EnumMember[SectionStart]{Value: SectionEvenPage, XML: "evenPage"},
	simpletypes.EnumMember[SectionStart]{Value: SectionOddPage, XML: "oddPage"},
)

var sectTypeVal = oxml.NewOptionalAttribute[SectionStart]("w:val", stSectionMark, SectionNewPage)

// StartType returns how the section starts; new page when unset.
func (s *SectionProperties) StartType() (SectionStart, error) {
	t := sectPrType.Get(s)
	if t == nil {
		return SectionNewPage, nil
	}
	return sectTypeVal.Get(t)
}

// SetStartType sets how the section starts. SectionNewPage removes
// <w:type>.
func (s *SectionProperties) SetStartType(v SectionStart) error {
	if v == SectionNewPage {
		sectPrType.Remove(s)
		return nil
	}
	return sectTypeVal.Set(sectPrType.GetOrAdd(s), v)
}

// PageSize returns <w:pgSz>, or nil.
func (s *SectionProperties) PageSize() *PageSize { return sectPrPgSz.Get(s) }

// GetOrAddPageSize returns <w:pgSz>, adding it when absent.
func (s *SectionProperties) GetOrAddPageSize() *PageSize { return sectPrPgSz.GetOrAdd(s) }

// PageMargins returns <w:pgMar>, or nil.
func (s *SectionProperties) PageMargins() *PageMargins { return sectPrPgMar.Get(s) }

// GetOrAddPageMargins returns <w:pgMar>, adding it when absent.
func (s *SectionProperties) GetOrAddPageMargins() *PageMargins { return sectPrPgMar.GetOrAdd(s) }

// TitlePage reports whether the first page has its own header and footer.
func (s *SectionProperties) TitlePage() (bool, error) {
	v, err := getOnOff(s, sectPrTitlePg)
	if err != nil || v == nil {
		return false, err
	}
	return *v, nil
}

// SetTitlePage sets the distinct-first-page flag; false removes it.
func (s *SectionProperties) SetTitlePage(v bool) error {
	if !v {
		sectPrTitlePg.Remove(s)
		return nil
	}
	return setOnOff(s, sectPrTitlePg, &v)
}

// HeaderReferences returns the section's header references.
func (s *SectionProperties) HeaderReferences() []*HeaderFooterReference {
	return sectPrHeaderRef.All(s)
}

// FooterReferences returns the section's footer references.
func (s *SectionProperties) FooterReferences() []*HeaderFooterReference {
	return sectPrFooterRef.All(s)
}

// HeaderReference returns the header reference of kind, or nil.
func (s *SectionProperties) HeaderReference(kind HeaderFooterType) *HeaderFooterReference {
	return findReference(s.HeaderReferences(), kind)
}

// FooterReference returns the footer reference of kind, or nil.
func (s *SectionProperties) FooterReference(kind HeaderFooterType) *HeaderFooterReference {
	return findReference(s.FooterReferences(), kind)
}

// AddHeaderReference adds a header reference of kind citing rID.
func (s *SectionProperties) AddHeaderReference(kind HeaderFooterType, rID string) (*HeaderFooterReference, error) {
	ref := sectPrHeaderRef.Add(s)
	return ref, ref.set(kind, rID)
}

// AddFooterReference adds a footer reference of kind citing rID.
func (s *SectionProperties) AddFooterReference(kind HeaderFooterType, rID string) (*HeaderFooterReference, error) {
	ref := sectPrFooterRef.Add(s)
	return ref, ref.set(kind, rID)
}

// RemoveHeaderReference removes the header reference of kind and returns
// the rId it cited, or "" when there was none.
func (s *SectionProperties) RemoveHeaderReference(kind HeaderFooterType) string {
	return removeReference(s, s.HeaderReference(kind))
}

// RemoveFooterReference removes the footer reference of kind and returns
// the rId it cited.
func (s *SectionProperties) RemoveFooterReference(kind HeaderFooterType) string {
	return removeReference(s, s.FooterReference(kind))
}

func findReference(refs []*HeaderFooterReference, kind HeaderFooterType) *HeaderFooterReference {
	for _, ref := range refs {
		if k, err := ref.Type(); err == nil && k == kind {
			return ref
		}
	}
	return nil
}

func removeReference(s *SectionProperties, ref *HeaderFooterReference) string {
	if ref == nil {
		return ""
	}
	rID, _ := ref.RelID()
	s.Remove(ref)
	return rID
}

// HeaderFooterType is ST_HdrFtr.
type HeaderFooterType int

// Header and footer kinds.
const (
	HeaderFooterDefault HeaderFooterType = iota
	HeaderFooterEven
	HeaderFooterFirst
)

var stHdrFtr = simpletypes.NewEnum("ST_HdrFtr",
	simpletypes.EnumMember[HeaderFooterType]{Value: HeaderFooterDefault, XML: "default"},
	simpletypes.EnumMember[HeaderFooterType]{Value: HeaderFooterEven, XML: "even"},
	simpletypes.EnumMember[HeaderFooterType]{Value: HeaderFooterFirst, XML: "first"},
)

// HeaderFooterReference is <w:headerReference> or <w:footerReference>.
type HeaderFooterReference struct{ *oxml.Element }

func newHeaderFooterReference(e *oxml.Element) *HeaderFooterReference {
	return &HeaderFooterReference{e}
}

var (
	hdrFtrRefType = oxml.NewRequiredAttribute[HeaderFooterType]("w:type", stHdrFtr)
	hdrFtrRefID   = oxml.NewRequiredAttribute[string]("r:id", simpletypes.RelID)
)

// Type returns w:type.
func (r *HeaderFooterReference) Type() (HeaderFooterType, error) { return hdrFtrRefType.Get(r) }

// RelID returns the r:id of the header or footer part.
func (r *HeaderFooterReference) RelID() (string, error) { return hdrFtrRefID.Get(r) }

func (r *HeaderFooterReference) set(kind HeaderFooterType, rID string) error {
	if err := hdrFtrRefType.Set(r, kind); err != nil {
		return err
	}
	return hdrFtrRefID.Set(r, rID)
}

// Orientation is ST_PageOrientation.
type Orientation int

// Page orientations.
const (
	OrientPortrait Orientation = iota
	OrientLandscape
)

var stPageOrientation = simpletypes.NewEnum("ST_PageOrientation",
	simpletypes.EnumMember[Orientation]{Value: OrientPortrait, XML: "portrait", Omit: true},
	simpletypes.EnumMember[Orientation]{Value: OrientLandscape, XML: "landscape"},
)

// PageSize is <w:pgSz>.
type PageSize struct{ *oxml.Element }

func newPageSize(e *oxml.Element) *PageSize { return &PageSize{e} }

var (
	pgSzW      = oxml.NewOptionalAttribute[simpletypes.Length]("w:w", simpletypes.TwipsMeasure, 0)
	pgSzH      = oxml.NewOptionalAttribute[simpletypes.Length]("w:h", simpletypes.TwipsMeasure, 0)
	pgSzOrient = oxml.NewOptionalAttribute[Orientation]("w:orient", stPageOrientation, OrientPortrait)
)

// Width returns the page width.
func (p *PageSize) Width() (simpletypes.Length, error) { return pgSzW.Get(p) }

// SetWidth sets the page width.
func (p *PageSize) SetWidth(v simpletypes.Length) error { return pgSzW.Set(p, v) }

// Height returns the page height.
func (p *PageSize) Height() (simpletypes.Length, error) { return pgSzH.Get(p) }

// SetHeight sets the page height.
func (p *PageSize) SetHeight(v simpletypes.Length) error { return pgSzH.Set(p, v) }

// Orientation returns the page orientation.
func (p *PageSize) Orientation() (Orientation, error) { return pgSzOrient.Get(p) }

// SetOrientation sets the page orientation.
func (p *PageSize) SetOrientation(v Orientation) error { return pgSzOrient.Set(p, v) }

// PageMargins is <w:pgMar>.
type PageMargins struct{ *oxml.Element }

func newPageMargins(e *oxml.Element) *PageMargins { return &PageMargins{e} }

// Margin names the attributes of <w:pgMar>.
type Margin string

// Page margins.
const (
	MarginTop    Margin = "w:top"
	MarginRight  Margin = "w:right"
	MarginBottom Margin = "w:bottom"
	MarginLeft   Margin = "w:left"
	MarginHeader Margin = "w:header"
	MarginFooter Margin = "w:footer"
	MarginGutter Margin = "w:gutter"
)

func marginAttr(m Margin) oxml.OptionalAttribute[simpletypes.Length] {
	conv := simpletypes.TwipsMeasure
	if m == MarginTop || m == MarginBottom {
		conv = simpletypes.SignedTwipsMeasure
	}
	return oxml.NewOptionalAttribute[simpletypes.Length](string(m), conv, 0)
}

// Get returns one margin.
func (p *PageMargins) Get(m Margin) (simpletypes.Length, error) { return marginAttr(m).Get(p) }

// Set sets one margin.
func (p *PageMargins) Set(m Margin, v simpletypes.Length) error { return marginAttr(m).Set(p, v) }

// Header is the <w:hdr> root of a header part.
type Header struct {
	*oxml.Element
	blockContainer
}

func newHeader(e *oxml.Element) *Header { return &Header{Element: e, blockContainer: blockContainer{e}} }

// Footer is the <w:ftr> root of a footer part.
type Footer struct {
	*oxml.Element
	blockContainer
}

func newFooter(e *oxml.Element) *Footer { return &Footer{Element: e, blockContainer: blockContainer{e}} }

// NewHeader returns a <w:hdr> holding one empty paragraph.
func NewHeader() *Header {
	h := newHeader(oxml.NewElement("w:hdr"))
	h.SetAttr("xmlns:r", oxml.NamespaceURI("r"))
	h.AddParagraph()
	return h
}

// NewFooter returns a <w:ftr> holding one empty paragraph.
func NewFooter() *Footer {
	f := newFooter(oxml.NewElement("w:ftr"))
	f.SetAttr("xmlns:r", oxml.NamespaceURI("r"))
	f.AddParagraph()
	return f
}

func init() {
	oxml.Register("w:sectPr", func(e *oxml.Element) oxml.Node { return newSectionProperties(e) })
	oxml.Register("w:pgSz", func(e *oxml.Element) oxml.Node { return newPageSize(e) })
	oxml.Register("w:pgMar", func(e *oxml.Element) oxml.Node { return newPageMargins(e) })
	oxml.Register("w:headerReference", func(e *oxml.Element) oxml.Node { return newHeaderFooterReference(e) })
	oxml.Register("w:footerReference", func(e *oxml.Element) oxml.Node { return newHeaderFooterReference(e) })
	oxml.Register("w:hdr", func(e *oxml.Element) oxml.Node { return newHeader(e) })
	oxml.Register("w:ftr", func(e *oxml.Element) oxml.Node { return newFooter(e) })
}
