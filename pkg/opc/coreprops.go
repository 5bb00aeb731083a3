package opc

import (
	"strconv"
	"strings"
	"time"

	"github.com/benjaminschreck/go-docx/pkg/docxerr"
	"github.com/benjaminschreck/go-docx/pkg/oxml"
)

// CorePropertiesURI is the conventional partname of the core properties.
const CorePropertiesURI PackURI = "/docProps/core.xml"

// Child elements of cp:coreProperties in schema order.
var corePropsOrder = []string{
	"cp:category", "cp:contentStatus", "dcterms:created", "dc:creator",
	"dc:description", "dc:identifier", "cp:keywords", "dc:language",
	"cp:lastModifiedBy", "cp:lastPrinted", "dcterms:modified",
	"cp:revision", "dc:subject", "dc:title", "cp:version",
}

// Layouts accepted when reading W3CDTF dates, most specific first.
var w3cdtfLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02",
	"2006-01",
	"2006",
}

// CorePropertiesPart is the Dublin Core metadata part of a package.
type CorePropertiesPart struct {
	*XMLPart
}

// LoadCorePropertiesPart is the PartConstructor of CorePropertiesPart.
func LoadCorePropertiesPart(partname PackURI, contentType string, blob []byte, pkg *Package) (Part, error) {
	xp, err := ParseXMLPart(partname, contentType, blob, pkg)
	if err != nil {
		return nil, err
	}
	if !xp.Element().Is("cp:coreProperties") {
		return nil, wrapPartError(partname, docxerr.NewInvalidXML("unexpected root element %s", xp.Element().Tag()))
	}
	return &CorePropertiesPart{XMLPart: xp}, nil
}

// NewCorePropertiesPart returns a core properties part with the title
// "Word Document", the creator "go-docx", revision 1 and the modification
// time set to now.
func NewCorePropertiesPart(pkg *Package) *CorePropertiesPart {
	root := oxml.NewElement("cp:coreProperties",
		"xmlns:dc", oxml.NamespaceURI("dc"),
		"xmlns:dcterms", oxml.NamespaceURI("dcterms"),
		"xmlns:dcmitype", oxml.NamespaceURI("dcmitype"),
		"xmlns:xsi", oxml.NamespaceURI("xsi"),
	)
	cp := &CorePropertiesPart{
		XMLPart: NewXMLPart(CorePropertiesURI, CTOpcCoreProperties, oxml.NewTree(root), pkg),
	}
	cp.SetTitle("Word Document")
	cp.SetCreator("go-docx")
	cp.SetRevision(1)
	cp.SetModified(time.Now())
	return cp
}

func (cp *CorePropertiesPart) text(tag string) string {
	if el := cp.Element().FirstChild(tag); el != nil {
		return el.Text()
	}
	return ""
}

func (cp *CorePropertiesPart) setText(tag, value string) {
	el := cp.Element().GetOrAddChild(tag, successorsOf(tag), nil)
	el.SetText(value)
}

func successorsOf(tag string) []string {
	for i, t := range corePropsOrder {
		if t == tag {
			return corePropsOrder[i+1:]
		}
	}
	return nil
}

// Title returns dc:title.
func (cp *CorePropertiesPart) Title() string { return cp.text("dc:title") }

// SetTitle sets dc:title.
func (cp *CorePropertiesPart) SetTitle(v string) { cp.setText("dc:title", v) }

func (cp *CorePropertiesPart) Subject() string     { return cp.text("dc:subject") }
func (cp *CorePropertiesPart) SetSubject(v string) { cp.setText("dc:subject", v) }

func (cp *CorePropertiesPart) Creator() string     { return cp.text("dc:creator") }
func (cp *CorePropertiesPart) SetCreator(v string) { cp.setText("dc:creator", v) }

func (cp *CorePropertiesPart) Keywords() string     { return cp.text("cp:keywords") }
func (cp *CorePropertiesPart) SetKeywords(v string) { cp.setText("cp:keywords", v) }

func (cp *CorePropertiesPart) Description() string     { return cp.text("dc:description") }
func (cp *CorePropertiesPart) SetDescription(v string) { cp.setText("dc:description", v) }

func (cp *CorePropertiesPart) LastModifiedBy() string     { return cp.text("cp:lastModifiedBy") }
func (cp *CorePropertiesPart) SetLastModifiedBy(v string) { cp.setText("cp:lastModifiedBy", v) }

func (cp *CorePropertiesPart) Category() string     { return cp.text("cp:category") }
func (cp *CorePropertiesPart) SetCategory(v string) { cp.setText("cp:category", v) }

// Revision returns cp:revision, or 0 when it is absent or not a positive
// integer.
func (cp *CorePropertiesPart) Revision() int {
	n, err := strconv.Atoi(strings.TrimSpace(cp.text("cp:revision")))
	if err != nil || n < 1 {
		return 0
	}
	return n
}

// SetRevision sets cp:revision. It must be positive.
func (cp *CorePropertiesPart) SetRevision(n int) error {
	if n < 1 {
		return docxerr.NewInvalidArgument("revision", strconv.Itoa(n), "must be a positive integer")
	}
	cp.setText("cp:revision", strconv.Itoa(n))
	return nil
}

// Created returns dcterms:created. ok is false when it is absent or
// unparseable.
func (cp *CorePropertiesPart) Created() (t time.Time, ok bool) {
	return parseW3CDTF(cp.text("dcterms:created"))
}

// SetCreated sets dcterms:created.
func (cp *CorePropertiesPart) SetCreated(t time.Time) { cp.setDate("dcterms:created", t) }

// Modified returns dcterms:modified.
func (cp *CorePropertiesPart) Modified() (t time.Time, ok bool) {
	return parseW3CDTF(cp.text("dcterms:modified"))
}

// SetModified sets dcterms:modified.
func (cp *CorePropertiesPart) SetModified(t time.Time) { cp.setDate("dcterms:modified", t) }

func (cp *CorePropertiesPart) setDate(tag string, t time.Time) {
	el := cp.Element().GetOrAddChild(tag, successorsOf(tag), nil)
	el.SetAttr("xsi:type", "dcterms:W3CDTF")
	el.SetText(t.UTC().Truncate(time.Second).Format("2006-01-02T15:04:05Z"))
}

func parseW3CDTF(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range w3cdtfLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
