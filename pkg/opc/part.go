package opc

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/benjaminschreck/go-docx/pkg/docxerr"
	"github.com/benjaminschreck/go-docx/pkg/oxml"
)

// Part is one named, typed blob of a package together with the
// relationships it owns.
type Part interface {
	Partname() PackURI
	SetPartname(PackURI)
	ContentType() string
	Package() *Package
	// Blob returns the serialized content. XML parts serialize their tree
	// on every call.
	Blob() ([]byte, error)
	Rels() *Relationships

	// RelateTo returns the rId of the relationship of relType to target,
	// adding one when needed.
	RelateTo(target Part, relType string) string
	// RelateToExternal is RelateTo for a reference outside the package.
	RelateToExternal(ref, relType string) string
	// PartRelatedBy returns the single part related by relType.
	PartRelatedBy(relType string) (Part, error)
	// RelatedParts maps rIds to their target parts.
	RelatedParts() map[string]Part
	// TargetRef returns the target reference of rID.
	TargetRef(rID string) (string, error)
	// DropRel removes the relationship rID when nothing else in the part
	// still cites it.
	DropRel(rID string)

	// AfterUnmarshal runs once all parts of a loaded package exist and
	// their relationships are wired.
	AfterUnmarshal()
	// BeforeMarshal runs on every reachable part before a save.
	BeforeMarshal()
}

// PartOwner is implemented by values that can resolve the part they live
// in, such as element wrappers handed out by a document part.
type PartOwner interface {
	Part() Part
}

// BasePart holds an opaque blob. It is the default part type and the base
// every other part type embeds.
type BasePart struct {
	partname    PackURI
	contentType string
	blob        []byte
	pkg         *Package
	rels        *Relationships
}

// NewBasePart returns a binary part.
func NewBasePart(partname PackURI, contentType string, blob []byte, pkg *Package) *BasePart {
	return &BasePart{partname: partname, contentType: contentType, blob: blob, pkg: pkg}
}

// LoadBasePart is the PartConstructor of BasePart.
func LoadBasePart(partname PackURI, contentType string, blob []byte, pkg *Package) (Part, error) {
	return NewBasePart(partname, contentType, blob, pkg), nil
}

// Partname returns the part's name in the package.
func (p *BasePart) Partname() PackURI { return p.partname }

// SetPartname renames the part. Targets of its relationships are
// re-resolved against the new base URI when serialized.
func (p *BasePart) SetPartname(u PackURI) {
	p.partname = u
	if p.rels != nil {
		p.rels.rebase(u.BaseURI())
	}
}

// ContentType returns the part's content type.
func (p *BasePart) ContentType() string { return p.contentType }

// Package returns the package the part belongs to.
func (p *BasePart) Package() *Package { return p.pkg }

// Blob returns the part's bytes.
func (p *BasePart) Blob() ([]byte, error) { return p.blob, nil }

// SetBlob replaces the part's bytes.
func (p *BasePart) SetBlob(blob []byte) { p.blob = blob }

func (p *BasePart) AfterUnmarshal() {}

func (p *BasePart) BeforeMarshal() {}

// RelatedParts maps rIds to their target parts.
func (p *BasePart) RelatedParts() map[string]Part { return p.Rels().RelatedParts() }

// Rels returns the part's relationships, creating the collection on first
// use.
func (p *BasePart) Rels() *Relationships {
	if p.rels == nil {
		p.rels = NewRelationships(p.partname.BaseURI())
	}
	return p.rels
}

// RelateTo returns the rId of the relationship of relType to target.
func (p *BasePart) RelateTo(target Part, relType string) string {
	return p.Rels().GetOrAdd(relType, target).RID()
}

// RelateToExternal returns the rId of the external relationship of
// relType to ref.
func (p *BasePart) RelateToExternal(ref, relType string) string {
	return p.Rels().GetOrAddExtRel(relType, ref)
}

// PartRelatedBy returns the single part related by relType.
func (p *BasePart) PartRelatedBy(relType string) (Part, error) {
	return p.Rels().PartWithRelType(relType)
}

// TargetRef returns the Target value of relationship rID.
func (p *BasePart) TargetRef(rID string) (string, error) {
	r, ok := p.Rels().Get(rID)
	if !ok {
		return "", errNoRel(rID)
	}
	return r.TargetRef(), nil
}

// DropRel removes relationship rID. A binary part has no content that
// could cite it, so the relationship is always removed.
func (p *BasePart) DropRel(rID string) {
	p.Rels().Remove(rID)
	logDrop(p.pkg.Logger(), p.partname, rID)
}

// XMLPart is a part whose content is an XML tree. The tree is the source
// of truth; Blob serializes it on demand.
type XMLPart struct {
	*BasePart
	tree *oxml.Tree
}

// NewXMLPart returns a part holding tree.
func NewXMLPart(partname PackURI, contentType string, tree *oxml.Tree, pkg *Package) *XMLPart {
	return &XMLPart{BasePart: NewBasePart(partname, contentType, nil, pkg), tree: tree}
}

// ParseXMLPart parses blob into a new XMLPart.
func ParseXMLPart(partname PackURI, contentType string, blob []byte, pkg *Package) (*XMLPart, error) {
	tree, err := oxml.Parse(blob)
	if err != nil {
		return nil, wrapPartError(partname, err)
	}
	return NewXMLPart(partname, contentType, tree, pkg), nil
}

// LoadXMLPart is the PartConstructor of XMLPart.
func LoadXMLPart(partname PackURI, contentType string, blob []byte, pkg *Package) (Part, error) {
	return ParseXMLPart(partname, contentType, blob, pkg)
}

// Element returns the root element of the part's tree.
func (p *XMLPart) Element() *oxml.Element { return p.tree.Root() }

// Tree returns the part's tree.
func (p *XMLPart) Tree() *oxml.Tree { return p.tree }

// Blob serializes the tree with a standalone XML declaration.
func (p *XMLPart) Blob() ([]byte, error) { return p.tree.Bytes() }

// DropRel removes relationship rID unless other elements of the tree
// still cite it. The caller's own citation counts as one, so the
// relationship goes when fewer than two citations remain. Only this
// part's tree is scanned; citations held in other parts are not seen.
func (p *XMLPart) DropRel(rID string) {
	if p.RelRefCount(rID) < 2 {
		p.Rels().Remove(rID)
		logDrop(p.pkg.Logger(), p.partname, rID)
	}
}

// RelRefCount counts the r:id, r:embed, r:link and other
// relationship-namespace attributes in the tree whose value is rID.
func (p *XMLPart) RelRefCount(rID string) int {
	return p.Element().CountAttrValue(NamespaceOfficeRelationships, rID)
}

func logDrop(logger *logrus.Logger, partname PackURI, rID string) {
	logger.WithFields(Fields{"partname": partname, "rId": rID}).Debug("dropped relationship")
}

func errNoRel(rID string) error {
	return docxerr.NewInvalidArgument("rId", rID, "no relationship with this id")
}

// wrapPartError names the part in a parse error.
func wrapPartError(partname PackURI, err error) error {
	return fmt.Errorf("part %s: %w", partname, err)
}
