package opc

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/benjaminschreck/go-docx/pkg/docxerr"
	"github.com/benjaminschreck/go-docx/pkg/oxml"
)

// Relationship is one edge of the package graph: from the Part or Package
// owning it to a target Part, or to an external resource.
type Relationship struct {
	rID       string
	relType   string
	baseURI   string
	targetRef string
	target    Part
	external  bool
}

// RID returns the relationship id, such as "rId3".
func (r *Relationship) RID() string { return r.rID }

// RelType returns the relationship type URI.
func (r *Relationship) RelType() string { return r.relType }

// IsExternal reports whether the target lies outside the package.
func (r *Relationship) IsExternal() bool { return r.external }

// TargetPart returns the target part. External relationships have none.
func (r *Relationship) TargetPart() (Part, error) {
	if r.external {
		return nil, docxerr.NewInvalidArgument("rId", r.rID, "target of an external relationship is not a part")
	}
	return r.target, nil
}

// TargetRef returns the Target attribute value: the literal reference of
// an external relationship, or the target partname relative to the
// source's base URI.
func (r *Relationship) TargetRef() string {
	if r.external {
		return r.targetRef
	}
	return r.target.Partname().RelativeRef(r.baseURI)
}

// Relationships is the collection of relationships owned by one part or by
// the package.
type Relationships struct {
	baseURI string
	rels    map[string]*Relationship
	order   []string
	// used holds every rId ever loaded or added here; they are never
	// handed out again even after removal.
	used map[string]bool
}

// NewRelationships returns an empty collection whose targets resolve
// against baseURI.
func NewRelationships(baseURI string) *Relationships {
	return &Relationships{
		baseURI: baseURI,
		rels:    make(map[string]*Relationship),
		used:    make(map[string]bool),
	}
}

// Len returns the number of relationships.
func (rs *Relationships) Len() int { return len(rs.order) }

// Get returns the relationship with rID.
func (rs *Relationships) Get(rID string) (*Relationship, bool) {
	r, ok := rs.rels[rID]
	return r, ok
}

// All returns the relationships in the order they were loaded or added.
func (rs *Relationships) All() []*Relationship {
	out := make([]*Relationship, 0, len(rs.order))
	for _, id := range rs.order {
		out = append(out, rs.rels[id])
	}
	return out
}

// Load adds a relationship read from a package. The rId is taken as is.
func (rs *Relationships) Load(rID, relType, targetRef string, target Part, external bool) (*Relationship, error) {
	if _, dup := rs.rels[rID]; dup {
		return nil, docxerr.NewInvalidXML("duplicate relationship id %q", rID)
	}
	if !external && target == nil {
		return nil, docxerr.NewInvalidArgument("target", targetRef, "internal relationship needs a target part")
	}
	return rs.add(&Relationship{
		rID:       rID,
		relType:   relType,
		baseURI:   rs.baseURI,
		targetRef: targetRef,
		target:    target,
		external:  external,
	}), nil
}

func (rs *Relationships) add(r *Relationship) *Relationship {
	rs.rels[r.rID] = r
	rs.order = append(rs.order, r.rID)
	rs.used[r.rID] = true
	return r
}

// GetOrAdd returns the relationship of relType to target, adding one with
// a fresh rId when none exists.
func (rs *Relationships) GetOrAdd(relType string, target Part) *Relationship {
	for _, r := range rs.All() {
		if !r.external && r.relType == relType && r.target == target {
			return r
		}
	}
	return rs.add(&Relationship{
		rID:     rs.nextRID(),
		relType: relType,
		baseURI: rs.baseURI,
		target:  target,
	})
}

// GetOrAddExtRel returns the rId of the external relationship of relType
// to ref, adding one when none exists.
func (rs *Relationships) GetOrAddExtRel(relType, ref string) string {
	for _, r := range rs.All() {
		if r.external && r.relType == relType && r.targetRef == ref {
			return r.rID
		}
	}
	return rs.add(&Relationship{
		rID:       rs.nextRID(),
		relType:   relType,
		baseURI:   rs.baseURI,
		targetRef: ref,
		external:  true,
	}).rID
}

// Remove deletes the relationship with rID. Remaining rIds are unchanged.
func (rs *Relationships) Remove(rID string) {
	if _, ok := rs.rels[rID]; !ok {
		return
	}
	delete(rs.rels, rID)
	for i, id := range rs.order {
		if id == rID {
			rs.order = append(rs.order[:i], rs.order[i+1:]...)
			break
		}
	}
}

func (rs *Relationships) rebase(baseURI string) {
	rs.baseURI = baseURI
	for _, r := range rs.rels {
		r.baseURI = baseURI
	}
}

// nextRID returns the lowest "rIdN" not used in this collection so far.
func (rs *Relationships) nextRID() string {
	for n := 1; ; n++ {
		id := "rId" + strconv.Itoa(n)
		if !rs.used[id] {
			return id
		}
	}
}

// PartWithRelType returns the single part related by relType. It fails
// when there is none, or more than one.
func (rs *Relationships) PartWithRelType(relType string) (Part, error) {
	var found Part
	for _, r := range rs.All() {
		if r.external || r.relType != relType {
			continue
		}
		if found != nil {
			return nil, docxerr.NewInvalidArgument("reltype", relType, "more than one relationship of this type")
		}
		found = r.target
	}
	if found == nil {
		return nil, docxerr.NewInvalidArgument("reltype", relType, "no relationship of this type")
	}
	return found, nil
}

// RelatedParts maps the rId of every internal relationship to its target.
func (rs *Relationships) RelatedParts() map[string]Part {
	out := make(map[string]Part, len(rs.rels))
	for id, r := range rs.rels {
		if !r.external {
			out[id] = r.target
		}
	}
	return out
}

// XML serializes the collection as a relationships part.
func (rs *Relationships) XML() ([]byte, error) {
	root := etree.NewElement("Relationships")
	root.CreateAttr("xmlns", NamespaceRelationships)
	for _, r := range rs.All() {
		el := root.CreateElement("Relationship")
		el.CreateAttr("Id", r.rID)
		el.CreateAttr("Type", r.relType)
		el.CreateAttr("Target", r.TargetRef())
		if r.external {
			el.CreateAttr("TargetMode", TargetModeExternal)
		}
	}
	return oxml.NewTree(oxml.FromEtree(root)).Bytes()
}

// serializedRel is a relationship as read from a .rels part, before its
// target has been resolved to a Part.
type serializedRel struct {
	baseURI   string
	rID       string
	relType   string
	targetRef string
	external  bool
}

func (s serializedRel) targetPartname() (PackURI, error) {
	return FromRelRef(s.baseURI, s.targetRef)
}

// parseRels reads a .rels blob. A nil blob yields no relationships.
func parseRels(baseURI string, blob []byte) ([]serializedRel, error) {
	if blob == nil {
		return nil, nil
	}
	tree, err := oxml.Parse(blob)
	if err != nil {
		return nil, err
	}
	var out []serializedRel
	for _, el := range tree.Root().Etree().ChildElements() {
		if el.Tag != "Relationship" {
			continue
		}
		s := serializedRel{
			baseURI:   baseURI,
			rID:       el.SelectAttrValue("Id", ""),
			relType:   el.SelectAttrValue("Type", ""),
			targetRef: el.SelectAttrValue("Target", ""),
			external:  el.SelectAttrValue("TargetMode", "") == TargetModeExternal,
		}
		if s.rID == "" {
			return nil, docxerr.MissingAttr("Relationship", "Id")
		}
		out = append(out, s)
	}
	return out, nil
}
