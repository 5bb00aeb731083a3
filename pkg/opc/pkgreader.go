package opc

import (
	"sort"

	"github.com/benjaminschreck/go-docx/pkg/docxerr"
)

// serializedPart is a part as read from storage: its bytes, content type,
// the relationship type it was first reached by and its outgoing
// relationships, none of them resolved yet.
type serializedPart struct {
	partname    PackURI
	contentType string
	relType     string
	blob        []byte
	srels       []serializedRel
}

// packageReader holds the serialized form of every part reachable from
// the package relationships.
type packageReader struct {
	pkgSrels []serializedRel
	sparts   []*serializedPart
	orphans  []PackURI
}

// readPackage walks the relationship graph of a stored package depth
// first, loading each reachable part exactly once. Members no
// relationship reaches are recorded as orphans and not loaded.
func readPackage(phys physReader) (*packageReader, error) {
	ctBlob, err := contentTypesXML(phys)
	if err != nil {
		return nil, err
	}
	contentTypes, err := parseContentTypes(ctBlob)
	if err != nil {
		return nil, err
	}

	pkgRelsBlob, err := relsXMLFor(phys, PackageURI)
	if err != nil {
		return nil, err
	}
	pkgSrels, err := parseRels(PackageURI.BaseURI(), pkgRelsBlob)
	if err != nil {
		return nil, err
	}

	r := &packageReader{pkgSrels: pkgSrels}
	visited := make(map[PackURI]bool)
	if err := r.walk(phys, contentTypes, pkgSrels, visited); err != nil {
		return nil, err
	}
	r.orphans = findOrphans(phys, visited)
	return r, nil
}

func (r *packageReader) walk(phys physReader, contentTypes *contentTypeMap, srels []serializedRel, visited map[PackURI]bool) error {
	for _, srel := range srels {
		if srel.external {
			continue
		}
		partname, err := srel.targetPartname()
		if err != nil {
			return err
		}
		if visited[partname] {
			continue
		}
		visited[partname] = true

		if !phys.has(partname) {
			return docxerr.NewInvalidXML("relationship %s targets missing part %s", srel.rID, partname)
		}
		blob, err := phys.blobFor(partname)
		if err != nil {
			return err
		}
		ct, err := contentTypes.lookup(partname)
		if err != nil {
			return err
		}
		relsBlob, err := relsXMLFor(phys, partname)
		if err != nil {
			return err
		}
		partSrels, err := parseRels(partname.BaseURI(), relsBlob)
		if err != nil {
			return wrapPartError(partname.RelsURI(), err)
		}

		r.sparts = append(r.sparts, &serializedPart{
			partname:    partname,
			contentType: ct,
			relType:     srel.relType,
			blob:        blob,
			srels:       partSrels,
		})
		if err := r.walk(phys, contentTypes, partSrels, visited); err != nil {
			return err
		}
	}
	return nil
}

// findOrphans lists stored members that are neither loaded parts nor
// package bookkeeping.
func findOrphans(phys physReader, visited map[PackURI]bool) []PackURI {
	var out []PackURI
	for _, name := range phys.names() {
		if visited[name] || name == ContentTypesURI || name.Ext() == "rels" {
			continue
		}
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// unmarshal builds the parts of pkg from r: every part is constructed
// first, then relationships are wired, then AfterUnmarshal runs.
func (r *packageReader) unmarshal(pkg *Package, factory *PartFactory) error {
	parts := make(map[PackURI]Part, len(r.sparts))
	loaded := make([]Part, 0, len(r.sparts))
	for _, sp := range r.sparts {
		part, err := factory.New(sp.partname, sp.contentType, sp.relType, sp.blob, pkg)
		if err != nil {
			return err
		}
		parts[sp.partname] = part
		loaded = append(loaded, part)
	}

	if err := loadRels(pkg.Rels(), r.pkgSrels, parts); err != nil {
		return err
	}
	for i, sp := range r.sparts {
		if err := loadRels(loaded[i].Rels(), sp.srels, parts); err != nil {
			return wrapPartError(sp.partname, err)
		}
	}

	for _, part := range loaded {
		part.AfterUnmarshal()
	}
	return nil
}

func loadRels(rels *Relationships, srels []serializedRel, parts map[PackURI]Part) error {
	for _, srel := range srels {
		var target Part
		if !srel.external {
			partname, err := srel.targetPartname()
			if err != nil {
				return err
			}
			target = parts[partname]
		}
		if _, err := rels.Load(srel.rID, srel.relType, srel.targetRef, target, srel.external); err != nil {
			return err
		}
	}
	return nil
}
