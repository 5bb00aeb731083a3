package opc

import (
	"sort"
	"strings"

	"github.com/beevik/etree"

	"github.com/benjaminschreck/go-docx/pkg/docxerr"
	"github.com/benjaminschreck/go-docx/pkg/oxml"
)

// contentTypeMap resolves partnames to content types as declared by a
// stored [Content_Types].xml. Keys are matched case-insensitively.
type contentTypeMap struct {
	defaults  map[string]string
	overrides map[string]string
}

func parseContentTypes(blob []byte) (*contentTypeMap, error) {
	tree, err := oxml.Parse(blob)
	if err != nil {
		return nil, err
	}
	m := &contentTypeMap{
		defaults:  make(map[string]string),
		overrides: make(map[string]string),
	}
	for _, el := range tree.Root().Etree().ChildElements() {
		ct := el.SelectAttrValue("ContentType", "")
		switch el.Tag {
		case "Default":
			m.defaults[strings.ToLower(el.SelectAttrValue("Extension", ""))] = ct
		case "Override":
			m.overrides[strings.ToLower(el.SelectAttrValue("PartName", ""))] = ct
		}
	}
	return m, nil
}

// lookup returns the Override for partname, else the Default for its
// extension.
func (m *contentTypeMap) lookup(partname PackURI) (string, error) {
	if ct, ok := m.overrides[strings.ToLower(string(partname))]; ok {
		return ct, nil
	}
	if ct, ok := m.defaults[strings.ToLower(partname.Ext())]; ok {
		return ct, nil
	}
	return "", docxerr.NewInvalidXML("no content type for partname %s in [Content_Types].xml", partname)
}

// ContentTypeEntry is one line of a package manifest.
type ContentTypeEntry struct {
	// Kind is "Default" or "Override".
	Kind string
	// Key is the extension of a Default or the partname of an Override.
	Key         string
	ContentType string
}

// contentTypesItem is the manifest computed for a set of parts at save
// time.
type contentTypesItem struct {
	defaults  map[string]string
	overrides map[PackURI]string
}

// contentTypesFromParts classifies every part. A part whose (extension,
// content type) pair is a known default becomes a Default entry, unless
// an earlier part already claimed that extension for another content
// type; everything else becomes an Override.
func contentTypesFromParts(parts []Part) *contentTypesItem {
	item := &contentTypesItem{
		defaults: map[string]string{
			"rels": CTOpcRelationships,
			"xml":  CTXML,
		},
		overrides: make(map[PackURI]string),
	}
	for _, p := range parts {
		ext := strings.ToLower(p.Partname().Ext())
		ct := p.ContentType()
		if isDefaultContentType(ext, ct) {
			if claimed, ok := item.defaults[ext]; !ok || claimed == ct {
				item.defaults[ext] = ct
				continue
			}
		}
		item.overrides[p.Partname()] = ct
	}
	return item
}

// entries lists Defaults sorted by extension, then Overrides sorted by
// partname.
func (c *contentTypesItem) entries() []ContentTypeEntry {
	exts := make([]string, 0, len(c.defaults))
	for ext := range c.defaults {
		exts = append(exts, ext)
	}
	sort.Strings(exts)

	names := make([]string, 0, len(c.overrides))
	for name := range c.overrides {
		names = append(names, string(name))
	}
	sort.Strings(names)

	out := make([]ContentTypeEntry, 0, len(exts)+len(names))
	for _, ext := range exts {
		out = append(out, ContentTypeEntry{Kind: "Default", Key: ext, ContentType: c.defaults[ext]})
	}
	for _, name := range names {
		out = append(out, ContentTypeEntry{Kind: "Override", Key: name, ContentType: c.overrides[PackURI(name)]})
	}
	return out
}

// xml serializes the manifest.
func (c *contentTypesItem) xml() ([]byte, error) {
	root := etree.NewElement("Types")
	root.CreateAttr("xmlns", NamespaceContentTypes)
	for _, e := range c.entries() {
		el := root.CreateElement(e.Kind)
		if e.Kind == "Default" {
			el.CreateAttr("Extension", e.Key)
		} else {
			el.CreateAttr("PartName", e.Key)
		}
		el.CreateAttr("ContentType", e.ContentType)
	}
	return oxml.NewTree(oxml.FromEtree(root)).Bytes()
}
