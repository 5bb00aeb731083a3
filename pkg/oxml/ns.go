package oxml

import (
	"strings"

	"github.com/beevik/etree"
)

// Namespace URIs keyed by their conventional prefix.
var nsmap = map[string]string{
	"a":        "http://schemas.openxmlformats.org/drawingml/2006/main",
	"c":        "http://schemas.openxmlformats.org/drawingml/2006/chart",
	"cp":       "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
	"ct":       "http://schemas.openxmlformats.org/package/2006/content-types",
	"dc":       "http://purl.org/dc/elements/1.1/",
	"dcmitype": "http://purl.org/dc/dcmitype/",
	"dcterms":  "http://purl.org/dc/terms/",
	"m":        "http://schemas.openxmlformats.org/officeDocument/2006/math",
	"mc":       "http://schemas.openxmlformats.org/markup-compatibility/2006",
	"pic":      "http://schemas.openxmlformats.org/drawingml/2006/picture",
	"pr":       "http://schemas.openxmlformats.org/package/2006/relationships",
	"r":        "http://schemas.openxmlformats.org/officeDocument/2006/relationships",
	"sl":       "http://schemas.openxmlformats.org/schemaLibrary/2006/main",
	"v":        "urn:schemas-microsoft-com:vml",
	"w":        "http://schemas.openxmlformats.org/wordprocessingml/2006/main",
	"w14":      "http://schemas.microsoft.com/office/word/2010/wordml",
	"wp":       "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing",
	"xml":      "http://www.w3.org/XML/1998/namespace",
	"xsi":      "http://www.w3.org/2001/XMLSchema-instance",
}

// NamespaceURI returns the well-known URI for prefix, or "" when the prefix
// is not one of the conventional OOXML prefixes.
func NamespaceURI(prefix string) string {
	return nsmap[prefix]
}

// Namespaces returns a copy of the prefix to URI map.
func Namespaces() map[string]string {
	m := make(map[string]string, len(nsmap))
	for k, v := range nsmap {
		m[k] = v
	}
	return m
}

// Qn converts a prefixed tag like "w:p" to Clark notation
// ("{http://...}p"). A tag without a known prefix is returned unchanged.
func Qn(tag string) string {
	prefix, local, ok := strings.Cut(tag, ":")
	if !ok {
		return tag
	}
	uri, ok := nsmap[prefix]
	if !ok {
		return tag
	}
	return "{" + uri + "}" + local
}

// splitTag splits "w:p" into ("w", "p").
func splitTag(tag string) (string, string) {
	if prefix, local, ok := strings.Cut(tag, ":"); ok {
		return prefix, local
	}
	return "", tag
}

// resolvePrefix looks up the namespace bound to prefix at e, walking the
// ancestor chain for xmlns declarations.
func resolvePrefix(e *etree.Element, prefix string) (string, bool) {
	if prefix == "xml" {
		return nsmap["xml"], true
	}
	for p := e; p != nil; p = p.Parent() {
		for _, a := range p.Attr {
			if prefix == "" && a.Space == "" && a.Key == "xmlns" {
				return a.Value, true
			}
			if prefix != "" && a.Space == "xmlns" && a.Key == prefix {
				return a.Value, true
			}
		}
	}
	return "", false
}

// topElement returns the outermost element above e, stopping below the
// document node.
func topElement(e *etree.Element) *etree.Element {
	top := e
	for p := e.Parent(); p != nil && p.Tag != ""; p = p.Parent() {
		top = p
	}
	return top
}

// declarePrefix binds prefix on the outermost element above e when no
// ancestor declares it yet. Unknown prefixes are left alone.
func declarePrefix(e *etree.Element, prefix string) {
	if prefix == "" || prefix == "xml" || prefix == "xmlns" {
		return
	}
	if _, ok := resolvePrefix(e, prefix); ok {
		return
	}
	uri, ok := nsmap[prefix]
	if !ok {
		return
	}
	topElement(e).CreateAttr("xmlns:"+prefix, uri)
}

// declareSubtree makes sure every prefix used by e and its descendants is
// bound somewhere above e.
func declareSubtree(e *etree.Element) {
	declarePrefix(e, e.Space)
	for _, a := range e.Attr {
		if a.Space != "xmlns" {
			declarePrefix(e, a.Space)
		}
	}
	for _, c := range e.ChildElements() {
		declareSubtree(c)
	}
}
