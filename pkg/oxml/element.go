package oxml

import (
	"github.com/beevik/etree"
)

// Node is implemented by every element wrapper. Concrete variants embed
// *Element and so satisfy it for free.
type Node interface {
	Elem() *Element
}

// Element is a non-owning view over one node of a parsed tree. Any number
// of Elements may wrap the same node; identity is the underlying node.
type Element struct {
	el *etree.Element
}

// NewElement creates a detached element. Prefixed names like "w:p" are
// bound to their well-known namespace on the new element itself; the
// declaration is dropped on insertion when an ancestor already binds it.
// attrs are name/value pairs.
func NewElement(tag string, attrs ...string) *Element {
	e := &Element{el: etree.NewElement(tag)}
	for i := 0; i+1 < len(attrs); i += 2 {
		e.SetAttr(attrs[i], attrs[i+1])
	}
	declarePrefix(e.el, e.el.Space)
	return e
}

// FromEtree wraps an etree element. It returns nil for a nil input.
func FromEtree(el *etree.Element) *Element {
	if el == nil {
		return nil
	}
	return &Element{el: el}
}

// Elem returns e.
func (e *Element) Elem() *Element { return e }

// Etree returns the underlying etree node.
func (e *Element) Etree() *etree.Element { return e.el }

// Tag returns the prefixed tag, e.g. "w:p".
func (e *Element) Tag() string { return e.el.FullTag() }

// Is reports whether e has the given prefixed tag.
func (e *Element) Is(tag string) bool {
	prefix, local := splitTag(tag)
	return matches(e.el, prefix, local)
}

// Same reports whether n wraps the same node as e.
func (e *Element) Same(n Node) bool {
	if n == nil || n.Elem() == nil {
		return false
	}
	return e.el == n.Elem().el
}

// Parent returns the enclosing element, or nil at the top of a tree.
func (e *Element) Parent() *Element {
	p := e.el.Parent()
	if p == nil || p.Tag == "" {
		return nil
	}
	return &Element{el: p}
}

// matches compares el against a prefixed name, by namespace URI when the
// document uses a non-conventional prefix.
func matches(el *etree.Element, prefix, local string) bool {
	if el.Tag != local {
		return false
	}
	if el.Space == prefix {
		return true
	}
	want, known := nsmap[prefix]
	if !known {
		return false
	}
	got, ok := resolvePrefix(el, el.Space)
	return ok && got == want
}

func matchesAny(el *etree.Element, tags []string) bool {
	for _, t := range tags {
		prefix, local := splitTag(t)
		if matches(el, prefix, local) {
			return true
		}
	}
	return false
}

// FirstChild returns the first direct child whose tag is one of tags, or
// nil.
func (e *Element) FirstChild(tags ...string) *Element {
	for _, c := range e.el.ChildElements() {
		if matchesAny(c, tags) {
			return &Element{el: c}
		}
	}
	return nil
}

// Children returns the direct children whose tag is one of tags, in
// document order. With no tags every child element is returned.
func (e *Element) Children(tags ...string) []*Element {
	var out []*Element
	for _, c := range e.el.ChildElements() {
		if len(tags) == 0 || matchesAny(c, tags) {
			out = append(out, &Element{el: c})
		}
	}
	return out
}

// InsertElementBefore inserts child immediately before the first direct
// child whose tag is in successors, or appends it when none is present.
// A child that already has a parent is moved.
func (e *Element) InsertElementBefore(child Node, successors ...string) {
	c := child.Elem().el
	if p := c.Parent(); p != nil {
		p.RemoveChild(c)
	}
	idx := -1
	if len(successors) > 0 {
		for i, tok := range e.el.Child {
			if se, ok := tok.(*etree.Element); ok && matchesAny(se, successors) {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		e.el.AddChild(c)
	} else {
		e.el.InsertChildAt(idx, c)
	}
	stripRedundantDecls(c)
	declareSubtree(c)
}

// InsertFirst makes child the first element child of e, ahead of any
// other element. Leading character data and comments stay in front.
// A child that already has a parent is moved.
func (e *Element) InsertFirst(child Node) {
	c := child.Elem().el
	if p := c.Parent(); p != nil {
		p.RemoveChild(c)
	}
	idx := -1
	for i, tok := range e.el.Child {
		if _, ok := tok.(*etree.Element); ok {
			idx = i
			break
		}
	}
	if idx < 0 {
		e.el.AddChild(c)
	} else {
		e.el.InsertChildAt(idx, c)
	}
	stripRedundantDecls(c)
	declareSubtree(c)
}

// AddPrevious inserts sibling immediately before e. It is a no-op when e
// has no parent.
func (e *Element) AddPrevious(sibling Node) {
	parent := e.el.Parent()
	if parent == nil {
		return
	}
	c := sibling.Elem().el
	if p := c.Parent(); p != nil {
		p.RemoveChild(c)
	}
	for i, tok := range parent.Child {
		if tok == e.el {
			parent.InsertChildAt(i, c)
			break
		}
	}
	stripRedundantDecls(c)
	declareSubtree(c)
}

// Append adds child as the last child of e.
func (e *Element) Append(child Node) {
	e.InsertElementBefore(child)
}

// GetOrAddChild returns the first child with tag. When there is none, it
// builds one with factory (or a bare element when factory is nil), inserts
// it before the first existing successor and returns it.
func (e *Element) GetOrAddChild(tag string, successors []string, factory func() *Element) *Element {
	if c := e.FirstChild(tag); c != nil {
		return c
	}
	var c *Element
	if factory != nil {
		c = factory()
	} else {
		c = NewElement(tag)
	}
	e.InsertElementBefore(c, successors...)
	return c
}

// RemoveChild deletes every direct child with tag and reports whether any
// was removed.
func (e *Element) RemoveChild(tag string) bool {
	return e.RemoveAll(tag) > 0
}

// RemoveAll deletes every direct child whose tag is one of tags and
// returns how many were removed. With no tags it removes nothing.
func (e *Element) RemoveAll(tags ...string) int {
	if len(tags) == 0 {
		return 0
	}
	n := 0
	for _, c := range e.Children(tags...) {
		e.el.RemoveChild(c.el)
		n++
	}
	return n
}

// Remove detaches child from e. It is a no-op when child is not a direct
// child of e.
func (e *Element) Remove(child Node) {
	c := child.Elem().el
	if c.Parent() == e.el {
		e.el.RemoveChild(c)
	}
}

// findAttr returns the attribute called name, or nil. A well-known prefix
// matches any prefix bound to the same namespace URI.
func (e *Element) findAttr(name string) *etree.Attr {
	prefix, local := splitTag(name)
	want, known := nsmap[prefix]
	if prefix == "" || prefix == "xmlns" || !known {
		return e.el.SelectAttr(name)
	}
	for i := range e.el.Attr {
		a := &e.el.Attr[i]
		if a.Key != local || a.Space == "" || a.Space == "xmlns" {
			continue
		}
		if a.Space == prefix {
			return a
		}
		if got, ok := resolvePrefix(e.el, a.Space); ok && got == want {
			return a
		}
	}
	return nil
}

// Attr returns the raw value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	a := e.findAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// SetAttr sets the named attribute, binding its prefix when needed. An
// existing attribute keeps the prefix the document gave it.
func (e *Element) SetAttr(name, value string) {
	if a := e.findAttr(name); a != nil {
		a.Value = value
		return
	}
	e.el.CreateAttr(name, value)
	if prefix, _ := splitTag(name); prefix != "" && prefix != "xmlns" {
		declarePrefix(e.el, prefix)
	}
}

// RemoveAttr deletes the named attribute if present.
func (e *Element) RemoveAttr(name string) {
	if a := e.findAttr(name); a != nil {
		e.el.RemoveAttr(a.FullKey())
	}
}

// Text returns the character data directly inside e.
func (e *Element) Text() string { return e.el.Text() }

// SetText replaces the character data directly inside e.
func (e *Element) SetText(s string) { e.el.SetText(s) }

// Find returns the first element matching an etree path, or nil.
func (e *Element) Find(path string) *Element {
	return FromEtree(e.el.FindElement(path))
}

// FindAll returns every element matching an etree path.
func (e *Element) FindAll(path string) []*Element {
	found := e.el.FindElements(path)
	out := make([]*Element, len(found))
	for i, f := range found {
		out[i] = &Element{el: f}
	}
	return out
}

// Iter calls fn for e and every descendant element in document order.
// Returning false from fn stops the walk.
func (e *Element) Iter(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.el.ChildElements() {
		if !(&Element{el: c}).Iter(fn) {
			return false
		}
	}
	return true
}

// CountAttrValue counts the attributes in namespace nsURI, on e or any
// descendant, whose value equals value.
func (e *Element) CountAttrValue(nsURI, value string) int {
	n := 0
	e.Iter(func(x *Element) bool {
		for _, a := range x.el.Attr {
			if a.Value != value || a.Space == "" || a.Space == "xmlns" {
				continue
			}
			if uri, ok := resolvePrefix(x.el, a.Space); ok && uri == nsURI {
				n++
			}
		}
		return true
	})
	return n
}

// Copy returns a detached deep copy of e with the namespace declarations
// it needs.
func (e *Element) Copy() *Element {
	c := e.el.Copy()
	for _, prefix := range usedPrefixes(c) {
		if _, ok := resolvePrefix(c, prefix); ok {
			continue
		}
		if uri, ok := resolvePrefix(e.el, prefix); ok {
			c.CreateAttr("xmlns:"+prefix, uri)
		}
	}
	declareSubtree(c)
	return &Element{el: c}
}

// usedPrefixes lists the prefixes of el and its descendants, tags and
// attributes alike, in first-use order.
func usedPrefixes(el *etree.Element) []string {
	var out []string
	seen := map[string]bool{"": true, "xml": true, "xmlns": true}
	var walk func(*etree.Element)
	walk = func(x *etree.Element) {
		if !seen[x.Space] {
			seen[x.Space] = true
			out = append(out, x.Space)
		}
		for _, a := range x.Attr {
			if !seen[a.Space] {
				seen[a.Space] = true
				out = append(out, a.Space)
			}
		}
		for _, c := range x.ChildElements() {
			walk(c)
		}
	}
	walk(el)
	return out
}

// XML serializes e as a standalone fragment, without an XML declaration.
func (e *Element) XML() (string, error) {
	doc := etree.NewDocument()
	doc.SetRoot(e.Copy().el)
	return doc.WriteToString()
}

// stripRedundantDecls removes xmlns declarations in the subtree at el that
// an ancestor already binds to the same URI.
func stripRedundantDecls(el *etree.Element) {
	p := el.Parent()
	if p == nil {
		return
	}
	kept := el.Attr[:0]
	for _, a := range el.Attr {
		if a.Space == "xmlns" {
			if uri, ok := resolvePrefix(p, a.Key); ok && uri == a.Value {
				continue
			}
		}
		kept = append(kept, a)
	}
	el.Attr = kept
	for _, c := range el.ChildElements() {
		stripRedundantDecls(c)
	}
}
