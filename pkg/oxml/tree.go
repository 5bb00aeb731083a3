package oxml

import (
	"bytes"

	"github.com/beevik/etree"

	"github.com/benjaminschreck/go-docx/pkg/docxerr"
)

// XMLHeader is written before every serialized part.
const XMLHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Tree is a parsed XML document with one root element.
type Tree struct {
	doc *etree.Document
}

// Parse parses an XML blob. The XML declaration and whitespace around the
// root element are dropped; whitespace inside the tree is kept.
func Parse(blob []byte) (*Tree, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(bytes.TrimPrefix(blob, utf8BOM)); err != nil {
		return nil, &docxerr.InvalidXMLError{Message: "malformed document", Cause: err}
	}
	for i := len(doc.Child) - 1; i >= 0; i-- {
		switch t := doc.Child[i].(type) {
		case *etree.ProcInst:
			if t.Target == "xml" {
				doc.RemoveChildAt(i)
			}
		case *etree.CharData:
			doc.RemoveChildAt(i)
		}
	}
	if doc.Root() == nil {
		return nil, docxerr.NewInvalidXML("document has no root element")
	}
	return &Tree{doc: doc}, nil
}

// NewTree creates a tree rooted at root, detaching root from any parent.
func NewTree(root Node) *Tree {
	el := root.Elem().el
	if p := el.Parent(); p != nil {
		p.RemoveChild(el)
	}
	doc := etree.NewDocument()
	doc.SetRoot(el)
	return &Tree{doc: doc}
}

// Root returns the root element.
func (t *Tree) Root() *Element {
	return FromEtree(t.doc.Root())
}

// Bytes serializes the tree with a UTF-8 standalone declaration. The
// result always reflects the current state of the tree.
func (t *Tree) Bytes() ([]byte, error) {
	body, err := t.doc.WriteToBytes()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(XMLHeader)+len(body))
	out = append(out, XMLHeader...)
	return append(out, body...), nil
}

// ParseElement parses blob and returns its root element, typed through the
// registry.
func ParseElement(blob []byte) (Node, error) {
	t, err := Parse(blob)
	if err != nil {
		return nil, err
	}
	return Wrap(t.Root()), nil
}
