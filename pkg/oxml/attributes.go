package oxml

import (
	"github.com/benjaminschreck/go-docx/pkg/docxerr"
	"github.com/benjaminschreck/go-docx/pkg/oxml/simpletypes"
)

// RequiredAttribute describes an attribute the schema requires.
type RequiredAttribute[T any] struct {
	Name string
	Conv simpletypes.Converter[T]
}

// NewRequiredAttribute creates a RequiredAttribute descriptor.
func NewRequiredAttribute[T any](name string, conv simpletypes.Converter[T]) RequiredAttribute[T] {
	return RequiredAttribute[T]{Name: name, Conv: conv}
}

// Get parses the attribute. An absent or malformed value is an InvalidXML
// error naming the element and attribute.
func (a RequiredAttribute[T]) Get(n Node) (T, error) {
	var zero T
	e := n.Elem()
	raw, ok := e.Attr(a.Name)
	if !ok {
		return zero, docxerr.MissingAttr(e.Tag(), a.Name)
	}
	v, err := a.Conv.FromXML(raw)
	if err != nil {
		return zero, docxerr.WithTag(err, e.Tag(), a.Name)
	}
	return v, nil
}

// Set validates and writes v.
func (a RequiredAttribute[T]) Set(n Node, v T) error {
	e := n.Elem()
	s, ok, err := a.Conv.ToXML(v)
	if err != nil {
		return docxerr.WithTag(err, e.Tag(), a.Name)
	}
	if !ok {
		return docxerr.WithTag(docxerr.NewInvalidXML("required attribute cannot be omitted"), e.Tag(), a.Name)
	}
	e.SetAttr(a.Name, s)
	return nil
}

// OptionalAttribute describes an attribute that may be absent, in which
// case it takes Default.
type OptionalAttribute[T comparable] struct {
	Name    string
	Conv    simpletypes.Converter[T]
	Default T
}

// NewOptionalAttribute creates an OptionalAttribute descriptor.
func NewOptionalAttribute[T comparable](name string, conv simpletypes.Converter[T], def T) OptionalAttribute[T] {
	return OptionalAttribute[T]{Name: name, Conv: conv, Default: def}
}

// Get returns the parsed value, or Default when the attribute is absent.
func (a OptionalAttribute[T]) Get(n Node) (T, error) {
	v, _, err := a.Lookup(n)
	return v, err
}

// Lookup is like Get and also reports whether the attribute is present.
func (a OptionalAttribute[T]) Lookup(n Node) (T, bool, error) {
	e := n.Elem()
	raw, ok := e.Attr(a.Name)
	if !ok {
		return a.Default, false, nil
	}
	v, err := a.Conv.FromXML(raw)
	if err != nil {
		return a.Default, true, docxerr.WithTag(err, e.Tag(), a.Name)
	}
	return v, true, nil
}

// Set writes v, removing the attribute when v equals Default or the
// converter asks for it to be omitted.
func (a OptionalAttribute[T]) Set(n Node, v T) error {
	e := n.Elem()
	if v == a.Default {
		e.RemoveAttr(a.Name)
		return nil
	}
	s, ok, err := a.Conv.ToXML(v)
	if err != nil {
		return docxerr.WithTag(err, e.Tag(), a.Name)
	}
	if !ok {
		e.RemoveAttr(a.Name)
		return nil
	}
	e.SetAttr(a.Name, s)
	return nil
}

// Clear removes the attribute.
func (a OptionalAttribute[T]) Clear(n Node) {
	n.Elem().RemoveAttr(a.Name)
}
