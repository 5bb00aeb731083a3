package oxml

import (
	"slices"

	"github.com/benjaminschreck/go-docx/pkg/docxerr"
)

// Sequence is the ordered list of child tags in an element's content model.
type Sequence []string

// NewSequence returns the content model made of tags, in order.
func NewSequence(tags ...string) Sequence { return Sequence(tags) }

// After returns the tags that must follow tag. It returns nil when tag is
// the last member or not in the sequence.
func (s Sequence) After(tag string) []string {
	i := slices.Index(s, tag)
	if i < 0 || i == len(s)-1 {
		return nil
	}
	return slices.Clone(s[i+1:])
}

// ZeroOrOne describes an optional child.
type ZeroOrOne[T Node] struct {
	Tag        string
	Successors []string
	first      bool
	wrap       func(*Element) T
}

// NewZeroOrOne creates a ZeroOrOne descriptor.
func NewZeroOrOne[T Node](tag string, successors []string, wrap func(*Element) T) ZeroOrOne[T] {
	return ZeroOrOne[T]{Tag: tag, Successors: successors, wrap: wrap}
}

// NewLeadingZeroOrOne creates a ZeroOrOne descriptor for a child that is
// always the first element of its parent, such as a properties element
// followed by open content.
func NewLeadingZeroOrOne[T Node](tag string, wrap func(*Element) T) ZeroOrOne[T] {
	return ZeroOrOne[T]{Tag: tag, first: true, wrap: wrap}
}

func (d ZeroOrOne[T]) place(parent Node, child Node) {
	if d.first {
		parent.Elem().InsertFirst(child)
		return
	}
	parent.Elem().InsertElementBefore(child, d.Successors...)
}

// Get returns the child, or the zero T when it is absent.
func (d ZeroOrOne[T]) Get(parent Node) T {
	var zero T
	c := parent.Elem().FirstChild(d.Tag)
	if c == nil {
		return zero
	}
	return d.wrap(c)
}

// Present reports whether the child exists.
func (d ZeroOrOne[T]) Present(parent Node) bool {
	return parent.Elem().FirstChild(d.Tag) != nil
}

// GetOrAdd returns the child, adding a new one in schema order when absent.
func (d ZeroOrOne[T]) GetOrAdd(parent Node) T {
	if c := parent.Elem().FirstChild(d.Tag); c != nil {
		return d.wrap(c)
	}
	return d.Add(parent)
}

// Add inserts a new child in schema order. Callers remove any existing
// child first.
func (d ZeroOrOne[T]) Add(parent Node) T {
	c := NewElement(d.Tag)
	d.place(parent, c)
	return d.wrap(c)
}

// Insert places an existing element in schema order.
func (d ZeroOrOne[T]) Insert(parent Node, child T) T {
	d.place(parent, child)
	return child
}

// Remove deletes the child if present.
func (d ZeroOrOne[T]) Remove(parent Node) {
	parent.Elem().RemoveChild(d.Tag)
}

// ZeroOrMore describes a repeatable optional child.
type ZeroOrMore[T Node] struct {
	Tag        string
	Successors []string
	wrap       func(*Element) T
}

// NewZeroOrMore creates a ZeroOrMore descriptor.
func NewZeroOrMore[T Node](tag string, successors []string, wrap func(*Element) T) ZeroOrMore[T] {
	return ZeroOrMore[T]{Tag: tag, Successors: successors, wrap: wrap}
}

// All returns every matching child in document order.
func (d ZeroOrMore[T]) All(parent Node) []T {
	return wrapAll(parent.Elem().Children(d.Tag), d.wrap)
}

// Len returns the number of matching children.
func (d ZeroOrMore[T]) Len(parent Node) int {
	return len(parent.Elem().Children(d.Tag))
}

// Add appends a new child after the existing ones, before any successor.
func (d ZeroOrMore[T]) Add(parent Node) T {
	c := NewElement(d.Tag)
	parent.Elem().InsertElementBefore(c, d.Successors...)
	return d.wrap(c)
}

// Insert places an existing element after the existing children of the
// same kind.
func (d ZeroOrMore[T]) Insert(parent Node, child T) T {
	parent.Elem().InsertElementBefore(child, d.Successors...)
	return child
}

// RemoveAll deletes every matching child.
func (d ZeroOrMore[T]) RemoveAll(parent Node) {
	parent.Elem().RemoveChild(d.Tag)
}

// OneAndOnlyOne describes a required child.
type OneAndOnlyOne[T Node] struct {
	Tag  string
	wrap func(*Element) T
}

// NewOneAndOnlyOne creates a OneAndOnlyOne descriptor.
func NewOneAndOnlyOne[T Node](tag string, wrap func(*Element) T) OneAndOnlyOne[T] {
	return OneAndOnlyOne[T]{Tag: tag, wrap: wrap}
}

// Get returns the child. A missing child is an InvalidXML error.
func (d OneAndOnlyOne[T]) Get(parent Node) (T, error) {
	var zero T
	p := parent.Elem()
	c := p.FirstChild(d.Tag)
	if c == nil {
		return zero, docxerr.MissingChild(p.Tag(), d.Tag)
	}
	return d.wrap(c), nil
}

// OneOrMore describes a repeatable required child.
type OneOrMore[T Node] struct {
	Tag        string
	Successors []string
	wrap       func(*Element) T
}

// NewOneOrMore creates a OneOrMore descriptor.
func NewOneOrMore[T Node](tag string, successors []string, wrap func(*Element) T) OneOrMore[T] {
	return OneOrMore[T]{Tag: tag, Successors: successors, wrap: wrap}
}

// All returns every matching child. An empty result is an InvalidXML error.
func (d OneOrMore[T]) All(parent Node) ([]T, error) {
	p := parent.Elem()
	cs := p.Children(d.Tag)
	if len(cs) == 0 {
		return nil, docxerr.MissingChild(p.Tag(), d.Tag)
	}
	return wrapAll(cs, d.wrap), nil
}

// Add appends a new child after the existing ones, before any successor.
func (d OneOrMore[T]) Add(parent Node) T {
	c := NewElement(d.Tag)
	parent.Elem().InsertElementBefore(c, d.Successors...)
	return d.wrap(c)
}

// Insert places an existing element after the existing children of the
// same kind.
func (d OneOrMore[T]) Insert(parent Node, child T) T {
	parent.Elem().InsertElementBefore(child, d.Successors...)
	return child
}

// ZeroOrOneChoice describes a group of mutually exclusive optional
// children, at most one of which is present.
type ZeroOrOneChoice struct {
	Choices    []string
	Successors []string
}

// NewZeroOrOneChoice creates a choice group descriptor.
func NewZeroOrOneChoice(choices []string, successors []string) ZeroOrOneChoice {
	return ZeroOrOneChoice{Choices: choices, Successors: successors}
}

// Get returns the active member wrapped by its registered variant, or nil.
func (d ZeroOrOneChoice) Get(parent Node) Node {
	c := parent.Elem().FirstChild(d.Choices...)
	if c == nil {
		return nil
	}
	return Wrap(c)
}

// Replace removes any current member and inserts a new element with tag.
// tag must be one of the group's choices.
func (d ZeroOrOneChoice) Replace(parent Node, tag string) (Node, error) {
	if !slices.Contains(d.Choices, tag) {
		return nil, docxerr.NewInvalidArgument("tag", tag, "not a member of the choice group")
	}
	p := parent.Elem()
	p.RemoveAll(d.Choices...)
	c := NewElement(tag)
	p.InsertElementBefore(c, d.Successors...)
	return Wrap(c), nil
}

// Remove deletes the active member if any.
func (d ZeroOrOneChoice) Remove(parent Node) {
	parent.Elem().RemoveAll(d.Choices...)
}

func wrapAll[T Node](cs []*Element, wrap func(*Element) T) []T {
	out := make([]T, len(cs))
	for i, c := range cs {
		out[i] = wrap(c)
	}
	return out
}
