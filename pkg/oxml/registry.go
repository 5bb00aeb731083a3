package oxml

import (
	"github.com/beevik/etree"
)

// WrapFunc builds a typed wrapper over an element.
type WrapFunc func(*Element) Node

// registry maps a Clark-notation tag to the wrapper registered for it. It is
// populated from package init functions and read-only afterwards.
var registry = map[string]WrapFunc{}

// Register associates a prefixed tag such as "w:p" with a wrapper
// constructor. Later registrations for the same tag replace earlier ones.
func Register(tag string, wrap WrapFunc) {
	registry[Qn(tag)] = wrap
}

// clark returns the Clark-notation name of el.
func clark(el *etree.Element) string {
	uri, ok := resolvePrefix(el, el.Space)
	if !ok {
		uri = nsmap[el.Space]
	}
	if uri == "" {
		return el.Tag
	}
	return "{" + uri + "}" + el.Tag
}

// Wrap returns the registered wrapper for e, or e itself when no variant is
// registered for its tag.
func Wrap(e *Element) Node {
	if e == nil {
		return nil
	}
	if fn, ok := registry[clark(e.el)]; ok {
		return fn(e)
	}
	return e
}

// As wraps n and type-asserts the result to T.
func As[T Node](n Node) (T, bool) {
	var zero T
	if n == nil || n.Elem() == nil {
		return zero, false
	}
	t, ok := Wrap(n.Elem()).(T)
	return t, ok
}
