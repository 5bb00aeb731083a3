// Package oxml provides typed, schema-ordered access to OOXML element trees.
//
// An Element is a thin view over an etree node. Concrete element kinds
// (see package wml) embed *Element and declare their content model with
// descriptor values:
//
//   - ZeroOrOne: an optional child, with Get, GetOrAdd, Add, Insert and Remove.
//   - ZeroOrMore: a repeatable child, with All, Add, Insert and RemoveAll.
//   - OneAndOnlyOne: a required child; Get fails when it is missing.
//   - OneOrMore: a repeatable required child.
//   - ZeroOrOneChoice: a group of mutually exclusive children.
//   - RequiredAttribute and OptionalAttribute: typed attribute access
//     through a simpletypes converter.
//
// Every insertion goes through Element.InsertElementBefore, which places
// the new child before the first existing child whose tag must follow it
// in the content model. For a model [A, B, C], adding C, then B, then A
// always yields A, B, C.
//
// # Namespaces
//
// Tags are written with their conventional prefix ("w:p", "r:id"). Lookups
// compare by namespace URI, so documents that bind the WordprocessingML
// namespace to another prefix still match. A prefix used by an inserted
// element or attribute is declared on the element itself when no ancestor
// declares it yet.
//
// # Parsing and serialization
//
// Parse and Tree.Bytes round-trip a part. Serialization always starts with
// XMLHeader and is never cached. Query and Evaluate run read-only XPath 1.0
// expressions over a snapshot of an element.
package oxml
