// Package wml provides typed element wrappers for WordprocessingML.
//
// A .docx file is a ZIP package whose parts hold XML trees. This package
// gives the elements of those trees typed accessors built on the
// schema-ordered descriptors of package oxml, so every property setter
// inserts its element where the schema says it belongs.
//
// # Structure Organization
//
// The package is organized into logical files based on XML element types:
//
//   - types.go: shared value elements (toggles, string and number values, w:jc)
//   - document.go: Document, Body and the block container operations
//   - paragraph.go: Paragraph, ParagraphProperties, Spacing, Indentation, Hyperlink
//   - run.go: Run, RunProperties, Text, Break, Color, Size, Underline
//   - table.go: Table, TableProperties, TableGrid, TableRow, TableCell
//   - section.go: SectionProperties, page setup, header and footer references, Header, Footer
//   - styles.go: Styles and Style
//   - sdt.go: content controls
//   - drawing.go: inline pictures and a:blip
//
// # Key Concepts
//
// BlockItem: an element that can appear in a block container (paragraphs,
// tables, content controls).
//
// Tri-state properties: run and paragraph toggles such as bold return a
// *bool; nil means the property is inherited from the style hierarchy.
//
// Wrappers are views. Two wrappers over the same node compare equal with
// Same, and every change is made directly to the underlying tree.
//
// # Usage
//
//	doc := wml.NewDocument()
//	body, _ := doc.Body()
//	p := body.AddParagraph()
//	_ = p.SetStyle("Heading1")
//	r := p.AddRun("Hello, world!")
//	bold := true
//	_ = r.GetOrAddProperties().SetBold(&bold)
//
// Importing this package registers every wrapper with oxml.Register, so
// oxml.Wrap returns the typed variant for parsed nodes.
package wml
