// Package opc reads and writes Open Packaging Convention containers, the
// ZIP-based format underneath .docx, .xlsx and .pptx files.
//
// A Package is a graph: the package relationships (/_rels/.rels) point at
// parts, and each part may own relationships to further parts or to
// external resources. Open walks that graph from the root, loading every
// reachable part once; Save writes the reachable parts back together with
// a freshly computed [Content_Types].xml.
//
//	pkg, err := opc.Open("report.docx")
//	if err != nil {
//	    return err
//	}
//	main, err := pkg.MainDocumentPart()
//	...
//	err = pkg.SaveFile("report.docx")
//
// Parts are built by a PartFactory, which picks a constructor from the
// content type and the type of the relationship the part was reached by.
// XMLPart keeps its content as an oxml tree and serializes it on every
// Blob call, so edits to the tree are always what gets saved.
//
// Relationship ids are allocated as the lowest "rIdN" never used in the
// owning collection; ids are not reused after a relationship is removed.
package opc
