// Package docx edits WordprocessingML (.docx) documents on top of the opc
// package engine.
//
// A Document pairs an opc.Package with its main document part. Parts load
// as typed values (DocumentPart, StylesPart, HeaderPart, FooterPart,
// ImagePart) through the factory returned by NewPartFactory.
//
//	doc, err := docx.New()
//	if err != nil {
//		return err
//	}
//	p, _ := doc.AddParagraph("Hello, ", "")
//	doc.AddHyperlink(p, "https://example.com/", "world")
//	return doc.Save("hello.docx")
//
// Relationships created for hyperlinks, headers, footers and pictures are
// removed again once no element of the main document part cites them.
package docx
