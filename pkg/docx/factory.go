package docx

import (
	"github.com/benjaminschreck/go-docx/pkg/opc"
)

// NewPartFactory returns a factory that loads WordprocessingML parts as
// their typed part kinds. Images are recognized by relationship type, so
// an image with an unusual content type is still an ImagePart.
func NewPartFactory() *opc.PartFactory {
	f := opc.NewPartFactory()
	f.RegisterSelector(func(contentType, relType string) opc.PartConstructor {
		if relType == opc.RTImage {
			return LoadImagePart
		}
		return nil
	})
	f.Register(opc.CTWmlDocumentMain, LoadDocumentPart)
	f.Register(opc.CTWmlTemplateMain, LoadDocumentPart)
	f.Register(opc.CTWmlDocumentMacro, LoadDocumentPart)
	f.Register(opc.CTWmlTemplateMacro, LoadDocumentPart)
	f.Register(opc.CTWmlStyles, LoadStylesPart)
	f.Register(opc.CTWmlHeader, LoadHeaderPart)
	f.Register(opc.CTWmlFooter, LoadFooterPart)
	f.Register(opc.CTWmlSettings, opc.LoadXMLPart)
	f.Register(opc.CTWmlNumbering, opc.LoadXMLPart)
	f.Register(opc.CTWmlFontTable, opc.LoadXMLPart)
	f.Register(opc.CTWmlWebSettings, opc.LoadXMLPart)
	f.Register(opc.CTWmlFootnotes, opc.LoadXMLPart)
	f.Register(opc.CTWmlEndnotes, opc.LoadXMLPart)
	f.Register(opc.CTWmlComments, opc.LoadXMLPart)
	return f
}
