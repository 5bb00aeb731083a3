package docx

import (
	"github.com/benjaminschreck/go-docx/pkg/opc"
	"github.com/benjaminschreck/go-docx/pkg/oxml"
	"github.com/benjaminschreck/go-docx/pkg/oxml/simpletypes"
	"github.com/benjaminschreck/go-docx/pkg/oxml/wml"
)

// US Letter, in twips.
const (
	pageWidth    = 12240
	pageHeight   = 15840
	pageMargin   = 1440
	headerMargin = 720
)

// newDefaultDocumentPart returns a main document part with an empty body
// and one Letter-sized section with one inch margins.
func newDefaultDocumentPart(pkg *opc.Package) (*DocumentPart, error) {
	doc := wml.NewDocument()
	body, err := doc.Body()
	if err != nil {
		return nil, err
	}
	sectPr := body.GetOrAddSectionProperties()

	pgSz := sectPr.GetOrAddPageSize()
	if err := pgSz.SetWidth(simpletypes.Twips(pageWidth)); err != nil {
		return nil, err
	}
	if err := pgSz.SetHeight(simpletypes.Twips(pageHeight)); err != nil {
		return nil, err
	}

	margins := []struct {
		m wml.Margin
		v int64
	}{
		{wml.MarginTop, pageMargin},
		{wml.MarginRight, pageMargin},
		{wml.MarginBottom, pageMargin},
		{wml.MarginLeft, pageMargin},
		{wml.MarginHeader, headerMargin},
		{wml.MarginFooter, headerMargin},
	}
	pgMar := sectPr.GetOrAddPageMargins()
	for _, mg := range margins {
		if err := pgMar.Set(mg.m, simpletypes.Twips(mg.v)); err != nil {
			return nil, err
		}
	}

	partname := opc.MustPackURI("/word/document.xml")
	return &DocumentPart{XMLPart: opc.NewXMLPart(partname, opc.CTWmlDocumentMain, oxml.NewTree(doc), pkg)}, nil
}

// newDefaultStylesPart returns a styles part defining the Normal
// paragraph style and the Hyperlink character style.
func newDefaultStylesPart(pkg *opc.Package) *StylesPart {
	styles := wml.NewStyles()

	normal, _ := styles.AddStyle(wml.StyleParagraph, "Normal", "Normal", true)
	_ = normal.SetDefault(true)
	_ = normal.SetQuickStyle(boolPtr(true))

	link, _ := styles.AddStyle(wml.StyleCharacter, "Hyperlink", "Hyperlink", true)
	priority := 99
	_ = link.SetUIPriority(&priority)
	rPr := link.RunProperties()
	blue := simpletypes.RGB(0x05, 0x63, 0xC1)
	_ = rPr.SetColor(&blue)
	single := wml.UnderlineSingle
	_ = rPr.SetUnderline(&single)

	partname := opc.MustPackURI("/word/styles.xml")
	return &StylesPart{XMLPart: opc.NewXMLPart(partname, opc.CTWmlStyles, oxml.NewTree(styles), pkg)}
}

func boolPtr(v bool) *bool { return &v }
