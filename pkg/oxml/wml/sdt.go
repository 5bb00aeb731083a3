package wml

import (
	"strings"

	"github.com/benjaminschreck/go-docx/pkg/oxml"
)

// StructuredDocumentTag is a block-level content control, <w:sdt>.
type StructuredDocumentTag struct{ *oxml.Element }

func newStructuredDocumentTag(e *oxml.Element) *StructuredDocumentTag {
	return &StructuredDocumentTag{e}
}

func (s *StructuredDocumentTag) isBlockItem() {}

var (
	sdtSdtPr      = oxml.NewZeroOrOne("w:sdtPr", []string{"w:sdtEndPr", "w:sdtContent"}, newSdtProperties)
	sdtSdtContent = oxml.NewZeroOrOne("w:sdtContent", nil, newSdtContent)
)

// Properties returns <w:sdtPr>, or nil.
func (s *StructuredDocumentTag) Properties() *SdtProperties { return sdtSdtPr.Get(s) }

// GetOrAddProperties returns <w:sdtPr>, adding it when absent.
func (s *StructuredDocumentTag) GetOrAddProperties() *SdtProperties { return sdtSdtPr.GetOrAdd(s) }

// Content returns <w:sdtContent>, adding it when absent.
func (s *StructuredDocumentTag) Content() *SdtContent { return sdtSdtContent.GetOrAdd(s) }

// GetText returns the text of the control's content.
func (s *StructuredDocumentTag) GetText() string {
	c := sdtSdtContent.Get(s)
	if c == nil {
		return ""
	}
	return c.GetText()
}

// SdtContent is <w:sdtContent>.
type SdtContent struct {
	*oxml.Element
	blockContainer
}

func newSdtContent(e *oxml.Element) *SdtContent {
	return &SdtContent{Element: e, blockContainer: blockContainer{e}}
}

// GetText returns the content's text. Inline content controls hold runs
// directly; block ones hold paragraphs.
func (c *SdtContent) GetText() string {
	if runs := c.Children("w:r"); len(runs) > 0 {
		var sb strings.Builder
		for _, r := range runs {
			sb.WriteString(newRun(r).GetText())
		}
		return sb.String()
	}
	return c.blockContainer.GetText()
}

// Control type tags. Exactly one may be present in <w:sdtPr>.
var sdtControlTypes = []string{
	"w:equation", "w:comboBox", "w:date", "w:docPartObj", "w:docPartList",
	"w:dropDownList", "w:picture", "w:richText", "w:text", "w:citation",
	"w:group", "w:bibliography",
}

// SdtProperties is <w:sdtPr>. Its members may appear in any order; new
// members are placed before the control type.
type SdtProperties struct{ *oxml.Element }

func newSdtProperties(e *oxml.Element) *SdtProperties { return &SdtProperties{e} }

var (
	sdtPrAlias   = oxml.NewZeroOrOne("w:alias", append([]string{"w:tag", "w:id"}, sdtControlTypes...), newStringValue)
	sdtPrTag     = oxml.NewZeroOrOne("w:tag", append([]string{"w:id"}, sdtControlTypes...), newStringValue)
	sdtPrID      = oxml.NewZeroOrOne("w:id", sdtControlTypes, newDecimalValue)
	sdtPrControl = oxml.NewZeroOrOneChoice(sdtControlTypes, nil)
)

// Alias returns the friendly name, or "".
func (p *SdtProperties) Alias() (string, error) { return getString(p, sdtPrAlias) }

// SetAlias sets the friendly name; "" removes it.
func (p *SdtProperties) SetAlias(v string) error { return setString(p, sdtPrAlias, v) }

// Tag returns the programmatic tag, or "".
func (p *SdtProperties) Tag() (string, error) { return getString(p, sdtPrTag) }

// SetTag sets the programmatic tag; "" removes it.
func (p *SdtProperties) SetTag(v string) error { return setString(p, sdtPrTag, v) }

// ID returns the control id, nil when unset.
func (p *SdtProperties) ID() (*int, error) { return getDecimal(p, sdtPrID) }

// SetID sets the control id.
func (p *SdtProperties) SetID(v *int) error { return setDecimal(p, sdtPrID, v) }

// ControlType returns the tag of the active control type, such as
// "w:date", or "" for a rich text control with no explicit type.
func (p *SdtProperties) ControlType() string {
	n := sdtPrControl.Get(p)
	if n == nil {
		return ""
	}
	return n.Elem().Tag()
}

// SetControlType replaces the control type with an empty element of tag.
func (p *SdtProperties) SetControlType(tag string) (*oxml.Element, error) {
	n, err := sdtPrControl.Replace(p, tag)
	if err != nil {
		return nil, err
	}
	return n.Elem(), nil
}

// ClearControlType removes the control type.
func (p *SdtProperties) ClearControlType() { sdtPrControl.Remove(p) }

func init() {
	oxml.Register("w:sdt", func(e *oxml.Element) oxml.Node { return newStructuredDocumentTag(e) })
	oxml.Register("w:sdtPr", func(e *oxml.Element) oxml.Node { return newSdtProperties(e) })
	oxml.Register("w:sdtContent", func(e *oxml.Element) oxml.Node { return newSdtContent(e) })
}
