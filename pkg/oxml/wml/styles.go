package wml

import (
	"github.com/benjaminschreck/go-docx/pkg/oxml"
	"github.com/benjaminschreck/go-docx/pkg/oxml/simpletypes"
)

// Styles is the <w:styles> root of the styles part.
type Styles struct{ *oxml.Element }

func newStyles(e *oxml.Element) *Styles { return &Styles{e} }

var stylesStyle = oxml.NewZeroOrMore("w:style", nil, newStyle)

// NewStyles returns an empty <w:styles>.
func NewStyles() *Styles { return newStyles(oxml.NewElement("w:styles")) }

// All returns every style definition.
func (s *Styles) All() []*Style { return stylesStyle.All(s) }

// ByID returns the style with w:styleId id, or nil.
func (s *Styles) ByID(id string) *Style {
	for _, st := range s.All() {
		if st.ID() == id {
			return st
		}
	}
	return nil
}

// ByName returns the style whose w:name is name, or nil.
func (s *Styles) ByName(name string) *Style {
	for _, st := range s.All() {
		if n, err := st.Name(); err == nil && n == name {
			return st
		}
	}
	return nil
}

// Default returns the default style of kind, or nil.
func (s *Styles) Default(kind StyleType) *Style {
	for _, st := range s.All() {
		t, err := st.Type()
		if err != nil || t != kind {
			continue
		}
		if def, err := styleDefault.Get(st); err == nil && def {
			return st
		}
	}
	return nil
}

// AddStyle appends a style definition. builtin=false marks it as a custom
// style.
func (s *Styles) AddStyle(kind StyleType, id, name string, builtin bool) (*Style, error) {
	st := stylesStyle.Add(s)
	if err := styleType.Set(st, kind); err != nil {
		return nil, err
	}
	st.SetAttr("w:styleId", id)
	if !builtin {
		if err := styleCustom.Set(st, true); err != nil {
			return nil, err
		}
	}
	if err := st.SetName(name); err != nil {
		return nil, err
	}
	return st, nil
}

// StyleType is ST_StyleType.
type StyleType int

// Style kinds.
const (
	StyleParagraph StyleType = iota
	StyleCharacter
	StyleTable
	StyleNumbering
)

var stStyleType = simpletypes.NewEnum("ST_StyleType",
	simpletypes.EnumMember[StyleType]{Value: StyleParagraph, XML: "paragraph"},
	simpletypes.EnumMember[StyleType]{Value: StyleCharacter, XML: "character"},
	simpletypes.EnumMember[StyleType]{Value: StyleTable, XML: "table"},
	simpletypes.EnumMember[StyleType]{Value: StyleNumbering, XML: "numbering"},
)

var styleSeq = oxml.NewSequence(
	"w:name", "w:aliases", "w:basedOn", "w:next", "w:link", "w:autoRedefine",
	"w:hidden", "w:uiPriority", "w:semiHidden", "w:unhideWhenUsed",
	"w:qFormat", "w:locked", "w:personal", "w:personalCompose",
	"w:personalReply", "w:rsid", "w:pPr", "w:rPr", "w:tblPr", "w:trPr",
	"w:tcPr", "w:tblStylePr",
)

// Style is <w:style>.
type Style struct{ *oxml.Element }

func newStyle(e *oxml.Element) *Style { return &Style{e} }

var (
	styleType    = oxml.NewOptionalAttribute[StyleType]("w:type", stStyleType, StyleParagraph)
	styleID      = oxml.NewOptionalAttribute[string]("w:styleId", simpletypes.STString, "")
	styleDefault = oxml.NewOptionalAttribute[bool]("w:default", simpletypes.OnOff, false)
	styleCustom  = oxml.NewOptionalAttribute[bool]("w:customStyle", simpletypes.OnOff, false)

	styleName       = oxml.NewZeroOrOne("w:name", styleSeq.After("w:name"), newStringValue)
	styleBasedOn    = oxml.NewZeroOrOne("w:basedOn", styleSeq.After("w:basedOn"), newStringValue)
	styleNext       = oxml.NewZeroOrOne("w:next", styleSeq.After("w:next"), newStringValue)
	styleUIPriority = oxml.NewZeroOrOne("w:uiPriority", styleSeq.After("w:uiPriority"), newDecimalValue)
	styleSemiHidden = oxml.NewZeroOrOne("w:semiHidden", styleSeq.After("w:semiHidden"), newOnOff)
	styleQFormat    = oxml.NewZeroOrOne("w:qFormat", styleSeq.After("w:qFormat"), newOnOff)
	stylePPr        = oxml.NewZeroOrOne("w:pPr", styleSeq.After("w:pPr"), newParagraphProperties)
	styleRPr        = oxml.NewZeroOrOne("w:rPr", styleSeq.After("w:rPr"), newRunProperties)
)

// Type returns the style kind; paragraph when unset.
func (s *Style) Type() (StyleType, error) { return styleType.Get(s) }

// ID returns w:styleId.
func (s *Style) ID() string {
	v, _ := styleID.Get(s)
	return v
}

// IsDefault reports whether this is the default style of its kind.
func (s *Style) IsDefault() (bool, error) { return styleDefault.Get(s) }

// SetDefault marks the style as the default of its kind.
func (s *Style) SetDefault(v bool) error { return styleDefault.Set(s, v) }

// Builtin reports whether the style is one of Word's built-in styles.
func (s *Style) Builtin() (bool, error) {
	custom, err := styleCustom.Get(s)
	return !custom, err
}

// Name returns w:name, or "".
func (s *Style) Name() (string, error) { return getString(s, styleName) }

// SetName sets w:name; "" removes it.
func (s *Style) SetName(v string) error { return setString(s, styleName, v) }

// BasedOn returns the parent style id, or "".
func (s *Style) BasedOn() (string, error) { return getString(s, styleBasedOn) }

// SetBasedOn sets the parent style id; "" removes it.
func (s *Style) SetBasedOn(v string) error { return setString(s, styleBasedOn, v) }

// Next returns the id of the style applied to the following paragraph.
func (s *Style) Next() (string, error) { return getString(s, styleNext) }

// SetNext sets the next-paragraph style id.
func (s *Style) SetNext(v string) error { return setString(s, styleNext, v) }

// UIPriority returns w:uiPriority, nil when unset.
func (s *Style) UIPriority() (*int, error) { return getDecimal(s, styleUIPriority) }

// SetUIPriority sets w:uiPriority.
func (s *Style) SetUIPriority(v *int) error { return setDecimal(s, styleUIPriority, v) }

// SemiHidden returns the semi-hidden toggle.
func (s *Style) SemiHidden() (*bool, error) { return getOnOff(s, styleSemiHidden) }

// SetSemiHidden sets the semi-hidden toggle.
func (s *Style) SetSemiHidden(v *bool) error { return setOnOff(s, styleSemiHidden, v) }

// QuickStyle returns the qFormat toggle.
func (s *Style) QuickStyle() (*bool, error) { return getOnOff(s, styleQFormat) }

// SetQuickStyle sets the qFormat toggle.
func (s *Style) SetQuickStyle(v *bool) error { return setOnOff(s, styleQFormat, v) }

// ParagraphProperties returns <w:pPr>, adding it when absent.
func (s *Style) ParagraphProperties() *ParagraphProperties { return stylePPr.GetOrAdd(s) }

// RunProperties returns <w:rPr>, adding it when absent.
func (s *Style) RunProperties() *RunProperties { return styleRPr.GetOrAdd(s) }

func init() {
	oxml.Register("w:styles", func(e *oxml.Element) oxml.Node { return newStyles(e) })
	oxml.Register("w:style", func(e *oxml.Element) oxml.Node { return newStyle(e) })
}
