package wml

import (
	"strings"

	"github.com/benjaminschreck/go-docx/pkg/oxml"
	"github.com/benjaminschreck/go-docx/pkg/oxml/simpletypes"
)

// Run is <w:r>, a contiguous stretch of content sharing one set of run
// properties.
type Run struct{ *oxml.Element }

func newRun(e *oxml.Element) *Run { return &Run{e} }

// Run content after rPr interleaves freely.
var (
	runRPr     = oxml.NewLeadingZeroOrOne("w:rPr", newRunProperties)
	runT       = oxml.NewZeroOrMore("w:t", nil, newText)
	runBr      = oxml.NewZeroOrMore("w:br", nil, newBreak)
	runTab     = oxml.NewZeroOrMore("w:tab", nil, func(e *oxml.Element) *oxml.Element { return e })
	runDrawing = oxml.NewZeroOrMore("w:drawing", nil, newDrawing)
)

// Properties returns <w:rPr>, or nil.
func (r *Run) Properties() *RunProperties { return runRPr.Get(r) }

// GetOrAddProperties returns <w:rPr>, adding it first in the run when
// absent.
func (r *Run) GetOrAddProperties() *RunProperties { return runRPr.GetOrAdd(r) }

// AddText appends a <w:t>, preserving leading and trailing spaces.
func (r *Run) AddText(s string) *Text {
	t := runT.Add(r)
	t.SetValue(s)
	return t
}

// AddBreak appends a <w:br> of the given type.
func (r *Run) AddBreak(kind BreakType) *Break {
	br := runBr.Add(r)
	_ = br.SetType(kind)
	return br
}

// AddTab appends a <w:tab/>.
func (r *Run) AddTab() { runTab.Add(r) }

// AddDrawing appends d to the run.
func (r *Run) AddDrawing(d *Drawing) *Drawing { return runDrawing.Insert(r, d) }

// Drawings returns the drawings in the run.
func (r *Run) Drawings() []*Drawing { return runDrawing.All(r) }

// Style returns the character style id, or "".
func (r *Run) Style() (string, error) {
	rPr := r.Properties()
	if rPr == nil {
		return "", nil
	}
	return rPr.Style()
}

// SetStyle sets the character style id; "" removes it.
func (r *Run) SetStyle(id string) error {
	if id == "" {
		if rPr := r.Properties(); rPr != nil {
			return rPr.SetStyle("")
		}
		return nil
	}
	return r.GetOrAddProperties().SetStyle(id)
}

// GetText returns the run's text. Tabs become "\t"; line breaks and
// carriage returns become "\n"; page and column breaks are skipped.
func (r *Run) GetText() string {
	var sb strings.Builder
	for _, c := range r.Children() {
		switch {
		case c.Is("w:t"):
			sb.WriteString(c.Text())
		case c.Is("w:tab"):
			sb.WriteByte('\t')
		case c.Is("w:cr"):
			sb.WriteByte('\n')
		case c.Is("w:br"):
			if kind, err := newBreak(c).Type(); err == nil && kind == BreakTextWrapping {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}

// SetText replaces the run's content, keeping its properties. "\t" is
// written as <w:tab/> and "\n" or "\r" as <w:br/>.
func (r *Run) SetText(s string) {
	r.ClearContent()
	var pending strings.Builder
	flush := func() {
		if pending.Len() > 0 {
			r.AddText(pending.String())
			pending.Reset()
		}
	}
	for _, ch := range s {
		switch ch {
		case '\t':
			flush()
			r.AddTab()
		case '\n', '\r':
			flush()
			r.AddBreak(BreakTextWrapping)
		default:
			pending.WriteRune(ch)
		}
	}
	flush()
}

// ClearContent removes everything except <w:rPr>.
func (r *Run) ClearContent() {
	for _, c := range r.Children() {
		if !c.Is("w:rPr") {
			r.Remove(c)
		}
	}
}

// Text is <w:t>.
type Text struct{ *oxml.Element }

func newText(e *oxml.Element) *Text { return &Text{e} }

// Value returns the text content.
func (t *Text) Value() string { return t.Text() }

// SetValue sets the text content, adding xml:space="preserve" when s has
// leading or trailing whitespace.
func (t *Text) SetValue(s string) {
	t.SetText(s)
	if strings.TrimSpace(s) != s {
		t.SetAttr("xml:space", "preserve")
	} else {
		t.RemoveAttr("xml:space")
	}
}

// BreakType is ST_BrType.
type BreakType int

// Break types.
const (
	BreakTextWrapping BreakType = iota
	BreakPage
	BreakColumn
)

var stBrType = simpletypes.NewEnum("ST_BrType",
	simpletypes.EnumMember[BreakType]{Value: BreakTextWrapping, XML: "textWrapping", Omit: true},
	simpletypes.EnumMember[BreakType]{Value: BreakPage, XML: "page"},
	simpletypes.EnumMember[BreakType]{Value: BreakColumn, XML: "column"},
)

// Break is <w:br>.
type Break struct{ *oxml.Element }

func newBreak(e *oxml.Element) *Break { return &Break{e} }

var brType = oxml.NewOptionalAttribute[BreakType]("w:type", stBrType, BreakTextWrapping)

// Type returns the break type; an absent w:type is a line break.
func (b *Break) Type() (BreakType, error) { return brType.Get(b) }

// SetType sets the break type.
func (b *Break) SetType(v BreakType) error { return brType.Set(b, v) }

var rPrSeq = oxml.NewSequence(
	"w:rStyle", "w:rFonts", "w:b", "w:bCs", "w:i", "w:iCs", "w:caps",
	"w:smallCaps", "w:strike", "w:dstrike", "w:outline", "w:shadow",
	"w:emboss", "w:imprint", "w:noProof", "w:snapToGrid", "w:vanish",
	"w:webHidden", "w:color", "w:spacing", "w:w", "w:kern", "w:position",
	"w:sz", "w:szCs", "w:highlight", "w:u", "w:effect", "w:bdr", "w:shd",
	"w:fitText", "w:vertAlign", "w:rtl", "w:cs", "w:em", "w:lang",
	"w:eastAsianLayout", "w:specVanish", "w:oMath",
)

// RunProperties is <w:rPr>.
type RunProperties struct{ *oxml.Element }

func newRunProperties(e *oxml.Element) *RunProperties { return &RunProperties{e} }

var (
	rPrStyle     = oxml.NewZeroOrOne("w:rStyle", rPrSeq.After("w:rStyle"), newStringValue)
	rPrB         = oxml.NewZeroOrOne("w:b", rPrSeq.After("w:b"), newOnOff)
	rPrI         = oxml.NewZeroOrOne("w:i", rPrSeq.After("w:i"), newOnOff)
	rPrCaps      = oxml.NewZeroOrOne("w:caps", rPrSeq.After("w:caps"), newOnOff)
	rPrSmallCaps = oxml.NewZeroOrOne("w:smallCaps", rPrSeq.After("w:smallCaps"), newOnOff)
	rPrStrike    = oxml.NewZeroOrOne("w:strike", rPrSeq.After("w:strike"), newOnOff)
	rPrVanish    = oxml.NewZeroOrOne("w:vanish", rPrSeq.After("w:vanish"), newOnOff)
	rPrColor     = oxml.NewZeroOrOne("w:color", rPrSeq.After("w:color"), newColor)
	rPrSz        = oxml.NewZeroOrOne("w:sz", rPrSeq.After("w:sz"), newSize)
	rPrU         = oxml.NewZeroOrOne("w:u", rPrSeq.After("w:u"), newUnderline)
)

// Style returns the w:rStyle id, or "".
func (p *RunProperties) Style() (string, error) { return getString(p, rPrStyle) }

// SetStyle sets w:rStyle; "" removes it.
func (p *RunProperties) SetStyle(id string) error { return setString(p, rPrStyle, id) }

// Bold returns the bold toggle, nil when inherited.
func (p *RunProperties) Bold() (*bool, error) { return getOnOff(p, rPrB) }

// SetBold sets the bold toggle; nil removes it.
func (p *RunProperties) SetBold(v *bool) error { return setOnOff(p, rPrB, v) }

// Italic returns the italic toggle.
func (p *RunProperties) Italic() (*bool, error) { return getOnOff(p, rPrI) }

// SetItalic sets the italic toggle.
func (p *RunProperties) SetItalic(v *bool) error { return setOnOff(p, rPrI, v) }

// Caps returns the all-caps toggle.
func (p *RunProperties) Caps() (*bool, error) { return getOnOff(p, rPrCaps) }

// SetCaps sets the all-caps toggle.
func (p *RunProperties) SetCaps(v *bool) error { return setOnOff(p, rPrCaps, v) }

// SmallCaps returns the small-caps toggle.
func (p *RunProperties) SmallCaps() (*bool, error) { return getOnOff(p, rPrSmallCaps) }

// SetSmallCaps sets the small-caps toggle.
func (p *RunProperties) SetSmallCaps(v *bool) error { return setOnOff(p, rPrSmallCaps, v) }

// Strike returns the strikethrough toggle.
func (p *RunProperties) Strike() (*bool, error) { return getOnOff(p, rPrStrike) }

// SetStrike sets the strikethrough toggle.
func (p *RunProperties) SetStrike(v *bool) error { return setOnOff(p, rPrStrike, v) }

// Hidden returns the vanish toggle.
func (p *RunProperties) Hidden() (*bool, error) { return getOnOff(p, rPrVanish) }

// SetHidden sets the vanish toggle.
func (p *RunProperties) SetHidden(v *bool) error { return setOnOff(p, rPrVanish, v) }

// Color returns the text color, nil when inherited.
func (p *RunProperties) Color() (*simpletypes.HexColor, error) {
	c := rPrColor.Get(p)
	if c == nil {
		return nil, nil
	}
	v, err := c.Val()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// SetColor sets the text color; nil removes it.
func (p *RunProperties) SetColor(v *simpletypes.HexColor) error {
	if v == nil {
		rPrColor.Remove(p)
		return nil
	}
	return rPrColor.GetOrAdd(p).SetVal(*v)
}

// Size returns the font size, nil when inherited.
func (p *RunProperties) Size() (*simpletypes.Length, error) {
	sz := rPrSz.Get(p)
	if sz == nil {
		return nil, nil
	}
	v, err := sz.Val()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// SetSize sets the font size; nil removes it.
func (p *RunProperties) SetSize(v *simpletypes.Length) error {
	if v == nil {
		rPrSz.Remove(p)
		return nil
	}
	return rPrSz.GetOrAdd(p).SetVal(*v)
}

// Underline returns the underline style, nil when inherited.
func (p *RunProperties) Underline() (*UnderlineType, error) {
	u := rPrU.Get(p)
	if u == nil {
		return nil, nil
	}
	v, err := u.Val()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// SetUnderline sets the underline style; nil removes it.
func (p *RunProperties) SetUnderline(v *UnderlineType) error {
	if v == nil {
		rPrU.Remove(p)
		return nil
	}
	return rPrU.GetOrAdd(p).SetVal(*v)
}

// Color is <w:color>.
type Color struct{ *oxml.Element }

func newColor(e *oxml.Element) *Color { return &Color{e} }

var colorVal = oxml.NewRequiredAttribute[simpletypes.HexColor]("w:val", simpletypes.STHexColor)

// Val returns w:val.
func (c *Color) Val() (simpletypes.HexColor, error) { return colorVal.Get(c) }

// SetVal sets w:val.
func (c *Color) SetVal(v simpletypes.HexColor) error { return colorVal.Set(c, v) }

// Size is <w:sz> or <w:szCs>, measured in half-points.
type Size struct{ *oxml.Element }

func newSize(e *oxml.Element) *Size { return &Size{e} }

var sizeVal = oxml.NewRequiredAttribute[simpletypes.Length]("w:val", simpletypes.HpsMeasure)

// Val returns the size.
func (s *Size) Val() (simpletypes.Length, error) { return sizeVal.Get(s) }

// SetVal sets the size.
func (s *Size) SetVal(v simpletypes.Length) error { return sizeVal.Set(s, v) }

// UnderlineType is ST_Underline.
type UnderlineType int

// Underline styles.
const (
	UnderlineNone UnderlineType = iota
	UnderlineSingle
	UnderlineWords
	UnderlineDouble
	UnderlineThick
	UnderlineDotted
	UnderlineDash
	UnderlineWave
)

var stUnderline = simpletypes.NewEnum("ST_Underline",
	simpletypes.EnumMember[UnderlineType]{Value: UnderlineNone, XML: "none"},
	simpletypes.EnumMember[UnderlineType]{Value: UnderlineSingle, XML: "single"},
	simpletypes.EnumMember[UnderlineType]{Value: UnderlineWords, XML: "words"},
	simpletypes.EnumMember[UnderlineType]{Value: UnderlineDouble, XML: "double"},
	simpletypes.EnumMember[UnderlineType]{Value: UnderlineThick, XML: "thick"},
	simpletypes.EnumMember[UnderlineType]{Value: UnderlineDotted, XML: "dotted"},
	simpletypes.EnumMember[UnderlineType]{Value: UnderlineDash, XML: "dash"},
	simpletypes.EnumMember[UnderlineType]{Value: UnderlineWave, XML: "wave"},
)

// Underline is <w:u>.
type Underline struct{ *oxml.Element }

func newUnderline(e *oxml.Element) *Underline { return &Underline{e} }

var underlineVal = oxml.NewOptionalAttribute[UnderlineType]("w:val", stUnderline, UnderlineNone)

// Val returns the underline style.
func (u *Underline) Val() (UnderlineType, error) { return underlineVal.Get(u) }

// SetVal sets the underline style. UnderlineNone is written explicitly so
// it can override an inherited underline.
func (u *Underline) SetVal(v UnderlineType) error {
	if v == UnderlineNone {
		u.SetAttr("w:val", "none")
		return nil
	}
	return underlineVal.Set(u, v)
}

func init() {
	oxml.Register("w:r", func(e *oxml.Element) oxml.Node { return newRun(e) })
	oxml.Register("w:rPr", func(e *oxml.Element) oxml.Node { return newRunProperties(e) })
	oxml.Register("w:t", func(e *oxml.Element) oxml.Node { return newText(e) })
	oxml.Register("w:br", func(e *oxml.Element) oxml.Node { return newBreak(e) })
	oxml.Register("w:color", func(e *oxml.Element) oxml.Node { return newColor(e) })
	oxml.Register("w:sz", func(e *oxml.Element) oxml.Node { return newSize(e) })
	oxml.Register("w:szCs", func(e *oxml.Element) oxml.Node { return newSize(e) })
	oxml.Register("w:u", func(e *oxml.Element) oxml.Node { return newUnderline(e) })
}
