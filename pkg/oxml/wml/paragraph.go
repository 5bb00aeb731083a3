package wml

import (
	"strings"

	"github.com/benjaminschreck/go-docx/pkg/oxml"
	"github.com/benjaminschreck/go-docx/pkg/oxml/simpletypes"
)

// Paragraph is <w:p>.
type Paragraph struct{ *oxml.Element }

func newParagraph(e *oxml.Element) *Paragraph { return &Paragraph{e} }

func (p *Paragraph) isBlockItem() {}

// pPr leads the paragraph. Runs and hyperlinks interleave with the other
// inline content, so new ones are appended.
var (
	paragraphPPr       = oxml.NewLeadingZeroOrOne("w:pPr", newParagraphProperties)
	paragraphR         = oxml.NewZeroOrMore("w:r", nil, newRun)
	paragraphHyperlink = oxml.NewZeroOrMore("w:hyperlink", nil, newHyperlink)
)

// Properties returns <w:pPr>, or nil.
func (p *Paragraph) Properties() *ParagraphProperties { return paragraphPPr.Get(p) }

// GetOrAddProperties returns <w:pPr>, adding it first in the paragraph
// when absent.
func (p *Paragraph) GetOrAddProperties() *ParagraphProperties { return paragraphPPr.GetOrAdd(p) }

// Runs returns the direct child runs, not those inside hyperlinks.
func (p *Paragraph) Runs() []*Run { return paragraphR.All(p) }

// Hyperlinks returns the direct child hyperlinks.
func (p *Paragraph) Hyperlinks() []*Hyperlink { return paragraphHyperlink.All(p) }

// AddRun appends a run holding text, which may contain tabs and newlines.
func (p *Paragraph) AddRun(text string) *Run {
	r := paragraphR.Add(p)
	if text != "" {
		r.SetText(text)
	}
	return r
}

// AddHyperlink appends a hyperlink citing relationship rID, with one run of
// text.
func (p *Paragraph) AddHyperlink(rID, text string) (*Hyperlink, error) {
	h := newHyperlink(oxml.NewElement("w:hyperlink"))
	if err := h.SetID(rID); err != nil {
		return nil, err
	}
	paragraphHyperlink.Insert(p, h)
	r := paragraphR.Add(h)
	r.SetText(text)
	return h, nil
}

// InsertParagraphBefore inserts a new sibling paragraph before p.
func (p *Paragraph) InsertParagraphBefore() *Paragraph {
	np := newParagraph(oxml.NewElement("w:p"))
	p.AddPrevious(np)
	return np
}

// Style returns the paragraph style id, or "".
func (p *Paragraph) Style() (string, error) {
	pPr := p.Properties()
	if pPr == nil {
		return "", nil
	}
	return pPr.Style()
}

// SetStyle sets the paragraph style id; "" removes it.
func (p *Paragraph) SetStyle(id string) error {
	if id == "" {
		if pPr := p.Properties(); pPr != nil {
			return pPr.SetStyle("")
		}
		return nil
	}
	return p.GetOrAddProperties().SetStyle(id)
}

// GetText returns the concatenated text of runs and hyperlinks in order.
func (p *Paragraph) GetText() string {
	var sb strings.Builder
	for _, c := range p.Children("w:r", "w:hyperlink") {
		switch v := oxml.Wrap(c).(type) {
		case *Run:
			sb.WriteString(v.GetText())
		case *Hyperlink:
			sb.WriteString(v.GetText())
		}
	}
	return sb.String()
}

// Clear removes every run and hyperlink, keeping paragraph properties.
func (p *Paragraph) Clear() {
	for _, c := range p.Children() {
		if !c.Is("w:pPr") {
			p.Remove(c)
		}
	}
}

var pPrSeq = oxml.NewSequence(
	"w:pStyle", "w:keepNext", "w:keepLines", "w:pageBreakBefore", "w:framePr",
	"w:widowControl", "w:numPr", "w:suppressLineNumbers", "w:pBdr", "w:shd",
	"w:tabs", "w:suppressAutoHyphens", "w:kinsoku", "w:wordWrap",
	"w:overflowPunct", "w:topLinePunct", "w:autoSpaceDE", "w:autoSpaceDN",
	"w:bidi", "w:adjustRightInd", "w:snapToGrid", "w:spacing", "w:ind",
	"w:contextualSpacing", "w:mirrorIndents", "w:suppressOverlap", "w:jc",
	"w:textDirection", "w:textAlignment", "w:textboxTightWrap",
	"w:outlineLvl", "w:divId", "w:cnfStyle", "w:rPr", "w:sectPr",
	"w:pPrChange",
)

// ParagraphProperties is <w:pPr>.
type ParagraphProperties struct{ *oxml.Element }

func newParagraphProperties(e *oxml.Element) *ParagraphProperties {
	return &ParagraphProperties{e}
}

var (
	pPrStyle           = oxml.NewZeroOrOne("w:pStyle", pPrSeq.After("w:pStyle"), newStringValue)
	pPrKeepNext        = oxml.NewZeroOrOne("w:keepNext", pPrSeq.After("w:keepNext"), newOnOff)
	pPrKeepLines       = oxml.NewZeroOrOne("w:keepLines", pPrSeq.After("w:keepLines"), newOnOff)
	pPrPageBreakBefore = oxml.NewZeroOrOne("w:pageBreakBefore", pPrSeq.After("w:pageBreakBefore"), newOnOff)
	pPrWidowControl    = oxml.NewZeroOrOne("w:widowControl", pPrSeq.After("w:widowControl"), newOnOff)
	pPrSpacing         = oxml.NewZeroOrOne("w:spacing", pPrSeq.After("w:spacing"), newSpacing)
	pPrInd             = oxml.NewZeroOrOne("w:ind", pPrSeq.After("w:ind"), newIndentation)
	pPrJc              = oxml.NewZeroOrOne("w:jc", pPrSeq.After("w:jc"), newAlignment)
	pPrOutlineLvl      = oxml.NewZeroOrOne("w:outlineLvl", pPrSeq.After("w:outlineLvl"), newDecimalValue)
	pPrSectPr          = oxml.NewZeroOrOne("w:sectPr", pPrSeq.After("w:sectPr"), newSectionProperties)
)

// Style returns the w:pStyle id, or "".
func (p *ParagraphProperties) Style() (string, error) { return getString(p, pPrStyle) }

// SetStyle sets w:pStyle; "" removes it.
func (p *ParagraphProperties) SetStyle(id string) error { return setString(p, pPrStyle, id) }

// KeepNext returns the keep-with-next toggle, nil when unset.
func (p *ParagraphProperties) KeepNext() (*bool, error) { return getOnOff(p, pPrKeepNext) }

// SetKeepNext sets the keep-with-next toggle; nil removes it.
func (p *ParagraphProperties) SetKeepNext(v *bool) error { return setOnOff(p, pPrKeepNext, v) }

// KeepLines returns the keep-lines-together toggle.
func (p *ParagraphProperties) KeepLines() (*bool, error) { return getOnOff(p, pPrKeepLines) }

// SetKeepLines sets the keep-lines-together toggle.
func (p *ParagraphProperties) SetKeepLines(v *bool) error { return setOnOff(p, pPrKeepLines, v) }

// PageBreakBefore returns the page-break-before toggle.
func (p *ParagraphProperties) PageBreakBefore() (*bool, error) {
	return getOnOff(p, pPrPageBreakBefore)
}

// SetPageBreakBefore sets the page-break-before toggle.
func (p *ParagraphProperties) SetPageBreakBefore(v *bool) error {
	return setOnOff(p, pPrPageBreakBefore, v)
}

// WidowControl returns the widow-control toggle.
func (p *ParagraphProperties) WidowControl() (*bool, error) { return getOnOff(p, pPrWidowControl) }

// SetWidowControl sets the widow-control toggle.
func (p *ParagraphProperties) SetWidowControl(v *bool) error {
	return setOnOff(p, pPrWidowControl, v)
}

// Alignment returns the justification, nil when inherited.
func (p *ParagraphProperties) Alignment() (*Justification, error) { return getJc(p, pPrJc) }

// SetAlignment sets the justification; nil removes it.
func (p *ParagraphProperties) SetAlignment(v *Justification) error { return setJc(p, pPrJc, v) }

// OutlineLevel returns w:outlineLvl, nil when unset.
func (p *ParagraphProperties) OutlineLevel() (*int, error) { return getDecimal(p, pPrOutlineLvl) }

// SetOutlineLevel sets w:outlineLvl; nil removes it.
func (p *ParagraphProperties) SetOutlineLevel(v *int) error {
	return setDecimal(p, pPrOutlineLvl, v)
}

// Spacing returns <w:spacing>, or nil.
func (p *ParagraphProperties) Spacing() *Spacing { return pPrSpacing.Get(p) }

// GetOrAddSpacing returns <w:spacing>, adding it when absent.
func (p *ParagraphProperties) GetOrAddSpacing() *Spacing { return pPrSpacing.GetOrAdd(p) }

// Indentation returns <w:ind>, or nil.
func (p *ParagraphProperties) Indentation() *Indentation { return pPrInd.Get(p) }

// GetOrAddIndentation returns <w:ind>, adding it when absent.
func (p *ParagraphProperties) GetOrAddIndentation() *Indentation { return pPrInd.GetOrAdd(p) }

// SectionProperties returns a section break carried by this paragraph, or
// nil.
func (p *ParagraphProperties) SectionProperties() *SectionProperties { return pPrSectPr.Get(p) }

// LineSpacingRule is ST_LineSpacingRule.
type LineSpacingRule int

// Line spacing rules.
const (
	LineRuleAuto LineSpacingRule = iota
	LineRuleExact
	LineRuleAtLeast
)

var stLineSpacingRule = simpletypes.NewEnum("ST_LineSpacingRule",
	simpletypes.EnumMember[LineSpacingRule]{Value: LineRuleAuto, XML: "auto", Omit: true},
	simpletypes.EnumMember[LineSpacingRule]{Value: LineRuleExact, XML: "exact"},
	simpletypes.EnumMember[LineSpacingRule]{Value: LineRuleAtLeast, XML: "atLeast"},
)

// Spacing is <w:spacing>. Before, after and exact/at-least line values are
// twips; an auto line value is in 240ths of a line.
type Spacing struct{ *oxml.Element }

func newSpacing(e *oxml.Element) *Spacing { return &Spacing{e} }

var (
	spacingBefore   = oxml.NewOptionalAttribute[simpletypes.Length]("w:before", simpletypes.TwipsMeasure, 0)
	spacingAfter    = oxml.NewOptionalAttribute[simpletypes.Length]("w:after", simpletypes.TwipsMeasure, 0)
	spacingLine     = oxml.NewOptionalAttribute[int]("w:line", simpletypes.DecimalNumber, 0)
	spacingLineRule = oxml.NewOptionalAttribute[LineSpacingRule]("w:lineRule", stLineSpacingRule, LineRuleAuto)
)

// Before returns the space above the paragraph.
func (s *Spacing) Before() (simpletypes.Length, error) { return spacingBefore.Get(s) }

// SetBefore sets the space above the paragraph.
func (s *Spacing) SetBefore(v simpletypes.Length) error { return spacingBefore.Set(s, v) }

// After returns the space below the paragraph.
func (s *Spacing) After() (simpletypes.Length, error) { return spacingAfter.Get(s) }

// SetAfter sets the space below the paragraph.
func (s *Spacing) SetAfter(v simpletypes.Length) error { return spacingAfter.Set(s, v) }

// Line returns the raw w:line value and its rule.
func (s *Spacing) Line() (int, LineSpacingRule, error) {
	line, err := spacingLine.Get(s)
	if err != nil {
		return 0, 0, err
	}
	rule, err := spacingLineRule.Get(s)
	return line, rule, err
}

// SetLine sets w:line and w:lineRule together.
func (s *Spacing) SetLine(line int, rule LineSpacingRule) error {
	if err := spacingLine.Set(s, line); err != nil {
		return err
	}
	return spacingLineRule.Set(s, rule)
}

// Indentation is <w:ind>.
type Indentation struct{ *oxml.Element }

func newIndentation(e *oxml.Element) *Indentation { return &Indentation{e} }

var (
	indLeft      = oxml.NewOptionalAttribute[simpletypes.Length]("w:left", simpletypes.SignedTwipsMeasure, 0)
	indRight     = oxml.NewOptionalAttribute[simpletypes.Length]("w:right", simpletypes.SignedTwipsMeasure, 0)
	indFirstLine = oxml.NewOptionalAttribute[simpletypes.Length]("w:firstLine", simpletypes.TwipsMeasure, 0)
	indHanging   = oxml.NewOptionalAttribute[simpletypes.Length]("w:hanging", simpletypes.TwipsMeasure, 0)
)

// Left returns the left indent.
func (i *Indentation) Left() (simpletypes.Length, error) { return indLeft.Get(i) }

// SetLeft sets the left indent.
func (i *Indentation) SetLeft(v simpletypes.Length) error { return indLeft.Set(i, v) }

// Right returns the right indent.
func (i *Indentation) Right() (simpletypes.Length, error) { return indRight.Get(i) }

// SetRight sets the right indent.
func (i *Indentation) SetRight(v simpletypes.Length) error { return indRight.Set(i, v) }

// FirstLine returns the first-line indent; a hanging indent is returned as
// a negative length.
func (i *Indentation) FirstLine() (simpletypes.Length, error) {
	hanging, present, err := indHanging.Lookup(i)
	if err != nil {
		return 0, err
	}
	if present {
		return -hanging, nil
	}
	return indFirstLine.Get(i)
}

// SetFirstLine sets the first-line indent, writing w:hanging for negative
// values.
func (i *Indentation) SetFirstLine(v simpletypes.Length) error {
	indFirstLine.Clear(i)
	indHanging.Clear(i)
	if v < 0 {
		return indHanging.Set(i, -v)
	}
	return indFirstLine.Set(i, v)
}

// Hyperlink is <w:hyperlink>. An external link cites a relationship with
// r:id; an internal one names a bookmark with w:anchor.
type Hyperlink struct{ *oxml.Element }

func newHyperlink(e *oxml.Element) *Hyperlink { return &Hyperlink{e} }

var (
	hyperlinkID      = oxml.NewOptionalAttribute[string]("r:id", simpletypes.RelID, "")
	hyperlinkAnchor  = oxml.NewOptionalAttribute[string]("w:anchor", simpletypes.STString, "")
	hyperlinkHistory = oxml.NewOptionalAttribute[bool]("w:history", simpletypes.OnOff, false)
	hyperlinkR       = oxml.NewZeroOrMore("w:r", nil, newRun)
)

// ID returns r:id, or "".
func (h *Hyperlink) ID() string {
	v, _ := hyperlinkID.Get(h)
	return v
}

// SetID sets r:id; "" removes it.
func (h *Hyperlink) SetID(rID string) error { return hyperlinkID.Set(h, rID) }

// Anchor returns w:anchor, or "".
func (h *Hyperlink) Anchor() string {
	v, _ := hyperlinkAnchor.Get(h)
	return v
}

// SetAnchor sets w:anchor; "" removes it.
func (h *Hyperlink) SetAnchor(name string) error { return hyperlinkAnchor.Set(h, name) }

// History returns w:history.
func (h *Hyperlink) History() (bool, error) { return hyperlinkHistory.Get(h) }

// SetHistory sets w:history.
func (h *Hyperlink) SetHistory(v bool) error { return hyperlinkHistory.Set(h, v) }

// Runs returns the runs inside the hyperlink.
func (h *Hyperlink) Runs() []*Run { return hyperlinkR.All(h) }

// GetText returns the concatenated text of the hyperlink's runs.
func (h *Hyperlink) GetText() string {
	var sb strings.Builder
	for _, r := range h.Runs() {
		sb.WriteString(r.GetText())
	}
	return sb.String()
}

func init() {
	oxml.Register("w:p", func(e *oxml.Element) oxml.Node { return newParagraph(e) })
	oxml.Register("w:pPr", func(e *oxml.Element) oxml.Node { return newParagraphProperties(e) })
	oxml.Register("w:spacing", func(e *oxml.Element) oxml.Node { return newSpacing(e) })
	oxml.Register("w:ind", func(e *oxml.Element) oxml.Node { return newIndentation(e) })
	oxml.Register("w:hyperlink", func(e *oxml.Element) oxml.Node { return newHyperlink(e) })
}
