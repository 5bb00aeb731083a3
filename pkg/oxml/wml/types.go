package wml

import (
	"github.com/benjaminschreck/go-docx/pkg/oxml"
	"github.com/benjaminschreck/go-docx/pkg/oxml/simpletypes"
)

// BlockItem is implemented by elements that can appear in a block
// container such as the body, a header or a table cell.
type BlockItem interface {
	oxml.Node
	isBlockItem()
}

// OnOff is a toggle property element such as <w:b/>. An absent w:val means
// the toggle is on.
type OnOff struct{ *oxml.Element }

func newOnOff(e *oxml.Element) *OnOff { return &OnOff{e} }

var onOffVal = oxml.NewOptionalAttribute[bool]("w:val", simpletypes.OnOff, true)

// Val returns the toggle state.
func (o *OnOff) Val() (bool, error) { return onOffVal.Get(o) }

// SetVal sets the toggle state; true removes w:val.
func (o *OnOff) SetVal(v bool) error { return onOffVal.Set(o, v) }

// getOnOff reads a tri-state toggle child: nil when absent.
func getOnOff(parent oxml.Node, d oxml.ZeroOrOne[*OnOff]) (*bool, error) {
	o := d.Get(parent)
	if o == nil {
		return nil, nil
	}
	v, err := o.Val()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// setOnOff writes a tri-state toggle child; nil removes it.
func setOnOff(parent oxml.Node, d oxml.ZeroOrOne[*OnOff], v *bool) error {
	if v == nil {
		d.Remove(parent)
		return nil
	}
	return d.GetOrAdd(parent).SetVal(*v)
}

// StringValue is an element whose only content is a required string
// w:val, such as <w:pStyle w:val="Heading1"/>.
type StringValue struct{ *oxml.Element }

func newStringValue(e *oxml.Element) *StringValue { return &StringValue{e} }

var stringVal = oxml.NewRequiredAttribute[string]("w:val", simpletypes.STString)

// Val returns w:val.
func (s *StringValue) Val() (string, error) { return stringVal.Get(s) }

// SetVal sets w:val.
func (s *StringValue) SetVal(v string) error { return stringVal.Set(s, v) }

// getString reads an optional string-valued child: "" when absent.
func getString(parent oxml.Node, d oxml.ZeroOrOne[*StringValue]) (string, error) {
	s := d.Get(parent)
	if s == nil {
		return "", nil
	}
	return s.Val()
}

// setString writes an optional string-valued child; "" removes it.
func setString(parent oxml.Node, d oxml.ZeroOrOne[*StringValue], v string) error {
	if v == "" {
		d.Remove(parent)
		return nil
	}
	return d.GetOrAdd(parent).SetVal(v)
}

// DecimalValue is an element whose only content is a required integer
// w:val, such as <w:uiPriority w:val="9"/>.
type DecimalValue struct{ *oxml.Element }

func newDecimalValue(e *oxml.Element) *DecimalValue { return &DecimalValue{e} }

var decimalVal = oxml.NewRequiredAttribute[int]("w:val", simpletypes.DecimalNumber)

// Val returns w:val.
func (d *DecimalValue) Val() (int, error) { return decimalVal.Get(d) }

// SetVal sets w:val.
func (d *DecimalValue) SetVal(v int) error { return decimalVal.Set(d, v) }

// getDecimal reads an optional integer-valued child.
func getDecimal(parent oxml.Node, d oxml.ZeroOrOne[*DecimalValue]) (*int, error) {
	c := d.Get(parent)
	if c == nil {
		return nil, nil
	}
	v, err := c.Val()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// setDecimal writes an optional integer-valued child; nil removes it.
func setDecimal(parent oxml.Node, d oxml.ZeroOrOne[*DecimalValue], v *int) error {
	if v == nil {
		d.Remove(parent)
		return nil
	}
	return d.GetOrAdd(parent).SetVal(*v)
}

// Justification is the ST_Jc horizontal alignment.
type Justification int

// Justification values.
const (
	JustifyLeft Justification = iota
	JustifyCenter
	JustifyRight
	JustifyBoth
	JustifyDistribute
)

var stJc = simpletypes.NewEnum("ST_Jc",
	simpletypes.EnumMember[Justification]{Value: JustifyLeft, XML: "left"},
	simpletypes.EnumMember[Justification]{Value: JustifyLeft, XML: "start"},
	simpletypes.EnumMember[Justification]{Value: JustifyCenter, XML: "center"},
	simpletypes.EnumMember[Justification]{Value: JustifyRight, XML: "right"},
	simpletypes.EnumMember[Justification]{Value: JustifyRight, XML: "end"},
	simpletypes.EnumMember[Justification]{Value: JustifyBoth, XML: "both"},
	simpletypes.EnumMember[Justification]{Value: JustifyDistribute, XML: "distribute"},
)

// Alignment is <w:jc>, used by paragraphs and tables.
type Alignment struct{ *oxml.Element }

func newAlignment(e *oxml.Element) *Alignment { return &Alignment{e} }

var jcVal = oxml.NewRequiredAttribute[Justification]("w:val", stJc)

// Val returns the alignment.
func (a *Alignment) Val() (Justification, error) { return jcVal.Get(a) }

// SetVal sets the alignment.
func (a *Alignment) SetVal(v Justification) error { return jcVal.Set(a, v) }

func getJc(parent oxml.Node, d oxml.ZeroOrOne[*Alignment]) (*Justification, error) {
	jc := d.Get(parent)
	if jc == nil {
		return nil, nil
	}
	v, err := jc.Val()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func setJc(parent oxml.Node, d oxml.ZeroOrOne[*Alignment], v *Justification) error {
	if v == nil {
		d.Remove(parent)
		return nil
	}
	return d.GetOrAdd(parent).SetVal(*v)
}

func init() {
	for _, tag := range []string{
		"w:b", "w:bCs", "w:i", "w:iCs", "w:caps", "w:smallCaps", "w:strike",
		"w:dstrike", "w:outline", "w:shadow", "w:emboss", "w:imprint",
		"w:noProof", "w:snapToGrid", "w:vanish", "w:webHidden", "w:rtl",
		"w:cs", "w:specVanish", "w:oMath", "w:keepNext", "w:keepLines",
		"w:pageBreakBefore", "w:widowControl", "w:contextualSpacing",
		"w:titlePg", "w:qFormat", "w:semiHidden", "w:unhideWhenUsed",
		"w:hidden", "w:locked", "w:tblHeader", "w:cantSplit", "w:bidi",
	} {
		oxml.Register(tag, func(e *oxml.Element) oxml.Node { return newOnOff(e) })
	}
	for _, tag := range []string{
		"w:pStyle", "w:rStyle", "w:tblStyle", "w:name", "w:basedOn",
		"w:next", "w:link", "w:alias", "w:tag",
	} {
		oxml.Register(tag, func(e *oxml.Element) oxml.Node { return newStringValue(e) })
	}
	for _, tag := range []string{"w:uiPriority", "w:outlineLvl", "w:gridSpan", "w:id"} {
		oxml.Register(tag, func(e *oxml.Element) oxml.Node { return newDecimalValue(e) })
	}
	oxml.Register("w:jc", func(e *oxml.Element) oxml.Node { return newAlignment(e) })
}
