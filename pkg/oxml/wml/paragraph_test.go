package wml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminschreck/go-docx/pkg/oxml/simpletypes"
)

func TestParagraphPropertiesOrdering(t *testing.T) {
	p := parse(t, `<w:p `+nsDecls+`><w:r><w:t>x</w:t></w:r></w:p>`).(*Paragraph)

	pPr := p.GetOrAddProperties()
	require.NoError(t, pPr.SetAlignment(ptr(JustifyCenter)))
	require.NoError(t, pPr.SetOutlineLevel(ptr(1)))
	require.NoError(t, pPr.GetOrAddSpacing().SetAfter(simpletypes.Twips(120)))
	require.NoError(t, pPr.SetKeepNext(ptr(true)))
	require.NoError(t, pPr.SetStyle("Heading1"))

	assert.Equal(t,
		[]string{"w:pStyle", "w:keepNext", "w:spacing", "w:jc", "w:outlineLvl"},
		tagsOf(pPr.Element))
	assert.Equal(t, []string{"w:pPr", "w:r"}, tagsOf(p.Element))
}

func TestParagraphPropertiesPrecedeLeadingMarkup(t *testing.T) {
	tests := []struct {
		name    string
		leading string
		tag     string
	}{
		{"comment range", `<w:commentRangeStart w:id="0"/>`, "w:commentRangeStart"},
		{"proofing mark", `<w:proofErr w:type="spellStart"/>`, "w:proofErr"},
		{"permission", `<w:permStart w:id="1"/>`, "w:permStart"},
		{"simple field", `<w:fldSimple w:instr="PAGE"/>`, "w:fldSimple"},
		{"custom xml", `<w:customXml w:element="x"/>`, "w:customXml"},
		{"smart tag", `<w:smartTag w:element="place"/>`, "w:smartTag"},
		{"math", `<m:oMath xmlns:m="http://schemas.openxmlformats.org/officeDocument/2006/math"/>`, "m:oMath"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := parse(t, `<w:p `+nsDecls+`>`+tt.leading+`<w:r><w:t>x</w:t></w:r></w:p>`).(*Paragraph)

			require.NoError(t, p.SetStyle("Heading1"))

			assert.Equal(t, []string{"w:pPr", tt.tag, "w:r"}, tagsOf(p.Element))
		})
	}
}

func TestParagraphStyle(t *testing.T) {
	doc := NewDocument()
	body, err := doc.Body()
	require.NoError(t, err)
	p := body.AddParagraph()

	style, err := p.Style()
	require.NoError(t, err)
	assert.Equal(t, "", style)
	assert.Nil(t, p.Properties(), "reading must not create pPr")

	require.NoError(t, p.SetStyle("Title"))
	style, err = p.Style()
	require.NoError(t, err)
	assert.Equal(t, "Title", style)

	p.AddRun("x")
	assert.Equal(t, []string{"w:pPr", "w:r"}, tagsOf(p.Element))

	require.NoError(t, p.SetStyle(""))
	assert.Nil(t, p.Properties().FirstChild("w:pStyle"))
}

func TestParagraphStyleWithForeignPrefix(t *testing.T) {
	p := parse(t, `<ns0:p xmlns:ns0="http://schemas.openxmlformats.org/wordprocessingml/2006/main">`+
		`<ns0:pPr><ns0:pStyle ns0:val="Heading1"/></ns0:pPr></ns0:p>`).(*Paragraph)

	style, err := p.Style()
	require.NoError(t, err)
	assert.Equal(t, "Heading1", style)

	require.NoError(t, p.SetStyle("Title"))
	out, err := p.XML()
	require.NoError(t, err)
	assert.Contains(t, out, `<ns0:pStyle ns0:val="Title"/>`)
}

func TestParagraphToggles(t *testing.T) {
	p := parse(t, `<w:p `+nsDecls+`><w:pPr><w:keepNext w:val="0"/><w:widowControl/></w:pPr></w:p>`).(*Paragraph)
	pPr := p.Properties()
	require.NotNil(t, pPr)

	tests := []struct {
		name string
		get  func() (*bool, error)
		want *bool
	}{
		{"explicit off", pPr.KeepNext, ptr(false)},
		{"bare element is on", pPr.WidowControl, ptr(true)},
		{"absent is inherited", pPr.KeepLines, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.get()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	require.NoError(t, pPr.SetKeepNext(ptr(true)))
	_, hasVal := pPr.FirstChild("w:keepNext").Attr("w:val")
	assert.False(t, hasVal)

	require.NoError(t, pPr.SetWidowControl(nil))
	assert.Nil(t, pPr.FirstChild("w:widowControl"))
}

func TestSpacingAndIndentation(t *testing.T) {
	p := parse(t, `<w:p `+nsDecls+`/>`).(*Paragraph)
	pPr := p.GetOrAddProperties()

	sp := pPr.GetOrAddSpacing()
	require.NoError(t, sp.SetBefore(simpletypes.Pt(12)))
	require.NoError(t, sp.SetLine(360, LineRuleAuto))
	v, ok := sp.Attr("w:before")
	assert.True(t, ok)
	assert.Equal(t, "240", v)
	_, ok = sp.Attr("w:lineRule")
	assert.False(t, ok, "auto rule is the default and omitted")

	require.NoError(t, sp.SetLine(280, LineRuleExact))
	line, rule, err := sp.Line()
	require.NoError(t, err)
	assert.Equal(t, 280, line)
	assert.Equal(t, LineRuleExact, rule)

	ind := pPr.GetOrAddIndentation()
	require.NoError(t, ind.SetFirstLine(-simpletypes.Twips(360)))
	_, hasFirst := ind.Attr("w:firstLine")
	hanging, hasHanging := ind.Attr("w:hanging")
	assert.False(t, hasFirst)
	assert.True(t, hasHanging)
	assert.Equal(t, "360", hanging)

	first, err := ind.FirstLine()
	require.NoError(t, err)
	assert.Equal(t, -simpletypes.Twips(360), first)

	require.NoError(t, ind.SetLeft(-simpletypes.Twips(100)))
	left, err := ind.Left()
	require.NoError(t, err)
	assert.Equal(t, int64(-100), left.Twips())
}

func TestParagraphText(t *testing.T) {
	p := parse(t, `<w:p `+nsDecls+`>
		<w:r><w:t>Hello </w:t></w:r>
		<w:hyperlink r:id="rId4"><w:r><w:t>world</w:t></w:r></w:hyperlink>
		<w:r><w:tab/><w:t>!</w:t></w:r>
	</w:p>`).(*Paragraph)

	assert.Equal(t, "Hello world\t!", p.GetText())
	assert.Len(t, p.Runs(), 2)
	require.Len(t, p.Hyperlinks(), 1)
	assert.Equal(t, "rId4", p.Hyperlinks()[0].ID())

	p.Clear()
	assert.Equal(t, "", p.GetText())
	assert.Empty(t, p.Children())
}

func TestAddHyperlink(t *testing.T) {
	p := parse(t, `<w:p `+nsDecls+`/>`).(*Paragraph)
	h, err := p.AddHyperlink("rId9", "docs")
	require.NoError(t, err)
	assert.Equal(t, "rId9", h.ID())
	assert.Equal(t, "docs", h.GetText())
	assert.Equal(t, []string{"w:hyperlink"}, tagsOf(p.Element))

	require.NoError(t, h.SetAnchor("_Toc1"))
	assert.Equal(t, "_Toc1", h.Anchor())
	require.NoError(t, h.SetAnchor(""))
	assert.Equal(t, "", h.Anchor())
	require.NoError(t, h.SetID(""))
	_, ok := h.Attr("r:id")
	assert.False(t, ok)
}

func TestInsertParagraphBefore(t *testing.T) {
	doc := NewDocument()
	body, err := doc.Body()
	require.NoError(t, err)
	first := body.AddParagraph()
	first.AddRun("second")

	inserted := first.InsertParagraphBefore()
	inserted.AddRun("first")

	ps := body.Paragraphs()
	require.Len(t, ps, 2)
	assert.True(t, ps[0].Same(inserted))
	assert.Equal(t, "first\nsecond", body.GetText())
}
