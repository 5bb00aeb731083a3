package oxml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminschreck/go-docx/pkg/docxerr"
	"github.com/benjaminschreck/go-docx/pkg/oxml/simpletypes"
)

const wNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`

func mustParse(t *testing.T, s string) *Element {
	t.Helper()
	tree, err := Parse([]byte(s))
	require.NoError(t, err)
	return tree.Root()
}

func childTags(e *Element) []string {
	var tags []string
	for _, c := range e.Children() {
		tags = append(tags, c.Tag())
	}
	return tags
}

func TestGetOrAddChildOrdering(t *testing.T) {
	seq := NewSequence("w:a", "w:b", "w:c")

	tests := []struct {
		name  string
		order []string
	}{
		{"reverse", []string{"w:c", "w:b", "w:a"}},
		{"middle first", []string{"w:b", "w:c", "w:a"}},
		{"forward", []string{"w:a", "w:b", "w:c"}},
		{"last middle", []string{"w:c", "w:a", "w:b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := mustParse(t, `<w:root `+wNS+`/>`)
			for _, tag := range tt.order {
				root.GetOrAddChild(tag, seq.After(tag), nil)
			}
			assert.Equal(t, []string{"w:a", "w:b", "w:c"}, childTags(root))
		})
	}
}

func TestGetOrAddChildIdempotent(t *testing.T) {
	root := mustParse(t, `<w:root `+wNS+`><w:c/></w:root>`)

	first := root.GetOrAddChild("w:b", []string{"w:c"}, nil)
	before, err := root.XML()
	require.NoError(t, err)

	second := root.GetOrAddChild("w:b", []string{"w:c"}, nil)
	after, err := root.XML()
	require.NoError(t, err)

	assert.True(t, first.Same(second))
	assert.Equal(t, before, after)
}

func TestGetOrAddChildFactory(t *testing.T) {
	root := mustParse(t, `<w:root `+wNS+`/>`)
	c := root.GetOrAddChild("w:sz", nil, func() *Element {
		return NewElement("w:sz", "w:val", "24")
	})
	v, ok := c.Attr("w:val")
	assert.True(t, ok)
	assert.Equal(t, "24", v)
}

func TestRemoveChild(t *testing.T) {
	root := mustParse(t, `<w:root `+wNS+`><w:a/><w:b/><w:a/><w:c/></w:root>`)

	assert.True(t, root.RemoveChild("w:a"))
	assert.Equal(t, []string{"w:b", "w:c"}, childTags(root))
	assert.False(t, root.RemoveChild("w:a"))

	assert.Equal(t, 2, root.RemoveAll("w:b", "w:c"))
	assert.Empty(t, root.Children())
}

func TestRemoveAllWithoutTags(t *testing.T) {
	root := mustParse(t, `<w:root `+wNS+`><w:a/><w:b/></w:root>`)

	assert.Equal(t, 0, root.RemoveAll())
	assert.Equal(t, []string{"w:a", "w:b"}, childTags(root))
}

func TestAttrByNamespaceURI(t *testing.T) {
	root := mustParse(t, `<ns0:pStyle xmlns:ns0="http://schemas.openxmlformats.org/wordprocessingml/2006/main" ns0:val="Heading1"/>`)

	v, ok := root.Attr("w:val")
	require.True(t, ok)
	assert.Equal(t, "Heading1", v)

	root.SetAttr("w:val", "Title")
	out, err := root.XML()
	require.NoError(t, err)
	assert.Contains(t, out, `ns0:val="Title"`)
	assert.NotContains(t, out, `w:val`)
	assert.NotContains(t, out, `xmlns:w=`)

	root.RemoveAttr("w:val")
	_, ok = root.Attr("w:val")
	assert.False(t, ok)
	assert.Len(t, root.Etree().Attr, 1, "only the ns0 declaration remains")
}

func TestAttrOtherNamespaceNotMatched(t *testing.T) {
	root := mustParse(t, `<w:b `+wNS+` xmlns:x="urn:example" x:val="0"/>`)

	_, ok := root.Attr("w:val")
	assert.False(t, ok)
}

func TestMatchByNamespaceURI(t *testing.T) {
	root := mustParse(t, `<x:root xmlns:x="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><x:p/></x:root>`)
	p := root.FirstChild("w:p")
	require.NotNil(t, p)
	assert.True(t, p.Is("w:p"))
	assert.False(t, p.Is("a:p"))
}

func TestInsertDeclaresNamespace(t *testing.T) {
	root := mustParse(t, `<w:document `+wNS+`><w:body/></w:document>`)
	body := root.FirstChild("w:body")
	h := NewElement("w:hyperlink")
	h.SetAttr("r:id", "rId4")
	body.Append(h)

	out, err := root.XML()
	require.NoError(t, err)
	assert.Contains(t, out, `xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`)
	assert.Equal(t, 1, strings.Count(out, "xmlns:w="), "redundant w declaration dropped")
}

func TestZeroOrOneDescriptor(t *testing.T) {
	pPr := NewZeroOrOne("w:pPr", []string{"w:r"}, func(e *Element) *Element { return e })
	p := mustParse(t, `<w:p `+wNS+`><w:r/></w:p>`)

	assert.Nil(t, pPr.Get(p))
	assert.False(t, pPr.Present(p))

	got := pPr.GetOrAdd(p)
	assert.True(t, got.Same(pPr.GetOrAdd(p)))
	assert.Equal(t, []string{"w:pPr", "w:r"}, childTags(p))

	pPr.Remove(p)
	assert.Equal(t, []string{"w:r"}, childTags(p))
}

func TestLeadingZeroOrOneDescriptor(t *testing.T) {
	pPr := NewLeadingZeroOrOne("w:pPr", func(e *Element) *Element { return e })
	p := mustParse(t, `<w:p `+wNS+`><w:proofErr w:type="spellStart"/><w:r/></w:p>`)

	got := pPr.GetOrAdd(p)
	assert.True(t, got.Same(pPr.GetOrAdd(p)))
	assert.Equal(t, []string{"w:pPr", "w:proofErr", "w:r"}, childTags(p))

	pPr.Remove(p)
	moved := NewElement("w:pPr")
	p.Append(moved)
	pPr.Insert(p, moved)
	assert.Equal(t, []string{"w:pPr", "w:proofErr", "w:r"}, childTags(p))
}

func TestInsertFirstKeepsLeadingText(t *testing.T) {
	root := mustParse(t, `<w:root `+wNS+`>lead<w:a/></w:root>`)

	root.InsertFirst(NewElement("w:b"))

	assert.Equal(t, []string{"w:b", "w:a"}, childTags(root))
	out, err := root.XML()
	require.NoError(t, err)
	assert.Contains(t, out, `>lead<w:b/><w:a/>`)
}

func TestZeroOrMoreDescriptor(t *testing.T) {
	tr := NewZeroOrMore("w:tr", nil, func(e *Element) *Element { return e })
	gridCol := NewZeroOrMore("w:gridCol", nil, func(e *Element) *Element { return e })
	tbl := mustParse(t, `<w:tbl `+wNS+`><w:tblPr/><w:tblGrid/></w:tbl>`)

	tr.Add(tbl)
	tr.Add(tbl)
	assert.Equal(t, 2, tr.Len(tbl))

	grid := tbl.FirstChild("w:tblGrid")
	gridCol.Add(grid)
	assert.Len(t, gridCol.All(grid), 1)

	tr.RemoveAll(tbl)
	assert.Equal(t, []string{"w:tblPr", "w:tblGrid"}, childTags(tbl))
}

func TestOneAndOnlyOneMissing(t *testing.T) {
	tblPr := NewOneAndOnlyOne("w:tblPr", func(e *Element) *Element { return e })
	tbl := mustParse(t, `<w:tbl `+wNS+`/>`)

	_, err := tblPr.Get(tbl)
	require.Error(t, err)
	assert.True(t, docxerr.IsInvalidXML(err))
	assert.Contains(t, err.Error(), "w:tblPr")
}

func TestOneOrMore(t *testing.T) {
	p := NewOneOrMore("w:p", nil, func(e *Element) *Element { return e })
	tc := mustParse(t, `<w:tc `+wNS+`><w:tcPr/></w:tc>`)

	_, err := p.All(tc)
	assert.True(t, docxerr.IsInvalidXML(err))

	p.Add(tc)
	ps, err := p.All(tc)
	require.NoError(t, err)
	assert.Len(t, ps, 1)
}

func TestZeroOrOneChoice(t *testing.T) {
	choice := NewZeroOrOneChoice([]string{"w:text", "w:date", "w:picture"}, []string{"w:tail"})
	sdtPr := mustParse(t, `<w:sdtPr `+wNS+`><w:date/><w:tail/></w:sdtPr>`)

	active := choice.Get(sdtPr)
	require.NotNil(t, active)
	assert.Equal(t, "w:date", active.Elem().Tag())

	_, err := choice.Replace(sdtPr, "w:picture")
	require.NoError(t, err)
	assert.Equal(t, []string{"w:picture", "w:tail"}, childTags(sdtPr))

	_, err = choice.Replace(sdtPr, "w:tail")
	assert.True(t, docxerr.IsInvalidArgument(err))

	choice.Remove(sdtPr)
	assert.Nil(t, choice.Get(sdtPr))
}

func TestRequiredAttribute(t *testing.T) {
	w := NewRequiredAttribute[simpletypes.Length]("w:w", simpletypes.TwipsMeasure)
	pgSz := mustParse(t, `<w:pgSz `+wNS+`/>`)

	_, err := w.Get(pgSz)
	require.Error(t, err)
	assert.True(t, docxerr.IsInvalidXML(err))
	assert.Contains(t, err.Error(), "w:pgSz")
	assert.Contains(t, err.Error(), "w:w")

	require.NoError(t, w.Set(pgSz, simpletypes.Twips(12240)))
	got, err := w.Get(pgSz)
	require.NoError(t, err)
	assert.Equal(t, int64(12240), got.Twips())

	pgSz.SetAttr("w:w", "wide")
	_, err = w.Get(pgSz)
	assert.True(t, docxerr.IsInvalidXML(err))
}

func TestOptionalAttributeDefault(t *testing.T) {
	val := NewOptionalAttribute[bool]("w:val", simpletypes.OnOff, true)
	b := mustParse(t, `<w:b `+wNS+`/>`)

	v, err := val.Get(b)
	require.NoError(t, err)
	assert.True(t, v, "absent on/off value means true")

	require.NoError(t, val.Set(b, false))
	raw, ok := b.Attr("w:val")
	assert.True(t, ok)
	assert.Equal(t, "0", raw)

	require.NoError(t, val.Set(b, true))
	_, ok = b.Attr("w:val")
	assert.False(t, ok, "default value removes the attribute")
}

func TestSequenceAfter(t *testing.T) {
	seq := NewSequence("w:a", "w:b", "w:c")
	assert.Equal(t, []string{"w:b", "w:c"}, seq.After("w:a"))
	assert.Nil(t, seq.After("w:c"))
	assert.Nil(t, seq.After("w:z"))
}
