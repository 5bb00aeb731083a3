package wml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminschreck/go-docx/pkg/docxerr"
	"github.com/benjaminschreck/go-docx/pkg/oxml"
	"github.com/benjaminschreck/go-docx/pkg/oxml/simpletypes"
)

func TestNewInlinePicture(t *testing.T) {
	d := NewInlinePicture(1, "rId7", "logo.png", simpletypes.Inches(2), simpletypes.Inches(1))

	blips := d.Blips()
	require.Len(t, blips, 1)
	assert.Equal(t, "rId7", blips[0].Embed())
	assert.Equal(t, "", blips[0].Link())

	cx, cy, err := d.Extent()
	require.NoError(t, err)
	assert.Equal(t, int64(1828800), cx.Emu())
	assert.Equal(t, int64(914400), cy.Emu())

	require.NoError(t, blips[0].SetEmbed("rId8"))

	id, err := d.ShapeID()
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.Equal(t, "rId8", d.Blips()[0].Embed())

	// The drawing must survive a serialize/parse cycle with its namespaces.
	doc := NewDocument()
	body, err := doc.Body()
	require.NoError(t, err)
	body.AddParagraph().AddRun("").AddDrawing(d)

	blob, err := oxml.NewTree(doc).Bytes()
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(blob), `xmlns:pic=`))

	reparsed := parse(t, string(blob)).(*Document)
	body, err = reparsed.Body()
	require.NoError(t, err)
	runs := body.Paragraphs()[0].Runs()
	require.Len(t, runs, 1)
	drawings := runs[0].Drawings()
	require.Len(t, drawings, 1)
	assert.Equal(t, "rId8", drawings[0].Blips()[0].Embed())
}

func TestDocPrIDRange(t *testing.T) {
	tests := []struct {
		id      string
		want    int
		wantErr bool
	}{
		{"7", 7, false},
		{"2147483647", 2147483647, false},
		{"-1", 0, true},
		{"2147483648", 0, true},
		{"x", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			docPr := oxml.NewElement("wp:docPr", "id", tt.id)
			got, err := DocPrID(docPr)
			if tt.wantErr {
				assert.True(t, docxerr.IsInvalidXML(err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := newDrawing(oxml.NewElement("w:drawing")).ShapeID()
	assert.True(t, docxerr.IsInvalidXML(err))
}

func TestWrapReturnsTypedElements(t *testing.T) {
	doc := parse(t, `<w:document `+nsDecls+`><w:body>
		<w:p><w:r><w:rPr><w:b/></w:rPr><w:t>x</w:t></w:r></w:p>
		<w:tbl><w:tblPr/><w:tblGrid/></w:tbl>
		<w:sdt/>
	</w:body></w:document>`)

	_, ok := doc.(*Document)
	require.True(t, ok)

	tests := []struct {
		path  string
		check func(oxml.Node) bool
	}{
		{"w:body", func(n oxml.Node) bool { _, ok := n.(*Body); return ok }},
		{"w:body/w:p", func(n oxml.Node) bool { _, ok := n.(*Paragraph); return ok }},
		{"w:body/w:p/w:r", func(n oxml.Node) bool { _, ok := n.(*Run); return ok }},
		{"w:body/w:p/w:r/w:rPr/w:b", func(n oxml.Node) bool { _, ok := n.(*OnOff); return ok }},
		{"w:body/w:tbl", func(n oxml.Node) bool { _, ok := n.(*Table); return ok }},
		{"w:body/w:sdt", func(n oxml.Node) bool { _, ok := n.(*StructuredDocumentTag); return ok }},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			e := doc.Elem().Find(tt.path)
			require.NotNil(t, e)
			assert.True(t, tt.check(oxml.Wrap(e)))
		})
	}

	p, ok := oxml.As[*Paragraph](doc.Elem().Find("w:body/w:p"))
	require.True(t, ok)
	assert.Equal(t, "x", p.GetText())
}
