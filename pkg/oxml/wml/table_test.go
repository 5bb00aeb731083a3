package wml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminschreck/go-docx/pkg/docxerr"
)

func TestNewTable(t *testing.T) {
	tbl := NewTable(2, 3, 9000)

	assert.Equal(t, []string{"w:tblPr", "w:tblGrid", "w:tr", "w:tr"}, tagsOf(tbl.Element))

	tblPr, err := tbl.Properties()
	require.NoError(t, err)
	assert.Equal(t, []string{"w:tblStyle", "w:tblW", "w:tblLook"}, tagsOf(tblPr.Element))
	style, err := tblPr.Style()
	require.NoError(t, err)
	assert.Equal(t, "TableGrid", style)

	grid, err := tbl.Grid()
	require.NoError(t, err)
	cols := grid.Columns()
	require.Len(t, cols, 3)
	w, err := cols[0].Width()
	require.NoError(t, err)
	assert.Equal(t, int64(3000), w.Twips())

	for _, tr := range tbl.Rows() {
		cells := tr.Cells()
		require.Len(t, cells, 3)
		for _, tc := range cells {
			_, err := tc.FirstParagraph()
			assert.NoError(t, err)
			v, kind, err := tc.Properties().Width().Get()
			require.NoError(t, err)
			assert.Equal(t, 3000, v)
			assert.Equal(t, WidthDxa, kind)
		}
	}
}

func TestTableCellWithGridSpan(t *testing.T) {
	tbl := parse(t, `<w:tbl `+nsDecls+`>
		<w:tblPr/><w:tblGrid><w:gridCol/><w:gridCol/><w:gridCol/></w:tblGrid>
		<w:tr>
			<w:tc><w:tcPr><w:gridSpan w:val="2"/></w:tcPr><w:p><w:r><w:t>wide</w:t></w:r></w:p></w:tc>
			<w:tc><w:p><w:r><w:t>narrow</w:t></w:r></w:p></w:tc>
		</w:tr>
	</w:tbl>`).(*Table)

	tests := []struct {
		name    string
		row     int
		col     int
		want    string
		wantErr bool
	}{
		{"first grid column", 0, 0, "wide", false},
		{"spanned grid column", 0, 1, "wide", false},
		{"after span", 0, 2, "narrow", false},
		{"column out of range", 0, 3, "", true},
		{"row out of range", 1, 0, "", true},
		{"negative row", -1, 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, err := tbl.Cell(tt.row, tt.col)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, docxerr.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tc.GetText())
		})
	}

	assert.Equal(t, "wide\tnarrow", tbl.GetText())
}

func TestTableCellProperties(t *testing.T) {
	tbl := NewTable(1, 1, 1000)
	tc, err := tbl.Cell(0, 0)
	require.NoError(t, err)
	tcPr := tc.GetOrAddProperties()

	tcPr.SetVerticalAlign("center")
	tcPr.SetVMerge("restart")
	require.NoError(t, tcPr.SetGridSpan(2))

	assert.Equal(t, []string{"w:tcW", "w:gridSpan", "w:vMerge", "w:vAlign"}, tagsOf(tcPr.Element))
	assert.Equal(t, "restart", tcPr.VMerge())
	assert.Equal(t, "center", tcPr.VerticalAlign())

	tcPr.SetVMerge("continue")
	assert.Equal(t, "continue", tcPr.VMerge())
	_, ok := tcPr.FirstChild("w:vMerge").Attr("w:val")
	assert.False(t, ok)

	require.NoError(t, tcPr.SetGridSpan(1))
	assert.Nil(t, tcPr.FirstChild("w:gridSpan"))
	span, err := tc.GridSpan()
	require.NoError(t, err)
	assert.Equal(t, 1, span)
}

func TestTableCellPropertiesPrecedeLeadingMarkup(t *testing.T) {
	tc := parse(t, `<w:tc `+nsDecls+`><w:bookmarkStart w:id="0" w:name="x"/><w:p/></w:tc>`).(*TableCell)

	tc.GetOrAddProperties().SetVerticalAlign("center")

	assert.Equal(t, []string{"w:tcPr", "w:bookmarkStart", "w:p"}, tagsOf(tc.Element))
}

func TestTableMissingRequiredChild(t *testing.T) {
	tbl := parse(t, `<w:tbl `+nsDecls+`><w:tblGrid/></w:tbl>`).(*Table)
	_, err := tbl.Properties()
	require.Error(t, err)
	assert.True(t, docxerr.IsInvalidXML(err))

	tc := parse(t, `<w:tc `+nsDecls+`/>`).(*TableCell)
	_, err = tc.FirstParagraph()
	assert.True(t, docxerr.IsInvalidXML(err))
}

func TestTableRowHeader(t *testing.T) {
	tbl := NewTable(2, 1, 1000)
	tr := tbl.Rows()[0]
	assert.False(t, tr.IsHeader())

	tr.SetHeader(true)
	assert.True(t, tr.IsHeader())
	assert.Equal(t, []string{"w:trPr", "w:tc"}, tagsOf(tr.Element))

	tr.SetHeader(false)
	assert.False(t, tr.IsHeader())
}

func TestTablePropertiesAutofit(t *testing.T) {
	tbl := NewTable(1, 1, 1000)
	tblPr, err := tbl.Properties()
	require.NoError(t, err)

	assert.True(t, tblPr.Autofit())
	tblPr.SetAutofit(false)
	assert.False(t, tblPr.Autofit())
	require.NoError(t, tblPr.SetAlignment(ptr(JustifyCenter)))

	assert.Equal(t,
		[]string{"w:tblStyle", "w:tblW", "w:jc", "w:tblLayout", "w:tblLook"},
		tagsOf(tblPr.Element))

	tblPr.SetAutofit(true)
	assert.True(t, tblPr.Autofit())
}

func TestBodyAddTableBeforeSectPr(t *testing.T) {
	doc := NewDocument()
	body, err := doc.Body()
	require.NoError(t, err)
	body.GetOrAddSectionProperties()

	body.AddParagraph()
	body.AddTable(1, 2, 2000)
	body.AddParagraph()

	assert.Equal(t, []string{"w:p", "w:tbl", "w:p", "w:sectPr"}, tagsOf(body.Element))
	items := body.Content()
	require.Len(t, items, 3)
	_, isTable := items[1].(*Table)
	assert.True(t, isTable)

	body.ClearContent()
	assert.Equal(t, []string{"w:sectPr"}, tagsOf(body.Element))
}
