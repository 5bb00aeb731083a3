package wml

import (
	"strconv"
	"strings"

	"github.com/benjaminschreck/go-docx/pkg/docxerr"
	"github.com/benjaminschreck/go-docx/pkg/oxml"
	"github.com/benjaminschreck/go-docx/pkg/oxml/simpletypes"
)

// Table is <w:tbl>. Both tblPr and tblGrid are required.
type Table struct{ *oxml.Element }

func newTable(e *oxml.Element) *Table { return &Table{e} }

func (t *Table) isBlockItem() {}

var (
	tableTblPr   = oxml.NewOneAndOnlyOne("w:tblPr", newTableProperties)
	tableTblGrid = oxml.NewOneAndOnlyOne("w:tblGrid", newTableGrid)
	tableTr      = oxml.NewZeroOrMore("w:tr", []string{"w:tblPrEx"}, newTableRow)
)

// NewTable builds a rows x cols table whose columns share widthTwips
// equally. Every cell holds one empty paragraph.
func NewTable(rows, cols int, widthTwips int) *Table {
	t := newTable(oxml.NewElement("w:tbl"))
	tblPr := newTableProperties(oxml.NewElement("w:tblPr"))
	t.Append(tblPr)
	_ = tblPr.SetStyle("TableGrid")
	w := tblPr.GetOrAddWidth()
	_ = w.Set(0, WidthAuto)
	look := oxml.NewElement("w:tblLook",
		"w:val", "04A0", "w:firstRow", "1", "w:lastRow", "0",
		"w:firstColumn", "1", "w:lastColumn", "0", "w:noHBand", "0", "w:noVBand", "1")
	tblPr.InsertElementBefore(look, tblPrSeq.After("w:tblLook")...)

	grid := newTableGrid(oxml.NewElement("w:tblGrid"))
	t.Append(grid)
	colWidth := 0
	if cols > 0 {
		colWidth = widthTwips / cols
	}
	for c := 0; c < cols; c++ {
		_ = grid.AddColumn().SetWidth(simpletypes.Twips(int64(colWidth)))
	}
	for r := 0; r < rows; r++ {
		tr := t.AddRow()
		for c := 0; c < cols; c++ {
			tc := tr.AddCell()
			_ = tc.GetOrAddProperties().GetOrAddWidth().Set(colWidth, WidthDxa)
		}
	}
	return t
}

// Properties returns <w:tblPr>.
func (t *Table) Properties() (*TableProperties, error) { return tableTblPr.Get(t) }

// Grid returns <w:tblGrid>.
func (t *Table) Grid() (*TableGrid, error) { return tableTblGrid.Get(t) }

// Rows returns the table rows.
func (t *Table) Rows() []*TableRow { return tableTr.All(t) }

// AddRow appends an empty row.
func (t *Table) AddRow() *TableRow { return tableTr.Add(t) }

// Cell returns the cell at row r, grid column c. Horizontally merged cells
// cover several grid columns.
func (t *Table) Cell(r, c int) (*TableCell, error) {
	rows := t.Rows()
	if r < 0 || r >= len(rows) {
		return nil, docxerr.NewInvalidArgument("row", strconv.Itoa(r), "row index out of range")
	}
	col := 0
	for _, tc := range rows[r].Cells() {
		span, err := tc.GridSpan()
		if err != nil {
			return nil, err
		}
		if c >= col && c < col+span {
			return tc, nil
		}
		col += span
	}
	return nil, docxerr.NewInvalidArgument("column", strconv.Itoa(c), "column index out of range")
}

// GetText returns the text of every cell, tab separated, one row per line.
func (t *Table) GetText() string {
	var lines []string
	for _, tr := range t.Rows() {
		var cells []string
		for _, tc := range tr.Cells() {
			cells = append(cells, tc.GetText())
		}
		lines = append(lines, strings.Join(cells, "\t"))
	}
	return strings.Join(lines, "\n")
}

var tblPrSeq = oxml.NewSequence(
	"w:tblStyle", "w:tblpPr", "w:tblOverlap", "w:bidiVisual",
	"w:tblStyleRowBandSize", "w:tblStyleColBandSize", "w:tblW", "w:jc",
	"w:tblCellSpacing", "w:tblInd", "w:tblBorders", "w:shd", "w:tblLayout",
	"w:tblCellMar", "w:tblLook", "w:tblCaption", "w:tblDescription",
	"w:tblPrChange",
)

// TableProperties is <w:tblPr>.
type TableProperties struct{ *oxml.Element }

func newTableProperties(e *oxml.Element) *TableProperties { return &TableProperties{e} }

var (
	tblPrStyle  = oxml.NewZeroOrOne("w:tblStyle", tblPrSeq.After("w:tblStyle"), newStringValue)
	tblPrBidi   = oxml.NewZeroOrOne("w:bidiVisual", tblPrSeq.After("w:bidiVisual"), newOnOff)
	tblPrW      = oxml.NewZeroOrOne("w:tblW", tblPrSeq.After("w:tblW"), newTableWidth)
	tblPrJc     = oxml.NewZeroOrOne("w:jc", tblPrSeq.After("w:jc"), newAlignment)
	tblPrLayout = oxml.NewZeroOrOne("w:tblLayout", tblPrSeq.After("w:tblLayout"), func(e *oxml.Element) *oxml.Element { return e })
)

// Style returns the table style id, or "".
func (p *TableProperties) Style() (string, error) { return getString(p, tblPrStyle) }

// SetStyle sets the table style id; "" removes it.
func (p *TableProperties) SetStyle(id string) error { return setString(p, tblPrStyle, id) }

// RightToLeft returns the bidiVisual toggle.
func (p *TableProperties) RightToLeft() (*bool, error) { return getOnOff(p, tblPrBidi) }

// SetRightToLeft sets the bidiVisual toggle.
func (p *TableProperties) SetRightToLeft(v *bool) error { return setOnOff(p, tblPrBidi, v) }

// Alignment returns the table alignment, nil when inherited.
func (p *TableProperties) Alignment() (*Justification, error) { return getJc(p, tblPrJc) }

// SetAlignment sets the table alignment; nil removes it.
func (p *TableProperties) SetAlignment(v *Justification) error { return setJc(p, tblPrJc, v) }

// Width returns <w:tblW>, or nil.
func (p *TableProperties) Width() *TableWidth { return tblPrW.Get(p) }

// GetOrAddWidth returns <w:tblW>, adding it when absent.
func (p *TableProperties) GetOrAddWidth() *TableWidth { return tblPrW.GetOrAdd(p) }

// Autofit reports whether the layout is autofit, which is the default.
func (p *TableProperties) Autofit() bool {
	layout := tblPrLayout.Get(p)
	if layout == nil {
		return true
	}
	v, _ := layout.Attr("w:type")
	return v != "fixed"
}

// SetAutofit sets the table layout algorithm.
func (p *TableProperties) SetAutofit(v bool) {
	if v {
		tblPrLayout.Remove(p)
		return
	}
	tblPrLayout.GetOrAdd(p).SetAttr("w:type", "fixed")
}

// WidthType is ST_TblWidth.
type WidthType int

// Width units.
const (
	WidthAuto WidthType = iota
	WidthDxa
	WidthPct
	WidthNil
)

var stTblWidth = simpletypes.NewEnum("ST_TblWidth",
	simpletypes.EnumMember[WidthType]{Value: WidthAuto, XML: "auto"},
	simpletypes.EnumMember[WidthType]{Value: WidthDxa, XML: "dxa"},
	simpletypes.EnumMember[WidthType]{Value: WidthPct, XML: "pct"},
	simpletypes.EnumMember[WidthType]{Value: WidthNil, XML: "nil"},
)

// TableWidth is a CT_TblWidth element such as <w:tblW> or <w:tcW>.
type TableWidth struct{ *oxml.Element }

func newTableWidth(e *oxml.Element) *TableWidth { return &TableWidth{e} }

var (
	widthW    = oxml.NewOptionalAttribute[int]("w:w", simpletypes.XsdInt, 0)
	widthType = oxml.NewOptionalAttribute[WidthType]("w:type", stTblWidth, WidthAuto)
)

// Get returns the width value and its unit. Dxa values are twips; pct
// values are fiftieths of a percent.
func (w *TableWidth) Get() (int, WidthType, error) {
	v, err := widthW.Get(w)
	if err != nil {
		return 0, 0, err
	}
	kind, err := widthType.Get(w)
	return v, kind, err
}

// Set writes both w:w and w:type. Both are always written, as Word
// expects.
func (w *TableWidth) Set(v int, kind WidthType) error {
	s, _, err := stTblWidth.ToXML(kind)
	if err != nil {
		return err
	}
	w.SetAttr("w:w", strconv.Itoa(v))
	w.SetAttr("w:type", s)
	return nil
}

// TableGrid is <w:tblGrid>.
type TableGrid struct{ *oxml.Element }

func newTableGrid(e *oxml.Element) *TableGrid { return &TableGrid{e} }

var gridCol = oxml.NewZeroOrMore("w:gridCol", []string{"w:tblGridChange"}, newGridColumn)

// Columns returns the grid columns.
func (g *TableGrid) Columns() []*GridColumn { return gridCol.All(g) }

// AddColumn appends a grid column.
func (g *TableGrid) AddColumn() *GridColumn { return gridCol.Add(g) }

// GridColumn is <w:gridCol>.
type GridColumn struct{ *oxml.Element }

func newGridColumn(e *oxml.Element) *GridColumn { return &GridColumn{e} }

var gridColW = oxml.NewOptionalAttribute[simpletypes.Length]("w:w", simpletypes.TwipsMeasure, 0)

// Width returns the column width.
func (g *GridColumn) Width() (simpletypes.Length, error) { return gridColW.Get(g) }

// SetWidth sets the column width.
func (g *GridColumn) SetWidth(v simpletypes.Length) error { return gridColW.Set(g, v) }

// TableRow is <w:tr>.
type TableRow struct{ *oxml.Element }

func newTableRow(e *oxml.Element) *TableRow { return &TableRow{e} }

// trPr follows tblPrEx and precedes every cell-level element.
var trContent = []string{
	"w:tc", "w:sdt", "w:customXml", "w:bookmarkStart", "w:bookmarkEnd",
	"w:commentRangeStart", "w:commentRangeEnd", "w:permStart", "w:permEnd",
	"w:proofErr", "w:ins", "w:del", "w:moveFrom", "w:moveTo",
}

var (
	trTrPr = oxml.NewZeroOrOne("w:trPr", trContent, func(e *oxml.Element) *oxml.Element { return e })
	trTc   = oxml.NewZeroOrMore("w:tc", nil, newTableCell)
)

// Cells returns the row's cells.
func (r *TableRow) Cells() []*TableCell { return trTc.All(r) }

// AddCell appends a cell holding one empty paragraph.
func (r *TableRow) AddCell() *TableCell {
	tc := trTc.Add(r)
	tcP.Add(tc)
	return tc
}

// IsHeader reports whether the row repeats as a header row.
func (r *TableRow) IsHeader() bool {
	trPr := trTrPr.Get(r)
	if trPr == nil {
		return false
	}
	h := trPr.FirstChild("w:tblHeader")
	if h == nil {
		return false
	}
	v, err := newOnOff(h).Val()
	return err == nil && v
}

// SetHeader marks or unmarks the row as a repeating header row.
func (r *TableRow) SetHeader(v bool) {
	if !v {
		if trPr := trTrPr.Get(r); trPr != nil {
			trPr.RemoveChild("w:tblHeader")
		}
		return
	}
	trPr := trTrPr.GetOrAdd(r)
	trPr.GetOrAddChild("w:tblHeader", nil, nil)
}

// TableCell is <w:tc>. A cell must hold at least one paragraph.
type TableCell struct {
	*oxml.Element
	blockContainer
}

func newTableCell(e *oxml.Element) *TableCell {
	return &TableCell{Element: e, blockContainer: blockContainer{e}}
}

var (
	tcTcPr = oxml.NewLeadingZeroOrOne("w:tcPr", newTableCellProperties)
	tcP    = oxml.NewOneOrMore("w:p", nil, newParagraph)
)

// Properties returns <w:tcPr>, or nil.
func (c *TableCell) Properties() *TableCellProperties { return tcTcPr.Get(c) }

// GetOrAddProperties returns <w:tcPr>, adding it first when absent.
func (c *TableCell) GetOrAddProperties() *TableCellProperties { return tcTcPr.GetOrAdd(c) }

// FirstParagraph returns the cell's first paragraph. A cell without one is
// invalid.
func (c *TableCell) FirstParagraph() (*Paragraph, error) {
	ps, err := tcP.All(c)
	if err != nil {
		return nil, err
	}
	return ps[0], nil
}

// GridSpan returns the number of grid columns the cell covers.
func (c *TableCell) GridSpan() (int, error) {
	tcPr := c.Properties()
	if tcPr == nil {
		return 1, nil
	}
	return tcPr.GridSpan()
}

// GetText returns the cell's paragraphs joined by newlines.
func (c *TableCell) GetText() string {
	var lines []string
	for _, p := range c.Paragraphs() {
		lines = append(lines, p.GetText())
	}
	return strings.Join(lines, "\n")
}

var tcPrSeq = oxml.NewSequence(
	"w:cnfStyle", "w:tcW", "w:gridSpan", "w:hMerge", "w:vMerge",
	"w:tcBorders", "w:shd", "w:noWrap", "w:tcMar", "w:textDirection",
	"w:tcFitText", "w:vAlign", "w:hideMark", "w:headers", "w:cellIns",
	"w:cellDel", "w:cellMerge", "w:tcPrChange",
)

// TableCellProperties is <w:tcPr>.
type TableCellProperties struct{ *oxml.Element }

func newTableCellProperties(e *oxml.Element) *TableCellProperties {
	return &TableCellProperties{e}
}

var (
	tcPrW        = oxml.NewZeroOrOne("w:tcW", tcPrSeq.After("w:tcW"), newTableWidth)
	tcPrGridSpan = oxml.NewZeroOrOne("w:gridSpan", tcPrSeq.After("w:gridSpan"), newDecimalValue)
	tcPrVMerge   = oxml.NewZeroOrOne("w:vMerge", tcPrSeq.After("w:vMerge"), func(e *oxml.Element) *oxml.Element { return e })
	tcPrVAlign   = oxml.NewZeroOrOne("w:vAlign", tcPrSeq.After("w:vAlign"), func(e *oxml.Element) *oxml.Element { return e })
)

// Width returns <w:tcW>, or nil.
func (p *TableCellProperties) Width() *TableWidth { return tcPrW.Get(p) }

// GetOrAddWidth returns <w:tcW>, adding it when absent.
func (p *TableCellProperties) GetOrAddWidth() *TableWidth { return tcPrW.GetOrAdd(p) }

// GridSpan returns the horizontal span, 1 when unset.
func (p *TableCellProperties) GridSpan() (int, error) {
	v, err := getDecimal(p, tcPrGridSpan)
	if err != nil || v == nil {
		return 1, err
	}
	return *v, nil
}

// SetGridSpan sets the horizontal span; 1 removes it.
func (p *TableCellProperties) SetGridSpan(v int) error {
	if v <= 1 {
		tcPrGridSpan.Remove(p)
		return nil
	}
	return setDecimal(p, tcPrGridSpan, &v)
}

// VMerge returns the vertical merge state: "" when not merged, "restart"
// for the first cell of a merge, "continue" otherwise.
func (p *TableCellProperties) VMerge() string {
	vm := tcPrVMerge.Get(p)
	if vm == nil {
		return ""
	}
	if v, ok := vm.Attr("w:val"); ok && v == "restart" {
		return "restart"
	}
	return "continue"
}

// SetVMerge sets the vertical merge state.
func (p *TableCellProperties) SetVMerge(state string) {
	switch state {
	case "":
		tcPrVMerge.Remove(p)
	case "restart":
		tcPrVMerge.GetOrAdd(p).SetAttr("w:val", "restart")
	default:
		tcPrVMerge.GetOrAdd(p).RemoveAttr("w:val")
	}
}

// VerticalAlign returns w:vAlign/@w:val, or "".
func (p *TableCellProperties) VerticalAlign() string {
	va := tcPrVAlign.Get(p)
	if va == nil {
		return ""
	}
	v, _ := va.Attr("w:val")
	return v
}

// SetVerticalAlign sets w:vAlign; "" removes it.
func (p *TableCellProperties) SetVerticalAlign(v string) {
	if v == "" {
		tcPrVAlign.Remove(p)
		return
	}
	tcPrVAlign.GetOrAdd(p).SetAttr("w:val", v)
}

func init() {
	oxml.Register("w:tbl", func(e *oxml.Element) oxml.Node { return newTable(e) })
	oxml.Register("w:tblPr", func(e *oxml.Element) oxml.Node { return newTableProperties(e) })
	oxml.Register("w:tblW", func(e *oxml.Element) oxml.Node { return newTableWidth(e) })
	oxml.Register("w:tcW", func(e *oxml.Element) oxml.Node { return newTableWidth(e) })
	oxml.Register("w:tblGrid", func(e *oxml.Element) oxml.Node { return newTableGrid(e) })
	oxml.Register("w:gridCol", func(e *oxml.Element) oxml.Node { return newGridColumn(e) })
	oxml.Register("w:tr", func(e *oxml.Element) oxml.Node { return newTableRow(e) })
	oxml.Register("w:tc", func(e *oxml.Element) oxml.Node { return newTableCell(e) })
	oxml.Register("w:tcPr", func(e *oxml.Element) oxml.Node { return newTableCellProperties(e) })
}
