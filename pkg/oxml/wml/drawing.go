package wml

import (
	"strconv"

	"github.com/benjaminschreck/go-docx/pkg/docxerr"
	"github.com/benjaminschreck/go-docx/pkg/oxml"
	"github.com/benjaminschreck/go-docx/pkg/oxml/simpletypes"
)

const picURI = "http://schemas.openxmlformats.org/drawingml/2006/picture"

// Drawing is <w:drawing>.
type Drawing struct{ *oxml.Element }

func newDrawing(e *oxml.Element) *Drawing { return &Drawing{e} }

// NewInlinePicture builds a <w:drawing> holding an inline picture whose
// image is the relationship rID, sized cx by cy.
func NewInlinePicture(shapeID int, rID, filename string, cx, cy simpletypes.Length) *Drawing {
	id := strconv.Itoa(shapeID)
	extent := func(tag string) *oxml.Element {
		return oxml.NewElement(tag,
			"cx", strconv.FormatInt(cx.Emu(), 10),
			"cy", strconv.FormatInt(cy.Emu(), 10))
	}

	inline := oxml.NewElement("wp:inline")
	inline.SetAttr("xmlns:a", oxml.NamespaceURI("a"))
	inline.SetAttr("xmlns:pic", oxml.NamespaceURI("pic"))
	inline.Append(extent("wp:extent"))
	inline.Append(oxml.NewElement("wp:docPr", "id", id, "name", "Picture "+id))
	frame := oxml.NewElement("wp:cNvGraphicFramePr")
	frame.Append(oxml.NewElement("a:graphicFrameLocks", "noChangeAspect", "1"))
	inline.Append(frame)

	graphic := oxml.NewElement("a:graphic")
	data := oxml.NewElement("a:graphicData", "uri", picURI)
	graphic.Append(data)
	inline.Append(graphic)

	pic := oxml.NewElement("pic:pic")
	data.Append(pic)

	nvPicPr := oxml.NewElement("pic:nvPicPr")
	nvPicPr.Append(oxml.NewElement("pic:cNvPr", "id", "0", "name", filename))
	nvPicPr.Append(oxml.NewElement("pic:cNvPicPr"))
	pic.Append(nvPicPr)

	blipFill := oxml.NewElement("pic:blipFill")
	blipFill.Append(oxml.NewElement("a:blip", "r:embed", rID))
	stretch := oxml.NewElement("a:stretch")
	stretch.Append(oxml.NewElement("a:fillRect"))
	blipFill.Append(stretch)
	pic.Append(blipFill)

	spPr := oxml.NewElement("pic:spPr")
	xfrm := oxml.NewElement("a:xfrm")
	xfrm.Append(oxml.NewElement("a:off", "x", "0", "y", "0"))
	xfrm.Append(extent("a:ext"))
	spPr.Append(xfrm)
	spPr.Append(oxml.NewElement("a:prstGeom", "prst", "rect"))
	pic.Append(spPr)

	d := newDrawing(oxml.NewElement("w:drawing"))
	d.Append(inline)
	return d
}

// Blips returns every <a:blip> inside the drawing.
func (d *Drawing) Blips() []*Blip {
	var out []*Blip
	d.Iter(func(e *oxml.Element) bool {
		if e.Is("a:blip") {
			out = append(out, newBlip(e))
		}
		return true
	})
	return out
}

// Extent returns the inline or anchored extent, zero when absent.
func (d *Drawing) Extent() (cx, cy simpletypes.Length, err error) {
	var ext *oxml.Element
	d.Iter(func(e *oxml.Element) bool {
		if e.Is("wp:extent") {
			ext = e
			return false
		}
		return true
	})
	if ext == nil {
		return 0, 0, nil
	}
	if cx, err = extentCx.Get(ext); err != nil {
		return 0, 0, err
	}
	cy, err = extentCy.Get(ext)
	return cx, cy, err
}

// ShapeID returns the id of the drawing's <wp:docPr>.
func (d *Drawing) ShapeID() (int, error) {
	var docPr *oxml.Element
	d.Iter(func(e *oxml.Element) bool {
		if e.Is("wp:docPr") {
			docPr = e
			return false
		}
		return true
	})
	if docPr == nil {
		return 0, docxerr.MissingChild(d.Tag(), "wp:docPr")
	}
	return DocPrID(docPr)
}

// DocPrID returns the shape id carried by a <wp:docPr> element.
func DocPrID(docPr *oxml.Element) (int, error) { return docPrID.Get(docPr) }

var (
	extentCx = oxml.NewRequiredAttribute[simpletypes.Length]("cx", simpletypes.PositiveCoordinate)
	extentCy = oxml.NewRequiredAttribute[simpletypes.Length]("cy", simpletypes.PositiveCoordinate)
	docPrID  = oxml.NewRequiredAttribute[int]("id", simpletypes.DrawingElementID)
)

// Blip is <a:blip>, which cites an image part with r:embed or an external
// image with r:link.
type Blip struct{ *oxml.Element }

func newBlip(e *oxml.Element) *Blip { return &Blip{e} }

var (
	blipEmbed = oxml.NewOptionalAttribute[string]("r:embed", simpletypes.RelID, "")
	blipLink  = oxml.NewOptionalAttribute[string]("r:link", simpletypes.RelID, "")
)

// Embed returns r:embed, or "".
func (b *Blip) Embed() string {
	v, _ := blipEmbed.Get(b)
	return v
}

// SetEmbed sets r:embed.
func (b *Blip) SetEmbed(rID string) error { return blipEmbed.Set(b, rID) }

// Link returns r:link, or "".
func (b *Blip) Link() string {
	v, _ := blipLink.Get(b)
	return v
}

func init() {
	oxml.Register("w:drawing", func(e *oxml.Element) oxml.Node { return newDrawing(e) })
	oxml.Register("a:blip", func(e *oxml.Element) oxml.Node { return newBlip(e) })
}
