package simpletypes

import (
	"testing"

	"github.com/benjaminschreck/go-docx/pkg/docxerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnOff(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"1", true, false},
		{"true", true, false},
		{"on", true, false},
		{"0", false, false},
		{"false", false, false},
		{"off", false, false},
		{"yes", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := OnOff.FromXML(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, docxerr.IsInvalidXML(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := XsdBoolean.FromXML("on")
	assert.Error(t, err, "xsd:boolean does not accept on/off")

	s, ok, err := OnOff.ToXML(true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", s)
}

func TestInt(t *testing.T) {
	n, err := XsdInt.FromXML(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = XsdInt.FromXML("4.2")
	assert.True(t, docxerr.IsInvalidXML(err))

	_, err = XsdUnsignedInt.FromXML("-1")
	assert.True(t, docxerr.IsInvalidXML(err))

	_, _, err = DrawingElementID.ToXML(-1)
	assert.True(t, docxerr.IsInvalidXML(err))

	s, ok, err := DecimalNumber.ToXML(-7)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "-7", s)
}

func TestHexColor(t *testing.T) {
	c, err := STHexColor.FromXML("3C6EB4")
	require.NoError(t, err)
	assert.Equal(t, RGB(0x3C, 0x6E, 0xB4), c)

	c, err = STHexColor.FromXML("auto")
	require.NoError(t, err)
	assert.True(t, c.Auto)

	for _, bad := range []string{"", "FFF", "GGGGGG", "1234567"} {
		_, err := STHexColor.FromXML(bad)
		assert.True(t, docxerr.IsInvalidXML(err), bad)
	}

	s, _, _ := STHexColor.ToXML(RGB(255, 0, 10))
	assert.Equal(t, "FF000A", s)
	s, _, _ = STHexColor.ToXML(AutoColor)
	assert.Equal(t, "auto", s)
}

func TestEnum(t *testing.T) {
	type breakType int
	const (
		textWrapping breakType = iota
		page
		column
	)
	e := NewEnum("ST_BrType",
		EnumMember[breakType]{Value: textWrapping, XML: "textWrapping", Omit: true},
		EnumMember[breakType]{Value: page, XML: "page"},
		EnumMember[breakType]{Value: column, XML: "column"},
	)

	v, err := e.FromXML("textWrapping")
	require.NoError(t, err)
	assert.Equal(t, textWrapping, v)

	_, ok, err := e.ToXML(textWrapping)
	require.NoError(t, err)
	assert.False(t, ok, "default member is omitted")

	s, ok, err := e.ToXML(page)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "page", s)

	_, err = e.FromXML("line")
	assert.True(t, docxerr.IsInvalidXML(err))
	_, _, err = e.ToXML(breakType(9))
	assert.True(t, docxerr.IsInvalidXML(err))
}

func TestMeasures(t *testing.T) {
	tests := []struct {
		name    string
		conv    Measure
		in      string
		want    Length
		wantErr bool
	}{
		{"raw twips", TwipsMeasure, "1440", Inches(1), false},
		{"twips in inches", TwipsMeasure, "1in", Inches(1), false},
		{"twips in cm", TwipsMeasure, "2.54cm", Inches(1), false},
		{"twips in mm", TwipsMeasure, "25.4mm", Inches(1), false},
		{"twips in points", TwipsMeasure, "72pt", Inches(1), false},
		{"twips in picas", TwipsMeasure, "6pc", Inches(1), false},
		{"twips in pi", TwipsMeasure, "6pi", Inches(1), false},
		{"negative twips rejected", TwipsMeasure, "-20", 0, true},
		{"signed twips", SignedTwipsMeasure, "-720", -Inches(0.5), false},
		{"half points", HpsMeasure, "24", Pt(12), false},
		{"half points universal", HpsMeasure, "12pt", Pt(12), false},
		{"coordinate emu", Coordinate, "914400", Inches(1), false},
		{"positive coordinate", PositiveCoordinate, "-1", 0, true},
		{"bad unit", TwipsMeasure, "12px", 0, true},
		{"garbage", TwipsMeasure, "abc", 0, true},
		{"twips past int64", TwipsMeasure, "29050024451104000", 0, true},
		{"twips past int64 sign flip", TwipsMeasure, "20000000000000000", 0, true},
		{"signed twips past int64", SignedTwipsMeasure, "-20000000000000000", 0, true},
		{"inches past int64", TwipsMeasure, "99999999999999in", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.conv.FromXML(tt.in)
			if tt.wantErr {
				assert.True(t, docxerr.IsInvalidXML(err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMeasureOverflowIsOutOfRange(t *testing.T) {
	for _, in := range []string{"20000000000000000", "-20000000000000000", "99999999999999in"} {
		_, err := SignedTwipsMeasure.FromXML(in)
		require.Error(t, err, in)
		assert.True(t, docxerr.IsInvalidXML(err), in)
		assert.ErrorContains(t, err, "out of range", in)
	}
}

func TestMeasureToXML(t *testing.T) {
	s, ok, err := TwipsMeasure.ToXML(Inches(1))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1440", s)

	s, _, err = HpsMeasure.ToXML(Pt(10.5))
	require.NoError(t, err)
	assert.Equal(t, "21", s)

	_, _, err = TwipsMeasure.ToXML(-Twips(1))
	assert.True(t, docxerr.IsInvalidXML(err))

	s, _, err = UniversalMeasure.ToXML(Pt(12))
	require.NoError(t, err)
	assert.Equal(t, "12pt", s)
}

func TestLengthConversions(t *testing.T) {
	l := Inches(1)
	assert.Equal(t, int64(914400), l.Emu())
	assert.Equal(t, int64(1440), l.Twips())
	assert.InDelta(t, 72.0, l.Pt(), 1e-9)
	assert.InDelta(t, 2.54, l.Cm(), 1e-9)
	assert.InDelta(t, 25.4, l.Mm(), 1e-9)
	assert.Equal(t, int64(144), l.HalfPoints())
	assert.Equal(t, Twips(1440), Cm(2.54))
}
