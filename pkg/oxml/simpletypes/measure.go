package simpletypes

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/benjaminschreck/go-docx/pkg/docxerr"
)

var universalMeasureRe = regexp.MustCompile(`^(-?[0-9]+(?:\.[0-9]+)?)(mm|cm|in|pt|pc|pi)$`)

var universalMultiplier = map[string]float64{
	"mm": EmusPerMm,
	"cm": EmusPerCm,
	"in": EmusPerInch,
	"pt": EmusPerPt,
	"pc": EmusPerPica,
	"pi": EmusPerPica,
}

// parseUniversalMeasure converts a value like "2.54cm" or "-12pt" to EMU.
func parseUniversalMeasure(name, s string) (Length, error) {
	m := universalMeasureRe.FindStringSubmatch(s)
	if m == nil {
		return 0, docxerr.InvalidValue(name, s, "expected a number followed by mm, cm, in, pt, pc or pi")
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, docxerr.InvalidValue(name, s, "malformed number")
	}
	emu := math.Round(f * universalMultiplier[m[2]])
	if math.Abs(emu) >= math.MaxInt64 {
		return 0, docxerr.InvalidValue(name, s, "out of range")
	}
	return Length(emu), nil
}

// isUniversalMeasure reports whether s carries a unit suffix rather than a
// raw count of the type's native unit.
func isUniversalMeasure(s string) bool {
	return strings.ContainsAny(s, "imnpc")
}

// Measure converts a length attribute that holds either a raw count of a
// native unit or a universal-measure string. Values are normalized to EMU.
type Measure struct {
	Name string
	// EmusPerUnit is the size of the raw native unit in EMU.
	EmusPerUnit int64
	// Signed permits negative values.
	Signed bool
	// Max bounds the absolute EMU value; zero means unbounded.
	Max int64
}

// Length measure simple types.
var (
	// TwipsMeasure is ST_TwipsMeasure: raw twips or a universal measure.
	TwipsMeasure = Measure{Name: "ST_TwipsMeasure", EmusPerUnit: EmusPerTwip}
	// SignedTwipsMeasure is ST_SignedTwipsMeasure.
	SignedTwipsMeasure = Measure{Name: "ST_SignedTwipsMeasure", EmusPerUnit: EmusPerTwip, Signed: true}
	// HpsMeasure is ST_HpsMeasure: raw half-points or a universal measure.
	HpsMeasure = Measure{Name: "ST_HpsMeasure", EmusPerUnit: EmusPerHalfPoint}
	// Coordinate is ST_Coordinate: raw EMU or a universal measure.
	Coordinate = Measure{Name: "ST_Coordinate", EmusPerUnit: 1, Signed: true, Max: 27273042316900}
	// PositiveCoordinate is ST_PositiveCoordinate.
	PositiveCoordinate = Measure{Name: "ST_PositiveCoordinate", EmusPerUnit: 1, Max: 27273042316900}
)

// FromXML parses a raw or suffixed measure.
func (c Measure) FromXML(s string) (Length, error) {
	s = strings.TrimSpace(s)
	var l Length
	if isUniversalMeasure(s) {
		var err error
		if l, err = parseUniversalMeasure(c.Name, s); err != nil {
			return 0, err
		}
	} else {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, docxerr.InvalidValue(c.Name, s, "not an integer")
		}
		if n > math.MaxInt64/c.EmusPerUnit || n < math.MinInt64/c.EmusPerUnit {
			return 0, docxerr.InvalidValue(c.Name, s, "out of range")
		}
		l = Length(n * c.EmusPerUnit)
	}
	if err := c.check(l, s); err != nil {
		return 0, err
	}
	return l, nil
}

// ToXML writes v as a raw count of the native unit.
func (c Measure) ToXML(v Length) (string, bool, error) {
	if err := c.check(v, strconv.FormatInt(int64(v), 10)); err != nil {
		return "", false, err
	}
	units := int64(math.Round(float64(v) / float64(c.EmusPerUnit)))
	return strconv.FormatInt(units, 10), true, nil
}

func (c Measure) check(l Length, raw string) error {
	if !c.Signed && l < 0 {
		return docxerr.InvalidValue(c.Name, raw, "must not be negative")
	}
	if c.Max > 0 && (int64(l) > c.Max || int64(l) < -c.Max) {
		return docxerr.InvalidValue(c.Name, raw, "out of range")
	}
	return nil
}

type universalMeasureType struct{}

// UniversalMeasure is ST_UniversalMeasure, always written in points.
var UniversalMeasure Converter[Length] = universalMeasureType{}

func (universalMeasureType) FromXML(s string) (Length, error) {
	return parseUniversalMeasure("ST_UniversalMeasure", strings.TrimSpace(s))
}

func (universalMeasureType) ToXML(v Length) (string, bool, error) {
	return strconv.FormatFloat(v.Pt(), 'f', -1, 64) + "pt", true, nil
}
