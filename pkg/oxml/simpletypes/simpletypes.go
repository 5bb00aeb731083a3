// Package simpletypes converts XML attribute strings to typed values and
// back.
//
// Each converter parses and validates on the way in (FromXML) and validates
// and serializes on the way out (ToXML). A ToXML result with ok == false
// means the attribute should be omitted, which is how enumerations mark
// their default member. This package is the only place format-specific
// numeric and string quirks live; element accessors are thin calls through
// one converter.
package simpletypes

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/benjaminschreck/go-docx/pkg/docxerr"
)

// Converter converts between an attribute string and a typed value.
type Converter[T any] interface {
	// FromXML parses and validates an attribute value.
	FromXML(s string) (T, error)
	// ToXML validates v and returns its attribute form. ok is false when
	// the attribute should be omitted.
	ToXML(v T) (s string, ok bool, err error)
}

// Int is a bounded integer type such as xsd:int or ST_DecimalNumber.
type Int struct {
	Name string
	Min  int64
	Max  int64
}

// Integer simple types.
var (
	XsdInt                = Int{Name: "xsd:int", Min: math.MinInt32, Max: math.MaxInt32}
	XsdUnsignedInt        = Int{Name: "xsd:unsignedInt", Min: 0, Max: math.MaxUint32}
	XsdLong               = Int{Name: "xsd:long", Min: math.MinInt64, Max: math.MaxInt64}
	DecimalNumber         = Int{Name: "ST_DecimalNumber", Min: math.MinInt32, Max: math.MaxInt32}
	UnsignedDecimalNumber = Int{Name: "ST_UnsignedDecimalNumber", Min: 0, Max: math.MaxUint32}
	DrawingElementID      = Int{Name: "ST_DrawingElementId", Min: 0, Max: math.MaxInt32}
)

// FromXML parses a base-10 integer within range.
func (c Int) FromXML(s string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, docxerr.InvalidValue(c.Name, s, "not an integer")
	}
	if err := c.check(n); err != nil {
		return 0, err
	}
	return int(n), nil
}

// ToXML formats v after a range check.
func (c Int) ToXML(v int) (string, bool, error) {
	if err := c.check(int64(v)); err != nil {
		return "", false, err
	}
	return strconv.Itoa(v), true, nil
}

func (c Int) check(n int64) error {
	if n < c.Min || n > c.Max {
		return docxerr.InvalidValue(c.Name, strconv.FormatInt(n, 10),
			fmt.Sprintf("must be in range %d to %d inclusive", c.Min, c.Max))
	}
	return nil
}

// Bool is xsd:boolean and ST_OnOff. Both accept 1/0/true/false; ST_OnOff
// also accepts on/off. Values are written as "1" or "0".
type Bool struct {
	Name     string
	AcceptOn bool
}

// Boolean simple types.
var (
	XsdBoolean = Bool{Name: "xsd:boolean"}
	OnOff      = Bool{Name: "ST_OnOff", AcceptOn: true}
)

// FromXML parses a boolean literal.
func (c Bool) FromXML(s string) (bool, error) {
	switch s {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	case "on":
		if c.AcceptOn {
			return true, nil
		}
	case "off":
		if c.AcceptOn {
			return false, nil
		}
	}
	expected := "1, 0, true, false"
	if c.AcceptOn {
		expected += ", on, off"
	}
	return false, docxerr.InvalidValue(c.Name, s, "expected one of "+expected)
}

// ToXML writes "1" or "0".
func (c Bool) ToXML(v bool) (string, bool, error) {
	if v {
		return "1", true, nil
	}
	return "0", true, nil
}

// String is an unconstrained string type such as xsd:string or ST_String.
// A non-empty Pattern restricts accepted values.
type String struct {
	Name    string
	Pattern *regexp.Regexp
}

// String simple types.
var (
	XsdString = String{Name: "xsd:string"}
	XsdToken  = String{Name: "xsd:token"}
	XsdAnyURI = String{Name: "xsd:anyURI"}
	STString  = String{Name: "ST_String"}
	RelID     = String{Name: "ST_RelationshipId"}
)

// FromXML returns s after the optional pattern check.
func (c String) FromXML(s string) (string, error) {
	if c.Pattern != nil && !c.Pattern.MatchString(s) {
		return "", docxerr.InvalidValue(c.Name, s, "does not match "+c.Pattern.String())
	}
	return s, nil
}

// ToXML returns v after the optional pattern check.
func (c String) ToXML(v string) (string, bool, error) {
	if _, err := c.FromXML(v); err != nil {
		return "", false, err
	}
	return v, true, nil
}

// HexColor is an RGB color or the literal "auto".
type HexColor struct {
	R, G, B uint8
	Auto    bool
}

// AutoColor is the "auto" color value.
var AutoColor = HexColor{Auto: true}

// RGB returns the color with the given components.
func RGB(r, g, b uint8) HexColor { return HexColor{R: r, G: g, B: b} }

// String returns the attribute form, "auto" or six upper-case hex digits.
func (c HexColor) String() string {
	if c.Auto {
		return "auto"
	}
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

type hexColorType struct{}

// ST_HexColor: "auto" or RRGGBB.
var STHexColor Converter[HexColor] = hexColorType{}

func (hexColorType) FromXML(s string) (HexColor, error) {
	if s == "auto" {
		return AutoColor, nil
	}
	if len(s) != 6 {
		return HexColor{}, docxerr.InvalidValue("ST_HexColor", s, "expected 'auto' or six hex digits")
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return HexColor{}, docxerr.InvalidValue("ST_HexColor", s, "expected 'auto' or six hex digits")
	}
	return RGB(uint8(n>>16), uint8(n>>8), uint8(n)), nil
}

func (hexColorType) ToXML(v HexColor) (string, bool, error) {
	return v.String(), true, nil
}

// EnumMember maps one typed value to its attribute form. Omit marks the
// member written by leaving the attribute out.
type EnumMember[T comparable] struct {
	Value T
	XML   string
	Omit  bool
}

// Enum converts between attribute strings and a closed set of values.
type Enum[T comparable] struct {
	name    string
	members []EnumMember[T]
}

// NewEnum creates an enumeration converter.
func NewEnum[T comparable](name string, members ...EnumMember[T]) *Enum[T] {
	return &Enum[T]{name: name, members: members}
}

// FromXML looks up the member whose XML form is s.
func (e *Enum[T]) FromXML(s string) (T, error) {
	for _, m := range e.members {
		if m.XML == s {
			return m.Value, nil
		}
	}
	var zero T
	return zero, docxerr.InvalidValue(e.name, s, "not a member of the enumeration")
}

// ToXML returns the XML form of v; ok is false for the omitted member.
func (e *Enum[T]) ToXML(v T) (string, bool, error) {
	for _, m := range e.members {
		if m.Value == v {
			if m.Omit {
				return "", false, nil
			}
			return m.XML, true, nil
		}
	}
	return "", false, docxerr.InvalidValue(e.name, fmt.Sprint(v), "not a member of the enumeration")
}
