package simpletypes

import "math"

// Length is a distance in English Metric Units (EMU), the single internal
// unit every length-valued attribute is normalized to.
type Length int64

// EMU conversion factors.
const (
	EmusPerInch      = 914400
	EmusPerCm        = 360000
	EmusPerMm        = 36000
	EmusPerPt        = 12700
	EmusPerPica      = 152400
	EmusPerTwip      = 635
	EmusPerHalfPoint = 6350
)

// Emu returns a Length of n EMU.
func Emu(n int64) Length { return Length(n) }

// Inches returns the Length of f inches.
func Inches(f float64) Length { return Length(math.Round(f * EmusPerInch)) }

// Cm returns the Length of f centimeters.
func Cm(f float64) Length { return Length(math.Round(f * EmusPerCm)) }

// Mm returns the Length of f millimeters.
func Mm(f float64) Length { return Length(math.Round(f * EmusPerMm)) }

// Pt returns the Length of f points.
func Pt(f float64) Length { return Length(math.Round(f * EmusPerPt)) }

// Twips returns the Length of n twentieths of a point.
func Twips(n int64) Length { return Length(n * EmusPerTwip) }

// Emu returns the length in EMU.
func (l Length) Emu() int64 { return int64(l) }

// Inches returns the length in inches.
func (l Length) Inches() float64 { return float64(l) / EmusPerInch }

// Cm returns the length in centimeters.
func (l Length) Cm() float64 { return float64(l) / EmusPerCm }

// Mm returns the length in millimeters.
func (l Length) Mm() float64 { return float64(l) / EmusPerMm }

// Pt returns the length in points.
func (l Length) Pt() float64 { return float64(l) / EmusPerPt }

// Twips returns the length rounded to whole twips.
func (l Length) Twips() int64 { return int64(math.Round(float64(l) / EmusPerTwip)) }

// HalfPoints returns the length rounded to whole half-points.
func (l Length) HalfPoints() int64 { return int64(math.Round(float64(l) / EmusPerHalfPoint)) }
