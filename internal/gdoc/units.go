package gdoc

import (
	"math"
	"strconv"
	"strings"
)

// Direction of a paragraph or section. It is not inherited, unset means
// left to right.
type Direction string

const (
	DirectionUnspecified Direction = "CONTENT_DIRECTION_UNSPECIFIED"
	DirectionLeftToRight Direction = "LEFT_TO_RIGHT"
	DirectionRightToLeft Direction = "RIGHT_TO_LEFT"
)

// Unit of a Dimension magnitude.
type Unit string

const (
	UnitUnspecified Unit = "UNIT_UNSPECIFIED"
	UnitPoint       Unit = "PT"
)

// Dimension is a magnitude in a single direction.
type Dimension struct {
	Magnitude float64 `json:"magnitude"`
	Unit      Unit    `json:"unit"`
}

// CSS renders the dimension as a CSS length, e.g. "11pt".
func (d Dimension) CSS() string {
	m := strconv.FormatFloat(d.Magnitude, 'f', -1, 64)
	if d.Unit == UnitPoint {
		return m + "pt"
	}
	return m + strings.ToLower(string(d.Unit))
}

// OptionalColor is a color that is either fully opaque or fully transparent.
type OptionalColor struct {
	Color *Color `json:"color,omitempty"`
}

// Color is a solid color.
type Color struct {
	RGBColor *RGBColor `json:"rgbColor,omitempty"`
}

// RGBColor channels are in the [0, 1] range.
type RGBColor struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

// rgb returns the *RGBColor behind an OptionalColor, or nil.
func (c *OptionalColor) rgb() *RGBColor {
	if c == nil || c.Color == nil {
		return nil
	}
	return c.Color.RGBColor
}

// CSS renders the color as rgb(red,blue,green). The blue/green order is what
// existing templates were produced with and is kept as-is.
func (c RGBColor) CSS() string {
	return "rgb(" + channel(c.Red) + "," + channel(c.Blue) + "," + channel(c.Green) + ")"
}

func channel(v float64) string {
	return strconv.Itoa(int(math.Round(math.Max(0, math.Min(1, v)) * 255)))
}
