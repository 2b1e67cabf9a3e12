// Package color provides the normalized color value used by palettes.
//
// A Color packs four 8-bit channels and a 16-bit intensity factor into a
// single uint64, so palette bindings can be declared as Go constants.
package color

import (
	"fmt"
	"math"
)

// NeutralIntensity is the intensity value that leaves channels unscaled.
const NeutralIntensity uint16 = 256

// Color is an immutable RGBA color with an optional intensity factor.
//
// Bit layout, least significant first: alpha (0-7), blue (8-15),
// green (16-23), red (24-31), intensity (32-47).
type Color uint64

const (
	alphaShift     = 0
	blueShift      = 8
	greenShift     = 16
	redShift       = 24
	intensityShift = 32
)

// New returns a color with the given channels and neutral intensity.
func New(r, g, b, a uint8) Color {
	return pack(r, g, b, a, NeutralIntensity)
}

func pack(r, g, b, a uint8, intensity uint16) Color {
	return Color(uint64(intensity)<<intensityShift |
		uint64(r)<<redShift |
		uint64(g)<<greenShift |
		uint64(b)<<blueShift |
		uint64(a)<<alphaShift)
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> redShift) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> greenShift) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c >> blueShift) }

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> alphaShift) }

// Intensity returns the fixed-point intensity, where 256 means unscaled.
func (c Color) Intensity() uint16 { return uint16(c >> intensityShift) }

// Channels returns red, green, blue and alpha.
func (c Color) Channels() (r, g, b, a uint8) {
	return c.R(), c.G(), c.B(), c.A()
}

// WithAlpha returns a copy of c with alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	return pack(c.R(), c.G(), c.B(), a, c.Intensity())
}

// WithAlphaF32 sets alpha from a normalized value using the saturating scale.
func (c Color) WithAlphaF32(alpha float32) Color {
	return c.WithAlpha(ScaleChannel(alpha))
}

// WithIntensity returns a copy of c with the raw intensity replaced.
func (c Color) WithIntensity(intensity uint16) Color {
	return pack(c.R(), c.G(), c.B(), c.A(), intensity)
}

// WithIntensityF32 sets intensity from a normalized factor: the value is
// scaled by 256, saturated into [0, 256*255] and clamped to [0, 256].
func (c Color) WithIntensityF32(intensity float32) Color {
	scaled := saturate(intensity, 256, 256*255)
	if scaled > int(NeutralIntensity) {
		scaled = int(NeutralIntensity)
	}
	return c.WithIntensity(uint16(scaled))
}

// ScaleChannel converts a normalized [0, 1] value to an 8-bit channel:
// multiply by 255, truncate toward zero, clamp into [0, 255].
func ScaleChannel(v float32) uint8 {
	return uint8(saturate(v, 255, 255))
}

// saturate multiplies v by scale in float32, truncates toward zero and
// clamps into [0, max]. NaN maps to 0.
func saturate(v, scale float32, max int) int {
	p := float64(v * scale)
	if math.IsNaN(p) {
		return 0
	}
	p = math.Trunc(p)
	if p <= 0 {
		return 0
	}
	if p >= float64(max) {
		return max
	}
	return int(p)
}

// Hex returns the canonical 8-digit form "#rrggbbaa".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R(), c.G(), c.B(), c.A())
}

// HexRGB returns "#rrggbb", dropping alpha and intensity.
func (c Color) HexRGB() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
}

// String returns the hex form, with a "+iiii" intensity suffix when the
// intensity is not neutral. ParseHex accepts every value it returns.
func (c Color) String() string {
	if c.Intensity() == NeutralIntensity {
		return c.Hex()
	}
	return fmt.Sprintf("%s+%04x", c.Hex(), c.Intensity())
}

// GoString returns a Go expression that evaluates to c.
func (c Color) GoString() string {
	return fmt.Sprintf("color.Color(0x%012x)", uint64(c))
}

// CSS describes the color as "rgba(R%, G%, B%, A)" with whole percentages
// for the channels and two decimals for alpha.
func (c Color) CSS() string {
	return fmt.Sprintf("rgba(%.0f%%, %.0f%%, %.0f%%, %.2f)",
		float32(c.R())*(100.0/255.0),
		float32(c.G())*(100.0/255.0),
		float32(c.B())*(100.0/255.0),
		float32(c.A())/255.0,
	)
}

// IntensityFraction formats the intensity as a fraction of neutral with two
// decimals, e.g. "1.00".
func (c Color) IntensityFraction() string {
	return fmt.Sprintf("%.2f", float32(c.Intensity())/float32(NeutralIntensity))
}
