package color

import (
	imgcolor "image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Float is a floating-point RGBA color with components in [0, 1].
type Float struct {
	R, G, B, A float32
}

// Float converts c to floating point. Intensity scales the color channels
// (channel*intensity/65280) when it is not neutral; alpha is never scaled.
func (c Color) Float() Float {
	a := float32(c.A()) / 255.0
	i := c.Intensity()
	if i == NeutralIntensity {
		return Float{
			R: float32(c.R()) / 255.0,
			G: float32(c.G()) / 255.0,
			B: float32(c.B()) / 255.0,
			A: a,
		}
	}
	scale := func(ch uint8) float32 {
		return float32(uint32(ch)*uint32(i)) / 65280.0
	}
	return Float{R: scale(c.R()), G: scale(c.G()), B: scale(c.B()), A: a}
}

// FromFloat converts a floating-point color using the saturating scale.
// The result has neutral intensity.
func FromFloat(f Float) Color {
	return New(ScaleChannel(f.R), ScaleChannel(f.G), ScaleChannel(f.B), ScaleChannel(f.A))
}

// RGBA implements image/color.Color. Intensity is not applied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return imgcolor.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}

// FromImage converts any image/color.Color, un-premultiplying alpha.
func FromImage(src imgcolor.Color) Color {
	if c, ok := src.(Color); ok {
		return c
	}
	n := imgcolor.NRGBAModel.Convert(src).(imgcolor.NRGBA)
	return New(n.R, n.G, n.B, n.A)
}

// Colorful converts c to a go-colorful color, applying intensity.
// Alpha is dropped; use A() alongside it when needed.
func (c Color) Colorful() colorful.Color {
	f := c.Float()
	return colorful.Color{R: float64(f.R), G: float64(f.G), B: float64(f.B)}
}

// FromColorful converts a go-colorful color plus a normalized alpha.
func FromColorful(cc colorful.Color, alpha float64) Color {
	return FromFloat(Float{
		R: float32(cc.R),
		G: float32(cc.G),
		B: float32(cc.B),
		A: float32(alpha),
	})
}

// Lipgloss returns the color as a lipgloss "#rrggbb" color.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.HexRGB())
}

// TCell returns the color as a tcell true color.
func (c Color) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}
