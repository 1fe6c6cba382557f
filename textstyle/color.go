// Package textstyle provides the platform independent color model used by
// the highlighting engine: theme color tables, contrast math, and a color
// palette that deduplicates colors by value. Conversion to a platform
// color type is deferred to the rendering boundary.
package textstyle

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a non-premultiplied RGBA color with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Hex returns the color as a #rrggbb string, ignoring alpha.
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()
}

// IsZero reports whether c is the zero color, used as the "no color" marker.
func (c Color) IsZero() bool {
	return c == Color{}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

func fromColorful(cc colorful.Color, alpha float64) Color {
	cc = cc.Clamped()
	return Color{R: cc.R, G: cc.G, B: cc.B, A: alpha}
}

// Luminance returns the relative luminance of c: the linear-light weighted
// sum 0.2126·R + 0.7152·G + 0.0722·B after gamma linearizing each channel.
func Luminance(c Color) float64 {
	// Y of CIE XYZ is exactly the relative luminance.
	_, y, _ := c.colorful().Xyz()
	return y
}

// ContrastRatio returns the WCAG contrast ratio between two colors,
// (lighter+0.05)/(darker+0.05), in the range [1, 21].
func ContrastRatio(a, b Color) float64 {
	la := Luminance(a)
	lb := Luminance(b)
	if la < lb {
		la, lb = lb, la
	}

	return (la + 0.05) / (lb + 0.05)
}
