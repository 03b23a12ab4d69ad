package slint

import "image/color"

// Color represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Alpha is straight (not
// premultiplied); backends premultiply where their blend mode needs it.
type Color struct {
	R, G, B, A float32
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBAf creates a color from RGBA components.
func RGBAf(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		R: float32(r) / 65535,
		G: float32(g) / 65535,
		B: float32(b) / 65535,
		A: float32(a) / 65535,
	}
}

// Components returns the color as a 4-element array, the layout GPU
// uniform uploads expect.
func (c Color) Components() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// FillStyle describes how the interior of a path is painted.
// Only solid color fills are supported.
type FillStyle struct {
	// Color is the solid fill color.
	Color Color
}

// SolidFill creates a solid color fill style.
func SolidFill(c Color) FillStyle {
	return FillStyle{Color: c}
}
