package palette

import "image/color"

// RGBA implements the standard color.Color interface. Channels are clamped
// to the displayable range on the way out; NaN components from the
// degenerate conversion cases land on zero. Clamping lives only on this
// display path, never inside the conversions themselves.
func (c RGB[T]) RGBA() (r, g, b, a uint32) {
	n := c.Normalized()
	return uint32(clamp01(n.R) * 0xffff),
		uint32(clamp01(n.G) * 0xffff),
		uint32(clamp01(n.B) * 0xffff),
		0xffff
}

// RGBA implements the standard color.Color interface by converting through
// the RGB model. See RGB.RGBA for the clamping rules.
func (c RYB[T]) RGBA() (r, g, b, a uint32) {
	return c.RGB().RGBA()
}

// FromColor converts a standard color.Color to a normalized RGB value.
// Alpha is dropped; channels are taken as reported, so translucent colors
// arrive premultiplied.
func FromColor(c color.Color) RGB[float64] {
	r, g, b, _ := c.RGBA()
	return RGB[float64]{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
	}
}

// clamp01 restricts a value to [0, 1]. NaN maps to 0.
func clamp01(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x >= 0 {
		return x
	}
	return 0
}
