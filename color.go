package palette

// RGB represents a color in the additive red-green-blue model.
// Values are immutable; conversions and mixing return new values.
type RGB[T Component] struct {
	R, G, B T
}

// RYB represents a color in the subtractive red-yellow-blue model.
type RYB[T Component] struct {
	R, Y, B T
}

// NewRGB creates an RGB color from red, green, and blue components.
func NewRGB[T Component](r, g, b T) RGB[T] {
	return RGB[T]{R: r, G: g, B: b}
}

// NewRYB creates an RYB color from red, yellow, and blue components.
func NewRYB[T Component](r, y, b T) RYB[T] {
	return RYB[T]{R: r, Y: y, B: b}
}

// Normalized returns the color with all components converted to the
// normalized float64 domain.
func (c RGB[T]) Normalized() RGB[float64] {
	return RGB[float64]{R: toUnit(c.R), G: toUnit(c.G), B: toUnit(c.B)}
}

// Normalized returns the color with all components converted to the
// normalized float64 domain.
func (c RYB[T]) Normalized() RYB[float64] {
	return RYB[float64]{R: toUnit(c.R), Y: toUnit(c.Y), B: toUnit(c.B)}
}

// rgbFromUnit builds an RGB value from normalized components.
func rgbFromUnit[T Component](r, g, b float64) RGB[T] {
	return RGB[T]{R: fromUnit[T](r), G: fromUnit[T](g), B: fromUnit[T](b)}
}

// rybFromUnit builds an RYB value from normalized components.
func rybFromUnit[T Component](r, y, b float64) RYB[T] {
	return RYB[T]{R: fromUnit[T](r), Y: fromUnit[T](y), B: fromUnit[T](b)}
}

// Palette anchors in RYB space. RYB is subtractive, so full intensity on
// every channel is black and zero on every channel is white.
var (
	Black  = RYB[float64]{R: 1, Y: 1, B: 1}
	White  = RYB[float64]{R: 0, Y: 0, B: 0}
	Red    = RYB[float64]{R: 1, Y: 0, B: 0}
	Yellow = RYB[float64]{R: 0, Y: 1, B: 0}
	Blue   = RYB[float64]{R: 0, Y: 0, B: 1}
	Green  = RYB[float64]{R: 0, Y: 1, B: 1}
	Cyan   = RYB[float64]{R: 0, Y: 0.5, B: 1}
	Purple = RYB[float64]{R: 1, Y: 0, B: 0.5}
)
