package palette

// This file implements the RGB↔RYB transforms. Both directions follow the
// same shape: strip the shared white component, decompose the chromatic
// remainder into the target primaries, rescale so the peak channel keeps the
// de-whitened peak magnitude, then re-add the black component.
//
// The rescale divides by a ratio of channel maxima. When the input is
// achromatic the de-whitened triple is all zero and the ratio is 0/0; the
// resulting NaN propagates silently to the output (see the package doc).

// RYB converts the color to the red-yellow-blue representation.
func (c RGB[T]) RYB() RYB[T] {
	r0 := toUnit(c.R)
	g0 := toUnit(c.G)
	b0 := toUnit(c.B)

	// White interference: the achromatic part shared by all channels.
	iw := min(r0, g0, b0)
	r := r0 - iw
	g := g0 - iw
	b := b0 - iw

	// Subtractive decomposition.
	ry := r - min(r, g)
	yy := (g + min(r, g)) / 2
	by := (b + g - min(r, g)) / 2

	peak := max(r, g, b)
	if peak == 0 {
		Logger().Debug("achromatic input, rescale divisor is zero", "from", "rgb")
	}
	n := max(ry, yy, by) / peak
	ry /= n
	yy /= n
	by /= n

	// Black interference: re-add the headroom shared by all channels.
	ib := min(1-r0, 1-g0, 1-b0)
	return rybFromUnit[T](ry+ib, yy+ib, by+ib)
}

// RGB converts the color to the red-green-blue representation.
//
// The inverse is structurally symmetric to the forward transform but not its
// exact algebraic inverse: the rescale ratio runs inputs-over-outputs, and
// the black-interference term reads the de-whitened blue channel where the
// forward direction reads normalized inputs throughout. Both quirks are kept
// as defined; round trips are exact only for colors whose de-whitened yellow
// or blue content is zero.
func (c RYB[T]) RGB() RGB[T] {
	r0 := toUnit(c.R)
	y0 := toUnit(c.Y)
	b0 := toUnit(c.B)

	iw := min(r0, y0, b0)
	r := r0 - iw
	y := y0 - iw
	b := b0 - iw

	// Additive decomposition.
	rr := r + y - min(y, b)
	gr := y + 2*min(y, b)
	br := 2 * (b - min(y, b))

	peak := max(rr, gr, br)
	if peak == 0 {
		Logger().Debug("achromatic input, rescale divisor is zero", "from", "ryb")
	}
	n := max(r, y, b) / peak
	rr /= n
	gr /= n
	br /= n

	ib := min(1-r0, 1-y0, 1-b)
	return rgbFromUnit[T](rr+ib, gr+ib, br+ib)
}
