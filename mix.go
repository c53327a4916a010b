package palette

// Weighted pairs a mixing weight with an RYB color. The weight is a
// component itself, so it is read on the same normalized scale as the
// channels: a uint8 weight of 255 counts as 1.0.
type Weighted[T Component] struct {
	Weight T
	Color  RYB[T]
}

// Mix combines a collection of weighted colors into a single RYB color by
// per-channel weighted arithmetic mean in the normalized domain. Weights
// need not sum to one; only their relative magnitudes matter.
//
// An empty collection or a zero total weight divides zero by zero and
// yields NaN components, matching the conversions' degenerate-case policy.
func Mix[T Component](colors []Weighted[T]) RYB[T] {
	var wsum, r, y, b float64
	for _, wc := range colors {
		w := toUnit(wc.Weight)
		c := wc.Color.Normalized()
		wsum += w
		r += w * c.R
		y += w * c.Y
		b += w * c.B
	}
	if wsum == 0 {
		Logger().Debug("zero total weight in mix", "colors", len(colors))
	}
	return rybFromUnit[T](r/wsum, y/wsum, b/wsum)
}
