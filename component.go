package palette

import "golang.org/x/exp/constraints"

// Component is the set of numeric types usable as channel storage for a
// color: 32- and 64-bit floats plus unsigned integers of any width,
// including uint and uintptr. Floating-point values are interpreted as
// already normalized to [0, 1]; unsigned integers span their full range,
// with the maximum representable value meaning full intensity.
//
// Values outside the normalized range are accepted everywhere and flow
// through the arithmetic unvalidated. Converting a NaN or out-of-range
// float back to unsigned storage follows Go's conversion rules, which are
// implementation-defined for such inputs. At full scale the 64-bit integer
// widths lose precision, since float64 cannot represent their maximum value
// exactly.
type Component interface {
	constraints.Float | constraints.Unsigned
}

// unitScale returns the native value of a full-intensity channel: the
// maximum representable value for unsigned storage, 1 for floating storage.
func unitScale[T Component]() float64 {
	var z T
	z-- // wraps to the maximum value for unsigned types
	if z > 0 {
		return float64(z)
	}
	return 1
}

// toUnit converts a channel value to the normalized [0, 1] float64 domain
// all color arithmetic runs in.
func toUnit[T Component](v T) float64 {
	return float64(v) / unitScale[T]()
}

// fromUnit converts a normalized float64 back to channel storage,
// truncating toward zero for integer types.
func fromUnit[T Component](x float64) T {
	return T(x * unitScale[T]())
}
