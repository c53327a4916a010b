// Package palette converts colors between the additive RGB model and the
// subtractive red-yellow-blue (RYB) model used in traditional color mixing.
//
// # Overview
//
// RYB is the color model painters work in: red, yellow, and blue are the
// primaries, and mixing yellow with blue gives green rather than gray. It is
// not colorimetrically standardized; this package defines it operationally
// through a pair of normalized-interpolation transforms. Both directions
// remove the shared white component, decompose the chromatic remainder,
// rescale it so the peak channel keeps its magnitude, and re-add the black
// component.
//
// # Quick Start
//
//	import palette "github.com/mrkkrp/color-palette"
//
//	// Convert a pixel to artist space and back.
//	ryb := palette.NewRGB(0.5, 0.2, 0.2).RYB()
//	rgb := ryb.RGB()
//
//	// Mix two parts red with one part blue.
//	mud := palette.Mix([]palette.Weighted[float64]{
//	    {Weight: 2, Color: palette.Red},
//	    {Weight: 1, Color: palette.Blue},
//	})
//
// # Component Storage
//
// Colors are generic over their channel storage type. Floating-point channels
// are taken as already normalized to [0, 1]; unsigned integer channels scale
// by their maximum value, so NewRGB[uint8](255, 0, 0) and NewRGB(1.0, 0, 0)
// denote the same color. All arithmetic happens in float64 and results are
// truncated back to the storage type.
//
// # Degenerate Inputs
//
// Achromatic inputs (any gray, including pure black and pure white) leave no
// chromatic content after white removal, which makes the rescaling divisor
// zero. The transforms do not guard this: the resulting 0/0 produces NaN
// components in the output. Callers that need displayable output can go
// through the color.Color bridge, which clamps and maps NaN to zero. See
// SetLogger for a debug-level diagnostic when the degenerate path is hit.
package palette

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
