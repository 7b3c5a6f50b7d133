package palette

import "math"

// bandScale controls how many color cycles fit into the iteration cap.
const bandScale = 10.0

// Grayscale returns equal channels of (10*smooth mod max) / max.
func Grayscale(smooth float64, maxIteration int) Color {
	limit := float64(maxIteration)
	v := wrap(bandScale*smooth, limit) / limit
	return Color{v, v, v}
}

// Hue maps (10*smooth/max) mod 1 onto a fully saturated hue.
func Hue(smooth float64, maxIteration int) Color {
	return HSV(Cycle(smooth, maxIteration), 1, 1)
}

// Gradient blends blue, white and orange across three equal thirds of [0, 1).
func Gradient(mix float64) Color {
	switch {
	case mix < 1.0/3.0:
		return Mix(White, Blue, mix*3)
	case mix < 2.0/3.0:
		return Mix(Orange, White, (mix-1.0/3.0)*3)
	default:
		return Mix(Blue, Orange, (mix-2.0/3.0)*3)
	}
}

// Cycle normalizes a smooth iteration count to (10*smooth/max) mod 1.
func Cycle(smooth float64, maxIteration int) float64 {
	return wrap(bandScale*smooth/float64(maxIteration), 1)
}

// wrap is a floored modulo, so negative counts still land in [0, m).
func wrap(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}

// Shade picks the scheme for mode. Points that never escaped, and results
// that are not finite, are black.
func Shade(mode Mode, smooth float64, escaped bool, maxIteration int) Color {
	if !escaped {
		return Black
	}

	var c Color
	switch mode {
	case ModeGrayscale:
		c = Grayscale(smooth, maxIteration)
	case ModeHue:
		c = Hue(smooth, maxIteration)
	default:
		c = Gradient(Cycle(smooth, maxIteration))
	}

	if !c.IsFinite() {
		return Black
	}
	return c
}
