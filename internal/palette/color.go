package palette

import "math"

// Color is an RGB triple with unbounded channels.
type Color struct {
	R, G, B float64
}

var (
	Black  = Color{0, 0, 0}
	White  = Color{1, 1, 1}
	Blue   = Color{0, 0.2, 1}
	Orange = Color{1, 0.6, 0.1}
)

func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

func (c Color) AddScalar(v float64) Color {
	return Color{c.R + v, c.G + v, c.B + v}
}

func (c Color) Sub(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B}
}

func (c Color) SubScalar(v float64) Color {
	return Color{c.R - v, c.G - v, c.B - v}
}

func (c Color) Scale(v float64) Color {
	return Color{c.R * v, c.G * v, c.B * v}
}

func (c Color) Div(v float64) Color {
	return Color{c.R / v, c.G / v, c.B / v}
}

// IsFinite reports whether every channel is a finite number.
func (c Color) IsFinite() bool {
	for _, v := range [3]float64{c.R, c.G, c.B} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Pack converts c to a 0xRRGGBB pixel. Each channel is scaled by 255 and
// truncated; out of range channels are not clamped.
func (c Color) Pack() uint32 {
	return PackRGB(uint32(c.R*255), uint32(c.G*255), uint32(c.B*255))
}

// PackRGB packs 8-bit channels as (((r<<8)|g)<<8)|b.
func PackRGB(r, g, b uint32) uint32 {
	rg := (r << 8) | g
	return (rg << 8) | b
}

// Unpack splits a packed pixel back into 8-bit channels.
func Unpack(p uint32) (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// Mix blends a and b as a*t + b*(1-t).
func Mix(a, b Color, t float64) Color {
	return a.Scale(t).Add(b.Scale(1 - t))
}
