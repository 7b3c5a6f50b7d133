// Package palette provides the color model and the color schemes used to
// shade escape-time results.
//
// Colors are three unbounded float64 channels. Arithmetic never clamps;
// channels are expected to be in [0, 1] only when [Color.Pack] is called.
//
// Three schemes are available, selected by [Mode]:
//
//   - [Gradient]: blue, white and orange ramp (default)
//   - [Grayscale]: cyclic brightness bands
//   - [Hue]: cyclic full-saturation hue
//
// # Usage
//
//	c := palette.Shade(palette.ModeHue, smooth, escaped, 1000)
//	pixel := c.Pack()
package palette
