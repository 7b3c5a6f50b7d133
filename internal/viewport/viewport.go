// Package viewport maps screen pixels onto the complex plane.
//
// At zoom 1 with zero offsets a square canvas shows the classic framing
// x in [-2, 1], y in [-1.5, 1.5]. The span grows with zoom, so zoom > 1 shows
// a wider region and zoom < 1 a narrower one.
package viewport

import "github.com/san-kum/mandelview/internal/palette"

const (
	span    = 3.0
	originX = 2.0
	originY = 1.5
)

// State is the view handed to the renderer once per frame.
type State struct {
	XOffset float64
	YOffset float64
	Zoom    float64
	Mode    palette.Mode
}

// Default is the initial view: no offset, zoom 1, gradient colors.
func Default() State {
	return State{Zoom: 1, Mode: palette.ModeGradient}
}

// Coord is a pixel position derived from a linear row-major index.
type Coord struct {
	Col, Row int
}

func Pixel(index, width int) Coord {
	return Coord{Col: index % width, Row: index / width}
}

// Map returns the plane coordinate of pixel index. Both axes are normalized by
// the image height.
func Map(index, width, height int, s State) (x0, y0 float64) {
	c := Pixel(index, width)
	return MapCoord(c, height, s)
}

func MapCoord(c Coord, height int, s State) (x0, y0 float64) {
	h := float64(height)
	x0 = float64(c.Col)/h*span*s.Zoom - originX*s.Zoom + s.XOffset
	y0 = float64(c.Row)/h*span*s.Zoom - originY*s.Zoom + s.YOffset
	return x0, y0
}

// Bounds returns the plane rectangle covered by a width x height image.
func Bounds(width, height int, s State) Region {
	xmin, ymin := MapCoord(Coord{}, height, s)
	xmax, ymax := MapCoord(Coord{Col: width, Row: height}, height, s)
	return Region{Xmin: xmin, Xmax: xmax, Ymin: ymin, Ymax: ymax}
}
