package viewport

// Region is an axis-aligned rectangle of the complex plane.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

func (r Region) Center() (x, y float64) {
	return (r.Xmin + r.Xmax) / 2, (r.Ymin + r.Ymax) / 2
}

// FromRegion returns the view that frames r on a square canvas. The larger of
// the two extents decides the zoom.
func FromRegion(r Region) State {
	w := r.Xmax - r.Xmin
	h := r.Ymax - r.Ymin
	extent := w
	if h > extent {
		extent = h
	}

	s := Default()
	s.Zoom = extent / span
	cx, cy := r.Center()
	// centre of the square view sits at offset - (originX - span/2) * zoom
	s.XOffset = cx + (originX-span/2)*s.Zoom
	s.YOffset = cy + (originY-span/2)*s.Zoom
	return s
}
