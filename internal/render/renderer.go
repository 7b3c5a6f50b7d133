package render

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/mandelview/internal/escape"
	"github.com/san-kum/mandelview/internal/palette"
	"github.com/san-kum/mandelview/internal/viewport"
)

// bandsPerWorker oversplits the frame so rows near the set, which iterate to
// the cap, do not pile up on one worker.
const bandsPerWorker = 4

type Renderer struct {
	width        int
	height       int
	maxIteration int
	workers      int
}

// New returns a renderer for fixed image dimensions. workers <= 0 uses one
// worker per CPU.
func New(width, height, maxIteration, workers int) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrDimensions, "%dx%d", width, height)
	}
	if maxIteration < 1 {
		return nil, errors.Wrapf(ErrIterations, "got %d", maxIteration)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Renderer{
		width:        width,
		height:       height,
		maxIteration: maxIteration,
		workers:      workers,
	}, nil
}

func (r *Renderer) Width() int        { return r.width }
func (r *Renderer) Height() int       { return r.height }
func (r *Renderer) MaxIteration() int { return r.maxIteration }
func (r *Renderer) Workers() int      { return r.workers }

// NewFrameBuffer allocates a buffer sized for r.
func (r *Renderer) NewFrameBuffer() *FrameBuffer {
	return NewFrameBuffer(r.width, r.height)
}

// Pixel computes the packed color of a single pixel index.
func (r *Renderer) Pixel(view viewport.State, index int) uint32 {
	x0, y0 := viewport.Map(index, r.width, r.height, view)
	res := escape.Iterate(x0, y0, r.maxIteration)
	return palette.Shade(view.Mode, escape.Smooth(res), res.Escaped, r.maxIteration).Pack()
}

// Render overwrites every pixel of buf for view.
func (r *Renderer) Render(view viewport.State, buf *FrameBuffer) error {
	if buf == nil || buf.Width != r.width || buf.Height != r.height || len(buf.Pixels) != r.width*r.height {
		return errors.WithStack(ErrBufferSize)
	}

	var g errgroup.Group
	g.SetLimit(r.workers)
	for _, b := range Bands(len(buf.Pixels), r.width, r.workers*bandsPerWorker) {
		out := buf.Pixels[b.Start:b.End]
		start := b.Start
		g.Go(func() error {
			for i := range out {
				out[i] = r.Pixel(view, start+i)
			}
			return nil
		})
	}
	return g.Wait()
}

// Band is a half-open range [Start, End) of pixel indices.
type Band struct {
	Start, End int
}

// Bands splits n pixels into at most count contiguous ranges aligned to whole
// rows of width pixels. The ranges cover [0, n) exactly once.
func Bands(n, width, count int) []Band {
	if n <= 0 {
		return nil
	}
	rows := (n + width - 1) / width
	if count < 1 {
		count = 1
	}
	if count > rows {
		count = rows
	}

	rowsPerBand := (rows + count - 1) / count
	bands := make([]Band, 0, count)
	for row := 0; row < rows; row += rowsPerBand {
		start := row * width
		end := start + rowsPerBand*width
		if end > n {
			end = n
		}
		bands = append(bands, Band{Start: start, End: end})
	}
	return bands
}
