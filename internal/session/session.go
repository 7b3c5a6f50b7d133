// Package session runs the frame loop: poll input, advance the controller,
// render, present, repeat until the presenter stops or the context is done.
package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/san-kum/mandelview/internal/control"
	"github.com/san-kum/mandelview/internal/render"
	"github.com/san-kum/mandelview/internal/viewport"
)

// statsEvery is how often, in frames, Run logs frame timings.
const statsEvery = 120

// Presenter is the window or terminal the frames are shown on.
type Presenter interface {
	// Running is consulted once per frame before polling.
	Running() bool
	// Poll returns the input gathered since the previous frame.
	Poll() control.Input
	// Present shows a completed frame. It may block, e.g. on vsync.
	Present(buf *render.FrameBuffer) error
}

type Session struct {
	ctrl     *control.Controller
	renderer *render.Renderer
	buf      *render.FrameBuffer
	stats    Stats
	log      *slog.Logger
}

func New(ctrl *control.Controller, renderer *render.Renderer) *Session {
	return &Session{
		ctrl:     ctrl,
		renderer: renderer,
		buf:      renderer.NewFrameBuffer(),
		log:      slog.Default().With("component", "session"),
	}
}

func (s *Session) Controller() *control.Controller { return s.ctrl }
func (s *Session) Renderer() *render.Renderer      { return s.renderer }
func (s *Session) Buffer() *render.FrameBuffer     { return s.buf }
func (s *Session) Stats() Stats                    { return s.stats }

// Frame advances the controller by in and renders the resulting view into
// the session buffer. The returned buffer is reused by the next call.
func (s *Session) Frame(in control.Input) (*render.FrameBuffer, viewport.State, error) {
	view := s.ctrl.Step(in)

	start := time.Now()
	if err := s.renderer.Render(view, s.buf); err != nil {
		return nil, view, err
	}
	s.stats.observe(time.Since(start))
	return s.buf, view, nil
}

// Run drives p until p stops running, ctx is done, or a frame fails.
// Stopping for either of the first two reasons is not an error.
func (s *Session) Run(ctx context.Context, p Presenter) error {
	s.log.Debug("session started",
		"width", s.renderer.Width(),
		"height", s.renderer.Height(),
		"max_iteration", s.renderer.MaxIteration(),
		"workers", s.renderer.Workers())

	for {
		if ctx.Err() != nil {
			s.log.Debug("session canceled", "frames", s.stats.Frames)
			return nil
		}
		if !p.Running() {
			s.log.Debug("session stopped", "frames", s.stats.Frames)
			return nil
		}

		buf, view, err := s.Frame(p.Poll())
		if err != nil {
			return errors.Wrapf(err, "render frame %d", s.stats.Frames)
		}
		if err := p.Present(buf); err != nil {
			return errors.Wrapf(err, "present frame %d", s.stats.Frames)
		}

		if s.stats.Frames%statsEvery == 0 {
			s.log.Debug("frame stats",
				"frames", s.stats.Frames,
				"last", s.stats.Last,
				"avg", s.stats.Average(),
				"zoom", view.Zoom,
				"mode", view.Mode.String())
		}
	}
}

// Stats records render times. Presentation time is not included.
type Stats struct {
	Frames int
	Last   time.Duration
	Total  time.Duration
	Min    time.Duration
	Max    time.Duration
}

func (st *Stats) observe(d time.Duration) {
	st.Frames++
	st.Last = d
	st.Total += d
	if st.Frames == 1 || d < st.Min {
		st.Min = d
	}
	if d > st.Max {
		st.Max = d
	}
}

func (st Stats) Average() time.Duration {
	if st.Frames == 0 {
		return 0
	}
	return st.Total / time.Duration(st.Frames)
}

// FPS is the render-only frame rate implied by the average frame time.
func (st Stats) FPS() float64 {
	avg := st.Average()
	if avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}
