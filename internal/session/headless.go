package session

import (
	"time"

	"github.com/san-kum/mandelview/internal/control"
	"github.com/san-kum/mandelview/internal/render"
)

// Headless is an offscreen presenter that replays a fixed input script for a
// set number of frames. It records how long each frame took end to end.
type Headless struct {
	frames    int
	script    func(frame int) control.Input
	presented int
	last      time.Time
	Durations []time.Duration
	Final     []uint32
}

// NewHeadless runs for frames frames. script may be nil for no input.
func NewHeadless(frames int, script func(frame int) control.Input) *Headless {
	return &Headless{
		frames:    frames,
		script:    script,
		Durations: make([]time.Duration, 0, frames),
	}
}

// Holding returns a script that holds the given actions every frame.
func Holding(actions ...control.Action) func(int) control.Input {
	return func(int) control.Input {
		return control.Input{Held: actions}
	}
}

func (h *Headless) Running() bool { return h.presented < h.frames }

func (h *Headless) Poll() control.Input {
	h.last = time.Now()
	if h.script == nil {
		return control.Input{}
	}
	return h.script(h.presented)
}

func (h *Headless) Present(buf *render.FrameBuffer) error {
	h.Durations = append(h.Durations, time.Since(h.last))
	h.presented++
	if !h.Running() {
		h.Final = append(h.Final[:0], buf.Pixels...)
	}
	return nil
}

func (h *Headless) Presented() int { return h.presented }
