package control

import (
	"math"

	"github.com/san-kum/mandelview/internal/palette"
	"github.com/san-kum/mandelview/internal/viewport"
)

// Zoom bounds. Below MinZoom neighbouring pixels are no longer distinct in
// float64; MaxZoom keeps repeated zoom-outs finite.
const (
	MinZoom = 1e-13
	MaxZoom = 1e12
)

const (
	DefaultPanStep = 0.15
	DefaultZoomIn  = 1.5
	DefaultZoomOut = 0.9
)

// Settings are the per-frame step sizes. ZoomIn and ZoomOut multiply the
// zoom factor and must be positive.
type Settings struct {
	PanStep float64
	ZoomIn  float64
	ZoomOut float64
}

func DefaultSettings() Settings {
	return Settings{
		PanStep: DefaultPanStep,
		ZoomIn:  DefaultZoomIn,
		ZoomOut: DefaultZoomOut,
	}
}

// Controller owns the view state. It is driven from a single goroutine.
type Controller struct {
	settings Settings
	initial  viewport.State
	view     viewport.State
	frames   int
}

func New(settings Settings) *Controller {
	return NewWithView(settings, viewport.Default())
}

// NewWithView starts from view instead of the default framing.
func NewWithView(settings Settings, view viewport.State) *Controller {
	view.Zoom = clampZoom(view.Zoom)
	return &Controller{settings: settings, initial: view, view: view}
}

// View returns a snapshot of the current state.
func (c *Controller) View() viewport.State { return c.view }

func (c *Controller) Settings() Settings { return c.settings }

// Frames is the number of Step calls since the last reset.
func (c *Controller) Frames() int { return c.frames }

// Reset restores the starting view.
func (c *Controller) Reset() {
	c.view = c.initial
	c.frames = 0
}

// SetView replaces the current view, clamping its zoom.
func (c *Controller) SetView(view viewport.State) {
	view.Zoom = clampZoom(view.Zoom)
	c.view = view
}

// Step applies one frame of input: toggles from Pressed first, then the
// continuous controls from Held.
func (c *Controller) Step(in Input) viewport.State {
	for _, a := range in.Pressed {
		c.toggle(a)
	}
	for _, a := range in.Held {
		c.hold(a)
	}
	c.frames++
	return c.view
}

func (c *Controller) toggle(a Action) {
	switch a {
	case ToggleGrayscale:
		c.view.Mode = flip(c.view.Mode, palette.ModeGrayscale)
	case ToggleHue:
		c.view.Mode = flip(c.view.Mode, palette.ModeHue)
	}
}

func (c *Controller) hold(a Action) {
	step := c.settings.PanStep * c.view.Zoom
	switch a {
	case PanUp:
		c.view.YOffset -= step
	case PanDown:
		c.view.YOffset += step
	case PanLeft:
		c.view.XOffset -= step
	case PanRight:
		c.view.XOffset += step
	case ZoomIn:
		c.scaleZoom(c.settings.ZoomIn)
	case ZoomOut:
		c.scaleZoom(c.settings.ZoomOut)
	}
}

func (c *Controller) scaleZoom(factor float64) {
	if factor <= 0 || math.IsNaN(factor) {
		return
	}
	c.view.Zoom = clampZoom(c.view.Zoom * factor)
}

// flip turns mode on, or back to the gradient default if it is already on.
func flip(current, mode palette.Mode) palette.Mode {
	if current == mode {
		return palette.ModeGradient
	}
	return mode
}

func clampZoom(z float64) float64 {
	switch {
	case math.IsNaN(z) || z <= 0:
		return 1
	case z < MinZoom:
		return MinZoom
	case z > MaxZoom:
		return MaxZoom
	}
	return z
}
