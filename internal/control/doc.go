// Package control holds the interactive view state and advances it once per
// frame from discrete input actions.
//
// Input arrives in two batches:
//
//   - Pressed: edge-triggered, one entry per physical key-down. Only the mode
//     toggles react to it.
//   - Held: level-triggered, every frame the key is down. Only panning and
//     zooming react to it.
//
// The color mode is a single tagged value, so two schemes can never be
// active at once. Zoom only ever changes multiplicatively and is clamped to
// [MinZoom, MaxZoom].
//
//	c := control.New(control.DefaultSettings())
//	c.Step(control.Input{Held: []control.Action{control.ZoomIn}})
//	view := c.View()
package control
