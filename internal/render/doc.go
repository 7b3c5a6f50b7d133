// Package render shades every pixel of a frame in parallel.
//
// Each frame is split into disjoint row bands. Bands are scheduled on a
// bounded pool and each one writes only its own slice of the frame buffer,
// so no locking is needed. [Renderer.Render] returns after every band has
// finished, which is the barrier before the frame can be presented.
//
//	r, _ := render.New(600, 600, 1000, 0)
//	buf := render.NewFrameBuffer(600, 600)
//	_ = r.Render(viewport.Default(), buf)
//
// The view passed to Render is a value copy and must not be shared mutably
// with the pixel workers.
package render
