package gui

import (
	"image/color"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/mandelview/internal/control"
	"github.com/san-kum/mandelview/internal/render"
)

// Options configure the window.
type Options struct {
	Title    string
	Width    int
	Height   int
	FPS      int
	Bindings map[control.Action]string
	HUD      bool
}

// Window presents frames in a raylib window sized to the frame buffer.
type Window struct {
	width    int
	height   int
	bindings []binding
	tex      rl.Texture2D
	pixels   []color.RGBA
	hud      bool
	status   func() string
	log      *slog.Logger
}

// Open initializes the raylib window and a streaming texture. Close must be
// called when the window is no longer used.
func Open(opts Options) (*Window, error) {
	bindings, err := resolveBindings(opts.Bindings)
	if err != nil {
		return nil, err
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	if opts.FPS > 0 {
		rl.SetTargetFPS(int32(opts.FPS))
	}
	// Escape is handled in Running.
	rl.SetExitKey(0)

	img := rl.GenImageColor(opts.Width, opts.Height, rl.Black)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	w := &Window{
		width:    opts.Width,
		height:   opts.Height,
		bindings: bindings,
		tex:      tex,
		pixels:   make([]color.RGBA, opts.Width*opts.Height),
		hud:      opts.HUD,
		log:      slog.Default().With("component", "gui"),
	}
	w.log.Info("window opened", "width", opts.Width, "height", opts.Height, "fps", opts.FPS)
	return w, nil
}

// SetStatus installs a callback whose text is drawn over each frame when the
// HUD is enabled.
func (w *Window) SetStatus(fn func() string) { w.status = fn }

func (w *Window) Running() bool {
	return !rl.WindowShouldClose() && !rl.IsKeyDown(rl.KeyEscape)
}

func (w *Window) Poll() control.Input {
	return poll(w.bindings, rl.IsKeyPressed, rl.IsKeyDown)
}

func (w *Window) Present(buf *render.FrameBuffer) error {
	buf.CopyRGBA(w.pixels)
	rl.UpdateTexture(w.tex, w.pixels)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.DrawTexture(w.tex, 0, 0, rl.White)
	if w.hud {
		rl.DrawFPS(10, 10)
		if w.status != nil {
			rl.DrawText(w.status(), 10, 34, 16, rl.RayWhite)
		}
	}
	rl.EndDrawing()
	return nil
}

func (w *Window) Close() {
	rl.UnloadTexture(w.tex)
	rl.CloseWindow()
	w.log.Info("window closed")
}
