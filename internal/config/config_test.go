package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/san-kum/mandelview/internal/control"
	"github.com/san-kum/mandelview/internal/palette"
	"github.com/san-kum/mandelview/internal/viewport"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width != 600 || cfg.Height != 600 {
		t.Errorf("expected 600x600, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.MaxIteration != 1000 {
		t.Errorf("expected max iteration 1000, got %d", cfg.MaxIteration)
	}
	if cfg.Controls.ZoomIn != 1.5 || cfg.Controls.ZoomOut != 0.9 || cfg.Controls.PanStep != 0.15 {
		t.Errorf("unexpected controls: %+v", cfg.Controls)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
	if cfg.InitialView() != viewport.Default() {
		t.Errorf("default initial view = %+v", cfg.InitialView())
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "view.yaml", `
width: 320
height: 200
mode: hue
preset: seahorse
controls:
  zoom_in: 2.0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 200 {
		t.Errorf("expected 320x200, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Controls.ZoomIn != 2.0 {
		t.Errorf("expected zoom_in 2.0, got %v", cfg.Controls.ZoomIn)
	}
	if cfg.Controls.ZoomOut != 0.9 {
		t.Errorf("unset zoom_out should keep default, got %v", cfg.Controls.ZoomOut)
	}
	if cfg.MaxIteration != DefaultMaxIteration {
		t.Errorf("unset max_iteration should keep default, got %d", cfg.MaxIteration)
	}

	view := cfg.InitialView()
	if view.Mode != palette.ModeHue {
		t.Errorf("expected hue mode, got %v", view.Mode)
	}
	if math.Abs(view.Zoom-0.1/3) > 1e-12 {
		t.Errorf("expected seahorse zoom, got %v", view.Zoom)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "view.toml", `
max_iteration = 250
mode = "grayscale"

[keys]
grayscale = "g"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.MaxIteration != 250 {
		t.Errorf("expected 250, got %d", cfg.MaxIteration)
	}
	if cfg.Keys.Grayscale != "g" || cfg.Keys.Hue != "backspace" {
		t.Errorf("unexpected keys: %+v", cfg.Keys)
	}
	if cfg.InitialView().Mode != palette.ModeGrayscale {
		t.Errorf("expected grayscale mode")
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := writeFile(t, "bad.yaml", "width: [")
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := writeFile(t, "invalid.yaml", "height: 0\n")
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, name := range []string{"out.yaml", "out.toml"} {
		path := filepath.Join(t.TempDir(), name)
		cfg := DefaultConfig()
		cfg.Preset = "dragon"
		cfg.Workers = 3

		if err := Save(path, cfg); err != nil {
			t.Fatalf("%s: save failed: %v", name, err)
		}
		got, err := Load(path)
		if err != nil {
			t.Fatalf("%s: load failed: %v", name, err)
		}
		if *got != *cfg {
			t.Errorf("%s: round trip mismatch:\n got %+v\nwant %+v", name, got, cfg)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -5 }},
		{"zero iterations", func(c *Config) { c.MaxIteration = 0 }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"negative fps", func(c *Config) { c.FPS = -1 }},
		{"zero pan step", func(c *Config) { c.Controls.PanStep = 0 }},
		{"negative zoom in", func(c *Config) { c.Controls.ZoomIn = -1.5 }},
		{"zero zoom out", func(c *Config) { c.Controls.ZoomOut = 0 }},
		{"unknown mode", func(c *Config) { c.Mode = "sepia" }},
		{"unknown preset", func(c *Config) { c.Preset = "atlantis" }},
		{"empty key", func(c *Config) { c.Keys.Up = "" }},
		{"duplicate key", func(c *Config) { c.Keys.Down = "w" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestBindings(t *testing.T) {
	b := DefaultKeys().Bindings()
	if len(b) != len(control.Actions()) {
		t.Fatalf("expected a binding per action, got %d", len(b))
	}
	if b[control.ToggleGrayscale] != "enter" || b[control.ZoomOut] != "shift" {
		t.Errorf("unexpected bindings: %v", b)
	}
}

func TestControlSettings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Controls.PanStep = 0.3
	if got := cfg.ControlSettings(); got.PanStep != 0.3 || got.ZoomIn != 1.5 {
		t.Errorf("unexpected settings: %+v", got)
	}
}

func TestGetPreset(t *testing.T) {
	p := GetPreset("seahorse")
	if p == nil {
		t.Fatal("expected preset, got nil")
	}
	b := viewport.Bounds(600, 600, p.View())
	if math.Abs(b.Xmin+0.8) > 1e-9 || math.Abs(b.Ymax-0.15) > 1e-9 {
		t.Errorf("seahorse bounds = %+v", b)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
	for _, name := range presets {
		if v := GetPreset(name).View(); v.Zoom <= 0 {
			t.Errorf("preset %s has zoom %v", name, v.Zoom)
		}
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
