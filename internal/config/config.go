package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/mandelview/internal/control"
	"github.com/san-kum/mandelview/internal/palette"
	"github.com/san-kum/mandelview/internal/viewport"
)

const (
	DefaultWidth        = 600
	DefaultHeight       = 600
	DefaultMaxIteration = 1000
	DefaultFPS          = 60
	DefaultTitle        = "mandelview - ESC to exit"
	DefaultPreset       = "classic"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Width        int            `yaml:"width" toml:"width"`
	Height       int            `yaml:"height" toml:"height"`
	MaxIteration int            `yaml:"max_iteration" toml:"max_iteration"`
	Workers      int            `yaml:"workers" toml:"workers"`
	FPS          int            `yaml:"fps" toml:"fps"`
	Title        string         `yaml:"title" toml:"title"`
	Mode         string         `yaml:"mode" toml:"mode"`
	Preset       string         `yaml:"preset" toml:"preset"`
	Controls     ControlsConfig `yaml:"controls" toml:"controls"`
	Keys         KeysConfig     `yaml:"keys" toml:"keys"`
}

type ControlsConfig struct {
	PanStep float64 `yaml:"pan_step" toml:"pan_step"`
	ZoomIn  float64 `yaml:"zoom_in" toml:"zoom_in"`
	ZoomOut float64 `yaml:"zoom_out" toml:"zoom_out"`
}

// KeysConfig names the key bound to each action. Names are lower case, e.g.
// "enter", "backspace", "space", "shift", "w".
type KeysConfig struct {
	Grayscale string `yaml:"grayscale" toml:"grayscale"`
	Hue       string `yaml:"hue" toml:"hue"`
	Up        string `yaml:"up" toml:"up"`
	Down      string `yaml:"down" toml:"down"`
	Left      string `yaml:"left" toml:"left"`
	Right     string `yaml:"right" toml:"right"`
	ZoomIn    string `yaml:"zoom_in" toml:"zoom_in"`
	ZoomOut   string `yaml:"zoom_out" toml:"zoom_out"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		MaxIteration: DefaultMaxIteration,
		FPS:          DefaultFPS,
		Title:        DefaultTitle,
		Mode:         palette.ModeGradient.String(),
		Preset:       DefaultPreset,
		Controls: ControlsConfig{
			PanStep: control.DefaultPanStep,
			ZoomIn:  control.DefaultZoomIn,
			ZoomOut: control.DefaultZoomOut,
		},
		Keys: DefaultKeys(),
	}
}

func DefaultKeys() KeysConfig {
	return KeysConfig{
		Grayscale: "enter",
		Hue:       "backspace",
		Up:        "w",
		Down:      "s",
		Left:      "a",
		Right:     "d",
		ZoomIn:    "space",
		ZoomOut:   "shift",
	}
}

// Load reads a YAML file, or TOML when the extension is .toml, on top of the
// defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	cfg := DefaultConfig()
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, errors.Wrapf(err, "parse %s", path)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := cfg.Encode(isTOML(path))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Encode renders cfg as YAML, or TOML when asTOML is set.
func (c *Config) Encode(asTOML bool) ([]byte, error) {
	if asTOML {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, errors.Wrap(err, "encode toml")
		}
		return buf.Bytes(), nil
	}
	data, err := yaml.Marshal(c)
	return data, errors.Wrap(err, "encode yaml")
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalid, "image size %dx%d must be positive", c.Width, c.Height)
	case c.MaxIteration < 1:
		return errors.Wrapf(ErrInvalid, "max_iteration %d must be at least 1", c.MaxIteration)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalid, "workers %d must not be negative", c.Workers)
	case c.FPS < 0:
		return errors.Wrapf(ErrInvalid, "fps %d must not be negative", c.FPS)
	case c.Controls.PanStep <= 0:
		return errors.Wrapf(ErrInvalid, "controls.pan_step %v must be positive", c.Controls.PanStep)
	case c.Controls.ZoomIn <= 0 || c.Controls.ZoomOut <= 0:
		return errors.Wrapf(ErrInvalid, "zoom factors %v/%v must be positive", c.Controls.ZoomIn, c.Controls.ZoomOut)
	}

	if _, err := palette.ParseMode(c.Mode); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}
	if c.Preset != "" && GetPreset(c.Preset) == nil {
		return errors.Wrapf(ErrInvalid, "unknown preset: %s (available: %v)", c.Preset, ListPresets())
	}
	if err := c.Keys.validate(); err != nil {
		return err
	}
	return nil
}

func (k KeysConfig) validate() error {
	seen := make(map[string]control.Action)
	for action, name := range k.Bindings() {
		if name == "" {
			return errors.Wrapf(ErrInvalid, "keys.%s is empty", action)
		}
		if other, dup := seen[name]; dup {
			return errors.Wrapf(ErrInvalid, "key %q bound to both %s and %s", name, other, action)
		}
		seen[name] = action
	}
	return nil
}

// Bindings maps each action to its configured key name.
func (k KeysConfig) Bindings() map[control.Action]string {
	return map[control.Action]string{
		control.ToggleGrayscale: strings.ToLower(k.Grayscale),
		control.ToggleHue:       strings.ToLower(k.Hue),
		control.PanUp:           strings.ToLower(k.Up),
		control.PanDown:         strings.ToLower(k.Down),
		control.PanLeft:         strings.ToLower(k.Left),
		control.PanRight:        strings.ToLower(k.Right),
		control.ZoomIn:          strings.ToLower(k.ZoomIn),
		control.ZoomOut:         strings.ToLower(k.ZoomOut),
	}
}

func (c *Config) ControlSettings() control.Settings {
	return control.Settings{
		PanStep: c.Controls.PanStep,
		ZoomIn:  c.Controls.ZoomIn,
		ZoomOut: c.Controls.ZoomOut,
	}
}

// InitialView is the preset view with the configured color mode.
func (c *Config) InitialView() viewport.State {
	view := viewport.Default()
	if p := GetPreset(c.Preset); p != nil {
		view = p.View()
	}
	if m, err := palette.ParseMode(c.Mode); err == nil {
		view.Mode = m
	}
	return view
}
