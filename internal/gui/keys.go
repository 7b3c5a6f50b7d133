package gui

import (
	"fmt"
	"sort"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/mandelview/internal/control"
)

var namedKeys = map[string]int32{
	"enter":       rl.KeyEnter,
	"backspace":   rl.KeyBackspace,
	"space":       rl.KeySpace,
	"tab":         rl.KeyTab,
	"shift":       rl.KeyLeftShift,
	"left_shift":  rl.KeyLeftShift,
	"right_shift": rl.KeyRightShift,
	"ctrl":        rl.KeyLeftControl,
	"up_arrow":    rl.KeyUp,
	"down_arrow":  rl.KeyDown,
	"left_arrow":  rl.KeyLeft,
	"right_arrow": rl.KeyRight,
	"minus":       rl.KeyMinus,
	"equal":       rl.KeyEqual,
}

// KeyCode resolves a configured key name to a raylib key code. Single
// letters and digits map to themselves.
func KeyCode(name string) (int32, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if code, ok := namedKeys[n]; ok {
		return code, nil
	}
	if len(n) == 1 {
		switch c := n[0]; {
		case c >= 'a' && c <= 'z':
			return rl.KeyA + int32(c-'a'), nil
		case c >= '0' && c <= '9':
			return int32(c), nil
		}
	}
	return 0, fmt.Errorf("unknown key: %q", name)
}

type binding struct {
	action control.Action
	key    int32
}

// resolveBindings turns action -> key name pairs into key codes ordered by
// action.
func resolveBindings(names map[control.Action]string) ([]binding, error) {
	out := make([]binding, 0, len(names))
	for action, name := range names {
		code, err := KeyCode(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", action, err)
		}
		out = append(out, binding{action: action, key: code})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].action < out[j].action })
	return out, nil
}

// poll splits bindings into edge-triggered toggles and level-triggered
// controls using the supplied key state queries.
func poll(bindings []binding, isPressed, isDown func(int32) bool) control.Input {
	var in control.Input
	for _, b := range bindings {
		if b.action.IsToggle() {
			if isPressed(b.key) {
				in.Pressed = append(in.Pressed, b.action)
			}
		} else if isDown(b.key) {
			in.Held = append(in.Held, b.action)
		}
	}
	return in
}
