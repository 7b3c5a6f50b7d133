package control

import (
	"fmt"
	"strings"
)

type Action int

const (
	ToggleGrayscale Action = iota
	ToggleHue
	PanUp
	PanDown
	PanLeft
	PanRight
	ZoomIn
	ZoomOut
)

var actionNames = []string{
	ToggleGrayscale: "grayscale",
	ToggleHue:       "hue",
	PanUp:           "up",
	PanDown:         "down",
	PanLeft:         "left",
	PanRight:        "right",
	ZoomIn:          "zoom_in",
	ZoomOut:         "zoom_out",
}

// Actions lists every action in declaration order.
func Actions() []Action {
	out := make([]Action, len(actionNames))
	for i := range actionNames {
		out[i] = Action(i)
	}
	return out
}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// IsToggle reports whether a reacts to edge-triggered presses.
func (a Action) IsToggle() bool {
	return a == ToggleGrayscale || a == ToggleHue
}

func ParseAction(s string) (Action, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action: %q", s)
}

// Input is one frame's worth of actions.
type Input struct {
	Pressed []Action
	Held    []Action
}

func (in Input) Empty() bool {
	return len(in.Pressed) == 0 && len(in.Held) == 0
}
