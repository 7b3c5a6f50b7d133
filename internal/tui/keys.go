package tui

import "github.com/san-kum/mandelview/internal/control"

// teaKeys translates configured key names to bubbletea key strings. Names
// missing here (for example "shift") cannot be seen by a terminal.
var teaKeys = map[string]string{
	"space":       " ",
	"enter":       "enter",
	"backspace":   "backspace",
	"tab":         "tab",
	"up_arrow":    "up",
	"down_arrow":  "down",
	"left_arrow":  "left",
	"right_arrow": "right",
	"minus":       "-",
	"equal":       "=",
}

// terminalExtras are always bound so every action is reachable from a
// terminal, including zoom out whose default key is shift.
var terminalExtras = map[string]control.Action{
	"up":    control.PanUp,
	"down":  control.PanDown,
	"left":  control.PanLeft,
	"right": control.PanRight,
	"+":     control.ZoomIn,
	"=":     control.ZoomIn,
	"-":     control.ZoomOut,
}

// KeyMap builds the bubbletea key string -> action table from configured
// names. Configured bindings win over the terminal extras.
func KeyMap(names map[control.Action]string) map[string]control.Action {
	m := make(map[string]control.Action, len(names)+len(terminalExtras))
	for k, a := range terminalExtras {
		m[k] = a
	}
	for action, name := range names {
		if k, ok := teaKey(name); ok {
			m[k] = action
		}
	}
	return m
}

func teaKey(name string) (string, bool) {
	if k, ok := teaKeys[name]; ok {
		return k, true
	}
	if len(name) == 1 {
		return name, true
	}
	return "", false
}
