package palette

import (
	"fmt"
	"strings"
)

// Mode selects exactly one color scheme.
type Mode int

const (
	ModeGradient Mode = iota
	ModeGrayscale
	ModeHue
)

var modeNames = map[Mode]string{
	ModeGradient:  "gradient",
	ModeGrayscale: "grayscale",
	ModeHue:       "hue",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode accepts a scheme name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return ModeGradient, fmt.Errorf("unknown color mode: %q (available: %v)", s, ModeNames())
}

// ModeNames lists scheme names in Mode order.
func ModeNames() []string {
	return []string{ModeGradient.String(), ModeGrayscale.String(), ModeHue.String()}
}
