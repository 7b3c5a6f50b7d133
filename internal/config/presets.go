package config

import (
	"sort"

	"github.com/san-kum/mandelview/internal/viewport"
)

// Preset is a named starting view.
type Preset struct {
	Name        string
	Description string
	Region      viewport.Region
}

// View frames the preset region. The classic preset is the default view.
func (p *Preset) View() viewport.State {
	if p.Name == DefaultPreset {
		return viewport.Default()
	}
	return viewport.FromRegion(p.Region)
}

var Presets = map[string]*Preset{
	"classic": {
		Name: "classic", Description: "whole set",
		Region: viewport.Region{Xmin: -2, Xmax: 1, Ymin: -1.5, Ymax: 1.5},
	},
	"seahorse": {
		Name: "seahorse", Description: "seahorse valley curls",
		Region: viewport.Region{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15},
	},
	"elephant": {
		Name: "elephant", Description: "elephant valley trunks",
		Region: viewport.Region{Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02},
	},
	"spiral": {
		Name: "spiral", Description: "spiral minibrot",
		Region: viewport.Region{Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325},
	},
	"triple_spiral": {
		Name: "triple_spiral", Description: "threefold spiral",
		Region: viewport.Region{Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980},
	},
	"dragon": {
		Name: "dragon", Description: "valley of the dragon",
		Region: viewport.Region{Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850},
	},
	"minibrot": {
		Name: "minibrot", Description: "minibrot in a mini-spiral",
		Region: viewport.Region{Xmin: -1.7390, Xmax: -1.7375, Ymin: -0.0235, Ymax: -0.0220},
	},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
