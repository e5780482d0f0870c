package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"top": {
		View:    ViewConfig{Angle: 90, Scale: 3},
		Canvas:  CanvasConfig{Width: DefaultWidth, Height: DefaultHeight},
		Theme:   "minimal",
		Objects: DefaultConfig().Objects,
	},
	"tower": {
		View:   ViewConfig{Angle: 20, Scale: 1.5},
		Canvas: CanvasConfig{Width: DefaultWidth, Height: DefaultHeight},
		Theme:  "ocean",
		Objects: []ObjectConfig{
			{Kind: KindPrism, BaseCenter: [3]float64{0, 0, -8}, Height: 16},
			{Kind: KindCuboid, Center: [3]float64{-5, 5, -7}, Dimensions: [3]float64{4, 4, 2}},
			{Kind: KindSphere, Center: [3]float64{0, 0, 9}, Radius: 1},
		},
	},
	"orbit": {
		View:   ViewConfig{Angle: 35, Scale: 1},
		Canvas: CanvasConfig{Width: DefaultWidth, Height: DefaultHeight},
		Theme:  "sunset",
		Objects: []ObjectConfig{
			{Kind: KindSphere, Center: [3]float64{0, 0, 0}, Radius: 3},
			{Kind: KindSphere, Center: [3]float64{7, 0, 0}, Radius: 1},
			{Kind: KindSphere, Center: [3]float64{-5, 5, 2}, Radius: 0.5},
		},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
