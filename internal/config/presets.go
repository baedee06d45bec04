package config

import "github.com/fractalab/fractalab/internal/grid"

// Presets are named starting views, keyed by family then preset name. The
// Mandelbrot entries are classic landmarks of the set.
var Presets = map[string]map[string]*Config{
	"mandelbrot": {
		"seahorse_valley": {
			Family: "mandelbrot", ResY: 512, MaxIter: 2048,
			Bounds: &grid.Bounds{MinX: -0.8, MaxX: -0.7, MinY: 0.05, MaxY: 0.15},
		},
		"elephant_valley": {
			Family: "mandelbrot", ResY: 512, MaxIter: 2048,
			Bounds: &grid.Bounds{MinX: -1.85, MaxX: -1.75, MinY: -0.10, MaxY: -0.02},
		},
		"spiral_minibrot": {
			Family: "mandelbrot", ResY: 512, MaxIter: 8192,
			Bounds: &grid.Bounds{MinX: -0.7435, MaxX: -0.7420, MinY: 0.1310, MaxY: 0.1325},
		},
		"triple_spiral": {
			Family: "mandelbrot", ResY: 512, MaxIter: 4096,
			Bounds: &grid.Bounds{MinX: -0.7480, MaxX: -0.7450, MinY: 0.0950, MaxY: 0.0980},
		},
		"valley_of_the_dragon": {
			Family: "mandelbrot", ResY: 512, MaxIter: 4096,
			Bounds: &grid.Bounds{MinX: -0.7400, MaxX: -0.7350, MinY: 0.1800, MaxY: 0.1850},
		},
		"minibrot_in_mini_spiral": {
			Family: "mandelbrot", ResY: 512, MaxIter: 8192,
			Bounds: &grid.Bounds{MinX: -1.7390, MaxX: -1.7375, MinY: -0.0235, MaxY: -0.0220},
		},
	},
	"burning_ship": {
		"armada": {
			Family: "burning_ship", ResY: 512, MaxIter: 2048,
			Bounds: &grid.Bounds{MinX: -1.8, MaxX: -1.7, MinY: -0.08, MaxY: 0.02},
		},
	},
	"quad_rat_per_2": {
		"basilica_limb": {
			Family: "quad_rat_per_2", ResY: 512, MaxIter: 2048,
			Bounds: &grid.Bounds{MinX: -1.2, MaxX: 0.2, MinY: -0.7, MaxY: 0.7},
		},
	},
}

func GetPreset(family, preset string) *Config {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	cfg, ok := familyPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(family string) []string {
	familyPresets, ok := Presets[family]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(familyPresets))
	for name := range familyPresets {
		names = append(names, name)
	}
	return names
}
