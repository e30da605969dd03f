package config

var Presets = map[string]*Config{
	"sparse": {
		Particles: 10, RadiusScale: 3, Width: 1280, Height: 720, Mass: 1e12,
		Solver: "direct", Theta: DefaultTheta, Damping: 0.99, WallDamping: 0.99, DtMax: 5,
	},
	"dense": {
		Particles: 100, RadiusScale: 1, Width: 1280, Height: 720, Mass: 1e12,
		Solver: "tree", Theta: DefaultTheta, Damping: 0.99, WallDamping: 0.99, DtMax: 5,
	},
	"elastic": {
		Particles: 30, RadiusScale: 5, Width: 1280, Height: 720, Mass: 1e12,
		Solver: "direct", Theta: DefaultTheta, Damping: 1.0, WallDamping: 1.0, DtMax: 5,
	},
	"billiards": {
		Particles: 16, RadiusScale: 10, Width: 800, Height: 600, Mass: 1e12,
		Solver: "direct", Theta: DefaultTheta, Damping: 0.95, WallDamping: 0.9, DtMax: 2,
	},
	"accurate-tree": {
		Particles: 100, RadiusScale: 2, Width: 1280, Height: 720, Mass: 1e12,
		Solver: "tree", Theta: 0.3, Damping: 0.99, WallDamping: 0.99, DtMax: 5,
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
	return names
}
