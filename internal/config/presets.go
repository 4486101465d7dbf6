package config

import "sort"

type Preset struct {
	Description string
	apply       func(*Config)
}

var Presets = map[string]Preset{
	"classic": {
		Description: "g = 1, the unmodified Lorenz attractor",
		apply: func(c *Config) {
			c.Params.G = 1
		},
	},
	"qubit": {
		Description: "three trajectories at g = 0.7",
		apply: func(c *Config) {
			c.Params.Trajectories = 3
		},
	},
	"wide": {
		Description: "rho = 45 over a longer horizon",
		apply: func(c *Config) {
			c.Params.Rho = 45
			c.Params.Trajectories = 5
			c.Horizon = 20
			c.Samples = 2000
			c.Animation.Frames = 1000
		},
	},
	"crowd": {
		Description: "fifty trajectories integrated in parallel",
		apply: func(c *Config) {
			c.Params.Trajectories = 50
			c.Workers = 8
		},
	},
	"unstable": {
		Description: "g = 0, the linearised flow escapes the sphere",
		apply: func(c *Config) {
			c.Params.G = 0
			c.Params.Trajectories = 4
		},
	},
}

// GetPreset returns a fresh config with the named preset applied over the
// defaults, or nil when the preset does not exist.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	p.apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
