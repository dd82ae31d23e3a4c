package config

import "sort"

// Each preset builds a complete config, so callers can run it directly
// or layer file and flag overrides on top.
var presets = map[string]func() *Config{
	"baseline": DefaultConfig,
	"quiet": func() *Config {
		// forced warming only: no volcanoes, no weather noise
		cfg := DefaultConfig()
		cfg.Scenario = "quiet"
		cfg.Params.NoiseAmp = 0
		cfg.Params.Eruptions = nil
		return cfg
	},
	"sensitive": func() *Config {
		// doubled forcing plateau with a stronger water-vapor response
		cfg := DefaultConfig()
		cfg.Scenario = "sensitive"
		cfg.Params.Fmax = 7.4
		cfg.Params.VaporFeedback = 0.02
		return cfg
	},
	"shallow": func() *Config {
		// thin ocean reservoir, equilibrates an order faster
		cfg := DefaultConfig()
		cfg.Scenario = "shallow"
		cfg.Params.Co = 1e9
		return cfg
	},
	"spinup": func() *Config {
		// unforced control run for checking drift
		cfg := DefaultConfig()
		cfg.Scenario = "spinup"
		cfg.Duration = 200
		cfg.Params.Fmax = 0
		cfg.Params.NoiseAmp = 0
		cfg.Params.Eruptions = nil
		return cfg
	},
	"stiff": func() *Config {
		// fast atmosphere, stresses the step-size controller
		cfg := DefaultConfig()
		cfg.Scenario = "stiff"
		cfg.Params.Ca = 1e6
		cfg.Dt = 0.01
		return cfg
	},
}

func GetPreset(name string) *Config {
	fn, ok := presets[name]
	if !ok {
		return nil
	}
	return fn()
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
