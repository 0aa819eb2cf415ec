package config

import "sort"

var Presets = map[string]*Config{
	"hydrogen-1s": {
		Element: "H", Orbital: Quantum{N: 1, L: 0, M: 0}, Samples: 50000, Seed: DefaultSeed,
	},
	"hydrogen-2s": {
		Element: "H", Orbital: Quantum{N: 2, L: 0, M: 0}, Samples: 50000, Seed: DefaultSeed,
	},
	"hydrogen-2p": {
		Element: "H", Orbital: Quantum{N: 2, L: 1, M: 0}, Samples: 30000, Seed: DefaultSeed,
	},
	"helium-1s": {
		Element: "He", Orbital: Quantum{N: 1, L: 0, M: 0}, Samples: 50000, Seed: DefaultSeed,
	},
	"carbon-2p": {
		Element: "C", Orbital: Quantum{N: 2, L: 1, M: 1}, Samples: 30000, Seed: DefaultSeed,
	},
	"neon-3d": {
		Element: "Ne", Orbital: Quantum{N: 3, L: 2, M: 0}, Samples: 20000, Seed: DefaultSeed,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
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
