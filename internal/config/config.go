package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitals/internal/element"
	"github.com/san-kum/orbitals/internal/orbital"
)

const (
	DefaultElement = "H"
	DefaultSamples = 20000
	DefaultSeed    = 42
)

type Config struct {
	Element string  `yaml:"element"`
	Orbital Quantum `yaml:"orbital"`
	Samples int     `yaml:"samples"`
	Seed    uint64  `yaml:"seed"`
}

type Quantum struct {
	N int `yaml:"n"`
	L int `yaml:"l"`
	M int `yaml:"m"`
}

func DefaultConfig() *Config {
	return &Config{
		Element: DefaultElement,
		Orbital: Quantum{N: 1, L: 0, M: 0},
		Samples: DefaultSamples,
		Seed:    DefaultSeed,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LookupElement resolves the configured element symbol against the catalog.
func (c *Config) LookupElement() (element.Element, error) {
	el, ok := element.BySymbol(c.Element)
	if !ok {
		return element.Element{}, fmt.Errorf("unknown element: %s", c.Element)
	}
	return el, nil
}

// LookupOrbital validates the configured quantum numbers.
func (c *Config) LookupOrbital() (orbital.Orbital, error) {
	return orbital.New(c.Orbital.N, c.Orbital.L, c.Orbital.M)
}
