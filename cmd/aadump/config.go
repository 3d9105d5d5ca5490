package main

import (
	"os"
	"strconv"

	"github.com/ansel1/merry"
	"gopkg.in/yaml.v3"
)

// Pair is one map entry of a config file.
type Pair struct {
	Key   any `yaml:"key"`
	Value any `yaml:"value"`
}

// Config lists what to load into the container. Keys feed the set command, Pairs
// the map command, Delete is applied to either after loading.
type Config struct {
	Keys   []any  `yaml:"keys"`
	Pairs  []Pair `yaml:"pairs"`
	Delete []any  `yaml:"delete"`
}

var defaultConfig = Config{}

// LoadConfig reads a YAML config. An empty path yields the empty default config.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		c := defaultConfig
		return &c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, merry.Prependf(err, "read config %s", path)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, merry.Prependf(err, "parse config %s", path)
	}
	return &c, nil
}

// parseArg turns a command line word into an int, a float64 or, failing both, the
// string itself, so numbers given on the command line order numerically.
func parseArg(s string) any {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
