package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the explicit ingestion artifact: which conference to keep, which
// schools were adopted into it by realignment, and the historical win rate of
// every school. The win-rate table is supplied here rather than read from
// process-wide state, so a run is fully described by its inputs.
type Config struct {
	// Conference is the value of the conference column to keep.
	Conference string `yaml:"conference"`
	// AdoptedSchools are remapped into Conference before filtering,
	// whatever conference the source file still lists them under.
	AdoptedSchools []string `yaml:"adopted_schools"`
	// WinRates maps school name to its all-time win percentage in [0,1].
	WinRates map[string]float64 `yaml:"win_rates"`
}

// DefaultConfig returns the Big Ten configuration: the 2024 realignment
// additions and the published all-time win records of all 18 member schools.
func DefaultConfig() *Config {
	return &Config{
		Conference:     "Big Ten",
		AdoptedSchools: []string{"USC", "UCLA", "Oregon", "Washington"},
		WinRates: map[string]float64{
			"Ohio State":     0.735,
			"Michigan":       0.732,
			"USC":            0.694,
			"Penn State":     0.691,
			"Nebraska":       0.677,
			"Washington":     0.620,
			"Michigan State": 0.596,
			"UCLA":           0.586,
			"Wisconsin":      0.584,
			"Oregon":         0.582,
			"Minnesota":      0.573,
			"Iowa":           0.546,
			"Maryland":       0.520,
			"Purdue":         0.513,
			"Illinois":       0.507,
			"Rutgers":        0.491,
			"Northwestern":   0.448,
			"Indiana":        0.421,
		},
	}
}

// LoadConfig reads a YAML file and overlays it on DefaultConfig, so a partial
// file (say, only win_rates) keeps the remaining defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("dataset: parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfigOrDefault returns DefaultConfig for an empty path, otherwise
// loads the file; a missing file is an error, not a silent fallback.
func LoadConfigOrDefault(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}
