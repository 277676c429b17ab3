package config

import (
	"fmt"
	"os"

	"github.com/automoto/rockclimber/climb"
	"gopkg.in/yaml.v3"
)

// LoadTuning reads a YAML tuning file and lays it over base. Keys missing
// from the file keep base's values.
func LoadTuning(path string, base climb.Tuning) (climb.Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: load %s: %w", path, err)
	}
	t, err := DecodeTuning(data, base)
	if err != nil {
		return base, fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}

// DecodeTuning unmarshals data over a copy of base and validates the result.
func DecodeTuning(data []byte, base climb.Tuning) (climb.Tuning, error) {
	t := base
	if err := yaml.Unmarshal(data, &t); err != nil {
		return base, fmt.Errorf("unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return base, err
	}
	return t, nil
}
