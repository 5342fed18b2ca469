// Package config implements the configuration of randomly generated
// MDP evaluation runs, loaded from JSON or YAML files
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Config describes how a random MDP and policy are generated and how
// the policy is evaluated
type Config struct {
	NStates   int    `json:"n_states" yaml:"n_states" validate:"required,gte=1"`
	NActions  int    `json:"n_actions" yaml:"n_actions" validate:"required,gte=1"`
	NOutcomes int    `json:"n_outcomes" yaml:"n_outcomes" validate:"required,gte=1"`
	Seed      uint64 `json:"seed" yaml:"seed"`

	// Discount must lie in [0, 1) so that evaluation converges
	Discount   float64 `json:"discount" yaml:"discount" validate:"gte=0,lt=1"`
	Iterations int     `json:"iterations" yaml:"iterations" validate:"gte=0"`

	// Workers is the number of goroutines used per sweep, 1 evaluates
	// sequentially
	Workers int `json:"workers" yaml:"workers" validate:"gte=1"`

	// Monte-Carlo simulation
	Episodes      int `json:"episodes" yaml:"episodes" validate:"gte=1"`
	EpisodeCutoff int `json:"episode_cutoff" yaml:"episode_cutoff" validate:"gte=1"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		NStates:       5,
		NActions:      3,
		NOutcomes:     2,
		Seed:          0,
		Discount:      0.9,
		Iterations:    100,
		Workers:       1,
		Episodes:      1000,
		EpisodeCutoff: 100,
	}
}

// Validate returns an error describing each invalid field of c
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate: invalid config: %w", err)
	}
	return nil
}

// Load loads a configuration from path, decoding it as YAML if the
// extension is .yaml or .yml and as JSON otherwise. Fields missing from
// the file keep their Default values. The loaded configuration is
// validated before it is returned.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load: could not read config %s: %w",
			path, err)
	}

	c := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &c)
	default:
		err = json.Unmarshal(data, &c)
	}
	if err != nil {
		return Config{}, fmt.Errorf("load: could not parse config %s: %w",
			path, err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Save saves c to path in the format chosen by the extension, as Load
// does
func (c Config) Save(path string) error {
	var data []byte
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "\t")
	}
	if err != nil {
		return fmt.Errorf("save: could not encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save: could not write config %s: %w", path, err)
	}
	return nil
}
