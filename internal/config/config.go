// Package config resolves settings for the mintrianglepath command from
// defaults, an optional YAML file and command-line flags, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = ".trianglepath.yaml"

// ErrInvalid marks a setting with an unsupported value.
var ErrInvalid = errors.New("config: invalid value")

// Accepted values for the enum-like settings.
const (
	NumericInt   = "int"
	NumericFloat = "float"

	ObjectiveMin = "min"
	ObjectiveMax = "max"

	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Config is the resolved configuration.
type Config struct {
	Numeric        string `yaml:"numeric"`
	Objective      string `yaml:"objective"`
	Input          string `yaml:"input"`
	Output         string `yaml:"output"`
	SkipBlankLines bool   `yaml:"skip_blank_lines"`
	Comment        string `yaml:"comment"`
	Debug          bool   `yaml:"debug"`
}

// Default returns the settings used when nothing else is specified.
func Default() Config {
	return Config{
		Numeric:   NumericInt,
		Objective: ObjectiveMin,
		Input:     FormatText,
		Output:    FormatText,
	}
}

// Load reads path over the defaults. With an empty path DefaultFile is used
// if it exists; a missing DefaultFile is not an error, a missing explicit
// path is. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every enum-like field.
func (c Config) Validate() error {
	checks := []struct {
		field string
		value string
		allow []string
	}{
		{"numeric", c.Numeric, []string{NumericInt, NumericFloat}},
		{"objective", c.Objective, []string{ObjectiveMin, ObjectiveMax}},
		{"input", c.Input, []string{FormatText, FormatYAML}},
		{"output", c.Output, []string{FormatText, FormatJSON}},
	}
	for _, ch := range checks {
		if !slices.Contains(ch.allow, ch.value) {
			return fmt.Errorf("%w: %s=%q (want one of %v)", ErrInvalid, ch.field, ch.value, ch.allow)
		}
	}

	return nil
}
