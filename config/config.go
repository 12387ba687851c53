// Copyright (C) 2013-2024+ the project contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package config loads the on-disk description of a transform graph plus
// its unit tests.
package config

import (
	"fmt"
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"

	"github.com/transformgraph/harness/condition"
	"github.com/transformgraph/harness/transform"
)

// TransformConfig is an inert description of one graph node: its ordered
// upstream input names plus an embedded builder for its live Transform.
type TransformConfig struct {
	Inputs []string `yaml:"inputs"`

	builder transform.Builder
	err     error
}

// Build returns the live Transform this node describes.
func (t *TransformConfig) Build() (transform.Transform, error) {
	if t.err != nil {
		return nil, t.err
	}
	if t.builder == nil {
		return nil, fmt.Errorf("transform: empty definition")
	}
	return t.builder.Build()
}

// UnmarshalYAML implements yaml.Unmarshaler using the same kind-discriminated
// re-marshal technique as condition.Def.UnmarshalYAML.
func (t *TransformConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	raw := map[string]interface{}{}
	if err := unmarshal(&raw); err != nil {
		return fmt.Errorf("transform: expected a mapping: %v", err)
	}

	if inputs, ok := raw["inputs"]; ok {
		items, ok := inputs.([]interface{})
		if !ok {
			return fmt.Errorf("transform: 'inputs' must be a list of names")
		}
		for _, item := range items {
			name, ok := item.(string)
			if !ok {
				return fmt.Errorf("transform: 'inputs' entries must be strings")
			}
			t.Inputs = append(t.Inputs, name)
		}
	}
	delete(raw, "inputs")

	kindVal, ok := raw["kind"]
	if !ok {
		return fmt.Errorf("transform: mapping is missing a 'kind' field")
	}
	kind, ok := kindVal.(string)
	if !ok {
		return fmt.Errorf("transform: 'kind' field must be a string")
	}
	delete(raw, "kind")

	body, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("transform: could not re-marshal body: %v", err)
	}
	builder, err := transform.Decode(kind, func(out interface{}) error {
		return yaml.Unmarshal(body, out)
	})
	if err != nil {
		t.err = err
		return nil
	}
	t.builder = builder
	return nil
}

// InputRecord is the injection-point description of a TestDefinition.
type InputRecord struct {
	InsertAt string  `yaml:"insert_at"`
	Type     string  `yaml:"type"`
	Value    *string `yaml:"value"`
}

// OutputRecord names one extraction point plus the named conditions that
// must hold over the events observed there.
type OutputRecord struct {
	ExtractFrom string                    `yaml:"extract_from"`
	Conditions  map[string]*condition.Def `yaml:"conditions"`
}

// TestDefinition is the wire shape of a single unit test.
type TestDefinition struct {
	Name    string         `yaml:"name"`
	Input   InputRecord    `yaml:"input"`
	Outputs []OutputRecord `yaml:"outputs"`
}

// Config is the top-level wire document: the full transform graph plus its
// unit tests.
type Config struct {
	Transforms map[string]*TransformConfig `yaml:"transforms"`
	Tests      []TestDefinition            `yaml:"tests"`
}

// Load reads and parses a Config from path.
func Load(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: could not read %s: %v", path, err)
	}
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: could not parse %s: %v", path, err)
	}
	return c, nil
}
