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

package condition

import (
	"fmt"
	"strings"

	"github.com/transformgraph/harness/event"
)

func init() {
	Register("field_equals", func(unmarshal func(interface{}) error) (Builder, error) {
		cfg := &FieldEqualsConfig{}
		if err := unmarshal(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	})
	Register("contains", func(unmarshal func(interface{}) error) (Builder, error) {
		cfg := &ContainsConfig{}
		if err := unmarshal(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	})
}

// FieldEqualsConfig checks that a named field is present and equal to Value.
type FieldEqualsConfig struct {
	Field string `yaml:"field"`
	Value string `yaml:"value"`
}

// Build validates that Field is set.
func (c *FieldEqualsConfig) Build() (Condition, error) {
	if c.Field == "" {
		return nil, fmt.Errorf("field_equals: field must not be empty")
	}
	return &fieldEquals{field: c.Field, value: c.Value}, nil
}

type fieldEquals struct {
	field string
	value string
}

// Check is total: a missing field simply fails the condition.
func (f *fieldEquals) Check(e event.Event) bool {
	v, ok := e.Get(f.field)
	return ok && v == f.value
}

// ContainsConfig checks that a named field contains Substr.
type ContainsConfig struct {
	Field  string `yaml:"field"`
	Substr string `yaml:"substr"`
}

// Build validates that Field is set.
func (c *ContainsConfig) Build() (Condition, error) {
	if c.Field == "" {
		return nil, fmt.Errorf("contains: field must not be empty")
	}
	return &contains{field: c.Field, substr: c.Substr}, nil
}

type contains struct {
	field  string
	substr string
}

// Check is total: a missing field simply fails the condition.
func (c *contains) Check(e event.Event) bool {
	v, ok := e.Get(c.field)
	return ok && strings.Contains(v, c.substr)
}
