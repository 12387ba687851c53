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

	yaml "gopkg.in/yaml.v2"
)

// Def is the wire representation of a single condition: either an embedded
// record -- a mapping with a 'kind' discriminator plus that kind's own
// fields -- or a bare string, which is the reserved variant that always
// fails to build.
//
// Decoding is two-pass: first we try a bare string; failing that we pull out
// 'kind' and hand the remaining fields back through the condition registry,
// re-marshaling the leftover map into YAML so the target's own struct tags
// apply.
type Def struct {
	Kind   string // condition kind; empty for the string variant
	String string // the literal value, only set for the string variant

	builder Builder
	err     error // a decode-time error, deferred until Build()
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Def) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		d.String = s
		d.builder = NewStringBuilder(s)
		return nil
	}

	raw := map[string]interface{}{}
	if err := unmarshal(&raw); err != nil {
		return fmt.Errorf("condition: expected a string or a mapping with a 'kind' field: %v", err)
	}
	kindVal, ok := raw["kind"]
	if !ok {
		return fmt.Errorf("condition: mapping is missing a 'kind' field")
	}
	kind, ok := kindVal.(string)
	if !ok {
		return fmt.Errorf("condition: 'kind' field must be a string")
	}
	delete(raw, "kind")
	d.Kind = kind
	body, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("condition: could not re-marshal body: %v", err)
	}
	builder, err := Decode(kind, func(out interface{}) error {
		return yaml.Unmarshal(body, out)
	})
	if err != nil {
		d.err = err // surfaced by Build, not here: compile-time errors accumulate
		return nil
	}
	d.builder = builder
	return nil
}

// Build returns the live Condition this definition describes, or the error
// encountered while decoding or building it. For the string variant this is
// always ErrStringConditionsUnsupported.
func (d *Def) Build() (Condition, error) {
	if d.err != nil {
		return nil, d.err
	}
	if d.builder == nil {
		return nil, fmt.Errorf("condition: empty definition")
	}
	return d.builder.Build()
}

// IsString reports whether this definition used the reserved bare-string
// variant.
func (d *Def) IsString() bool {
	return d.Kind == "" && d.builder != nil
}
