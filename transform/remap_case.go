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

package transform

import (
	"fmt"
	"strings"

	"github.com/transformgraph/harness/event"
)

func init() {
	Register("remap_case", func(unmarshal func(interface{}) error) (Builder, error) {
		cfg := &RemapCaseConfig{}
		if err := unmarshal(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	})
}

// RemapCaseConfig upper- or lower-cases a single field in place.
type RemapCaseConfig struct {
	Field string `yaml:"field"`
	Mode  string `yaml:"mode"` // "upper" or "lower"
}

// Build validates Mode at build time; an unrecognized mode is a build error.
func (c *RemapCaseConfig) Build() (Transform, error) {
	if c.Field == "" {
		return nil, fmt.Errorf("remap_case: field must not be empty")
	}
	switch c.Mode {
	case "upper", "lower":
	default:
		return nil, fmt.Errorf("remap_case: unrecognized mode '%s', expected one of: 'upper', 'lower'", c.Mode)
	}
	return &RemapCase{field: c.Field, upper: c.Mode == "upper"}, nil
}

// RemapCase is the live transform built from RemapCaseConfig.
type RemapCase struct {
	field string
	upper bool
}

// TransformInto rewrites the configured field's case in place and emits the
// one event. A missing field passes the event through unchanged.
func (r *RemapCase) TransformInto(out *[]event.Event, in event.Event) {
	if v, ok := in.Get(r.field); ok {
		if r.upper {
			in.Set(r.field, strings.ToUpper(v))
		} else {
			in.Set(r.field, strings.ToLower(v))
		}
	}
	*out = append(*out, in)
}
