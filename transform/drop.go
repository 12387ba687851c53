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

import "github.com/transformgraph/harness/event"

func init() {
	Register("drop", func(unmarshal func(interface{}) error) (Builder, error) {
		cfg := &DropConfig{}
		if err := unmarshal(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	})
}

// DropConfig builds a Drop transform, which emits nothing. It is useful for
// exercising the evaluator's "found none" extraction-point code path without
// relying on a zero-output concat.
type DropConfig struct{}

// Build always succeeds.
func (c *DropConfig) Build() (Transform, error) {
	return &Drop{}, nil
}

// Drop discards every event it receives.
type Drop struct{}

// TransformInto appends nothing to out.
func (d *Drop) TransformInto(out *[]event.Event, in event.Event) {}
