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
	Register("route", func(unmarshal func(interface{}) error) (Builder, error) {
		cfg := &RouteConfig{}
		if err := unmarshal(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	})
}

// RouteConfig builds a Route transform. It has no fields: it exists purely
// as a topology tee/observation point, useful for branching or inspecting a
// stream without transforming it.
type RouteConfig struct{}

// Build always succeeds.
func (c *RouteConfig) Build() (Transform, error) {
	return &Route{}, nil
}

// Route forwards its input event unchanged.
type Route struct{}

// TransformInto appends the input event to out without modification.
func (r *Route) TransformInto(out *[]event.Event, in event.Event) {
	*out = append(*out, in)
}
