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

package unittest

import (
	"fmt"

	"github.com/transformgraph/harness/event"
)

// Run drives the synthetic input event through the compiled, reduced
// transform graph by depth-first traversal and evaluates every check against
// the captured per-node results. An empty return means the test passed; the
// evaluator itself never fails.
func (u *UnitTest) Run() []string {
	results := map[string][]event.Event{}

	var walk func(node string, in []event.Event)
	walk = func(node string, in []event.Event) {
		entry, ok := u.transforms[node]
		if !ok {
			return
		}
		var out []event.Event
		for _, e := range in {
			entry.transform.TransformInto(&out, e)
		}
		results[node] = out // last visit wins on diamond revisit, by design

		for _, child := range entry.next {
			walk(child, event.CloneAll(out))
		}
	}
	walk(u.insertAt, []event.Event{u.inputEvent})

	var failures []string
	for _, c := range u.checks {
		list := results[c.extractFrom]
		if len(list) == 0 {
			failures = append(failures, fmt.Sprintf(
				"expected resulting events from transform '%s', found none", c.extractFrom))
			continue
		}
		for _, condName := range c.conditionNames {
			cond, ok := c.conditions[condName]
			if !ok {
				continue // not reached for a compiled test: Build fails if any condition failed to build
			}
			satisfied := false
			for _, e := range list {
				if cond.Check(e) {
					satisfied = true
					break
				}
			}
			if !satisfied {
				failures = append(failures, fmt.Sprintf(
					"test '%s': condition '%s' failed for extraction point '%s'",
					u.name, condName, c.extractFrom))
			}
		}
	}
	return failures
}
