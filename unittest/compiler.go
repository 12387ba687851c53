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

// Package unittest is the test compiler and evaluator: it validates a test
// definition against a transform graph, builds the minimal reduced sub-graph
// and live instances it needs, and drives a synthetic event through it.
package unittest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/transformgraph/harness/condition"
	"github.com/transformgraph/harness/config"
	"github.com/transformgraph/harness/event"
	"github.com/transformgraph/harness/graph"
	"github.com/transformgraph/harness/transform"
	"github.com/transformgraph/harness/util/errwrap"
)

// nodeEntry is one retained node of a compiled test: its live transform plus
// the ordered downstream node names to feed its output into.
type nodeEntry struct {
	transform transform.Transform
	next      []string
}

// check is one compiled (extract_from, conditions) bundle.
type check struct {
	extractFrom    string
	conditions     map[string]condition.Condition
	conditionNames []string // deterministic iteration order (sorted)
}

// UnitTest is a fully compiled, ready-to-run test. It owns its live
// transforms and conditions exclusively for the duration of one run.
type UnitTest struct {
	name       string
	insertAt   string
	inputEvent event.Event
	transforms map[string]nodeEntry
	checks     []check
}

// Name returns the identifier used in error and failure messages.
func (u *UnitTest) Name() string { return u.name }

// Build compiles a single test definition against the full config's
// transform graph. It returns either a ready UnitTest, or a non-empty,
// deterministically-ordered list of error strings.
func Build(def config.TestDefinition, cfg *config.Config) (*UnitTest, []string) {
	names := sortedTransformNames(cfg.Transforms)

	// Step 1: build the forward adjacency.
	adj := graph.Adjacency{}
	for _, name := range names {
		adj.AddNode(name)
	}
	for _, name := range names {
		for _, in := range cfg.Transforms[name].Inputs {
			if adj.HasNode(in) {
				adj.AddEdge(in, name)
			}
		}
	}

	// Step 2: fatal check, short-circuits the rest of compilation.
	if !adj.HasNode(def.Input.InsertAt) {
		return nil, []string{fmt.Sprintf("unable to locate test target '%s'", def.Input.InsertAt)}
	}

	// Step 3: leaf set.
	leaves := make([]string, 0, len(def.Outputs))
	for _, o := range def.Outputs {
		leaves = append(leaves, o.ExtractFrom)
	}

	// Step 4: reduce.
	graph.Reduce(def.Input.InsertAt, leaves, adj)

	// Step 5+6: build retained transforms; stop on any build error.
	var buildErr error
	transforms := map[string]nodeEntry{}
	for _, name := range names {
		if !adj.HasNode(name) {
			continue
		}
		tr, err := cfg.Transforms[name].Build()
		if err != nil {
			buildErr = errwrap.Append(buildErr, fmt.Errorf("failed to build transform '%s': %s", name, err))
			continue
		}
		transforms[name] = nodeEntry{transform: tr, next: adj[name]}
	}
	if buildErr != nil {
		return nil, errwrap.Messages(buildErr)
	}

	// Step 7: topology completeness for every output.
	var accErr error
	for _, o := range def.Outputs {
		if !adj.HasNode(o.ExtractFrom) {
			accErr = errwrap.Append(accErr, fmt.Errorf(
				"unable to complete topology between input target '%s' and '%s'",
				def.Input.InsertAt, o.ExtractFrom))
		}
	}

	// Step 8: construct the input event.
	var inputEvent event.Event
	switch def.Input.Type {
	case "raw":
		if def.Input.Value == nil {
			accErr = errwrap.Append(accErr, fmt.Errorf("input type 'raw' requires the field 'value'"))
		} else {
			inputEvent = event.FromRaw(*def.Input.Value)
		}
	default:
		accErr = errwrap.Append(accErr, fmt.Errorf(
			"unrecognized input type '%s', expected one of: 'raw'", def.Input.Type))
	}

	// Step 9: build conditions for every output.
	checks := make([]check, 0, len(def.Outputs))
	for _, o := range def.Outputs {
		condNames := sortedConditionNames(o.Conditions)
		built := map[string]condition.Condition{}
		for _, cname := range condNames {
			c, err := o.Conditions[cname].Build()
			if err != nil {
				accErr = errwrap.Append(accErr, fmt.Errorf("failed to create test condition '%s': %s", cname, err))
				continue
			}
			built[cname] = c
		}
		checks = append(checks, check{extractFrom: o.ExtractFrom, conditions: built, conditionNames: condNames})
	}

	// Step 10.
	if accErr != nil {
		return nil, errwrap.Messages(accErr)
	}

	return &UnitTest{
		name:       def.Name,
		insertAt:   def.Input.InsertAt,
		inputEvent: inputEvent,
		transforms: transforms,
		checks:     checks,
	}, nil
}

// BuildAll compiles every test in cfg independently: one test's failure does
// not prevent others from compiling. It returns the tests that compiled
// successfully, plus one formatted error block per failed test
// ("Failed to build test '<name>':\n\t<errs...>").
func BuildAll(cfg *config.Config) ([]*UnitTest, []string) {
	var tests []*UnitTest
	var failures []string
	for _, def := range cfg.Tests {
		ut, errs := Build(def, cfg)
		if len(errs) > 0 {
			failures = append(failures, formatFailure(def.Name, errs))
			continue
		}
		tests = append(tests, ut)
	}
	return tests, failures
}

func formatFailure(name string, errs []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Failed to build test '%s':\n", name)
	for i, e := range errs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("\t" + e)
	}
	return b.String()
}

func sortedTransformNames(m map[string]*config.TransformConfig) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedConditionNames(m map[string]*condition.Def) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
