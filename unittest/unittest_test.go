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
	"strings"
	"testing"

	yaml "gopkg.in/yaml.v2"

	"github.com/transformgraph/harness/config"
	_ "github.com/transformgraph/harness/transform"
)

func parseConfig(t *testing.T, doc string) *config.Config {
	t.Helper()
	c := &config.Config{}
	if err := yaml.Unmarshal([]byte(doc), c); err != nil {
		t.Fatalf("unmarshal config: %v", err)
	}
	return c
}

func TestLinearPipelinePasses(t *testing.T) {
	cfg := parseConfig(t, `
transforms:
  a:
    kind: route
  b:
    kind: route
    inputs: ["a"]
  c:
    kind: route
    inputs: ["b"]
tests:
  - name: linear
    input:
      insert_at: a
      type: raw
      value: hello
    outputs:
      - extract_from: c
        conditions:
          anything:
            kind: field_equals
            field: message
            value: hello
`)
	ut, errs := Build(cfg.Tests[0], cfg)
	if len(errs) != 0 {
		t.Fatalf("unexpected build errors: %v", errs)
	}
	if got := ut.Run(); len(got) != 0 {
		t.Errorf("got failures %v, want none", got)
	}
}

func TestDisconnectedExtractionFailsTopology(t *testing.T) {
	cfg := parseConfig(t, `
transforms:
  a:
    kind: route
  b:
    kind: route
    inputs: ["a"]
  c:
    kind: route
tests:
  - name: disconnected
    input:
      insert_at: a
      type: raw
      value: hello
    outputs:
      - extract_from: c
        conditions: {}
`)
	_, errs := Build(cfg.Tests[0], cfg)
	want := "unable to complete topology between input target 'a' and 'c'"
	if len(errs) != 1 || errs[0] != want {
		t.Errorf("got %v, want [%q]", errs, want)
	}
}

func TestDisconnectedLeafAmongMultipleOutputsFailsTopology(t *testing.T) {
	// 'c' is its own disconnected component, reachable from nothing 'a'
	// touches; it must fail compilation even though 'b' (also requested
	// as an extraction point) is genuinely reachable from 'a'.
	cfg := parseConfig(t, `
transforms:
  a:
    kind: route
  b:
    kind: route
    inputs: ["a"]
  c:
    kind: route
tests:
  - name: multi-leaf-disconnect
    input:
      insert_at: a
      type: raw
      value: hello
    outputs:
      - extract_from: b
        conditions: {}
      - extract_from: c
        conditions: {}
`)
	_, errs := Build(cfg.Tests[0], cfg)
	want := "unable to complete topology between input target 'a' and 'c'"
	found := false
	for _, e := range errs {
		if e == want {
			found = true
		}
	}
	if !found {
		t.Errorf("got %v, want to contain %q", errs, want)
	}
}

func TestMissingInsertPointIsFatal(t *testing.T) {
	cfg := parseConfig(t, `
transforms:
  a:
    kind: route
  b:
    kind: route
    inputs: ["a"]
tests:
  - name: missing
    input:
      insert_at: z
      type: raw
      value: hello
    outputs:
      - extract_from: b
        conditions: {}
`)
	_, errs := Build(cfg.Tests[0], cfg)
	want := "unable to locate test target 'z'"
	if len(errs) != 1 || errs[0] != want {
		t.Errorf("got %v, want [%q]", errs, want)
	}
}

func TestUnsupportedInputType(t *testing.T) {
	cfg := parseConfig(t, `
transforms:
  a:
    kind: route
tests:
  - name: bad-type
    input:
      insert_at: a
      type: json
    outputs:
      - extract_from: a
        conditions: {}
`)
	_, errs := Build(cfg.Tests[0], cfg)
	want := "unrecognized input type 'json', expected one of: 'raw'"
	found := false
	for _, e := range errs {
		if e == want {
			found = true
		}
	}
	if !found {
		t.Errorf("got %v, want to contain %q", errs, want)
	}
}

func TestMissingRawValue(t *testing.T) {
	cfg := parseConfig(t, `
transforms:
  a:
    kind: route
tests:
  - name: no-value
    input:
      insert_at: a
      type: raw
    outputs:
      - extract_from: a
        conditions: {}
`)
	_, errs := Build(cfg.Tests[0], cfg)
	want := "input type 'raw' requires the field 'value'"
	found := false
	for _, e := range errs {
		if e == want {
			found = true
		}
	}
	if !found {
		t.Errorf("got %v, want to contain %q", errs, want)
	}
}

func TestStringConditionRejected(t *testing.T) {
	cfg := parseConfig(t, `
transforms:
  a:
    kind: route
tests:
  - name: string-cond
    input:
      insert_at: a
      type: raw
      value: hello
    outputs:
      - extract_from: a
        conditions:
          has_foo: "some-literal"
`)
	_, errs := Build(cfg.Tests[0], cfg)
	want := "failed to create test condition 'has_foo': string conditions are not yet supported"
	if len(errs) != 1 || errs[0] != want {
		t.Errorf("got %v, want [%q]", errs, want)
	}
}

func TestPruningDropsUnreachableBranch(t *testing.T) {
	cfg := parseConfig(t, `
transforms:
  a:
    kind: route
  b:
    kind: route
    inputs: ["a"]
  x:
    kind: route
    inputs: ["a"]
  y:
    kind: route
    inputs: ["x"]
tests:
  - name: pruned
    input:
      insert_at: a
      type: raw
      value: hello
    outputs:
      - extract_from: b
        conditions:
          any:
            kind: field_equals
            field: message
            value: hello
`)
	ut, errs := Build(cfg.Tests[0], cfg)
	if len(errs) != 0 {
		t.Fatalf("unexpected build errors: %v", errs)
	}
	if _, ok := ut.transforms["x"]; ok {
		t.Errorf("expected 'x' to be pruned away")
	}
	if _, ok := ut.transforms["y"]; ok {
		t.Errorf("expected 'y' to be pruned away")
	}
	if _, ok := ut.transforms["a"]; !ok {
		t.Errorf("expected 'a' to be retained")
	}
	if _, ok := ut.transforms["b"]; !ok {
		t.Errorf("expected 'b' to be retained")
	}
}

func TestFoundNoneWhenExtractionPointEmitsNothing(t *testing.T) {
	cfg := parseConfig(t, `
transforms:
  a:
    kind: drop
tests:
  - name: drops-everything
    input:
      insert_at: a
      type: raw
      value: hello
    outputs:
      - extract_from: a
        conditions:
          any:
            kind: field_equals
            field: message
            value: hello
`)
	ut, errs := Build(cfg.Tests[0], cfg)
	if len(errs) != 0 {
		t.Fatalf("unexpected build errors: %v", errs)
	}
	got := ut.Run()
	want := "expected resulting events from transform 'a', found none"
	if len(got) != 1 || got[0] != want {
		t.Errorf("got %v, want [%q]", got, want)
	}
}

func TestConditionFailureNamesTestAndExtractionPoint(t *testing.T) {
	cfg := parseConfig(t, `
transforms:
  a:
    kind: route
tests:
  - name: mismatch
    input:
      insert_at: a
      type: raw
      value: hello
    outputs:
      - extract_from: a
        conditions:
          wrong:
            kind: field_equals
            field: message
            value: goodbye
`)
	ut, errs := Build(cfg.Tests[0], cfg)
	if len(errs) != 0 {
		t.Fatalf("unexpected build errors: %v", errs)
	}
	got := ut.Run()
	if len(got) != 1 {
		t.Fatalf("got %v, want one failure", got)
	}
	if !strings.Contains(got[0], "mismatch") || !strings.Contains(got[0], "wrong") || !strings.Contains(got[0], "'a'") {
		t.Errorf("failure message %q missing test/condition/extraction-point identifiers", got[0])
	}
}

func TestErrorAccumulationIsDeterministic(t *testing.T) {
	cfg := parseConfig(t, `
transforms:
  a:
    kind: route
tests:
  - name: multi-error
    input:
      insert_at: a
      type: raw
      value: hello
    outputs:
      - extract_from: missing1
        conditions: {}
      - extract_from: missing2
        conditions: {}
`)
	_, errs := Build(cfg.Tests[0], cfg)
	want := []string{
		"unable to complete topology between input target 'a' and 'missing1'",
		"unable to complete topology between input target 'a' and 'missing2'",
	}
	if len(errs) != len(want) {
		t.Fatalf("got %v, want %v", errs, want)
	}
	for i := range want {
		if errs[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, errs[i], want[i])
		}
	}
}

func TestBuildAllIsolatesFailures(t *testing.T) {
	cfg := parseConfig(t, `
transforms:
  a:
    kind: route
tests:
  - name: passes
    input:
      insert_at: a
      type: raw
      value: hello
    outputs:
      - extract_from: a
        conditions:
          any:
            kind: field_equals
            field: message
            value: hello
  - name: fails
    input:
      insert_at: nonexistent
      type: raw
      value: hello
    outputs:
      - extract_from: a
        conditions: {}
`)
	tests, failures := BuildAll(cfg)
	if len(tests) != 1 {
		t.Fatalf("got %d compiled tests, want 1", len(tests))
	}
	if len(failures) != 1 {
		t.Fatalf("got %d failure blocks, want 1", len(failures))
	}
	if !strings.HasPrefix(failures[0], "Failed to build test 'fails':\n\t") {
		t.Errorf("got failure block %q", failures[0])
	}
	if got := tests[0].Run(); len(got) != 0 {
		t.Errorf("got %v, want the surviving test to pass", got)
	}
}
