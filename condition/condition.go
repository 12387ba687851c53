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

// Package condition defines the polymorphic Condition predicate and the
// registry that builds one from its configuration record, the same
// register-by-kind/build-on-demand shape as transform.Register/Decode,
// applied to an embedded-vs-string wire variant.
package condition

import (
	"fmt"

	"github.com/transformgraph/harness/event"
)

// Condition is a total boolean predicate over a single event. It must not
// fail at evaluation time -- all fallibility lives in Builder.Build.
type Condition interface {
	Check(e event.Event) bool
}

// Builder builds a live Condition from its (already-decoded) configuration.
type Builder interface {
	Build() (Condition, error)
}

// ErrStringConditionsUnsupported is the exact, load-bearing error message for
// the reserved "string" condition variant.
const ErrStringConditionsUnsupported = "string conditions are not yet supported"

type decodeFunc func(unmarshal func(interface{}) error) (Builder, error)

var registry = map[string]decodeFunc{}

// Register associates a condition kind name with the function that decodes
// its YAML body into a Builder.
func Register(kind string, decode decodeFunc) {
	if kind == "" {
		panic("condition: cannot register a kind with an empty name")
	}
	if _, exists := registry[kind]; exists {
		panic(fmt.Sprintf("condition: kind %q is already registered", kind))
	}
	registry[kind] = decode
}

// Decode looks up kind in the registry and decodes unmarshal into a Builder
// of that kind.
func Decode(kind string, unmarshal func(interface{}) error) (Builder, error) {
	decode, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("unknown condition kind '%s'", kind)
	}
	return decode(unmarshal)
}

// RegisteredKinds returns the names of every registered condition kind.
func RegisteredKinds() []string {
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	return kinds
}

// stringBuilder is the Builder for the reserved string variant: it always
// fails to build, by design.
type stringBuilder struct {
	value string
}

// Build always fails with the reserved message.
func (s stringBuilder) Build() (Condition, error) {
	return nil, fmt.Errorf(ErrStringConditionsUnsupported)
}

// NewStringBuilder wraps a bare string condition value in a Builder that
// always fails, for the Def variant below.
func NewStringBuilder(value string) Builder {
	return stringBuilder{value: value}
}
