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

// Package transform defines the polymorphic Transform unit and the registry
// that builds one from its configuration record: a transform kind registers
// a constructor under a name at init time, and a live instance is built from
// it later from the transform's YAML body.
package transform

import (
	"fmt"

	"github.com/transformgraph/harness/event"
)

// Transform is the live, polymorphic unit of the topology. It consumes one
// event and appends zero or more derived events onto out. It may retain
// mutable state across calls within a single test walk, and it never
// reports an error at this stage: declining to emit is its only failure
// mode.
type Transform interface {
	// TransformInto consumes in and appends its outputs onto out.
	TransformInto(out *[]event.Event, in event.Event)
}

// Builder builds a live Transform from its (already-decoded) configuration.
// Building may fail, e.g. because of an invalid substring grammar; that
// failure is reported once, at compile time.
type Builder interface {
	Build() (Transform, error)
}

// Closer is an optional interface a Transform may implement to release
// resources. None of the transforms shipped here implement it, and the
// unittest package does not call Close on the transforms it builds.
type Closer interface {
	Close() error
}

// decodeFunc turns a YAML unmarshal callback for one transform's body into a
// Builder for that kind.
type decodeFunc func(unmarshal func(interface{}) error) (Builder, error)

var registry = map[string]decodeFunc{}

// Register associates a transform kind name with the function that decodes
// its YAML body into a Builder. It is meant to be called from the init()
// function of the file that implements that kind.
func Register(kind string, decode decodeFunc) {
	if kind == "" {
		panic("transform: cannot register a kind with an empty name")
	}
	if _, exists := registry[kind]; exists {
		panic(fmt.Sprintf("transform: kind %q is already registered", kind))
	}
	registry[kind] = decode
}

// Decode looks up kind in the registry and decodes unmarshal into a Builder
// of that kind. It returns an error naming the unknown kind if none is
// registered.
func Decode(kind string, unmarshal func(interface{}) error) (Builder, error) {
	decode, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("unknown transform kind '%s'", kind)
	}
	return decode(unmarshal)
}

// RegisteredKinds returns the names of every registered transform kind. It
// backs the CLI's `kinds` subcommand and is also useful in tests.
func RegisteredKinds() []string {
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	return kinds
}
