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
	"strconv"
	"strings"

	"github.com/transformgraph/harness/event"
)

func init() {
	Register("concat", func(unmarshal func(interface{}) error) (Builder, error) {
		cfg := &ConcatConfig{}
		if err := unmarshal(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	})
}

// ConcatConfig is the build-time description of a concat transform: it
// reads named fields from the input event, optionally takes a byte-index
// substring of each, joins them with Joiner, and writes the result into
// Target.
type ConcatConfig struct {
	Target string   `yaml:"target"`
	Joiner string   `yaml:"joiner"`
	Items  []string `yaml:"items"`
}

// Build parses every item's substring grammar and returns a live Concat, or
// the first parse error encountered.
func (c *ConcatConfig) Build() (Transform, error) {
	if c.Target == "" {
		return nil, fmt.Errorf("concat: target must not be empty")
	}
	items := make([]substring, 0, len(c.Items))
	for _, raw := range c.Items {
		sub, err := parseSubstring(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, sub)
	}
	return &Concat{target: c.Target, joiner: c.Joiner, items: items}, nil
}

// substring names a source field and an optional [start..end] byte slice of
// it. A nil bound defaults to 0 (Start) or the field's full byte length
// (End).
type substring struct {
	source string
	start  *int
	end    *int
}

// parseSubstring implements the grammar:
//
//	source ( '[' integer? '..' integer? ']' )?
//
// A malformed bracket section -- an unterminated '[', a missing '..', or a
// non-numeric bound -- is a build-time error.
func parseSubstring(item string) (substring, error) {
	bracket := strings.IndexByte(item, '[')
	if bracket < 0 {
		if item == "" {
			return substring{}, fmt.Errorf("invalid format, use source[start..end]")
		}
		return substring{source: item}, nil
	}
	if !strings.HasSuffix(item, "]") {
		return substring{}, fmt.Errorf("invalid format, missing ']'")
	}

	source := item[:bracket]
	body := item[bracket+1 : len(item)-1]
	parts := strings.SplitN(body, "..", 2)
	if len(parts) != 2 {
		return substring{}, fmt.Errorf("invalid format, use source[start..end]")
	}

	sub := substring{source: source}
	if parts[0] != "" {
		n, err := strconv.Atoi(parts[0])
		if err != nil || n < 0 {
			return substring{}, fmt.Errorf("invalid format, use source[start..end]")
		}
		sub.start = &n
	}
	if parts[1] != "" {
		n, err := strconv.Atoi(parts[1])
		if err != nil || n < 0 {
			return substring{}, fmt.Errorf("invalid format, use source[start..end]")
		}
		sub.end = &n
	}
	return sub, nil
}

// slice applies the substring's bounds to value's bytes. Out-of-range bounds
// are clamped rather than allowed to panic: the bounds are fixed at build
// time but the field's length is only known per-event.
func (s substring) slice(value string) string {
	b := []byte(value)
	start, end := 0, len(b)
	if s.start != nil {
		start = *s.start
	}
	if s.end != nil {
		end = *s.end
	}
	if start < 0 {
		start = 0
	}
	if end > len(b) {
		end = len(b)
	}
	if start > end {
		start = end
	}
	return string(b[start:end])
}

// Concat is the live transform built from ConcatConfig. It is the spec's
// exemplar transform.
type Concat struct {
	target string
	joiner string
	items  []substring
}

// TransformInto reads each configured source field, slices it per the
// substring grammar, joins the results with joiner, and writes them into
// target on the same event. A source field absent from the event is
// silently skipped, matching the original's filter_map behavior.
func (c *Concat) TransformInto(out *[]event.Event, in event.Event) {
	parts := make([]string, 0, len(c.items))
	for _, item := range c.items {
		if v, ok := in.Get(item.source); ok {
			parts = append(parts, item.slice(v))
		}
	}
	in.Set(c.target, strings.Join(parts, c.joiner))
	*out = append(*out, in)
}
