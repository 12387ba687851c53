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

// Package graph implements a forward-adjacency topology reducer: given a
// root, a leaf set, and a string-keyed adjacency, it prunes the adjacency in
// place down to exactly those nodes lying on some root-to-leaf path. Nodes
// are addressed by name rather than by pointer, since transform and
// condition identity here is a config-file string.
package graph

// Adjacency is the forward-edge map: node name -> ordered list of node
// names it points to. Order within each slice is the order in which AddEdge
// added the edges, preserved by Reduce.
type Adjacency map[string][]string

// AddEdge appends to -> from the "from" node's outgoing set, creating both
// nodes if absent.
func (a Adjacency) AddEdge(from, to string) {
	a.AddNode(from)
	a.AddNode(to)
	a[from] = append(a[from], to)
}

// AddNode ensures name has an (possibly empty) outgoing-set entry.
func (a Adjacency) AddNode(name string) {
	if _, exists := a[name]; !exists {
		a[name] = nil
	}
}

// HasNode reports whether name is present in the adjacency.
func (a Adjacency) HasNode(name string) bool {
	_, exists := a[name]
	return exists
}

// Reduce prunes a in place, retaining exactly the nodes that lie on some
// path from root to a member of leaves. A node survives only if it is both
// reachable from root and able to reach a leaf; a node that can reach a leaf
// but that root can never get to (for example a disconnected component
// sharing no edge with root) is pruned along with everything above it. If
// root cannot reach any leaf at all, a becomes empty. Returns whether root
// links to a leaf (i.e. whether anything survived).
func Reduce(root string, leaves []string, a Adjacency) bool {
	leafSet := make(map[string]bool, len(leaves))
	for _, l := range leaves {
		leafSet[l] = true
	}

	memo := make(map[string]bool)
	var linksToLeaf func(n string) bool
	linksToLeaf = func(n string) bool {
		if v, ok := memo[n]; ok {
			return v
		}
		if leafSet[n] {
			memo[n] = true
			return true
		}
		memo[n] = false // tentative seed: breaks cycles, including self-reference
		result := false
		for _, child := range a[n] {
			if linksToLeaf(child) {
				result = true
				break
			}
		}
		memo[n] = result
		return result
	}

	reachableFromRoot := map[string]bool{root: true}
	queue := []string{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, child := range a[n] {
			if !reachableFromRoot[child] {
				reachableFromRoot[child] = true
				queue = append(queue, child)
			}
		}
	}

	if !linksToLeaf(root) {
		for k := range a {
			delete(a, k)
		}
		return false
	}

	retained := func(n string) bool {
		return reachableFromRoot[n] && linksToLeaf(n)
	}

	for n := range a {
		if !retained(n) {
			delete(a, n)
			continue
		}
		kept := a[n][:0:0]
		for _, child := range a[n] {
			if retained(child) {
				kept = append(kept, child)
			}
		}
		a[n] = kept
	}
	return true
}
