// Copyright (C) 2023 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package matcher

// node is one vertex of the word-trie/Aho-Corasick tree. Parents own
// their children exclusively; fail is a back-reference into the same
// arena that never owns, so the whole structure stays an index-addressed
// slice rather than a pointer graph with cycles (the fail edges would
// otherwise make ownership ambiguous).
type node struct {
	value    string           // the word labeling the edge from the parent; "" at the root
	children map[string]int32 // word -> child index into the owning arena
	outputs  map[string]struct{}
	fail     int32 // index of the fail-link target; the root's fail is its own index
}

// arena is the contiguous node store backing both Trie and AhoCorasick.
// Index 0 is always the root.
type arena struct {
	nodes []node
}

func newArena() *arena {
	a := &arena{nodes: make([]node, 1, 64)}
	a.nodes[0] = node{children: make(map[string]int32)}
	return a
}

const rootIndex int32 = 0

func (a *arena) alloc(value string) int32 {
	a.nodes = append(a.nodes, node{value: value, children: make(map[string]int32)})
	return int32(len(a.nodes) - 1)
}

// insert walks (or creates) the child chain for tokens starting at the
// root and returns the index of the terminal node.
func (a *arena) insert(tokens []string) int32 {
	cur := rootIndex
	for _, w := range tokens {
		child, ok := a.nodes[cur].children[w]
		if !ok {
			child = a.alloc(w)
			a.nodes[cur].children[w] = child
		}
		cur = child
	}
	return cur
}

func (a *arena) addOutput(idx int32, term string) {
	n := &a.nodes[idx]
	if n.outputs == nil {
		n.outputs = make(map[string]struct{})
	}
	n.outputs[term] = struct{}{}
}
