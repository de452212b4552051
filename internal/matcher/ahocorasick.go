// Copyright (C) 2023 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package matcher

import (
	"fmt"

	"github.com/ClusterCockpit/terms-of-interest/internal/tokenize"
)

// AhoCorasick is the word-level Aho-Corasick automaton: the throughput
// critical matcher and the only non-trivial one of the four. It extends
// the trie's arena with a fail link per node and hoists outputs along
// fail chains at build time, so Query never walks a fail chain at
// runtime - a single O(|text tokens|) pass suffices regardless of
// dictionary size.
//
//	Build: O(n+m)   Space: O(n+m)
//	Query: O(w)     Space: O(r)
type AhoCorasick struct {
	a     *arena
	built bool
}

func NewAhoCorasick() *AhoCorasick {
	return &AhoCorasick{a: newArena()}
}

func (m *AhoCorasick) AddTerm(term string) {
	if m.built {
		panicBuiltAlready()
	}
	idx := m.a.insert(tokenize.Words(term))
	m.a.addOutput(idx, term)
}

// Build computes fail links breadth-first and hoists each node's fail
// target's outputs into its own, eliminating the need for any fail-walk
// during Query. Build is idempotent in result; calling it twice just
// redoes the same pass.
func (m *AhoCorasick) Build() {
	root := &m.a.nodes[rootIndex]
	root.fail = rootIndex

	queue := make([]int32, 0, len(root.children))
	for _, child := range root.children {
		m.a.nodes[child].fail = rootIndex
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		n := m.a.nodes[idx]

		for word, child := range n.children {
			fail := m.failTransition(n.fail, word)
			m.a.nodes[child].fail = fail

			if out := m.a.nodes[fail].outputs; len(out) > 0 {
				for term := range out {
					m.a.addOutput(child, term)
				}
			}
			queue = append(queue, child)
		}
	}

	m.built = true
}

// failTransition computes the node that should become a child's fail
// link: the fail node's own child for word if present, else the root's
// child for word if present, else the root.
func (m *AhoCorasick) failTransition(failOf int32, word string) int32 {
	if c, ok := m.a.nodes[failOf].children[word]; ok {
		return c
	}
	if c, ok := m.a.nodes[rootIndex].children[word]; ok {
		return c
	}
	return rootIndex
}

func (m *AhoCorasick) Query(text string) map[string]struct{} {
	if !m.built {
		panicNotBuilt()
	}
	results := make(map[string]struct{})
	cur := rootIndex

	for _, w := range tokenize.Words(text) {
		n := m.a.nodes[cur]
		next, ok := n.children[w]
		if !ok {
			next, ok = m.a.nodes[n.fail].children[w]
			if !ok {
				next = rootIndex
			}
		}
		cur = next
		for term := range m.a.nodes[cur].outputs {
			results[term] = struct{}{}
		}
	}
	return results
}

// RootFailIsRoot reports whether the root's fail link points to itself,
// one half of the P5 structural invariant.
func (m *AhoCorasick) RootFailIsRoot() bool {
	return m.a.nodes[rootIndex].fail == rootIndex
}

// CheckFailInvariants verifies, for every non-root node, that its fail
// link does not point to itself and that its hoisted outputs are a
// superset of its fail target's outputs (P5).
func (m *AhoCorasick) CheckFailInvariants() error {
	for i := int32(1); i < int32(len(m.a.nodes)); i++ {
		n := m.a.nodes[i]
		if n.fail == i {
			return fmt.Errorf("node %d: fail points to itself", i)
		}
		for term := range m.a.nodes[n.fail].outputs {
			if _, ok := n.outputs[term]; !ok {
				return fmt.Errorf("node %d: outputs missing %q hoisted from fail node %d", i, term, n.fail)
			}
		}
	}
	return nil
}
