// Copyright (C) 2023 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package matcher

import "github.com/ClusterCockpit/terms-of-interest/internal/tokenize"

// Trie is a word-level keyword trie. A term's token sequence (lowercased
// by the NaiveTokenizer on insertion) is walked from the root, creating
// child edges keyed by word as needed; the terminal node accumulates the
// original term string in its outputs.
//
// Query descends from every start index, matching one token at a time
// and unioning outputs along the way, stopping that descent on the first
// mismatch. AhoCorasick is the authoritative matcher; this one exists
// only as a baseline and is not guaranteed the O(|W|) bound AC gets.
//
//	Build: O(n)             Space: O(n+m)
//	Query: O(|W|*L) best    Space: O(w+r)
type Trie struct {
	a     *arena
	built bool
}

func NewTrie() *Trie {
	return &Trie{a: newArena()}
}

func (m *Trie) AddTerm(term string) {
	if m.built {
		panicBuiltAlready()
	}
	idx := m.a.insert(tokenize.Words(term))
	m.a.addOutput(idx, term)
}

// Build completes the trie. It is idempotent: the trie needs no further
// processing beyond insertion, so Build only flips the construction-order
// guard.
func (m *Trie) Build() {
	m.built = true
}

func (m *Trie) Query(text string) map[string]struct{} {
	if !m.built {
		panicNotBuilt()
	}
	words := tokenize.Words(text)
	results := make(map[string]struct{})

	for start := 0; start < len(words); start++ {
		cur := rootIndex
		for idx := start; idx < len(words); idx++ {
			child, ok := m.a.nodes[cur].children[words[idx]]
			if !ok {
				break
			}
			cur = child
			for term := range m.a.nodes[cur].outputs {
				results[term] = struct{}{}
			}
		}
	}
	return results
}
