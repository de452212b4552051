// Copyright (C) 2023 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package matcher

import "github.com/ClusterCockpit/terms-of-interest/internal/tokenize"

// NaiveSet is NaiveList with the term collection held as a hash set,
// reducing Query from O(q*m) to O(q) by intersecting the n-gram stream
// against the set instead of scanning a list per n-gram.
//
//	Build: O(n)   Space: O(n)
//	Query: O(q)   Space: O(q+r)
type NaiveSet struct {
	terms   map[string]struct{}
	maxToks int
	built   bool
}

func NewNaiveSet() *NaiveSet {
	return &NaiveSet{terms: make(map[string]struct{}), maxToks: tokenize.DefaultNgramLen}
}

func (m *NaiveSet) AddTerm(term string) {
	if m.built {
		panicBuiltAlready()
	}
	m.terms[term] = struct{}{}
	if n := len(tokenize.Words(term)); n > m.maxToks {
		m.maxToks = n
	}
}

func (m *NaiveSet) Build() {
	m.built = true
}

func (m *NaiveSet) Query(text string) map[string]struct{} {
	if !m.built {
		panicNotBuilt()
	}
	results := make(map[string]struct{})
	for _, gram := range tokenize.NGrams(tokenize.Words(text), m.maxToks) {
		if _, ok := m.terms[gram]; ok {
			results[gram] = struct{}{}
		}
	}
	return results
}

// Contains reports whether term is present verbatim in the term set,
// mirroring the Python original's SetMatcher.__contains__. The pipeline's
// per-unit user gate does not use it; it tests membership with its own
// UserSet type.
func (m *NaiveSet) Contains(term string) bool {
	_, ok := m.terms[term]
	return ok
}
