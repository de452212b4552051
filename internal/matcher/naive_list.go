// Copyright (C) 2023 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package matcher

import (
	"github.com/ClusterCockpit/terms-of-interest/internal/tokenize"
	"github.com/ClusterCockpit/terms-of-interest/internal/util"
)

// NaiveList is a flat ordered collection of terms queried by generating
// every n-gram of the haystack and scanning the term list for each one.
//
//	Build: O(n)       Space: O(n)
//	Query: O(q*m)     Space: O(r)
//
// Baseline only; NaiveSet and AhoCorasick are the faster equivalents.
type NaiveList struct {
	terms   []string
	maxToks int
	built   bool
}

func NewNaiveList() *NaiveList {
	return &NaiveList{maxToks: tokenize.DefaultNgramLen}
}

func (m *NaiveList) AddTerm(term string) {
	if m.built {
		panicBuiltAlready()
	}
	m.terms = append(m.terms, term)
	if n := len(tokenize.Words(term)); n > m.maxToks {
		m.maxToks = n
	}
}

func (m *NaiveList) Build() {
	m.built = true
}

func (m *NaiveList) Query(text string) map[string]struct{} {
	if !m.built {
		panicNotBuilt()
	}
	results := make(map[string]struct{})
	for _, gram := range tokenize.NGrams(tokenize.Words(text), m.maxToks) {
		if util.Contains(m.terms, gram) {
			results[gram] = struct{}{}
		}
	}
	return results
}
