// Copyright (C) 2023 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package matcher implements the four multi-pattern phrase matchers that
// share a common query(text) -> set<term> contract: a naive list, a naive
// set, a word-level keyword trie, and a word-level Aho-Corasick automaton.
// Only the Aho-Corasick variant is the throughput-critical path; the
// other three exist as benchmark baselines.
package matcher

import "fmt"

// Matcher is the contract shared by all four implementations. AddTerm
// records a term for inclusion; Build completes internal structure and
// must be called exactly once before any Query; Query returns the set
// of original term strings that occur in text.
type Matcher interface {
	AddTerm(term string)
	Build()
	Query(text string) map[string]struct{}
}

// Algo names the four implementations recognized by New, matching the
// termset_algo configuration option.
type Algo string

const (
	AlgoNaiveList   Algo = "NaiveList"
	AlgoNaiveSet    Algo = "NaiveSet"
	AlgoTrie        Algo = "Trie"
	AlgoAhoCorasick Algo = "AhoCorasick"
)

// ErrUnknownAlgo is returned by New when algo names something outside
// the fixed set above. It is a fatal, fail-fast configuration error.
type ErrUnknownAlgo struct {
	Algo string
}

func (e *ErrUnknownAlgo) Error() string {
	return fmt.Sprintf("matcher: unknown termset algorithm %q", e.Algo)
}

// New builds an empty matcher of the named kind. Callers still need to
// AddTerm and Build it.
func New(algo Algo) (Matcher, error) {
	switch algo {
	case AlgoNaiveList:
		return NewNaiveList(), nil
	case AlgoNaiveSet:
		return NewNaiveSet(), nil
	case AlgoTrie:
		return NewTrie(), nil
	case AlgoAhoCorasick:
		return NewAhoCorasick(), nil
	default:
		return nil, &ErrUnknownAlgo{Algo: string(algo)}
	}
}

// errConstructionOrder is the assertion panic raised when a caller
// violates the add-then-build-then-query lifecycle (spec: a programmer
// error, not a recoverable condition).
type errConstructionOrder struct {
	msg string
}

func (e errConstructionOrder) Error() string { return e.msg }

func panicBuiltAlready() {
	panic(errConstructionOrder{"matcher: AddTerm called after Build"})
}

func panicNotBuilt() {
	panic(errConstructionOrder{"matcher: Query called before Build"})
}
