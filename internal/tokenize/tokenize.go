// Copyright (C) 2023 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tokenize splits message and term text into the lowercase
// whitespace-delimited word tokens that every matcher operates on.
package tokenize

import "strings"

// DefaultNgramLen is used by the naive matchers when no term in the
// dictionary is longer than this many tokens.
const DefaultNgramLen = 3

// Words breaks s into lowercase word tokens on runs of whitespace.
// Punctuation is kept verbatim as part of its token.
func Words(s string) []string {
	return strings.Fields(strings.ToLower(s))
}

// NGrams returns every contiguous run of 1..maxLen tokens from words,
// space-joined, ordered by (length, start position).
func NGrams(words []string, maxLen int) []string {
	if maxLen < 1 {
		maxLen = 1
	}
	grams := make([]string, 0, len(words)*maxLen)
	for length := 1; length <= maxLen; length++ {
		for start := 0; start+length <= len(words); start++ {
			grams = append(grams, strings.Join(words[start:start+length], " "))
		}
	}
	return grams
}
