// Copyright (C) 2023 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package loader holds the shared line-by-line file reading used to load
// userset and termset files (C7 in the component table).
package loader

import (
	"bufio"
	"os"
	"strings"
)

// ReadLines reads path and returns every non-blank line with surrounding
// whitespace trimmed. Blank lines are skipped silently - this is the
// MalformedTerm/MalformedUser rule from the error design: a blank entry
// is dropped at load time, never surfaced as an error.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
