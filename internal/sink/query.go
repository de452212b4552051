// Copyright (C) 2023 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.
package sink

import (
	sq "github.com/Masterminds/squirrel"
)

// CountByTerm reports how many rows the results table holds for term,
// optionally narrowed to messageID. This backs the file-contract results
// verifier described in spec §1 ("a simple consumer, out of scope beyond
// its file contract") when it is pointed at the SQL sink instead of
// stdout; it is built with squirrel the way the teacher's repository
// package builds its ad hoc tag-count queries.
func (s *SQL) CountByTerm(term string, messageID string) (int, error) {
	q := sq.Select("COUNT(*)").From("results").Where(sq.Eq{"term": term})
	if messageID != "" {
		q = q.Where(sq.Eq{"message_id": messageID})
	}

	var count int
	if err := q.RunWith(s.DB).QueryRow().Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
