// Copyright (C) 2023 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pipeline composes the staged decode -> date-gate -> per-unit
// (user-gate -> term-match) -> sink flow described by the component
// table. Stages are not separate goroutines wired by channels; they are
// plain function calls chained inside Pipeline.RunFile, which is enough
// to satisfy the single-threaded baseline in the concurrency model and
// keeps per-message ordering trivially correct (spec P6/P7).
package pipeline

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"

	"github.com/ClusterCockpit/terms-of-interest/internal/log"
	"github.com/ClusterCockpit/terms-of-interest/internal/matcher"
	"github.com/ClusterCockpit/terms-of-interest/internal/message"
)

// UserSet is a read-only membership test over author node ids.
type UserSet map[string]struct{}

func NewUserSet(ids []string) UserSet {
	s := make(UserSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s UserSet) Contains(nodeID string) bool {
	_, ok := s[nodeID]
	return ok
}

// Unit pairs an allow-list of authors with the matcher that supplies its
// term dictionary. Units are evaluated independently and in the order
// they were configured.
type Unit struct {
	Users   UserSet
	Matcher matcher.Matcher
}

// MatchResult is the (lowercased term, message id) record produced by a
// unit's term filter and handed to the sink.
type MatchResult struct {
	Term      string `db:"term"`
	MessageID string `db:"message_id"`
}

// Sink accepts MatchResults as they are produced. Implementations must
// preserve the caller's write order; the pipeline itself guarantees that
// order already has the per-message contiguity spec P6/P7 require.
type Sink interface {
	Write(ctx context.Context, r MatchResult) error
}

// Pipeline is built once, parameterized with the units, the execution
// date gate, and the sink, then driven over one or more input files.
// Nothing here is reconstructed per message (spec C5: "context binding").
type Pipeline struct {
	units         []Unit
	executionDate *time.Time
	sink          Sink
}

// Option configures a Pipeline at construction time.
type Option func(*Pipeline)

// WithExecutionDate sets the date gate: messages whose message_time falls
// on a different calendar date are dropped. A zero date, like leaving the
// option out, disables the gate entirely (every message passes).
func WithExecutionDate(t time.Time) Option {
	return func(p *Pipeline) {
		if t.IsZero() {
			p.executionDate = nil
			return
		}
		p.executionDate = &t
	}
}

func WithSink(s Sink) Option {
	return func(p *Pipeline) { p.sink = s }
}

func New(units []Unit, opts ...Option) *Pipeline {
	p := &Pipeline{units: units}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// RunFile scans r line by line, decodes each into a Message, and drives
// it through the date gate and every configured unit in turn. A line
// that fails to parse is logged and dropped (spec MalformedMessage);
// the pipeline itself only returns an error for fatal IO/sink failures,
// aborting after flushing whatever records the current message already
// produced.
func (p *Pipeline) RunFile(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineIndex := 0
	for scanner.Scan() {
		lineIndex++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		msg, err := message.Parse(line, lineIndex)
		if err != nil {
			log.Warnf("dropping line %d: %s", lineIndex, err)
			continue
		}

		if !p.passesDateGate(msg) {
			continue
		}

		if err := p.emit(ctx, msg); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (p *Pipeline) passesDateGate(msg message.Message) bool {
	if p.executionDate == nil {
		return true
	}
	y1, m1, d1 := p.executionDate.Date()
	y2, m2, d2 := msg.MessageTime().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// emit drives one message through every unit in configured order and
// writes each resulting MatchResult to the sink before moving to the
// next unit, giving the contiguity spec §5 requires: every record for
// this message is written before emit returns.
func (p *Pipeline) emit(ctx context.Context, msg message.Message) error {
	for _, unit := range p.units {
		if !unit.Users.Contains(msg.NodeID()) {
			continue
		}

		for term := range unit.Matcher.Query(msg.Text()) {
			result := MatchResult{Term: strings.ToLower(term), MessageID: msg.MessageID()}
			if p.sink == nil {
				continue
			}
			if err := p.sink.Write(ctx, result); err != nil {
				return err
			}
		}
	}
	return nil
}
