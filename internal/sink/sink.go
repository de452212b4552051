// Copyright (C) 2023 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sink implements the write-only destinations a pipeline can
// hand MatchResults to: the default stdout formatter and the optional
// relational sink.
package sink

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"text/template"

	"github.com/ClusterCockpit/terms-of-interest/internal/pipeline"
)

// DefaultFormatTemplate is the output contract's "{term}, {message_id}"
// line; Stdout renders one line per record in this shape and appends the
// trailing newline itself.
const DefaultFormatTemplate = "{term}, {message_id}"

var placeholder = regexp.MustCompile(`\{(term|message_id)\}`)

// compileTemplate rewrites the spec's {term}/{message_id} placeholder
// syntax into Go text/template actions before parsing, so the external
// configuration surface stays exactly what §6 documents while rendering
// goes through the ecosystem templating the teacher already uses
// elsewhere (internal/tagger's hint templates).
func compileTemplate(tmpl string) (*template.Template, error) {
	rewritten := placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		switch m {
		case "{term}":
			return "{{.Term}}"
		case "{message_id}":
			return "{{.MessageID}}"
		default:
			return m
		}
	})
	return template.New("format").Parse(rewritten)
}

// Stdout writes one formatted line per MatchResult to an underlying
// writer (standard output by default).
type Stdout struct {
	w    io.Writer
	tmpl *template.Template
}

// NewStdout builds a Stdout sink from the spec's placeholder-style
// format template. An empty template falls back to DefaultFormatTemplate.
func NewStdout(w io.Writer, formatTemplate string) (*Stdout, error) {
	if strings.TrimSpace(formatTemplate) == "" {
		formatTemplate = DefaultFormatTemplate
	}
	tmpl, err := compileTemplate(formatTemplate)
	if err != nil {
		return nil, fmt.Errorf("sink: bad format template %q: %w", formatTemplate, err)
	}
	return &Stdout{w: w, tmpl: tmpl}, nil
}

func (s *Stdout) Write(_ context.Context, r pipeline.MatchResult) error {
	if err := s.tmpl.Execute(s.w, r); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.w)
	return err
}
