// Copyright (C) 2023 NHR@FAU, University Erlangen-Nuremberg.
// All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package message parses one line of newline-delimited JSON input into
// an immutable Message record.
package message

import (
	"encoding/json"
	"fmt"
	"time"
)

// timeLayout is the Go reference-time equivalent of the Python strptime
// format "%a %b %d %H:%M:%S %z %Y", e.g. "Mon Apr 08 19:45:35 +0000 2019".
const timeLayout = "Mon Jan 02 15:04:05 -0700 2006"

// Message is an immutable record decoded from one line of input. Once
// constructed it is never mutated; the same instance may be read by
// every configured unit.
type Message struct {
	text        string
	nodeID      string
	messageID   string
	messageTime time.Time
}

func (m Message) Text() string           { return m.text }
func (m Message) NodeID() string         { return m.nodeID }
func (m Message) MessageID() string      { return m.messageID }
func (m Message) MessageTime() time.Time { return m.messageTime }

// wireMessage mirrors the on-the-wire JSON object. Unknown fields are
// ignored (no DisallowUnknownFields), matching the spec's "unknown
// fields are ignored" rule for this schema.
type wireMessage struct {
	Text        string `json:"text"`
	NodeID      string `json:"node_id"`
	MessageID   string `json:"message_id"`
	MessageTime string `json:"message_time"`
}

// MalformedMessage is raised when a line fails to parse: a required
// field is absent, the wrong JSON type, or message_time does not match
// the expected timestamp layout. LineIndex is 1-based.
type MalformedMessage struct {
	LineIndex int
	Reason    string
}

func (e *MalformedMessage) Error() string {
	return fmt.Sprintf("malformed message at line %d: %s", e.LineIndex, e.Reason)
}

// Parse decodes one line of input into a Message. lineIndex is carried
// into any MalformedMessage for the caller's diagnostic.
func Parse(line []byte, lineIndex int) (Message, error) {
	var w wireMessage
	if err := json.Unmarshal(line, &w); err != nil {
		return Message{}, &MalformedMessage{LineIndex: lineIndex, Reason: err.Error()}
	}

	if w.Text == "" {
		return Message{}, &MalformedMessage{LineIndex: lineIndex, Reason: "missing or empty \"text\""}
	}
	if w.NodeID == "" {
		return Message{}, &MalformedMessage{LineIndex: lineIndex, Reason: "missing or empty \"node_id\""}
	}
	if w.MessageID == "" {
		return Message{}, &MalformedMessage{LineIndex: lineIndex, Reason: "missing or empty \"message_id\""}
	}

	t, err := time.Parse(timeLayout, w.MessageTime)
	if err != nil {
		return Message{}, &MalformedMessage{LineIndex: lineIndex, Reason: fmt.Sprintf("bad message_time %q: %s", w.MessageTime, err)}
	}

	return Message{
		text:        w.Text,
		nodeID:      w.NodeID,
		messageID:   w.MessageID,
		messageTime: t,
	}, nil
}
