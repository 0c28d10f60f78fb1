// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

package inline

import (
	"fmt"
	"io"

	"github.com/inlinekit/inlinekit/lib/codec"
	"github.com/inlinekit/inlinekit/lib/document"
)

// sessionFormatVersion is bumped when the Session wire shape changes
// incompatibly. Readers reject versions they do not understand rather
// than misinterpreting fields.
const sessionFormatVersion = 1

// Session is the persistable record of an inline-chat exchange: the
// inputs a [RenderRequest] needs, minus the live snapshot (replay
// supplies a fresh one). Written as deterministic CBOR so two
// recordings of the same session are byte-identical.
type Session struct {
	// FormatVersion identifies the wire shape of this record.
	FormatVersion int `json:"format_version"`

	// Path is the file the session operated on.
	Path string `json:"path"`

	// RequestVersion is the document version recorded when the
	// request was made.
	RequestVersion int `json:"request_version"`

	// FailedEdits records whether an edit attempt failed.
	FailedEdits bool `json:"failed_edits,omitempty"`

	// Selection is the selection active at request time.
	Selection document.Range `json:"selection"`

	// Rounds is the completed tool-call rounds in chronological order.
	Rounds []CompletedRound `json:"rounds"`
}

// WriteSession encodes session to w as deterministic CBOR. The
// session's FormatVersion is stamped; the caller does not set it.
func WriteSession(w io.Writer, session *Session) error {
	stamped := *session
	stamped.FormatVersion = sessionFormatVersion
	if err := codec.NewEncoder(w).Encode(&stamped); err != nil {
		return fmt.Errorf("inline: encoding session: %w", err)
	}
	return nil
}

// ReadSession decodes a session record from r, rejecting unknown
// format versions.
func ReadSession(r io.Reader) (*Session, error) {
	var session Session
	if err := codec.NewDecoder(r).Decode(&session); err != nil {
		return nil, fmt.Errorf("inline: decoding session: %w", err)
	}
	if session.FormatVersion != sessionFormatVersion {
		return nil, fmt.Errorf("inline: unsupported session format version %d (supported: %d)",
			session.FormatVersion, sessionFormatVersion)
	}
	return &session, nil
}

// RenderRequestFor builds a RenderRequest from a recorded session and
// a fresh snapshot of the session's file. The large-file flag is
// recomputed from the snapshot's current line count.
func (session *Session) RenderRequestFor(snapshot document.Snapshot) RenderRequest {
	return RenderRequest{
		Rounds:         session.Rounds,
		FailedEdits:    session.FailedEdits,
		Snapshot:       snapshot,
		RequestVersion: session.RequestVersion,
		IsLargeFile:    IsLargeFile(snapshot.LineCount()),
		Selection:      session.Selection,
		Path:           session.Path,
	}
}
