// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

package document

import "strings"

// Memory is an in-memory [Snapshot] implementation. It is the snapshot
// type used by tests and by the CLI, and a reference for hosts wiring
// their own buffer type to the interface.
//
// Memory values are immutable after construction. To represent a
// buffer mutation, construct a new Memory with a higher version.
type Memory struct {
	path       string
	languageID string
	version    int
	lines      []string
}

// NewMemory creates a snapshot from pre-split lines. The lines slice
// is copied so later caller mutation cannot violate immutability.
func NewMemory(path, languageID string, version int, lines []string) *Memory {
	copied := make([]string, len(lines))
	copy(copied, lines)
	return &Memory{
		path:       path,
		languageID: languageID,
		version:    version,
		lines:      copied,
	}
}

// NewMemoryFromText creates a snapshot by splitting text on newlines.
// A trailing newline does not produce a phantom empty final line.
func NewMemoryFromText(path, languageID string, version int, text string) *Memory {
	text = strings.TrimSuffix(text, "\n")
	return NewMemory(path, languageID, version, strings.Split(text, "\n"))
}

// Version returns the document version of this snapshot.
func (m *Memory) Version() int { return m.version }

// LineCount returns the number of lines.
func (m *Memory) LineCount() int { return len(m.lines) }

// Line returns the text of line i without its trailing newline.
func (m *Memory) Line(i int) string { return m.lines[i] }

// LanguageID returns the language identifier given at construction.
func (m *Memory) LanguageID() string { return m.languageID }

// Path returns the file path given at construction.
func (m *Memory) Path() string { return m.path }

// Text returns the full snapshot content, newline-joined.
func (m *Memory) Text() string { return strings.Join(m.lines, "\n") }

// WithVersion returns a copy of the snapshot at a different version,
// same content. Used by tests to model a version bump with identical
// text, which still counts as a change.
func (m *Memory) WithVersion(version int) *Memory {
	return NewMemory(m.path, m.languageID, version, m.lines)
}
