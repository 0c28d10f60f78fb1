// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

package document

import "unicode/utf16"

// Snapshot is an immutable, versioned view of a text file at a point
// in time. The host editor owns the underlying buffer; implementations
// must return stable values for the lifetime of the snapshot.
type Snapshot interface {
	// Version is the document version this snapshot was taken at.
	// Versions increase monotonically with each buffer mutation.
	Version() int

	// LineCount is the number of lines in the snapshot.
	LineCount() int

	// Line returns the text of the 0-based line index i, without its
	// trailing newline. i must be in [0, LineCount()).
	Line(i int) string

	// LanguageID is the editor's language identifier for the file
	// (e.g. "go", "typescript"). May be empty when the host did not
	// determine one.
	LanguageID() string

	// Path is the stable path or URI of the file.
	Path() string
}

// Position is a location in a document: 0-based line and 0-based
// column, where the column counts UTF-16 code units within the line.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Before reports whether position p orders strictly before other,
// comparing by line then column.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// Range is a half-open span [Start, End) within a document, with
// Start ≤ End lexicographically by (line, column).
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Normalized returns the range with Start and End swapped if they
// arrived out of order.
func (r Range) Normalized() Range {
	if r.End.Before(r.Start) {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// ClampLine clamps a 0-based line index into the snapshot's valid
// range. An empty snapshot clamps to line 0.
func ClampLine(snapshot Snapshot, line int) int {
	if line < 0 {
		return 0
	}
	if last := snapshot.LineCount() - 1; line > last && last >= 0 {
		return last
	}
	return line
}

// UTF16Length returns the length of line in UTF-16 code units, the
// unit [Position.Column] counts.
func UTF16Length(line string) int {
	length := 0
	for _, r := range line {
		length += len(utf16.Encode([]rune{r}))
	}
	return length
}

// SplitAtColumn splits line at the given UTF-16 column, clamped to
// [0, UTF16Length(line)]. A column landing inside a surrogate pair
// rounds down to the start of that rune so neither half ever holds a
// broken code point.
func SplitAtColumn(line string, column int) (before, after string) {
	if column <= 0 {
		return "", line
	}
	units := 0
	for byteIndex, r := range line {
		if units >= column {
			return line[:byteIndex], line[byteIndex:]
		}
		units += len(utf16.Encode([]rune{r}))
	}
	return line, ""
}
