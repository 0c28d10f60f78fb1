// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

package inline

import (
	"strings"

	"github.com/inlinekit/inlinekit/lib/document"
)

// CursorMarker is the literal token inserted into the rendered window
// at the exact cursor offset.
const CursorMarker = "$CURSOR$"

// windowRadius is the number of lines shown on each side of the
// cursor line before blank-line extension.
const windowRadius = 2

// CursorWindow renders a bounded window of the snapshot's lines
// centered on the cursor, as a fenced code block tagged with the
// document's language. The cursor's line is split at the cursor
// column and [CursorMarker] inserted between the halves.
//
// The baseline window spans windowRadius lines on each side of the
// clamped cursor line. When the line immediately beyond a bound is
// blank (empty or whitespace-only), the bound extends past the whole
// blank run, stopping at the nearest non-blank line or the file edge.
// Out-of-bounds cursor positions clamp; they never fault.
func CursorWindow(snapshot document.Snapshot, cursor document.Position) string {
	total := snapshot.LineCount()
	if total == 0 {
		return fencedBlock(document.LanguageID(snapshot), CursorMarker)
	}

	cursorLine := document.ClampLine(snapshot, cursor.Line)

	low := cursorLine - windowRadius
	if low < 0 {
		low = 0
	}
	high := cursorLine + windowRadius
	if high > total-1 {
		high = total - 1
	}

	for low > 0 && isBlankLine(snapshot.Line(low-1)) {
		low--
	}
	for high < total-1 && isBlankLine(snapshot.Line(high+1)) {
		high++
	}

	var builder strings.Builder
	for i := low; i <= high; i++ {
		if i > low {
			builder.WriteByte('\n')
		}
		line := snapshot.Line(i)
		if i == cursorLine {
			before, after := document.SplitAtColumn(line, cursor.Column)
			builder.WriteString(before)
			builder.WriteString(CursorMarker)
			builder.WriteString(after)
			continue
		}
		builder.WriteString(line)
	}

	return fencedBlock(document.LanguageID(snapshot), builder.String())
}

// isBlankLine reports whether a line is empty or whitespace-only.
func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

// fencedBlock wraps body in a fenced code block tagged with
// languageID. An empty languageID produces an untagged fence.
func fencedBlock(languageID, body string) string {
	return "```" + languageID + "\n" + body + "\n```"
}
