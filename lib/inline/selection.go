// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

package inline

import (
	"strings"

	"github.com/inlinekit/inlinekit/lib/document"
)

// SelectionWindow renders the selection expanded to whole-line
// granularity as a fenced code block tagged with the document's
// language. Every line from the selection's start line through its
// end line is included in full, regardless of the original columns —
// a selection ending at column 0 of a later line still includes that
// whole line. No cursor marker is inserted.
func SelectionWindow(snapshot document.Snapshot, selection document.Range) string {
	total := snapshot.LineCount()
	if total == 0 {
		return fencedBlock(document.LanguageID(snapshot), "")
	}

	selection = selection.Normalized()
	startLine := document.ClampLine(snapshot, selection.Start.Line)
	endLine := document.ClampLine(snapshot, selection.End.Line)

	var builder strings.Builder
	for i := startLine; i <= endLine; i++ {
		if i > startLine {
			builder.WriteByte('\n')
		}
		builder.WriteString(snapshot.Line(i))
	}

	return fencedBlock(document.LanguageID(snapshot), builder.String())
}
