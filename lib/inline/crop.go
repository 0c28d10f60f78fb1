// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

package inline

import (
	"fmt"
	"strings"

	"github.com/inlinekit/inlinekit/lib/document"
)

// SnapshotSource resolves a file path to its current snapshot. The
// CLI backs this with files on disk; an editor host backs it with its
// open-buffer table.
type SnapshotSource interface {
	Snapshot(path string) (document.Snapshot, error)
}

// defaultCropContextLines is the number of lines shown on each side
// of the selection by [WindowedRenderer] when ContextLines is zero.
const defaultCropContextLines = 32

// WindowedRenderer is the default [CroppedContentRenderer]: it loads
// the file's current snapshot from a [SnapshotSource] and renders the
// lines around the selection as a fenced code block, with elision
// markers for the lines cut at either end.
type WindowedRenderer struct {
	// Source resolves paths to snapshots.
	Source SnapshotSource

	// ContextLines is the number of lines kept on each side of the
	// selection. Zero means defaultCropContextLines.
	ContextLines int
}

// Render windows the file at path around selection. Snapshot
// resolution failures propagate unmodified.
func (renderer *WindowedRenderer) Render(path string, selection document.Range) (string, error) {
	snapshot, err := renderer.Source.Snapshot(path)
	if err != nil {
		return "", err
	}

	total := snapshot.LineCount()
	if total == 0 {
		return fencedBlock(document.LanguageID(snapshot), ""), nil
	}

	contextLines := renderer.ContextLines
	if contextLines <= 0 {
		contextLines = defaultCropContextLines
	}

	selection = selection.Normalized()
	low := document.ClampLine(snapshot, selection.Start.Line) - contextLines
	if low < 0 {
		low = 0
	}
	high := document.ClampLine(snapshot, selection.End.Line) + contextLines
	if high > total-1 {
		high = total - 1
	}

	var builder strings.Builder
	if low > 0 {
		fmt.Fprintf(&builder, "… %d lines above elided …\n", low)
	}
	for i := low; i <= high; i++ {
		builder.WriteString(snapshot.Line(i))
		if i < high {
			builder.WriteByte('\n')
		}
	}
	if high < total-1 {
		fmt.Fprintf(&builder, "\n… %d lines below elided …", total-1-high)
	}

	return fencedBlock(document.LanguageID(snapshot), builder.String()), nil
}
