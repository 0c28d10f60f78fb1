// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

package inline

import (
	"strings"

	"github.com/inlinekit/inlinekit/lib/document"
)

// CroppedContentRenderer windows a large file around a selection. The
// host editor usually supplies its own implementation; it alone
// decides how to crop — the feedback builder only hands it the path
// and selection. [WindowedRenderer] is the in-repo default.
type CroppedContentRenderer interface {
	Render(path string, selection document.Range) (string, error)
}

// Feedback statements. The unchanged variant deliberately attaches no
// content: echoing text the model already produced an edit against
// adds no information.
const (
	feedbackNoChanges = "The previous edit attempt failed and no changes were made to the file."
	feedbackChanged   = "The previous edit attempt failed and the file has changed since. The current content is:"
)

// BuildRetryFeedback decides whether the request needs a retry
// feedback segment and builds it. The state space is exactly four
// outcomes:
//
//   - no failed edits → nil (absent)
//   - failed, version unchanged → statement only, no content block
//   - failed, version changed, small file → statement + full content
//   - failed, version changed, large file → statement + cropped
//     content keyed by path and selection
func BuildRetryFeedback(request RenderRequest) *Segment {
	if !request.FailedEdits {
		return nil
	}

	if request.Snapshot.Version() == request.RequestVersion {
		return &Segment{Kind: SegmentFeedback, Text: feedbackNoChanges}
	}

	if !request.IsLargeFile {
		return &Segment{
			Kind: SegmentFeedback,
			Text: feedbackChanged,
			Content: &FeedbackContent{
				Kind:       FeedbackFullContent,
				Text:       snapshotText(request.Snapshot),
				LanguageID: document.LanguageID(request.Snapshot),
			},
		}
	}

	return &Segment{
		Kind: SegmentFeedback,
		Text: feedbackChanged,
		Content: &FeedbackContent{
			Kind:      FeedbackCroppedContent,
			Path:      request.Path,
			Selection: request.Selection,
		},
	}
}

// snapshotText materializes a snapshot's full content, newline-joined.
func snapshotText(snapshot document.Snapshot) string {
	var builder strings.Builder
	for i := 0; i < snapshot.LineCount(); i++ {
		if i > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString(snapshot.Line(i))
	}
	return builder.String()
}
