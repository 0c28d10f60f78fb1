// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

package inline

import (
	"encoding/json"

	"github.com/inlinekit/inlinekit/lib/document"
	"github.com/inlinekit/inlinekit/lib/llm"
)

// ToolCall is one tool invocation the assistant proposed. Arguments
// is the serialized argument payload, carried opaquely. The ID is
// unique within its round sequence, not across a session.
type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// RoundPair is one (call, result) pair within a completed round.
type RoundPair struct {
	Call   ToolCall       `json:"call"`
	Result llm.ToolResult `json:"result"`
}

// CompletedRound is one assistant turn's batch of tool calls together
// with their resolved results, in call order. Rounds are atomic for
// ordering: no pair of a later round may precede any pair of an
// earlier one in the assembled transcript.
type CompletedRound struct {
	Pairs []RoundPair `json:"pairs"`
}

// RenderRequest carries everything the transcript assembler needs for
// one render call. The caller constructs it fresh per render; it is
// immutable for the duration of rendering.
type RenderRequest struct {
	// Rounds is the prior completed tool-call rounds in chronological
	// order.
	Rounds []CompletedRound

	// FailedEdits is true when a prior edit attempt in this session
	// failed to apply.
	FailedEdits bool

	// Snapshot is the document as of render time.
	Snapshot document.Snapshot

	// RequestVersion is the document version recorded when the
	// original request was made. Comparing it against
	// Snapshot.Version() is the sole signal of change — content is
	// never compared, and a version bump with identical text counts
	// as changed.
	RequestVersion int

	// IsLargeFile selects cropped over full content when retry
	// feedback must attach the current file.
	IsLargeFile bool

	// Selection is the current selection, handed to the cropping
	// renderer for large files.
	Selection document.Range

	// Path is the file's stable path, keying the cropping renderer.
	Path string
}

// AssembleTranscript replays the request's completed rounds as an
// alternating sequence of assistant/tool segments in strict round
// order, appending the retry-feedback segment when [BuildRetryFeedback]
// produces one. Returns nil when there are no rounds — an empty
// history renders as nothing, not as empty wrapper segments.
//
// Each round contributes exactly two consecutive segments: all of its
// calls as a batch, then all of its results in call order. A round
// with zero pairs still emits its (empty) pair of segments so the
// ordering of subsequent rounds is preserved.
func AssembleTranscript(request RenderRequest) []Segment {
	if len(request.Rounds) == 0 {
		return nil
	}

	segments := make([]Segment, 0, 2*len(request.Rounds)+1)
	for _, round := range request.Rounds {
		calls := make([]ToolCall, 0, len(round.Pairs))
		results := make([]llm.ToolResult, 0, len(round.Pairs))
		for _, pair := range round.Pairs {
			calls = append(calls, pair.Call)
			results = append(results, pair.Result)
		}
		segments = append(segments,
			Segment{Kind: SegmentAssistant, Calls: calls},
			Segment{Kind: SegmentTool, Results: results},
		)
	}

	if feedback := BuildRetryFeedback(request); feedback != nil {
		segments = append(segments, *feedback)
	}

	return segments
}
