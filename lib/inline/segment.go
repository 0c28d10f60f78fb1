// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

package inline

import (
	"fmt"

	"github.com/inlinekit/inlinekit/lib/document"
	"github.com/inlinekit/inlinekit/lib/llm"
)

// SegmentKind discriminates the variants of [Segment].
type SegmentKind string

const (
	// SegmentAssistant carries the tool calls one round's assistant
	// turn proposed, in their original order.
	SegmentAssistant SegmentKind = "assistant"

	// SegmentTool carries the results of one round's tool calls, in
	// call order, paired with their calls by tool-use id.
	SegmentTool SegmentKind = "tool"

	// SegmentFeedback carries retry feedback after a failed edit
	// attempt, with an optional file-content attachment.
	SegmentFeedback SegmentKind = "feedback"
)

// Segment is one element of an assembled transcript. Exactly one
// field group is meaningful, selected by Kind: Calls for assistant
// segments, Results for tool segments, Text and Content for feedback
// segments. Modeling the transcript as a tagged-variant sequence
// keeps the ordering invariants mechanically checkable.
type Segment struct {
	Kind SegmentKind

	// Calls is the round's tool calls (SegmentAssistant).
	Calls []ToolCall

	// Results is the round's tool results (SegmentTool).
	Results []llm.ToolResult

	// Text is the feedback statement (SegmentFeedback).
	Text string

	// Content is the optional file-content attachment
	// (SegmentFeedback). Nil when the document is unchanged.
	Content *FeedbackContent
}

// FeedbackContentKind discriminates the variants of [FeedbackContent].
type FeedbackContentKind string

const (
	// FeedbackFullContent carries the file's complete current text.
	FeedbackFullContent FeedbackContentKind = "full"

	// FeedbackCroppedContent references the file by path; a
	// [CroppedContentRenderer] produces the windowed text.
	FeedbackCroppedContent FeedbackContentKind = "cropped"
)

// FeedbackContent is the file-content attachment of a feedback
// segment: either the full current text of a small file, or a
// path-keyed reference that a cropping collaborator renders for a
// large one.
type FeedbackContent struct {
	Kind FeedbackContentKind

	// Text is the raw current file content (FeedbackFullContent).
	Text string

	// LanguageID tags the rendered code block (FeedbackFullContent).
	LanguageID string

	// Path keys the cropping renderer (FeedbackCroppedContent).
	Path string

	// Selection is handed to the cropping renderer so it can window
	// around the user's focus (FeedbackCroppedContent).
	Selection document.Range
}

// MessagesFromSegments converts an assembled transcript into the
// llm.Message shape consumed by the pruning engine and the host's
// transport: assistant segments become assistant-role messages of
// tool-use blocks, tool segments user-role messages of tool-result
// blocks, and a feedback segment a user-role message of text plus the
// rendered content attachment.
//
// cropper is required only when a segment carries cropped content; it
// may be nil otherwise. A cropper failure propagates unmodified.
func MessagesFromSegments(segments []Segment, cropper CroppedContentRenderer) ([]llm.Message, error) {
	if len(segments) == 0 {
		return nil, nil
	}

	messages := make([]llm.Message, 0, len(segments))
	for _, segment := range segments {
		switch segment.Kind {
		case SegmentAssistant:
			content := make([]llm.ContentBlock, 0, len(segment.Calls))
			for _, call := range segment.Calls {
				content = append(content, llm.ToolUseBlock(call.ID, call.Name, call.Arguments))
			}
			messages = append(messages, llm.Message{Role: llm.RoleAssistant, Content: content})

		case SegmentTool:
			messages = append(messages, llm.ToolResultMessage(segment.Results...))

		case SegmentFeedback:
			content := []llm.ContentBlock{llm.TextBlock(segment.Text)}
			if segment.Content != nil {
				rendered, err := renderFeedbackContent(segment.Content, cropper)
				if err != nil {
					return nil, err
				}
				content = append(content, llm.TextBlock(rendered))
			}
			messages = append(messages, llm.Message{Role: llm.RoleUser, Content: content})

		default:
			return nil, fmt.Errorf("inline: unknown segment kind %q", segment.Kind)
		}
	}
	return messages, nil
}

func renderFeedbackContent(content *FeedbackContent, cropper CroppedContentRenderer) (string, error) {
	switch content.Kind {
	case FeedbackFullContent:
		return fencedBlock(content.LanguageID, content.Text), nil
	case FeedbackCroppedContent:
		if cropper == nil {
			return "", fmt.Errorf("inline: cropped content for %s but no cropping renderer configured", content.Path)
		}
		return cropper.Render(content.Path, content.Selection)
	default:
		return "", fmt.Errorf("inline: unknown feedback content kind %q", content.Kind)
	}
}
