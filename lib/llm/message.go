// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

package llm

import "encoding/json"

// Role identifies the author of a message.
type Role string

const (
	// RoleUser marks messages from the user, including tool results
	// (providers model tool results as user-role content).
	RoleUser Role = "user"

	// RoleAssistant marks messages from the model, including tool
	// invocations it proposes.
	RoleAssistant Role = "assistant"
)

// ContentType identifies the kind of a content block.
type ContentType string

const (
	// ContentText is a plain text block.
	ContentText ContentType = "text"

	// ContentToolUse is a tool invocation proposed by the assistant.
	ContentToolUse ContentType = "tool_use"

	// ContentToolResult is the result of executing a tool invocation.
	ContentToolResult ContentType = "tool_result"
)

// ToolUse is a tool invocation proposed by the assistant. The ID pairs
// the invocation with its eventual result; it is unique within one
// assistant turn but not guaranteed unique across a session.
type ToolUse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Input json.RawMessage `json:"input"`
}

// ToolResult is the outcome of executing a [ToolUse], paired to its
// invocation via ToolUseID.
type ToolResult struct {
	ToolUseID string `json:"tool_use_id"`
	Content   string `json:"content"`
	IsError   bool   `json:"is_error,omitempty"`
}

// ContentBlock is one unit of message content. Exactly one of Text,
// ToolUse, or ToolResult is meaningful, selected by Type.
type ContentBlock struct {
	Type       ContentType `json:"type"`
	Text       string      `json:"text,omitempty"`
	ToolUse    *ToolUse    `json:"tool_use,omitempty"`
	ToolResult *ToolResult `json:"tool_result,omitempty"`
}

// Message is one conversation entry: a role plus ordered content blocks.
type Message struct {
	Role    Role           `json:"role"`
	Content []ContentBlock `json:"content"`
}

// Usage reports token consumption from a provider response. The prompt
// pruning engine feeds InputTokens back into its estimator calibration.
type Usage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
}

// TextBlock returns a text content block.
func TextBlock(text string) ContentBlock {
	return ContentBlock{Type: ContentText, Text: text}
}

// ToolUseBlock returns a tool-use content block.
func ToolUseBlock(id, name string, input json.RawMessage) ContentBlock {
	return ContentBlock{
		Type:    ContentToolUse,
		ToolUse: &ToolUse{ID: id, Name: name, Input: input},
	}
}

// ToolResultBlock returns a tool-result content block.
func ToolResultBlock(result ToolResult) ContentBlock {
	resultCopy := result
	return ContentBlock{Type: ContentToolResult, ToolResult: &resultCopy}
}

// UserMessage returns a user-role message with a single text block.
func UserMessage(text string) Message {
	return Message{Role: RoleUser, Content: []ContentBlock{TextBlock(text)}}
}

// AssistantMessage returns an assistant-role message with a single
// text block.
func AssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Content: []ContentBlock{TextBlock(text)}}
}

// ToolResultMessage returns a user-role message carrying the given
// tool results in order. Providers require tool results to arrive as
// the user-role reply to the assistant turn that proposed the calls.
func ToolResultMessage(results ...ToolResult) Message {
	content := make([]ContentBlock, 0, len(results))
	for _, result := range results {
		content = append(content, ToolResultBlock(result))
	}
	return Message{Role: RoleUser, Content: content}
}
