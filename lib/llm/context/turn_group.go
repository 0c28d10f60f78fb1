// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

package context

import "github.com/inlinekit/inlinekit/lib/llm"

// turnGroup is the unit of eviction: a user prompt and everything the
// model did in response to it, including any tool-call rounds. Evicting
// part of a group would strand tool results without their tool uses, so
// groups leave the history whole or not at all.
//
// A group is a subslice of the manager's message history. It runs from
// one prompt to the next:
//
//	user(text) ... assistant(tool_use) user(tool_result) ... assistant(text)
type turnGroup []llm.Message

// splitTurnGroups partitions messages into turn groups. A new group
// opens at every user-role message that carries text; user-role
// messages holding only tool results belong to the group of the prompt
// that triggered them. Messages before the first prompt, if any, are
// not grouped and will never be evicted candidates.
func splitTurnGroups(messages []llm.Message) []turnGroup {
	var groups []turnGroup
	openedAt := -1

	for i, message := range messages {
		if !isPrompt(message) {
			continue
		}
		if openedAt >= 0 {
			groups = append(groups, turnGroup(messages[openedAt:i]))
		}
		openedAt = i
	}
	if openedAt >= 0 {
		groups = append(groups, turnGroup(messages[openedAt:]))
	}
	return groups
}

// isPrompt reports whether message is a user prompt: user role with at
// least one text block. Tool-result messages are user-role too, but
// they continue a group rather than opening one.
func isPrompt(message llm.Message) bool {
	if message.Role != llm.RoleUser {
		return false
	}
	for _, block := range message.Content {
		if block.Type == llm.ContentText {
			return true
		}
	}
	return false
}
