// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

// Package llm defines the provider-agnostic message types shared by the
// inline-chat prompt assembly layer.
//
// A conversation is a slice of [Message] values, each holding one or
// more [ContentBlock] values: plain text, a tool invocation proposed by
// the assistant, or the result of executing one. The assembly layer in
// lib/inline produces messages in this shape; the host editor's
// transport translates them to whatever wire format its provider needs.
// This package never talks to a provider itself.
package llm
