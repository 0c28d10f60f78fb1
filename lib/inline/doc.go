// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

// Package inline assembles the textual context for an inline,
// in-editor chat turn: what the model currently sees of the document,
// and a deterministic replay of prior tool-call rounds.
//
// The document view comes from [CursorWindow] (a bounded window of
// lines around the cursor with a literal $CURSOR$ marker) or
// [SelectionWindow] (the user's selection expanded to whole lines),
// both rendered as fenced code blocks. [IsLargeFile] decides between
// full-content and cropped rendering strategies upstream.
//
// History replay is handled by [AssembleTranscript], which turns
// completed tool-call rounds into an alternating sequence of
// assistant/tool [Segment] values, appending retry feedback when a
// prior edit attempt failed. Segments convert to llm.Message values
// via [MessagesFromSegments] for the token-budgeted pruning engine in
// lib/llm/context and for whatever transport the host owns.
//
// Assembly is a pure, synchronous function of its inputs: no internal
// state, no locking, and the only I/O is whatever a caller-supplied
// [SnapshotSource] performs. Absent output is a typed nil, distinct
// from a rendered empty string.
package inline
