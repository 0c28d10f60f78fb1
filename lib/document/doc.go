// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

// Package document defines the read-only view of an editor text buffer
// that the prompt assembly layer consumes.
//
// The central abstraction is [Snapshot]: an immutable, versioned view
// of a file's text at one moment, addressable by 0-based line index.
// The host editor owns the buffer and produces snapshots; this module
// only reads them. Two snapshots of the same file are comparable by
// [Snapshot.Version] — a version bump is the sole signal that the
// document changed, even when the text happens to be identical.
//
// [Position] and [Range] use 0-based lines and UTF-16 code unit
// columns, matching the addressing convention of LSP and of the editor
// hosts this module serves. [Memory] is a self-contained Snapshot
// implementation for tests and the CLI.
package document
