// Copyright 2026 The Inlinekit Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides inlinekit's standard CBOR encoding
// configuration.
//
// Inlinekit uses two serialization formats with a clear boundary:
//
//   - JSON for external interfaces: tool-call argument payloads
//     (carried opaquely in the shape providers emit) and CLI --json
//     output.
//   - CBOR for internal persistence: recorded session transcripts
//     written by the CLI for later replay.
//
// This package provides the shared CBOR encoding and decoding modes so
// that every package encodes identically without duplicating
// configuration. The encoder uses Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Same logical data always produces identical
// bytes, so two recordings of the same session are byte-comparable.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For stream-oriented operations:
//
//	encoder := codec.NewEncoder(file)
//	decoder := codec.NewDecoder(file)
//
// # Struct Tag Rules
//
// The struct tag on a type documents its serialization format:
//
//   - `cbor` tag: this type is ONLY ever serialized as CBOR.
//   - `json` tag: this type may be serialized as BOTH JSON and CBOR.
//     fxamacker/cbor v2 reads `json` tags as fallback when `cbor`
//     tags are absent, so a single `json` tag controls field naming
//     and omitempty for both formats. The session transcript types in
//     lib/inline use `json` tags: they persist as CBOR and appear in
//     CLI --json output.
//
// Never use both `cbor` and `json` tags on the same field. The tag
// choice documents the contract — doubling up is noise that obscures
// whether a type participates in JSON serialization.
package codec
