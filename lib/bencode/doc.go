// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bencode implements the bencode serialization format used for
// peer-to-peer file-sharing metadata: integers, byte strings, lists, and
// dictionaries.
//
// Decoding turns a byte slice into a [Value] tree; encoding turns the tree
// back into bytes. The pair is lossless in both directions:
//
//	value, err := bencode.Decode(data)
//	encoded := bencode.Encode(value) // byte-identical to data[:consumed]
//
// # Value model
//
// [Value] is a closed union with four implementations: [Integer],
// [ByteString], [List], and *[Dictionary]. Byte strings are raw bytes and are
// never interpreted as text. Dictionaries keep their keys in the order they
// were inserted (for decoded values, the order they appeared on the wire)
// and the encoder writes them back in that order. Keys are not re-sorted:
// re-encoding a decoded document reproduces it byte for byte.
//
// When a dictionary repeats a key on the wire the later pair wins and takes
// the later position.
//
// # Errors
//
// Decoding fails fast with a *[DecodeError] carrying an [ErrorKind] and the
// byte offset where the decoder stopped. Kinds are matchable with
// [errors.Is]:
//
//	if errors.Is(err, bencode.EndOfFile) { ... }
//
// Encoding never fails.
//
// # Trailing data
//
// [Decode] stops after one complete value and does not look at the rest of
// the buffer. Callers that must reject trailing bytes use [DecodePrefix] and
// compare the consumed count with len(data).
//
// # Nesting
//
// Lists and dictionaries are parsed recursively. [DecodeOptions.MaxDepth]
// bounds the nesting depth (default [DefaultMaxDepth]) so adversarial input
// cannot exhaust the stack.
//
// All functions are safe for concurrent use on independent inputs.
package bencode
