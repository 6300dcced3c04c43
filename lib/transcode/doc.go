// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package transcode converts bencode value trees to and from JSON and
// CBOR.
//
// Bencode byte strings are raw bytes while JSON strings are text, so the
// JSON mapping needs an escape for binary data:
//
//   - a byte string that is valid UTF-8 becomes a JSON string;
//   - any other byte string becomes {"$binary": "<hex>"};
//   - a dictionary key that is not valid UTF-8 becomes "$binary:<hex>".
//
// [FromJSON] reverses the convention, accepts JSON with comments and
// trailing commas, and keeps object keys in document order so that a
// hand-written document encodes to the bytes its author laid out.
//
// CBOR has a native byte string type, so [ToCBOR] and [FromCBOR] map byte
// strings directly. CBOR output uses Core Deterministic Encoding (RFC 8949
// §4.2): map keys are sorted and dictionary order is not carried.
package transcode
