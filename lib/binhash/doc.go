// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package binhash computes content digests of bencode values.
//
// A digest is taken over the canonical encoding of a value, the bytes
// [bencode.Encode] produces, so two documents that decode to the same tree
// hash identically. The common case is hashing one sub-value of a larger
// document, for example the dictionary under a particular key, which
// [Select] locates by path.
//
// The API surface:
//
//   - [Algorithm] names a digest function (sha1, sha256, blake3), parsed
//     from user input by [ParseAlgorithm]
//   - [Sum] and [SumValue] compute a digest of raw bytes or of a value's
//     encoding
//   - [FormatDigest] and [ParseDigest] convert between digests and their
//     lowercase hex form, validating length against the algorithm
//   - [Select] walks a slash-separated path through dictionaries and lists
package binhash
