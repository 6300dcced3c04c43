// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package compress wraps and unwraps whole documents in LZ4 or zstd
// frames.
//
// Bencode documents are often stored compressed. Both supported formats
// begin with a fixed magic number, and a bencode document can never begin
// with either magic (its first byte is a digit or one of 'i', 'l', 'd'),
// so [DecompressAuto] can tell compressed from plain input without a
// side channel.
package compress
