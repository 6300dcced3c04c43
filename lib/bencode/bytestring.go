// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bencode

import (
	"strings"
	"unicode/utf8"
)

// ByteString is an immutable sequence of raw bytes. It is used for every
// string value and every dictionary key. The underlying Go string is only a
// container: the bytes are never validated or normalized as text, and
// equality and hashing are over the raw bytes.
type ByteString string

// NewByteString returns a ByteString holding a copy of b.
func NewByteString(b []byte) ByteString {
	return ByteString(b)
}

// Bytes returns a copy of the raw bytes.
func (s ByteString) Bytes() []byte {
	return []byte(s)
}

// Len returns the number of bytes.
func (s ByteString) Len() int {
	return len(s)
}

// Compare orders byte strings by their raw bytes.
func (s ByteString) Compare(other ByteString) int {
	return strings.Compare(string(s), string(other))
}

// String renders the bytes as text for diagnostics. Each byte that is not
// part of a valid UTF-8 sequence is replaced with U+FFFD.
func (s ByteString) String() string {
	if utf8.ValidString(string(s)) {
		return string(s)
	}
	var builder strings.Builder
	builder.Grow(len(s))
	for _, r := range string(s) {
		// Ranging over a string yields utf8.RuneError once per invalid byte.
		builder.WriteRune(r)
	}
	return builder.String()
}

func (ByteString) isValue() {}
