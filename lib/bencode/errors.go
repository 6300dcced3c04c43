// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bencode

import (
	"fmt"
	"strconv"
)

// ErrorKind classifies a decoding failure. The set is closed. ErrorKind
// implements error so that a kind can be used directly as an [errors.Is]
// target:
//
//	if errors.Is(err, bencode.NegativeZero) { ... }
type ErrorKind int

const (
	// MissingIdentifier: the next byte was not the grammar literal the
	// decoder required ('i', 'l', 'd', 'e', or ':').
	MissingIdentifier ErrorKind = iota + 1

	// KeyWithoutValue: a dictionary key decoded but the value after it did
	// not.
	KeyWithoutValue

	// StringWithoutLength: a byte string's length prefix was not a number.
	StringWithoutLength

	// NegativeStringLen: a byte string's length prefix was negative.
	NegativeStringLen

	// NotANumber: an integer had no digits where digits were required.
	NotANumber

	// NegativeZero: an integer was written as -0.
	NegativeZero

	// EndOfFile: the input ended in the middle of a value.
	EndOfFile

	// NestingTooDeep: lists and dictionaries were nested deeper than
	// [DecodeOptions.MaxDepth].
	NestingTooDeep
)

// Error returns a short description of the kind without position details.
func (k ErrorKind) Error() string {
	switch k {
	case MissingIdentifier:
		return "bencode: missing identifier"
	case KeyWithoutValue:
		return "bencode: dictionary key without value"
	case StringWithoutLength:
		return "bencode: expected string length"
	case NegativeStringLen:
		return "bencode: negative string length is not allowed"
	case NotANumber:
		return "bencode: expected a number"
	case NegativeZero:
		return "bencode: negative zero is not allowed, use 0 instead"
	case EndOfFile:
		return "bencode: unexpected end of input"
	case NestingTooDeep:
		return "bencode: nesting too deep"
	default:
		return "bencode: unknown error kind " + strconv.Itoa(int(k))
	}
}

// DecodeError describes where and why decoding stopped.
type DecodeError struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// Offset is the decoder's cursor when it gave up: the index of the
	// offending byte, or len(input) when the input ran out.
	Offset int

	// Expected is the literal the decoder wanted. Set for
	// MissingIdentifier only.
	Expected byte

	// Key is the dictionary key whose value failed. Set for
	// KeyWithoutValue only.
	Key ByteString

	// Cause is the failure of the value production. Set for
	// KeyWithoutValue only.
	Cause error
}

func (e *DecodeError) Error() string {
	var message string
	switch e.Kind {
	case MissingIdentifier:
		message = fmt.Sprintf("bencode: expected identifier %q", rune(e.Expected))
	case KeyWithoutValue:
		message = fmt.Sprintf("bencode: dictionary key %q without value", e.Key.String())
	default:
		message = e.Kind.Error()
	}
	message += " at offset " + strconv.Itoa(e.Offset)
	if e.Cause != nil {
		message += ": " + e.Cause.Error()
	}
	return message
}

// Unwrap exposes the kind and, for KeyWithoutValue, the underlying failure,
// so [errors.Is] matches either.
func (e *DecodeError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}
