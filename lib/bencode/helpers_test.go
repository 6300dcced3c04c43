// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bencode

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// dictionaryEntries lets cmp descend into dictionaries, whose fields are
// unexported, by comparing their ordered pairs.
var dictionaryEntries = cmp.Transformer("entries", func(d *Dictionary) []Entry {
	return d.Entries()
})

// diffValues returns a human-readable diff between two trees, or "" when
// they are equal.
func diffValues(want, got Value) string {
	return cmp.Diff(want, got, dictionaryEntries)
}

// dict builds a dictionary from alternating key/value arguments.
func dict(pairs ...any) *Dictionary {
	if len(pairs)%2 != 0 {
		panic("dict: odd number of arguments")
	}
	dictionary := NewDictionary(len(pairs) / 2)
	for i := 0; i < len(pairs); i += 2 {
		value, _ := pairs[i+1].(Value)
		dictionary.Set(ByteString(pairs[i].(string)), value)
	}
	return dictionary
}

func requireDecodeError(t *testing.T, err error, kind ErrorKind, offset int) *DecodeError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v at offset %d, got nil error", kind, offset)
	}
	decodeErr, ok := err.(*DecodeError)
	if !ok {
		t.Fatalf("error type = %T, want *DecodeError", err)
	}
	if decodeErr.Kind != kind {
		t.Errorf("Kind = %v, want %v", decodeErr.Kind, kind)
	}
	if decodeErr.Offset != offset {
		t.Errorf("Offset = %d, want %d", decodeErr.Offset, offset)
	}
	return decodeErr
}
