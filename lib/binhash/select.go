// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binhash

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bureau-foundation/bencode/lib/bencode"
)

// Select returns the value at path inside v. The path is a list of
// segments separated by '/': a segment names a dictionary key, or, when
// the current value is a list, a zero-based decimal index. An empty path
// selects v itself.
func Select(v bencode.Value, path string) (bencode.Value, error) {
	if path == "" {
		return v, nil
	}
	current := v
	walked := ""
	for segment := range strings.SplitSeq(path, "/") {
		switch container := current.(type) {
		case *bencode.Dictionary:
			next, ok := container.Get(bencode.ByteString(segment))
			if !ok {
				return nil, fmt.Errorf("path %q: key %q not found at %q", path, segment, "/"+walked)
			}
			current = next

		case bencode.List:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 {
				return nil, fmt.Errorf("path %q: segment %q at %q is not a list index", path, segment, "/"+walked)
			}
			if index >= len(container) {
				return nil, fmt.Errorf("path %q: index %d out of range at %q (length %d)", path, index, "/"+walked, len(container))
			}
			current = container[index]

		default:
			return nil, fmt.Errorf("path %q: cannot descend into %s at %q", path, kindName(current), "/"+walked)
		}
		walked = strings.TrimPrefix(walked+"/"+segment, "/")
	}
	return current, nil
}

func kindName(v bencode.Value) string {
	switch v.(type) {
	case bencode.Integer:
		return "an integer"
	case bencode.ByteString:
		return "a byte string"
	default:
		return fmt.Sprintf("%T", v)
	}
}
