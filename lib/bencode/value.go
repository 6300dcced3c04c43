// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bencode

import "strconv"

// Value is a decoded bencode value. The implementations are [Integer],
// [ByteString], [List], and *[Dictionary]; no other type can satisfy the
// interface.
type Value interface {
	isValue()
}

// Integer is a signed 64-bit bencode integer.
type Integer int64

func (Integer) isValue() {}

// String returns the decimal form of the integer.
func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// List is an ordered sequence of values. Order is significant and is
// preserved through encoding.
type List []Value

func (List) isValue() {}

// Equal reports whether a and b are the same tree. Byte strings compare by
// raw bytes. Dictionaries compare key by key in iteration order, so two
// dictionaries holding the same pairs in a different order are not equal:
// they encode to different bytes.
func Equal(a, b Value) bool {
	switch left := a.(type) {
	case Integer:
		right, ok := b.(Integer)
		return ok && left == right

	case ByteString:
		right, ok := b.(ByteString)
		return ok && left == right

	case List:
		right, ok := b.(List)
		if !ok || len(left) != len(right) {
			return false
		}
		for index := range left {
			if !Equal(left[index], right[index]) {
				return false
			}
		}
		return true

	case *Dictionary:
		right, ok := b.(*Dictionary)
		if !ok || left.Len() != right.Len() {
			return false
		}
		rightEntries := right.Entries()
		index := 0
		for key, value := range left.All() {
			if key != rightEntries[index].Key || !Equal(value, rightEntries[index].Value) {
				return false
			}
			index++
		}
		return true

	default:
		return a == nil && b == nil
	}
}
