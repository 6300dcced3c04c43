// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bencode

import (
	"fmt"
	"io"
	"strconv"
)

// Encode returns the bencode encoding of v. Dictionaries are written in
// their iteration order. Encode panics if v, or any element inside it, is a
// nil Value interface.
func Encode(v Value) []byte {
	return AppendEncode(make([]byte, 0, EncodedLen(v)), v)
}

// AppendEncode appends the encoding of v to dst and returns the extended
// slice.
func AppendEncode(dst []byte, v Value) []byte {
	switch value := v.(type) {
	case Integer:
		dst = append(dst, 'i')
		dst = strconv.AppendInt(dst, int64(value), 10)
		return append(dst, 'e')

	case ByteString:
		return appendByteString(dst, value)

	case List:
		dst = append(dst, 'l')
		for _, element := range value {
			dst = AppendEncode(dst, element)
		}
		return append(dst, 'e')

	case *Dictionary:
		dst = append(dst, 'd')
		for key, element := range value.All() {
			dst = appendByteString(dst, key)
			dst = AppendEncode(dst, element)
		}
		return append(dst, 'e')

	default:
		panic(fmt.Sprintf("bencode: cannot encode %T", v))
	}
}

func appendByteString(dst []byte, s ByteString) []byte {
	dst = strconv.AppendInt(dst, int64(len(s)), 10)
	dst = append(dst, ':')
	return append(dst, s...)
}

// EncodedLen returns the exact length of Encode(v).
func EncodedLen(v Value) int {
	switch value := v.(type) {
	case Integer:
		return 2 + decimalLen(int64(value))

	case ByteString:
		return byteStringLen(value)

	case List:
		total := 2
		for _, element := range value {
			total += EncodedLen(element)
		}
		return total

	case *Dictionary:
		total := 2
		for key, element := range value.All() {
			total += byteStringLen(key) + EncodedLen(element)
		}
		return total

	default:
		panic(fmt.Sprintf("bencode: cannot encode %T", v))
	}
}

func byteStringLen(s ByteString) int {
	return decimalLen(int64(len(s))) + 1 + len(s)
}

func decimalLen(number int64) int {
	length := 1
	if number < 0 {
		length++
		// -MinInt64 overflows; step once toward zero before negating.
		number /= 10
		if number == 0 {
			return length
		}
		length++
		number = -number
	}
	for number >= 10 {
		number /= 10
		length++
	}
	return length
}

// Encoder writes encoded values to an output stream.
type Encoder struct {
	writer io.Writer
	buffer []byte
}

// NewEncoder returns an encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{writer: w}
}

// Encode writes the encoding of v. The only possible error is the
// underlying writer's.
func (e *Encoder) Encode(v Value) error {
	e.buffer = AppendEncode(e.buffer[:0], v)
	_, err := e.writer.Write(e.buffer)
	return err
}
