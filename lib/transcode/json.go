// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/jsonc"

	"github.com/bureau-foundation/bencode/lib/bencode"
)

const (
	// binaryField is the single field of the object that carries a byte
	// string which is not valid UTF-8.
	binaryField = "$binary"

	// binaryKeyPrefix marks a dictionary key written as hex.
	binaryKeyPrefix = "$binary:"
)

// JSONOptions controls JSON output.
type JSONOptions struct {
	// Indent is repeated once per nesting level. Empty produces compact
	// single-line output.
	Indent string
}

// ToJSON returns the JSON form of v. Dictionary keys appear in the
// dictionary's order.
func ToJSON(v bencode.Value, options JSONOptions) ([]byte, error) {
	compact, err := appendJSON(nil, v)
	if err != nil {
		return nil, err
	}
	if options.Indent == "" {
		return compact, nil
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, compact, "", options.Indent); err != nil {
		return nil, fmt.Errorf("indenting JSON: %w", err)
	}
	return indented.Bytes(), nil
}

// WriteJSON writes the JSON form of v to w, followed by a newline.
func WriteJSON(w io.Writer, v bencode.Value, options JSONOptions) error {
	data, err := ToJSON(v, options)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func appendJSON(dst []byte, v bencode.Value) ([]byte, error) {
	switch value := v.(type) {
	case bencode.Integer:
		return append(dst, value.String()...), nil

	case bencode.ByteString:
		if utf8.ValidString(string(value)) {
			return appendJSONString(dst, string(value)), nil
		}
		dst = append(dst, '{')
		dst = appendJSONString(dst, binaryField)
		dst = append(dst, ':')
		dst = appendJSONString(dst, hex.EncodeToString(value.Bytes()))
		return append(dst, '}'), nil

	case bencode.List:
		dst = append(dst, '[')
		for index, element := range value {
			if index > 0 {
				dst = append(dst, ',')
			}
			var err error
			if dst, err = appendJSON(dst, element); err != nil {
				return nil, err
			}
		}
		return append(dst, ']'), nil

	case *bencode.Dictionary:
		dst = append(dst, '{')
		first := true
		for key, element := range value.All() {
			if !first {
				dst = append(dst, ',')
			}
			first = false
			dst = appendJSONString(dst, jsonKey(key))
			dst = append(dst, ':')
			var err error
			if dst, err = appendJSON(dst, element); err != nil {
				return nil, err
			}
		}
		return append(dst, '}'), nil

	default:
		return nil, fmt.Errorf("transcode: cannot convert %T to JSON", v)
	}
}

func jsonKey(key bencode.ByteString) string {
	text := string(key)
	if utf8.ValidString(text) && text != binaryField && !strings.HasPrefix(text, binaryKeyPrefix) {
		return text
	}
	return binaryKeyPrefix + hex.EncodeToString(key.Bytes())
}

// appendJSONString appends s as a JSON string literal. HTML characters are
// left unescaped: the output is for terminals and files, not web pages.
func appendJSONString(dst []byte, s string) []byte {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = encoder.Encode(s)
	return append(dst, bytes.TrimSuffix(buffer.Bytes(), []byte("\n"))...)
}

// ErrUnsupportedJSON is returned by [FromJSON] for JSON values that have no
// bencode equivalent: floats, booleans, and null.
var ErrUnsupportedJSON = errors.New("transcode: JSON value has no bencode equivalent")

// FromJSON parses a JSON document into a value tree. Comments and trailing
// commas are accepted. Object keys keep their document order; a key that
// appears twice keeps its last value at the position of its last
// occurrence, matching [bencode.Dictionary.Set].
func FromJSON(data []byte) (bencode.Value, error) {
	decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	decoder.UseNumber()

	value, err := readJSONValue(decoder, 0)
	if err != nil {
		return nil, err
	}
	if _, err := decoder.Token(); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("transcode: unexpected data after JSON value at offset %d", decoder.InputOffset())
		}
		return nil, fmt.Errorf("transcode: reading JSON: %w", err)
	}
	return value, nil
}

func readJSONValue(decoder *json.Decoder, depth int) (bencode.Value, error) {
	token, err := decoder.Token()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("transcode: reading JSON: %w", err)
	}

	switch token := token.(type) {
	case json.Number:
		number, err := token.Int64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %s is not a 64-bit integer", ErrUnsupportedJSON, token)
		}
		return bencode.Integer(number), nil

	case string:
		return bencode.ByteString(token), nil

	case json.Delim:
		// depth counts the enclosing containers, so this one would be
		// number depth+1.
		if (token == '[' || token == '{') && depth >= bencode.DefaultMaxDepth {
			return nil, fmt.Errorf("%w: JSON nests deeper than %d levels", ErrTooDeep, bencode.DefaultMaxDepth)
		}
		switch token {
		case '[':
			list := bencode.List{}
			for decoder.More() {
				element, err := readJSONValue(decoder, depth+1)
				if err != nil {
					return nil, err
				}
				list = append(list, element)
			}
			if _, err := decoder.Token(); err != nil {
				return nil, fmt.Errorf("transcode: reading JSON: %w", err)
			}
			return list, nil

		case '{':
			return readJSONObject(decoder, depth)
		}
		return nil, fmt.Errorf("transcode: unexpected JSON delimiter %q", rune(token))

	case bool:
		return nil, fmt.Errorf("%w: boolean %t", ErrUnsupportedJSON, token)

	case nil:
		return nil, fmt.Errorf("%w: null", ErrUnsupportedJSON)

	default:
		return nil, fmt.Errorf("transcode: unexpected JSON token %T", token)
	}
}

// readJSONObject reads the members of an object whose opening brace has
// been consumed. A lone "$binary" member holding a string is a hex-encoded
// byte string.
func readJSONObject(decoder *json.Decoder, depth int) (bencode.Value, error) {
	dictionary := bencode.NewDictionary(0)
	literalBinary := false
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("transcode: reading JSON: %w", err)
		}
		name, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("transcode: JSON object key is %T, want string", token)
		}
		if name == binaryField {
			literalBinary = true
		}
		key, err := parseJSONKey(name)
		if err != nil {
			return nil, err
		}
		value, err := readJSONValue(decoder, depth+1)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", name, err)
		}
		dictionary.Set(key, value)
	}
	if _, err := decoder.Token(); err != nil {
		return nil, fmt.Errorf("transcode: reading JSON: %w", err)
	}

	if literalBinary && dictionary.Len() == 1 {
		if encoded, ok := dictionary.Get(binaryField); ok {
			if text, ok := encoded.(bencode.ByteString); ok {
				raw, err := hex.DecodeString(string(text))
				if err != nil {
					return nil, fmt.Errorf("transcode: %s value is not hex: %w", binaryField, err)
				}
				return bencode.NewByteString(raw), nil
			}
		}
	}
	return dictionary, nil
}

func parseJSONKey(name string) (bencode.ByteString, error) {
	encoded, found := strings.CutPrefix(name, binaryKeyPrefix)
	if !found {
		return bencode.ByteString(name), nil
	}
	raw, err := hex.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("transcode: key %q is not valid hex after %q: %w", name, binaryKeyPrefix, err)
	}
	return bencode.NewByteString(raw), nil
}
