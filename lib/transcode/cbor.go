// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

import (
	"errors"
	"fmt"
	"slices"

	"github.com/fxamacker/cbor/v2"

	"github.com/bureau-foundation/bencode/lib/bencode"
)

// encMode writes Core Deterministic Encoding (RFC 8949 §4.2): sorted map
// keys, smallest integer encoding, no indefinite-length items.
var encMode cbor.EncMode

// decMode reads CBOR into the generic Go shapes that fromNative walks.
// Integers decode as int64 and fail when they do not fit, so the bencode
// range is enforced by the CBOR decoder itself.
var decMode cbor.DecMode

// diagMode renders byte strings that hold UTF-8 text as text, which is the
// common case for bencode keys and values. Values nested deeper than the
// bencode default get a mode built for their depth.
var diagMode cbor.DiagMode

// maxCBORNesting is the deepest nesting the CBOR library can be configured
// to accept.
const maxCBORNesting = 65535

// ErrTooDeep is returned when a value nests deeper than a conversion
// allows: [bencode.DefaultMaxDepth] for values read from JSON or CBOR, and
// the CBOR library's own ceiling for [Diagnose].
var ErrTooDeep = errors.New("transcode: nesting too deep")

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("transcode: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		IntDec:           cbor.IntDecConvertSignedOrFail,
		MapKeyByteString: cbor.MapKeyByteStringAllowed,
		// Whatever is accepted here must decode again as bencode.
		MaxNestedLevels: bencode.DefaultMaxDepth,
	}.DecMode()
	if err != nil {
		panic("transcode: CBOR decoder initialization failed: " + err.Error())
	}

	diagMode, err = newDiagMode(bencode.DefaultMaxDepth)
	if err != nil {
		panic("transcode: CBOR diagnostic mode initialization failed: " + err.Error())
	}
}

func newDiagMode(maxNesting int) (cbor.DiagMode, error) {
	return cbor.DiagOptions{
		ByteStringText:  true,
		MaxNestedLevels: maxNesting,
	}.DiagMode()
}

// ToCBOR returns the CBOR encoding of v. Byte strings become CBOR byte
// strings and dictionaries become maps keyed by byte strings.
func ToCBOR(v bencode.Value) ([]byte, error) {
	native, err := toNative(v)
	if err != nil {
		return nil, err
	}
	return encMode.Marshal(native)
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) of v.
// Any depth up to the CBOR library's ceiling is rendered; beyond it the
// error wraps [ErrTooDeep].
func Diagnose(v bencode.Value) (string, error) {
	mode := diagMode
	if depth := nestingDepth(v); depth > bencode.DefaultMaxDepth {
		if depth > maxCBORNesting {
			return "", fmt.Errorf("%w: %d levels, CBOR diagnostics stop at %d", ErrTooDeep, depth, maxCBORNesting)
		}
		var err error
		if mode, err = newDiagMode(depth); err != nil {
			return "", fmt.Errorf("transcode: CBOR diagnostic mode for depth %d: %w", depth, err)
		}
	}

	data, err := ToCBOR(v)
	if err != nil {
		return "", err
	}
	return mode.Diagnose(data)
}

// nestingDepth counts the lists and dictionaries on the deepest path
// through v. A scalar has depth 0.
func nestingDepth(v bencode.Value) int {
	deepest := 0
	switch value := v.(type) {
	case bencode.List:
		for _, element := range value {
			deepest = max(deepest, nestingDepth(element))
		}
	case *bencode.Dictionary:
		for _, element := range value.All() {
			deepest = max(deepest, nestingDepth(element))
		}
	default:
		return 0
	}
	return deepest + 1
}

func toNative(v bencode.Value) (any, error) {
	switch value := v.(type) {
	case bencode.Integer:
		return int64(value), nil

	case bencode.ByteString:
		return value.Bytes(), nil

	case bencode.List:
		elements := make([]any, len(value))
		for index, element := range value {
			native, err := toNative(element)
			if err != nil {
				return nil, err
			}
			elements[index] = native
		}
		return elements, nil

	case *bencode.Dictionary:
		entries := make(map[cbor.ByteString]any, value.Len())
		for key, element := range value.All() {
			native, err := toNative(element)
			if err != nil {
				return nil, err
			}
			entries[cbor.ByteString(key)] = native
		}
		return entries, nil

	default:
		return nil, fmt.Errorf("transcode: cannot convert %T to CBOR", v)
	}
}

// FromCBOR decodes one CBOR data item into a value tree. Integers, byte
// strings, text strings, arrays, and maps with string keys are accepted.
// Map entries are ordered by raw key bytes, the canonical bencode order.
func FromCBOR(data []byte) (bencode.Value, error) {
	var native any
	if err := decMode.Unmarshal(data, &native); err != nil {
		var nesting *cbor.MaxNestedLevelError
		if errors.As(err, &nesting) {
			return nil, fmt.Errorf("%w: decoding CBOR: %w", ErrTooDeep, err)
		}
		return nil, fmt.Errorf("transcode: decoding CBOR: %w", err)
	}
	return fromNative(native)
}

func fromNative(native any) (bencode.Value, error) {
	switch value := native.(type) {
	case int64:
		return bencode.Integer(value), nil

	case []byte:
		return bencode.NewByteString(value), nil

	case string:
		return bencode.ByteString(value), nil

	case []any:
		list := make(bencode.List, len(value))
		for index, element := range value {
			converted, err := fromNative(element)
			if err != nil {
				return nil, fmt.Errorf("array element %d: %w", index, err)
			}
			list[index] = converted
		}
		return list, nil

	case map[any]any:
		type pair struct {
			key   bencode.ByteString
			value any
		}
		pairs := make([]pair, 0, len(value))
		// A text key and a byte-string key with the same bytes are the
		// same bencode key.
		seen := make(map[bencode.ByteString]struct{}, len(value))
		for rawKey, element := range value {
			var key bencode.ByteString
			switch typed := rawKey.(type) {
			case string:
				key = bencode.ByteString(typed)
			case cbor.ByteString:
				key = bencode.ByteString(typed)
			default:
				return nil, fmt.Errorf("transcode: CBOR map key of type %T has no bencode equivalent", rawKey)
			}
			if _, duplicate := seen[key]; duplicate {
				return nil, fmt.Errorf("transcode: CBOR map has key %q as both a text and a byte string", key.String())
			}
			seen[key] = struct{}{}
			pairs = append(pairs, pair{key: key, value: element})
		}
		slices.SortFunc(pairs, func(a, b pair) int { return a.key.Compare(b.key) })

		dictionary := bencode.NewDictionary(len(pairs))
		for _, entry := range pairs {
			converted, err := fromNative(entry.value)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", entry.key.String(), err)
			}
			dictionary.Set(entry.key, converted)
		}
		return dictionary, nil

	default:
		return nil, fmt.Errorf("transcode: CBOR value of type %T has no bencode equivalent", native)
	}
}
