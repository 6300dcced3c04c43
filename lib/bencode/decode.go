// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bencode

// DefaultMaxDepth is the nesting limit used by [Decode] and [DecodePrefix],
// and by [DecodeOptions] with a zero MaxDepth. Real-world metadata nests a
// handful of levels deep.
const DefaultMaxDepth = 512

// DecodeOptions configures a decoder. The zero value is ready to use.
type DecodeOptions struct {
	// MaxDepth is the deepest allowed nesting of lists and dictionaries. A
	// top-level list or dictionary is depth 1. Zero selects
	// DefaultMaxDepth; a negative value disables the limit.
	MaxDepth int
}

// Decode parses one value from the start of data. Bytes after the value are
// ignored. On failure the error is a *[DecodeError] and the returned Value
// is nil.
func Decode(data []byte) (Value, error) {
	return DecodeOptions{}.Decode(data)
}

// DecodePrefix is like [Decode] but also returns the decoder's cursor: the
// length of the value's encoding on success, or the offset where decoding
// stopped on failure.
func DecodePrefix(data []byte) (Value, int, error) {
	return DecodeOptions{}.DecodePrefix(data)
}

// Decode parses one value from the start of data using these options.
func (o DecodeOptions) Decode(data []byte) (Value, error) {
	value, _, err := o.DecodePrefix(data)
	return value, err
}

// DecodePrefix parses one value from the start of data using these options
// and returns the number of bytes consumed.
func (o DecodeOptions) DecodePrefix(data []byte) (Value, int, error) {
	d := newDecoder(data, o.maxDepth())
	value, err := d.parseValue()
	if err != nil {
		return nil, d.cursor, err
	}
	return value, d.cursor, nil
}

func (o DecodeOptions) maxDepth() int {
	if o.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// decoder is the per-call parsing state. data is borrowed from the caller
// and never written; byte strings are copied out of it.
type decoder struct {
	data     []byte
	cursor   int
	depth    int
	maxDepth int
}

func newDecoder(data []byte, maxDepth int) *decoder {
	return &decoder{data: data, maxDepth: maxDepth}
}

// parseValue dispatches on the next byte. Anything that does not start an
// integer, list, or dictionary is parsed as a byte string, so an unknown
// leading byte surfaces as a length error.
func (d *decoder) parseValue() (Value, error) {
	next, ok := d.peek()
	if !ok {
		return nil, d.fail(EndOfFile)
	}

	switch next {
	case 'i':
		integer, err := d.parseInteger()
		if err != nil {
			return nil, err
		}
		return integer, nil

	case 'l':
		list, err := d.parseList()
		if err != nil {
			return nil, err
		}
		return list, nil

	case 'd':
		dictionary, err := d.parseDictionary()
		if err != nil {
			return nil, err
		}
		return dictionary, nil

	default:
		str, err := d.parseString()
		if err != nil {
			return nil, err
		}
		return str, nil
	}
}

func (d *decoder) parseInteger() (Integer, error) {
	if err := d.expect('i'); err != nil {
		return 0, err
	}
	number, err := d.readNumber()
	if err != nil {
		return 0, err
	}
	if err := d.expect('e'); err != nil {
		return 0, err
	}
	return Integer(number), nil
}

func (d *decoder) parseString() (ByteString, error) {
	length, err := d.readNumber()
	if err != nil {
		return "", d.fail(StringWithoutLength)
	}
	if length < 0 {
		return "", d.fail(NegativeStringLen)
	}
	if err := d.expect(':'); err != nil {
		return "", err
	}

	if remaining := int64(len(d.data) - d.cursor); length > remaining {
		d.cursor = len(d.data)
		return "", d.fail(EndOfFile)
	}
	start := d.cursor
	d.cursor += int(length)
	return ByteString(d.data[start:d.cursor]), nil
}

func (d *decoder) parseList() (List, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()

	if err := d.expect('l'); err != nil {
		return nil, err
	}
	list := List{}
	for d.more() {
		element, err := d.parseValue()
		if err != nil {
			return nil, err
		}
		list = append(list, element)
	}
	if err := d.expect('e'); err != nil {
		return nil, err
	}
	return list, nil
}

func (d *decoder) parseDictionary() (*Dictionary, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()

	if err := d.expect('d'); err != nil {
		return nil, err
	}
	dictionary := NewDictionary(0)
	for d.more() {
		key, err := d.parseString()
		if err != nil {
			return nil, err
		}
		value, err := d.parseValue()
		if err != nil {
			return nil, &DecodeError{
				Kind:   KeyWithoutValue,
				Offset: d.cursor,
				Key:    key,
				Cause:  err,
			}
		}
		dictionary.Set(key, value)
	}
	if err := d.expect('e'); err != nil {
		return nil, err
	}
	return dictionary, nil
}

// readNumber reads an optionally negative decimal number. A leading zero is
// a complete number. Digits accumulate in an int64 and wrap on overflow.
func (d *decoder) readNumber() (int64, error) {
	negative := false
	if next, ok := d.peek(); ok && next == '-' {
		negative = true
		d.cursor++
	}

	first, ok := d.peek()
	switch {
	case !ok:
		return 0, d.fail(EndOfFile)
	case !isDigit(first):
		return 0, d.fail(NotANumber)
	case first == '0' && negative:
		return 0, d.fail(NegativeZero)
	case first == '0':
		d.cursor++
		return 0, nil
	}

	var accumulator int64
	for {
		next, ok := d.peek()
		if !ok || !isDigit(next) {
			break
		}
		accumulator = accumulator*10 + int64(next-'0')
		d.cursor++
	}
	if negative {
		accumulator = -accumulator
	}
	return accumulator, nil
}

// expect consumes literal or fails without moving the cursor.
func (d *decoder) expect(literal byte) error {
	next, ok := d.peek()
	if !ok {
		return d.fail(EndOfFile)
	}
	if next != literal {
		return &DecodeError{Kind: MissingIdentifier, Offset: d.cursor, Expected: literal}
	}
	d.cursor++
	return nil
}

// more reports whether another list element or dictionary pair follows:
// the input continues and the next byte is not the terminating 'e'.
func (d *decoder) more() bool {
	next, ok := d.peek()
	return ok && next != 'e'
}

func (d *decoder) peek() (byte, bool) {
	if d.cursor >= len(d.data) {
		return 0, false
	}
	return d.data[d.cursor], true
}

func (d *decoder) enter() error {
	if d.maxDepth >= 0 && d.depth >= d.maxDepth {
		return d.fail(NestingTooDeep)
	}
	d.depth++
	return nil
}

func (d *decoder) leave() {
	d.depth--
}

func (d *decoder) fail(kind ErrorKind) *DecodeError {
	return &DecodeError{Kind: kind, Offset: d.cursor}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
