// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Tag identifies a frame format.
type Tag uint8

const (
	// None is plain, uncompressed data.
	None Tag = iota

	// LZ4 is the LZ4 frame format. Fast to decode, modest ratio.
	LZ4

	// Zstd is the zstd frame format at the default level. Better ratio
	// for text-heavy documents.
	Zstd
)

// MaxDecompressedSize bounds the output of a single decompression.
const MaxDecompressedSize = 1 << 30

var (
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// ErrTooLarge is returned when decompressed output would exceed
// [MaxDecompressedSize].
var ErrTooLarge = errors.New("compress: decompressed data exceeds size limit")

// String returns the name accepted by [ParseTag].
func (tag Tag) String() string {
	switch tag {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", tag)
	}
}

// ParseTag parses a frame format name.
func ParseTag(name string) (Tag, error) {
	switch name {
	case "none", "":
		return None, nil
	case "lz4":
		return LZ4, nil
	case "zstd":
		return Zstd, nil
	default:
		return 0, fmt.Errorf("unknown compression %q (supported: none, lz4, zstd)", name)
	}
}

// Detect reports the frame format of data from its magic number.
func Detect(data []byte) Tag {
	switch {
	case bytes.HasPrefix(data, lz4Magic):
		return LZ4
	case bytes.HasPrefix(data, zstdMagic):
		return Zstd
	default:
		return None
	}
}

// zstdEncoder and zstdDecoder are reused across calls; both are safe for
// concurrent use in their EncodeAll/DecodeAll forms.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		panic("compress: zstd encoder initialization failed: " + err.Error())
	}

	zstdDecoder, err = zstd.NewReader(nil,
		zstd.WithDecoderMaxMemory(MaxDecompressedSize),
	)
	if err != nil {
		panic("compress: zstd decoder initialization failed: " + err.Error())
	}
}

// Compress wraps data in the frame format named by tag. For None the input
// is returned unchanged.
func Compress(data []byte, tag Tag) ([]byte, error) {
	switch tag {
	case None:
		return data, nil

	case LZ4:
		var buffer bytes.Buffer
		writer := lz4.NewWriter(&buffer)
		if _, err := writer.Write(data); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		return buffer.Bytes(), nil

	case Zstd:
		return zstdEncoder.EncodeAll(data, nil), nil

	default:
		return nil, fmt.Errorf("unsupported compression tag: %d", tag)
	}
}

// Decompress unwraps data that is framed in the format named by tag.
func Decompress(data []byte, tag Tag) ([]byte, error) {
	switch tag {
	case None:
		return data, nil

	case LZ4:
		reader := io.LimitReader(lz4.NewReader(bytes.NewReader(data)), MaxDecompressedSize+1)
		result, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		if len(result) > MaxDecompressedSize {
			return nil, ErrTooLarge
		}
		return result, nil

	case Zstd:
		result, err := zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			if errors.Is(err, zstd.ErrDecoderSizeExceeded) {
				return nil, ErrTooLarge
			}
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return result, nil

	default:
		return nil, fmt.Errorf("unsupported compression tag: %d", tag)
	}
}

// DecompressAuto detects the frame format of data and unwraps it. Plain
// data is returned unchanged with tag None.
func DecompressAuto(data []byte) ([]byte, Tag, error) {
	tag := Detect(data)
	result, err := Decompress(data, tag)
	if err != nil {
		return nil, tag, err
	}
	return result, tag, nil
}
