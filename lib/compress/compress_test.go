// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package compress

import (
	"bytes"
	"strings"
	"testing"
)

func TestTagString(t *testing.T) {
	tests := []struct {
		tag  Tag
		want string
	}{
		{None, "none"},
		{LZ4, "lz4"},
		{Zstd, "zstd"},
		{Tag(99), "unknown(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.tag.String(); got != tt.want {
				t.Errorf("Tag(%d).String() = %q, want %q", tt.tag, got, tt.want)
			}
		})
	}
}

func TestParseTag(t *testing.T) {
	for _, name := range []string{"none", "lz4", "zstd"} {
		t.Run(name, func(t *testing.T) {
			tag, err := ParseTag(name)
			if err != nil {
				t.Fatalf("ParseTag(%q) failed: %v", name, err)
			}
			if tag.String() != name {
				t.Errorf("roundtrip: ParseTag(%q).String() = %q", name, tag.String())
			}
		})
	}

	if tag, err := ParseTag(""); err != nil || tag != None {
		t.Errorf("ParseTag(\"\") = %v, %v; want none", tag, err)
	}
	if _, err := ParseTag("gzip"); err == nil {
		t.Error("ParseTag(\"gzip\") should fail")
	}
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	document := []byte("d8:announce35:udp://tracker.example.org:6969/announce4:infod" +
		"6:lengthi1048576e4:name8:file.bin6:pieces200:" + strings.Repeat("0123456789", 20) + "ee")

	for _, tag := range []Tag{None, LZ4, Zstd} {
		t.Run(tag.String(), func(t *testing.T) {
			compressed, err := Compress(document, tag)
			if err != nil {
				t.Fatalf("Compress: %v", err)
			}
			if got := Detect(compressed); got != tag {
				t.Errorf("Detect = %v, want %v", got, tag)
			}

			restored, err := Decompress(compressed, tag)
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}
			if !bytes.Equal(restored, document) {
				t.Errorf("round trip mismatch: got %d bytes, want %d", len(restored), len(document))
			}

			auto, detected, err := DecompressAuto(compressed)
			if err != nil {
				t.Fatalf("DecompressAuto: %v", err)
			}
			if detected != tag {
				t.Errorf("DecompressAuto tag = %v, want %v", detected, tag)
			}
			if !bytes.Equal(auto, document) {
				t.Error("DecompressAuto output differs from the original")
			}
		})
	}
}

func TestCompressEmpty(t *testing.T) {
	for _, tag := range []Tag{LZ4, Zstd} {
		t.Run(tag.String(), func(t *testing.T) {
			compressed, err := Compress(nil, tag)
			if err != nil {
				t.Fatalf("Compress: %v", err)
			}
			restored, err := Decompress(compressed, tag)
			if err != nil {
				t.Fatalf("Decompress: %v", err)
			}
			if len(restored) != 0 {
				t.Errorf("restored %d bytes from empty input", len(restored))
			}
		})
	}
}

func TestDetectPlainDocuments(t *testing.T) {
	for _, input := range []string{"de", "le", "i1e", "4:spam", "", "x"} {
		if got := Detect([]byte(input)); got != None {
			t.Errorf("Detect(%q) = %v, want none", input, got)
		}
	}
}

func TestDecompressCorrupt(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		tag  Tag
	}{
		{name: "lz4", data: append(append([]byte{}, lz4Magic...), 0xff, 0xff, 0xff), tag: LZ4},
		{name: "zstd", data: append(append([]byte{}, zstdMagic...), 0xff, 0xff, 0xff), tag: Zstd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decompress(tt.data, tt.tag); err == nil {
				t.Error("Decompress of corrupt frame succeeded")
			}
			_, tag, err := DecompressAuto(tt.data)
			if err == nil {
				t.Error("DecompressAuto of corrupt frame succeeded")
			}
			if tag != tt.tag {
				t.Errorf("DecompressAuto tag = %v, want %v", tag, tt.tag)
			}
		})
	}
}

func TestUnsupportedTag(t *testing.T) {
	if _, err := Compress([]byte("x"), Tag(7)); err == nil {
		t.Error("Compress with unknown tag succeeded")
	}
	if _, err := Decompress([]byte("x"), Tag(7)); err == nil {
		t.Error("Decompress with unknown tag succeeded")
	}
}
