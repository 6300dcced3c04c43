// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binhash

import (
	"bytes"
	"crypto/sha1"
	"crypto/sha256"
	"strings"
	"testing"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/bencode/lib/bencode"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input   string
		want    Algorithm
		wantErr bool
	}{
		{input: "sha1", want: SHA1},
		{input: "SHA256", want: SHA256},
		{input: " blake3 ", want: BLAKE3},
		{input: "md5", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAlgorithm(%q) = %q, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAlgorithm(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAlgorithm(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSum(t *testing.T) {
	data := []byte("d4:spami1ee")
	sha1Digest := sha1.Sum(data)
	sha256Digest := sha256.Sum256(data)
	blake3Digest := blake3.Sum256(data)

	tests := []struct {
		algorithm Algorithm
		want      []byte
	}{
		{algorithm: SHA1, want: sha1Digest[:]},
		{algorithm: SHA256, want: sha256Digest[:]},
		{algorithm: BLAKE3, want: blake3Digest[:]},
	}

	for _, tt := range tests {
		t.Run(string(tt.algorithm), func(t *testing.T) {
			got, err := Sum(tt.algorithm, data)
			if err != nil {
				t.Fatalf("Sum: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Sum = %x, want %x", got, tt.want)
			}
			size, err := tt.algorithm.Size()
			if err != nil {
				t.Fatalf("Size: %v", err)
			}
			if len(got) != size {
				t.Errorf("len(digest) = %d, Size() = %d", len(got), size)
			}
		})
	}

	if _, err := Sum(Algorithm("crc32"), data); err == nil {
		t.Error("Sum with unknown algorithm succeeded")
	}
}

func TestSumValueUsesCanonicalEncoding(t *testing.T) {
	// Trailing bytes after the value do not contribute to its digest.
	value, _, err := bencode.DecodePrefix([]byte("d1:ai1eetrailing"))
	if err != nil {
		t.Fatalf("DecodePrefix: %v", err)
	}
	got, err := SumValue(SHA256, value)
	if err != nil {
		t.Fatalf("SumValue: %v", err)
	}
	want := sha256.Sum256([]byte("d1:ai1ee"))
	if !bytes.Equal(got, want[:]) {
		t.Errorf("SumValue = %x, want %x", got, want)
	}
}

func TestFormatParseDigest(t *testing.T) {
	digest, err := Sum(BLAKE3, []byte("round-trip"))
	if err != nil {
		t.Fatalf("Sum: %v", err)
	}
	formatted := FormatDigest(digest)
	if len(formatted) != 64 {
		t.Errorf("FormatDigest length = %d, want 64", len(formatted))
	}

	parsed, err := ParseDigest(BLAKE3, formatted)
	if err != nil {
		t.Fatalf("ParseDigest: %v", err)
	}
	if !bytes.Equal(parsed, digest) {
		t.Errorf("ParseDigest round-trip failed: %x != %x", parsed, digest)
	}

	if _, err := ParseDigest(SHA1, formatted); err == nil {
		t.Error("ParseDigest accepted a 32-byte digest as sha1")
	}
	if _, err := ParseDigest(SHA256, "not-hex"); err == nil {
		t.Error("ParseDigest accepted invalid hex")
	}
	if _, err := ParseDigest(Algorithm("md5"), formatted); err == nil {
		t.Error("ParseDigest accepted an unknown algorithm")
	}
}

func TestSelect(t *testing.T) {
	document, err := bencode.Decode([]byte(
		"d8:announce3:url4:infod4:name4:file5:filesld6:lengthi10eed6:lengthi20eeeee"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	tests := []struct {
		path       string
		want       string
		wantSubstr string
	}{
		{path: "", want: "d8:announce3:url4:infod4:name4:file5:filesld6:lengthi10eed6:lengthi20eeeee"},
		{path: "announce", want: "3:url"},
		{path: "info", want: "d4:name4:file5:filesld6:lengthi10eed6:lengthi20eeee"},
		{path: "info/files/1/length", want: "i20e"},
		{path: "info/files/0", want: "d6:lengthi10ee"},
		{path: "missing", wantSubstr: `key "missing" not found at "/"`},
		{path: "info/files/2", wantSubstr: `index 2 out of range at "/info/files"`},
		{path: "info/files/x", wantSubstr: "not a list index"},
		{path: "info/files/-1", wantSubstr: "not a list index"},
		{path: "announce/deeper", wantSubstr: `cannot descend into a byte string at "/announce"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Select(document, tt.path)
			if tt.wantSubstr != "" {
				if err == nil {
					t.Fatalf("Select(%q) succeeded", tt.path)
				}
				if !strings.Contains(err.Error(), tt.wantSubstr) {
					t.Errorf("error %q does not contain %q", err, tt.wantSubstr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Select(%q): %v", tt.path, err)
			}
			if encoded := string(bencode.Encode(got)); encoded != tt.want {
				t.Errorf("Select(%q) = %q, want %q", tt.path, encoded, tt.want)
			}
		})
	}
}
