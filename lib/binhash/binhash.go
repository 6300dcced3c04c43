// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package binhash

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/bencode/lib/bencode"
)

// Algorithm identifies a digest function.
type Algorithm string

const (
	// SHA1 is the 20-byte digest historically used to identify documents
	// by the hash of an embedded dictionary.
	SHA1 Algorithm = "sha1"

	// SHA256 is the 32-byte SHA-2 digest.
	SHA256 Algorithm = "sha256"

	// BLAKE3 is the 32-byte unkeyed BLAKE3 digest.
	BLAKE3 Algorithm = "blake3"
)

// Algorithms lists every supported algorithm in a stable order.
var Algorithms = []Algorithm{SHA1, SHA256, BLAKE3}

// ParseAlgorithm converts a case-insensitive algorithm name.
func ParseAlgorithm(name string) (Algorithm, error) {
	algorithm := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	if _, err := algorithm.Size(); err != nil {
		return "", err
	}
	return algorithm, nil
}

// Size returns the digest length in bytes.
func (a Algorithm) Size() (int, error) {
	switch a {
	case SHA1:
		return sha1.Size, nil
	case SHA256:
		return sha256.Size, nil
	case BLAKE3:
		return 32, nil
	default:
		return 0, fmt.Errorf("unknown hash algorithm %q (supported: sha1, sha256, blake3)", string(a))
	}
}

// Sum returns the digest of data.
func Sum(algorithm Algorithm, data []byte) ([]byte, error) {
	switch algorithm {
	case SHA1:
		digest := sha1.Sum(data)
		return digest[:], nil
	case SHA256:
		digest := sha256.Sum256(data)
		return digest[:], nil
	case BLAKE3:
		digest := blake3.Sum256(data)
		return digest[:], nil
	default:
		_, err := algorithm.Size()
		return nil, err
	}
}

// SumValue returns the digest of the encoding of v.
func SumValue(algorithm Algorithm, v bencode.Value) ([]byte, error) {
	return Sum(algorithm, bencode.Encode(v))
}

// FormatDigest returns the lowercase hex form of a digest. This is the
// format printed by the command-line tool and accepted by [ParseDigest].
func FormatDigest(digest []byte) string {
	return hex.EncodeToString(digest)
}

// ParseDigest parses a hex digest and checks that its length matches the
// algorithm.
func ParseDigest(algorithm Algorithm, hexString string) ([]byte, error) {
	size, err := algorithm.Size()
	if err != nil {
		return nil, err
	}
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return nil, fmt.Errorf("parsing %s digest: %w", algorithm, err)
	}
	if len(decoded) != size {
		return nil, fmt.Errorf("%s digest is %d bytes, want %d", algorithm, len(decoded), size)
	}
	return decoded, nil
}
