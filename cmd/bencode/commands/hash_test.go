// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/bencode/cmd/bencode/cli"
	"github.com/bureau-foundation/bencode/lib/config"
)

const torrent = "d8:announce3:url4:infod6:lengthi1e4:name4:fileee"

func TestRunHash(t *testing.T) {
	info := []byte("d6:lengthi1e4:name4:filee")
	infoSHA1 := sha1.Sum(info)
	infoSHA256 := sha256.Sum256(info)
	wholeBLAKE3 := blake3.Sum256([]byte(torrent))
	nameSHA1 := sha1.Sum([]byte("4:file"))

	tests := []struct {
		name   string
		params hashParams
		cfg    func(*config.Config)
		want   []byte
	}{
		{name: "info-hash", params: hashParams{Path: "info"}, want: infoSHA1[:]},
		{name: "algorithm flag", params: hashParams{Path: "info", Algorithm: "sha256"}, want: infoSHA256[:]},
		{
			name:   "algorithm from config",
			params: hashParams{},
			cfg:    func(c *config.Config) { c.Hash.Algorithm = "blake3" },
			want:   wholeBLAKE3[:],
		},
		{name: "nested path", params: hashParams{Path: "info/name"}, want: nameSHA1[:]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			if tt.cfg != nil {
				tt.cfg(cfg)
			}
			var stdout bytes.Buffer
			if err := runHash(nil, strings.NewReader(torrent), &stdout, tt.params, cfg, discardLogger()); err != nil {
				t.Fatalf("runHash: %v", err)
			}
			want := hex.EncodeToString(tt.want) + "\n"
			if stdout.String() != want {
				t.Errorf("output = %q, want %q", stdout.String(), want)
			}
		})
	}
}

func TestRunHash_Expect(t *testing.T) {
	digest := sha1.Sum([]byte("d6:lengthi1e4:name4:filee"))

	var stdout bytes.Buffer
	params := hashParams{Path: "info", Expect: strings.ToUpper(hex.EncodeToString(digest[:]))}
	if err := runHash(nil, strings.NewReader(torrent), &stdout, params, config.Default(), discardLogger()); err != nil {
		t.Fatalf("runHash with matching --expect: %v", err)
	}

	params.Expect = strings.Repeat("00", sha1.Size)
	stdout.Reset()
	err := runHash(nil, strings.NewReader(torrent), &stdout, params, config.Default(), discardLogger())
	requireToolError(t, err, cli.CategoryValidation)
	if !strings.Contains(err.Error(), "sha1 digest mismatch") {
		t.Errorf("error = %q", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("printed a digest on mismatch: %q", stdout.String())
	}
}

func TestRunHash_Errors(t *testing.T) {
	tests := []struct {
		name     string
		params   hashParams
		category cli.ErrorCategory
	}{
		{name: "unknown algorithm", params: hashParams{Algorithm: "md5"}, category: cli.CategoryValidation},
		{name: "expect wrong length", params: hashParams{Expect: "abcd"}, category: cli.CategoryValidation},
		{name: "missing key", params: hashParams{Path: "info/pieces"}, category: cli.CategoryNotFound},
		{name: "descend into integer", params: hashParams{Path: "info/length/0"}, category: cli.CategoryNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			err := runHash(nil, strings.NewReader(torrent), &stdout, tt.params, config.Default(), discardLogger())
			requireToolError(t, err, tt.category)
		})
	}
}
