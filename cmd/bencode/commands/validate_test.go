// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bureau-foundation/bencode/cmd/bencode/cli"
	"github.com/bureau-foundation/bencode/lib/config"
)

func TestRunValidate_Canonical(t *testing.T) {
	for _, input := range []string{
		"i0e",
		"0:",
		"le",
		"de",
		"d1:ad2:xyd20:abcdefghij0123456789i555eeee",
		"d8:announce3:url4:infod6:lengthi1e4:name1:xee",
	} {
		t.Run(input, func(t *testing.T) {
			var stdout bytes.Buffer
			err := runValidate(nil, strings.NewReader(input), &stdout, validateParams{}, config.Default(), discardLogger())
			if err != nil {
				t.Fatalf("expected valid, got error: %v", err)
			}
			if stdout.String() != "valid\n" {
				t.Errorf("output = %q, want %q", stdout.String(), "valid\n")
			}
		})
	}
}

func TestRunValidate_NotCanonical(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "unsorted keys",
			input: "d1:bi1e1:ai2ee",
			want:  []string{`not canonical: dictionary keys not sorted at "/": "a" follows "b"`},
		},
		{
			name:  "nested unsorted keys",
			input: "d4:infold1:zi1e1:yi2eeee",
			want:  []string{`not canonical: dictionary keys not sorted at "/info/0": "y" follows "z"`},
		},
		{
			name:  "duplicate key",
			input: "d1:ai1e1:bi2e1:ai3ee",
			want: []string{
				"not canonical: re-encoding differs at byte 3 (original 20 bytes, re-encoded 14 bytes)",
				`not canonical: dictionary keys not sorted at "/": "a" follows "b"`,
			},
		},
		{
			name:  "integer overflow",
			input: "i9223372036854775808e",
			want:  []string{"not canonical: re-encoding differs at byte 1 (original 21 bytes, re-encoded 22 bytes)"},
		},
		{
			name:  "trailing data",
			input: "i1eXYZ",
			want:  []string{"not canonical: 3 bytes of trailing data after offset 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			err := runValidate(nil, strings.NewReader(tt.input), &stdout, validateParams{}, config.Default(), discardLogger())

			var exitErr *cli.ExitError
			if !errors.As(err, &exitErr) || exitErr.Code != 1 {
				t.Fatalf("error = %v, want exit code 1", err)
			}
			want := strings.Join(tt.want, "\n") + "\n"
			if stdout.String() != want {
				t.Errorf("output =\n%s\nwant\n%s", stdout.String(), want)
			}
		})
	}
}

func TestRunValidate_AllowTrailing(t *testing.T) {
	params := validateParams{}
	params.AllowTrailing = true

	var stdout bytes.Buffer
	if err := runValidate(nil, strings.NewReader("i1eXYZ"), &stdout, params, config.Default(), discardLogger()); err != nil {
		t.Fatalf("runValidate: %v", err)
	}
	if stdout.String() != "valid\n" {
		t.Errorf("output = %q, want %q", stdout.String(), "valid\n")
	}
}

func TestRunValidate_Malformed(t *testing.T) {
	var stdout bytes.Buffer
	err := runValidate(nil, strings.NewReader("i-0e"), &stdout, validateParams{}, config.Default(), discardLogger())
	requireToolError(t, err, cli.CategoryValidation)
	if !strings.Contains(err.Error(), "negative zero") {
		t.Errorf("error = %q, want the decode failure", err)
	}
}
