// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/bencode/lib/bencode"
)

func TestWriteTree(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "scalar",
			input: "i42e",
			want:  "42\n",
		},
		{
			name:  "text scalar",
			input: "5:hello",
			want:  "\"hello\"\n",
		},
		{
			name:  "list",
			input: "li7e2:\xff\x00ledee",
			want: "list (4)\n" +
				"├── [0] 7\n" +
				"├── [1] <2 bytes> ff00\n" +
				"├── [2] list (0)\n" +
				"╰── [3] dict (0)\n",
		},
		{
			name:  "nested dictionaries",
			input: "d1:ad2:xyd20:abcdefghij0123456789i555eeee",
			want: "dict (1)\n" +
				"╰── a: dict (1)\n" +
				"    ╰── xy: dict (1)\n" +
				"        ╰── abcdefghij0123456789: 555\n",
		},
		{
			name:  "siblings after a subtree",
			input: "d1:ali1ei2ee1:bi3ee",
			want: "dict (2)\n" +
				"├── a: list (2)\n" +
				"│   ├── [0] 1\n" +
				"│   ╰── [1] 2\n" +
				"╰── b: 3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := bencode.Decode([]byte(tt.input))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			var buffer bytes.Buffer
			if err := writeTree(&buffer, value, true); err != nil {
				t.Fatalf("writeTree: %v", err)
			}
			if buffer.String() != tt.want {
				t.Errorf("writeTree =\n%s\nwant\n%s", buffer.String(), tt.want)
			}
		})
	}
}

func TestWriteTree_PlainHasNoEscapes(t *testing.T) {
	value, err := bencode.Decode([]byte("d4:spaml1:a1:bee"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	var buffer bytes.Buffer
	if err := writeTree(&buffer, value, true); err != nil {
		t.Fatalf("writeTree: %v", err)
	}
	if strings.Contains(buffer.String(), "\x1b[") {
		t.Errorf("plain output contains escape sequences: %q", buffer.String())
	}
}

func TestBinaryPreview(t *testing.T) {
	short := bencode.ByteString("\x00\x01")
	if got := binaryPreview(short); got != "<2 bytes> 0001" {
		t.Errorf("binaryPreview(short) = %q", got)
	}

	long := bencode.ByteString(strings.Repeat("\xab", 20))
	want := "<20 bytes> " + strings.Repeat("ab", binaryPreviewBytes) + "…"
	if got := binaryPreview(long); got != want {
		t.Errorf("binaryPreview(long) = %q, want %q", got, want)
	}
}

func TestKeyLabel(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "announce", want: "announce"},
		{key: "piece length", want: `"piece length"`},
		{key: "", want: `""`},
		{key: "a:b", want: `"a:b"`},
		{key: "tab\there", want: `"tab\there"`},
		{key: "\xff", want: "<1 bytes> ff"},
		{key: "名前", want: "名前"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := keyLabel(bencode.ByteString(tt.key)); got != tt.want {
				t.Errorf("keyLabel(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestRenderTree_ColorStripsToPlain(t *testing.T) {
	value, err := bencode.Decode([]byte("d4:infod6:lengthi1e4:name2:\xff\xffee"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	colored := lipgloss.NewRenderer(io.Discard)
	colored.SetColorProfile(termenv.TrueColor)
	colored.SetHasDarkBackground(true)
	plain := lipgloss.NewRenderer(io.Discard)
	plain.SetColorProfile(termenv.Ascii)

	coloredOutput := renderTree(value, newTreeStyles(colored))
	plainOutput := renderTree(value, newTreeStyles(plain))

	if coloredOutput == plainOutput {
		t.Fatal("TrueColor output carries no styling")
	}
	if got := ansi.Strip(coloredOutput); got != plainOutput {
		t.Errorf("stripped color output =\n%s\nwant\n%s", got, plainOutput)
	}
}
