// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/bureau-foundation/bencode/cmd/bencode/cli"
	"github.com/bureau-foundation/bencode/lib/bencode"
	"github.com/bureau-foundation/bencode/lib/compress"
)

// readInput returns the document bytes and the arguments it did not use.
// A trailing argument that names a regular file is read and consumed;
// otherwise the document comes from stdin. With hexMode the bytes are
// hex text and are decoded first.
func readInput(args []string, hexMode bool, stdin io.Reader) ([]byte, []string, error) {
	data, rest, err := readSource(args, stdin)
	if err != nil {
		return nil, nil, err
	}
	if !hexMode {
		return data, rest, nil
	}
	binary, err := decodeHexInput(data)
	if err != nil {
		return nil, nil, cli.Validation("%w", err)
	}
	return binary, rest, nil
}

func readSource(args []string, stdin io.Reader) ([]byte, []string, error) {
	if n := len(args); n > 0 {
		path := args[n-1]
		if info, statErr := os.Stat(path); statErr == nil && info.Mode().IsRegular() {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, nil, cli.Internal("read %s: %w", path, err)
			}
			return data, args[:n-1], nil
		}
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, nil, cli.Internal("read stdin: %w", err)
	}
	return data, args, nil
}

// decodeHexInput decodes hex text such as an xxd -p dump. Whitespace
// anywhere in the text is ignored.
func decodeHexInput(text []byte) ([]byte, error) {
	digits := strings.Join(strings.Fields(string(text)), "")
	if digits == "" {
		return nil, errors.New("hex input is empty")
	}
	binary, err := hex.DecodeString(digits)
	if err != nil {
		return nil, fmt.Errorf("hex input: %w", err)
	}
	return binary, nil
}

// readDocument reads a bencode document for a command that takes at most
// one positional argument, a file path. LZ4 and zstd frames are removed.
func readDocument(args []string, hexMode bool, stdin io.Reader, logger *slog.Logger) ([]byte, error) {
	data, remainingArgs, err := readInput(args, hexMode, stdin)
	if err != nil {
		return nil, err
	}
	if len(remainingArgs) > 0 {
		if _, statErr := os.Stat(remainingArgs[0]); errors.Is(statErr, fs.ErrNotExist) {
			return nil, cli.NotFound("input file %q does not exist", remainingArgs[0])
		}
		return nil, cli.Validation("expected at most one file argument, got %q", remainingArgs[0])
	}

	plain, tag, err := compress.DecompressAuto(data)
	if err != nil {
		return nil, cli.Validation("decompress %s input: %w", tag, err)
	}
	if tag != compress.None {
		logger.Debug("input decompressed",
			"compression", tag.String(),
			"compressed_bytes", len(data),
			"bytes", len(plain),
		)
	}

	if len(plain) == 0 {
		return nil, cli.Validation("empty input: expected bencode data")
	}
	return plain, nil
}

// decodeSettings are the resolved parsing options for one command run.
type decodeSettings struct {
	MaxDepth      int
	AllowTrailing bool
}

// decodeDocument decodes the single value in data. Bytes after the value
// are an error unless settings.AllowTrailing is set.
func decodeDocument(data []byte, settings decodeSettings, logger *slog.Logger) (bencode.Value, error) {
	options := bencode.DecodeOptions{MaxDepth: settings.MaxDepth}
	value, consumed, err := options.DecodePrefix(data)
	if err != nil {
		return nil, cli.Validation("%w", err)
	}

	if trailing := len(data) - consumed; trailing > 0 {
		if !settings.AllowTrailing {
			return nil, cli.Validation("%d bytes of trailing data after the value ending at offset %d", trailing, consumed).
				WithHint("Pass --allow-trailing to ignore bytes after the document.")
		}
		logger.Warn("ignoring trailing data", "offset", consumed, "bytes", trailing)
	}

	logger.Debug("document decoded", "bytes", consumed)
	return value, nil
}
