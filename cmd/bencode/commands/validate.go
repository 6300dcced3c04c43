// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bencode/cmd/bencode/cli"
	"github.com/bureau-foundation/bencode/lib/bencode"
	"github.com/bureau-foundation/bencode/lib/config"
)

// validateParams holds the parameters for the "bencode validate" command.
type validateParams struct {
	configParams
	decodeParams
}

func validateCommand() *cli.Command {
	var params validateParams

	return &cli.Command{
		Name:    "validate",
		Summary: "Check whether a document is canonical bencode",
		Description: `Read a bencoded document and verify it is in canonical form. Exits
0 with "valid" if it is; otherwise prints one line per problem and
exits 1. Input that does not decode at all is reported as an error.

Validation decodes the input, re-encodes it, and compares the bytes.
This catches duplicate dictionary keys and integers outside the int64
range. Separately, every dictionary is checked for keys sorted as raw
byte strings, which canonical bencode requires but decoding does not
enforce. Bytes after the document are a problem unless
--allow-trailing is given.`,
		Usage: "bencode validate [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Validate a torrent file",
				Command:     "bencode validate ubuntu.torrent",
			},
			{
				Description: "Validate encoder output from a pipeline",
				Command:     "echo '{\"b\":1,\"a\":2}' | bencode encode | bencode validate",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("validate", &params)
		},
		Run: func(args []string) error {
			cfg, logger, err := setup(params.configParams, "validate")
			if err != nil {
				return err
			}
			return runValidate(args, os.Stdin, os.Stdout, params, cfg, logger)
		},
	}
}

func runValidate(args []string, stdin io.Reader, stdout io.Writer, params validateParams, cfg *config.Config, logger *slog.Logger) error {
	data, err := readDocument(args, params.HexInput, stdin, logger)
	if err != nil {
		return err
	}
	settings := params.decodeParams.settings(cfg)

	value, consumed, err := bencode.DecodeOptions{MaxDepth: settings.MaxDepth}.DecodePrefix(data)
	if err != nil {
		return cli.Validation("%w", err)
	}

	problems := canonicalProblems(data[:consumed], value)
	if trailing := len(data) - consumed; trailing > 0 && !settings.AllowTrailing {
		problems = append(problems, fmt.Sprintf("%d bytes of trailing data after offset %d", trailing, consumed))
	}

	if len(problems) == 0 {
		if _, err := fmt.Fprintln(stdout, "valid"); err != nil {
			return cli.Internal("write output: %w", err)
		}
		return nil
	}
	for _, problem := range problems {
		if _, err := fmt.Fprintf(stdout, "not canonical: %s\n", problem); err != nil {
			return cli.Internal("write output: %w", err)
		}
	}
	return &cli.ExitError{Code: 1}
}

// canonicalProblems lists the ways original, which decoded to value,
// differs from canonical bencode.
func canonicalProblems(original []byte, value bencode.Value) []string {
	var problems []string
	if reencoded := bencode.Encode(value); !bytes.Equal(original, reencoded) {
		problems = append(problems, describeMismatch(original, reencoded))
	}
	return append(problems, unsortedKeys(value, "")...)
}

func describeMismatch(original, reencoded []byte) string {
	offset := 0
	minLength := min(len(original), len(reencoded))
	for offset < minLength && original[offset] == reencoded[offset] {
		offset++
	}
	return fmt.Sprintf("re-encoding differs at byte %d (original %d bytes, re-encoded %d bytes)",
		offset, len(original), len(reencoded))
}

// unsortedKeys reports every dictionary under path whose keys are not in
// ascending byte order.
func unsortedKeys(v bencode.Value, path string) []string {
	var problems []string
	switch value := v.(type) {
	case bencode.List:
		for index, element := range value {
			problems = append(problems, unsortedKeys(element, path+"/"+strconv.Itoa(index))...)
		}
	case *bencode.Dictionary:
		var previous bencode.ByteString
		for index, entry := range value.Entries() {
			if index > 0 && entry.Key.Compare(previous) < 0 {
				location := path
				if location == "" {
					location = "/"
				}
				problems = append(problems, fmt.Sprintf("dictionary keys not sorted at %q: %q follows %q",
					location, entry.Key.String(), previous.String()))
			}
			previous = entry.Key
			problems = append(problems, unsortedKeys(entry.Value, path+"/"+entry.Key.String())...)
		}
	}
	return problems
}
