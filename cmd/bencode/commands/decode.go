// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/bureau-foundation/bencode/cmd/bencode/cli"
	"github.com/bureau-foundation/bencode/lib/bencode"
	"github.com/bureau-foundation/bencode/lib/config"
	"github.com/bureau-foundation/bencode/lib/transcode"
	"github.com/spf13/pflag"
)

// decodeCommandParams holds the parameters for the "bencode decode" command.
type decodeCommandParams struct {
	configParams
	decodeParams
	Format  string `json:"format"  flag:"format,f"  desc:"output format: json, tree, or diag (default: output.format)"`
	Compact bool   `json:"compact" flag:"compact,c" desc:"compact single-line JSON"`
	Plain   bool   `json:"plain"   flag:"plain"     desc:"disable colors in tree output"`
}

func decodeCommand() *cli.Command {
	var params decodeCommandParams

	return &cli.Command{
		Name:    "decode",
		Summary: "Convert bencode to JSON, a tree, or CBOR diagnostic notation",
		Description: `Read a bencoded document and print it.

JSON output keeps dictionary keys in document order. Integers become
JSON numbers. Byte strings that are valid UTF-8 become JSON strings;
any other byte string becomes {"$binary": "<hex>"}, and a dictionary
key that is not valid UTF-8 is written as "$binary:<hex>". "bencode
encode" reverses both conventions.

Exactly one value is expected. Bytes after it are an error unless
--allow-trailing is given or decode.allow_trailing is set.`,
		Usage: "bencode decode [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Decode a torrent file to pretty JSON",
				Command:     "bencode decode ubuntu.torrent",
			},
			{
				Description: "Decode hex-encoded bencode",
				Command:     "echo '64313a6169326565' | bencode decode --hex",
			},
			{
				Description: "Decode a zstd-compressed document to compact JSON",
				Command:     "bencode decode -c response.bencode.zst",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("decode", &params)
		},
		Run: func(args []string) error {
			cfg, logger, err := setup(params.configParams, "decode")
			if err != nil {
				return err
			}
			return runDecode(args, os.Stdin, os.Stdout, params, cfg, logger)
		},
	}
}

func runDecode(args []string, stdin io.Reader, stdout io.Writer, params decodeCommandParams, cfg *config.Config, logger *slog.Logger) error {
	format := params.Format
	if format == "" {
		format = cfg.Output.Format
	}
	format = strings.ToLower(format)
	if !slices.Contains(config.OutputFormats, format) {
		return cli.Validation("unknown output format %q (expected one of %s)",
			params.Format, strings.Join(config.OutputFormats, ", "))
	}

	data, err := readDocument(args, params.HexInput, stdin, logger)
	if err != nil {
		return err
	}
	value, err := decodeDocument(data, params.decodeParams.settings(cfg), logger)
	if err != nil {
		return err
	}

	switch format {
	case "tree":
		return writeTree(stdout, value, params.Plain)
	case "diag":
		return writeDiagnostic(stdout, value)
	default:
		indent := cfg.Output.Indent
		if params.Compact || cfg.Output.Compact {
			indent = ""
		}
		if err := transcode.WriteJSON(stdout, value, transcode.JSONOptions{Indent: indent}); err != nil {
			return cli.Internal("write JSON: %w", err)
		}
		return nil
	}
}

// writeDiagnostic prints v in CBOR diagnostic notation.
func writeDiagnostic(w io.Writer, v bencode.Value) error {
	diagnostic, err := transcode.Diagnose(v)
	if errors.Is(err, transcode.ErrTooDeep) {
		return cli.Validation("diagnose: %w", err).
			WithHint("Use --format json or --format tree for documents this deep.")
	}
	if err != nil {
		return cli.Internal("diagnose: %w", err)
	}
	if _, err := fmt.Fprintln(w, diagnostic); err != nil {
		return cli.Internal("write output: %w", err)
	}
	return nil
}
