// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bencode/cmd/bencode/cli"
	"github.com/bureau-foundation/bencode/lib/bencode"
	"github.com/bureau-foundation/bencode/lib/compress"
	"github.com/bureau-foundation/bencode/lib/config"
	"github.com/bureau-foundation/bencode/lib/transcode"
)

// encodeParams holds the parameters for the "bencode encode" command.
type encodeParams struct {
	configParams
	From      string `json:"from"       flag:"from"       desc:"input format: json or cbor" default:"json"`
	Compress  string `json:"compress"   flag:"compress"   desc:"wrap output in a frame: none, lz4, or zstd (default: encode.compression)"`
	HexOutput bool   `json:"hex_output" flag:"hex,x"      desc:"write hex instead of raw bytes"`
}

func encodeCommand() *cli.Command {
	var params encodeParams

	return &cli.Command{
		Name:    "encode",
		Summary: "Convert JSON (or CBOR) to bencode",
		Description: `Read JSON and write the equivalent bencode.

Comments and trailing commas are accepted, so hand-written documents
can be annotated. Object keys keep their order. Numbers must be
integers in the int64 range; booleans, null, and fractions have no
bencode equivalent and are rejected.

A byte string that is not text is written as {"$binary": "<hex>"}; an
object key of the form "$binary:<hex>" is decoded from hex. These are
the conventions "bencode decode" produces.

With --from cbor, the input is CBOR instead: integers, byte and text
strings, arrays, and maps with string keys. Map keys are sorted.

Output is raw bytes unless --hex is given, optionally wrapped in an LZ4
or zstd frame that every bencode command unwraps on input.`,
		Usage: "bencode encode [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Encode a JSON object",
				Command:     "echo '{\"announce\": \"udp://tracker.example.org:6969\"}' | bencode encode",
			},
			{
				Description: "Encode as hex for inspection",
				Command:     "echo '[1, \"two\"]' | bencode encode --hex",
			},
			{
				Description: "Encode and compress with zstd",
				Command:     "bencode encode --compress zstd document.jsonc > document.bencode.zst",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("encode", &params)
		},
		Run: func(args []string) error {
			cfg, logger, err := setup(params.configParams, "encode")
			if err != nil {
				return err
			}
			return runEncode(args, os.Stdin, os.Stdout, params, cfg, logger)
		},
	}
}

func runEncode(args []string, stdin io.Reader, stdout io.Writer, params encodeParams, cfg *config.Config, logger *slog.Logger) error {
	compression := params.Compress
	if compression == "" {
		compression = cfg.Encode.Compression
	}
	tag, err := compress.ParseTag(compression)
	if err != nil {
		return cli.Validation("--compress: %w", err)
	}

	data, remainingArgs, err := readInput(args, false, stdin)
	if err != nil {
		return err
	}
	if len(remainingArgs) > 0 {
		return cli.Validation("encode takes no positional arguments besides an optional file path, got %q", remainingArgs[0])
	}

	var value bencode.Value
	switch params.From {
	case "json", "":
		value, err = transcode.FromJSON(data)
	case "cbor":
		value, err = transcode.FromCBOR(data)
	default:
		return cli.Validation("unknown input format %q (expected json or cbor)", params.From)
	}
	if err != nil {
		return cli.Validation("%w", err)
	}

	output := bencode.Encode(value)
	if tag != compress.None {
		compressed, err := compress.Compress(output, tag)
		if err != nil {
			return cli.Internal("compress output: %w", err)
		}
		logger.Debug("output compressed",
			"compression", tag.String(),
			"bytes", len(output),
			"compressed_bytes", len(compressed),
		)
		output = compressed
	}

	if params.HexOutput {
		_, err = fmt.Fprintln(stdout, hex.EncodeToString(output))
	} else {
		_, err = stdout.Write(output)
	}
	if err != nil {
		return cli.Internal("write output: %w", err)
	}
	return nil
}
