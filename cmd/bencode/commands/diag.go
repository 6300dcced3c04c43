// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"os"

	"github.com/bureau-foundation/bencode/cmd/bencode/cli"
	"github.com/spf13/pflag"
)

type diagParams struct {
	configParams
	decodeParams
}

func diagCommand() *cli.Command {
	var params diagParams

	return &cli.Command{
		Name:    "diag",
		Summary: "Print bencode as CBOR diagnostic notation",
		Description: `Decode a bencoded document, convert it to CBOR, and print the
CBOR diagnostic notation (RFC 8949 section 8).

Byte strings that are valid UTF-8 are shown as 'text'; others as h'hex'.
Dictionaries become maps with byte-string keys, printed in CBOR's
deterministic key order rather than document order.

Equivalent to "bencode decode --format diag".`,
		Usage: "bencode diag [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Inspect a tracker response",
				Command:     "bencode diag announce-response.bin",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("diag", &params)
		},
		Run: func(args []string) error {
			cfg, logger, err := setup(params.configParams, "diag")
			if err != nil {
				return err
			}
			data, err := readDocument(args, params.HexInput, os.Stdin, logger)
			if err != nil {
				return err
			}
			value, err := decodeDocument(data, params.decodeParams.settings(cfg), logger)
			if err != nil {
				return err
			}
			return writeDiagnostic(os.Stdout, value)
		},
	}
}
