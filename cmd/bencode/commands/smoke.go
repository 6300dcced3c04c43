// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bencode/cmd/bencode/cli"
	"github.com/bureau-foundation/bencode/lib/bencode"
)

// smokeDocument nests three dictionaries around one integer.
const smokeDocument = "d1:ad2:xyd20:abcdefghij0123456789i555eeee"

type smokeParams struct {
	Plain bool `json:"plain" flag:"plain" desc:"disable colors"`
}

func smokeCommand() *cli.Command {
	var params smokeParams

	return &cli.Command{
		Name:    "smoke",
		Summary: "Decode and re-encode a built-in document",
		Description: `Decode a fixed nested document, print its tree, re-encode it, and
print the resulting bytes. Fails if the round trip does not reproduce
the input exactly.

Useful as a quick check that a build works.`,
		Usage: "bencode smoke",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("smoke", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("smoke takes no arguments, got %q", args[0])
			}
			return runSmoke(os.Stdout, params.Plain)
		},
	}
}

func runSmoke(w io.Writer, plain bool) error {
	value, err := bencode.Decode([]byte(smokeDocument))
	if err != nil {
		return cli.Internal("decode built-in document: %w", err)
	}
	if err := writeTree(w, value, plain); err != nil {
		return err
	}

	encoded := bencode.Encode(value)
	if _, err := fmt.Fprintf(w, "%s\n", encoded); err != nil {
		return cli.Internal("write output: %w", err)
	}
	if string(encoded) != smokeDocument {
		return cli.Internal("round trip changed the document: got %q, want %q", encoded, smokeDocument)
	}
	return nil
}
