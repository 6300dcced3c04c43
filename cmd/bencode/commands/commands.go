// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/bureau-foundation/bencode/cmd/bencode/cli"
	"github.com/bureau-foundation/bencode/lib/version"
)

// Root builds and returns the complete bencode CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "bencode",
		Description: `bencode: inspect and produce bencoded documents.

Bencode is the serialization format of BitTorrent metainfo files and
tracker responses. Decode documents to JSON, a styled tree, or CBOR
diagnostic notation; encode JSON back to bencode; check that a document
is in canonical form; and digest any sub-value by path.

Input may be raw, hex-encoded (--hex), or wrapped in an LZ4 or zstd
frame, which is detected and removed automatically.`,
		Subcommands: []*cli.Command{
			decodeCommand(),
			encodeCommand(),
			treeCommand(),
			diagCommand(),
			validateCommand(),
			hashCommand(),
			smokeCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					return printVersion(os.Stdout)
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Show the structure of a torrent file",
				Command:     "bencode tree ubuntu.torrent",
			},
			{
				Description: "Compute a torrent's info-hash",
				Command:     "bencode hash --path info ubuntu.torrent",
			},
			{
				Description: "Round-trip: encode then decode",
				Command:     "echo '{\"count\":42}' | bencode encode | bencode decode",
			},
		},
	}
}

func printVersion(w io.Writer) error {
	_, err := fmt.Fprintf(w, "bencode %s\n", version.Full())
	return err
}
