// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bencode/cmd/bencode/cli"
	"github.com/bureau-foundation/bencode/lib/binhash"
	"github.com/bureau-foundation/bencode/lib/config"
)

// hashParams holds the parameters for the "bencode hash" command.
type hashParams struct {
	configParams
	decodeParams
	Algorithm string `json:"algorithm" flag:"algorithm,a" desc:"digest algorithm: sha1, sha256, or blake3 (default: hash.algorithm)"`
	Path      string `json:"path"      flag:"path,p"      desc:"slash-separated path of the value to hash (default: the whole document)"`
	Expect    string `json:"expect"    flag:"expect"      desc:"hex digest to compare against; mismatch is an error"`
}

func hashCommand() *cli.Command {
	var params hashParams

	return &cli.Command{
		Name:    "hash",
		Summary: "Digest a document or one of its values",
		Description: `Decode a bencoded document, select a value by path, and print the
hex digest of that value's canonical encoding.

A path segment names a dictionary key or, inside a list, a zero-based
index: "info" selects the info dictionary of a torrent, so its SHA-1
is the torrent's info-hash. Because the digest covers the re-encoded
value, bytes after the document never contribute to it.

With --expect, the digest is compared against the given hex string and
a mismatch is reported as an error.`,
		Usage: "bencode hash [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Compute a torrent's v1 info-hash",
				Command:     "bencode hash --path info ubuntu.torrent",
			},
			{
				Description: "BLAKE3 of the second file entry",
				Command:     "bencode hash -a blake3 -p info/files/1 album.torrent",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("hash", &params)
		},
		Run: func(args []string) error {
			cfg, logger, err := setup(params.configParams, "hash")
			if err != nil {
				return err
			}
			return runHash(args, os.Stdin, os.Stdout, params, cfg, logger)
		},
	}
}

func runHash(args []string, stdin io.Reader, stdout io.Writer, params hashParams, cfg *config.Config, logger *slog.Logger) error {
	name := params.Algorithm
	if name == "" {
		name = cfg.Hash.Algorithm
	}
	algorithm, err := binhash.ParseAlgorithm(name)
	if err != nil {
		return cli.Validation("--algorithm: %w", err)
	}

	var expected []byte
	if params.Expect != "" {
		expected, err = binhash.ParseDigest(algorithm, params.Expect)
		if err != nil {
			return cli.Validation("--expect: %w", err)
		}
	}

	data, err := readDocument(args, params.HexInput, stdin, logger)
	if err != nil {
		return err
	}
	document, err := decodeDocument(data, params.decodeParams.settings(cfg), logger)
	if err != nil {
		return err
	}

	selected, err := binhash.Select(document, params.Path)
	if err != nil {
		return cli.NotFound("%w", err)
	}
	digest, err := binhash.SumValue(algorithm, selected)
	if err != nil {
		return cli.Internal("%w", err)
	}
	logger.Debug("value hashed", "algorithm", string(algorithm), "path", params.Path)

	if expected != nil && !bytes.Equal(digest, expected) {
		return cli.Validation("%s digest mismatch: got %s, want %s",
			algorithm, binhash.FormatDigest(digest), binhash.FormatDigest(expected))
	}

	if _, err := fmt.Fprintln(stdout, binhash.FormatDigest(digest)); err != nil {
		return cli.Internal("write output: %w", err)
	}
	return nil
}
