// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the bencode CLI command tree.
//
// Every document-reading command shares the same input pipeline: an
// optional trailing file argument (stdin otherwise), optional hex
// decoding (--hex), and transparent decompression of LZ4 and zstd frames
// detected by magic number. Decoding honours decode.max_depth and
// decode.allow_trailing from the configuration file, which flags
// override.
//
// Each command's Run closure binds os.Stdin and os.Stdout and delegates
// to a function taking an io.Reader and io.Writer, which is what the
// tests exercise.
package commands
