// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the bencode
// command-line tool.
//
// Configuration is loaded from a single file specified by either the
// BENCODE_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There is no ~/.config discovery and no automatic file
// search. Without a file the tool runs on [Default]. Command-line flags
// override whatever the file sets.
//
// Unknown keys in the file are rejected so that a misspelled option fails
// loudly instead of silently keeping its default.
//
// Key exports:
//
//   - [Config] -- master struct with Decode, Output, Encode, Hash, Log
//   - [Default] -- the configuration used when no file is given
//   - [Load] and [LoadFile] -- the two entry points for loading
package config
