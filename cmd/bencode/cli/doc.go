// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command framework behind the bencode tool.
//
// A program is a tree of [Command] values. [Command.Execute] walks the
// tree by positional words, parses the flags of the command it lands on
// with pflag, and calls its Run function; -h, --help, and help print the
// command's usage, subcommand table, flags, and examples instead.
//
// Options are declared as tagged struct fields and turned into a flag set
// by [FlagsFromParams]. The tag grammar is documented on [BindFlags].
//
// A mistyped subcommand or long flag is answered with the nearest known
// name by edit distance, if one is close enough.
//
// Commands return a [ToolError] to say whether the user or the tool is at
// fault, or an [ExitError] when they have already printed their own
// report and only need a non-zero status.
package cli
