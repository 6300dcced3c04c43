// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports which build of the bencode tool is running.
//
// Release builds set [Version], [GitCommit], [GitDirty], and [BuildTime]
// with -ldflags -X. Anything left unset is filled from the VCS stamp the
// Go toolchain records in the binary, so "go install" builds still report
// their commit.
package version
