// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/bureau-foundation/bencode/cmd/bencode/cli"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// requireToolError fails unless err is a *cli.ToolError of the category.
func requireToolError(t *testing.T, err error, category cli.ErrorCategory) *cli.ToolError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", category)
	}
	var toolErr *cli.ToolError
	if !errors.As(err, &toolErr) {
		t.Fatalf("error %v (%T) is not a *cli.ToolError", err, err)
	}
	if toolErr.Category != category {
		t.Fatalf("error category = %q, want %q (error: %v)", toolErr.Category, category, err)
	}
	return toolErr
}
