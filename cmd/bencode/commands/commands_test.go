// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestRoot_Subcommands(t *testing.T) {
	root := Root()

	var names []string
	for _, sub := range root.Subcommands {
		names = append(names, sub.Name)
		if sub.Summary == "" {
			t.Errorf("command %q has no summary", sub.Name)
		}
	}

	want := "decode encode tree diag validate hash smoke version"
	if got := strings.Join(names, " "); got != want {
		t.Errorf("subcommands = %q, want %q", got, want)
	}
}

func TestRoot_FlagsBind(t *testing.T) {
	// FlagsFromParams panics on a malformed params struct; build every
	// flag set once to catch that here rather than at run time.
	for _, sub := range Root().Subcommands {
		if sub.Flags == nil {
			continue
		}
		t.Run(sub.Name, func(t *testing.T) {
			flagSet := sub.Flags()
			if sub.Name != "smoke" && flagSet.Lookup("config") == nil {
				t.Errorf("%s has no --config flag", sub.Name)
			}
		})
	}
}

func TestRoot_ExecuteSmoke(t *testing.T) {
	if err := Root().Execute([]string{"smoke", "--plain", "extra"}); err == nil {
		t.Fatal("smoke with a positional argument succeeded")
	}
}

func TestPrintVersion(t *testing.T) {
	var buffer bytes.Buffer
	if err := printVersion(&buffer); err != nil {
		t.Fatalf("printVersion: %v", err)
	}
	if !strings.HasPrefix(buffer.String(), "bencode ") {
		t.Errorf("version output = %q", buffer.String())
	}
}
