// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"iter"
	"slices"
	"strings"

	"github.com/spf13/pflag"
)

// maxSuggestDistance is the largest edit distance still offered as a
// "did you mean" suggestion. Three covers a transposition plus a dropped
// or doubled character.
const maxSuggestDistance = 3

// closest returns the candidate nearest to input, or "" when none is
// within maxSuggestDistance. Ties go to the earlier candidate.
func closest(input string, candidates iter.Seq[string]) string {
	best, bestDistance := "", maxSuggestDistance+1
	for candidate := range candidates {
		if distance := levenshtein(input, candidate); distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}
	return best
}

func suggestCommand(unknown string, commands []*Command) string {
	return closest(unknown, func(yield func(string) bool) {
		for _, command := range commands {
			if !yield(command.Name) {
				return
			}
		}
	})
}

// suggestFlag finds the first long flag in args that flagSet does not
// define and returns the nearest defined flag as "--name", or "".
func suggestFlag(args []string, flagSet *pflag.FlagSet) string {
	unknown, found := firstUnknownFlag(args, flagSet)
	if !found {
		return ""
	}

	var names []string
	flagSet.VisitAll(func(f *pflag.Flag) {
		names = append(names, f.Name)
	})
	if name := closest(unknown, slices.Values(names)); name != "" {
		return "--" + name
	}
	return ""
}

// firstUnknownFlag returns the bare name of the first "--name" or
// "--name=value" argument that flagSet does not define. Arguments after
// "--" are positional.
func firstUnknownFlag(args []string, flagSet *pflag.FlagSet) (string, bool) {
	for _, arg := range args {
		if arg == "--" {
			break
		}
		name, isLong := strings.CutPrefix(arg, "--")
		if !isLong {
			continue
		}
		name, _, _ = strings.Cut(name, "=")
		if flagSet.Lookup(name) == nil {
			return name, true
		}
	}
	return "", false
}

// levenshtein is the number of single-byte insertions, deletions, and
// substitutions that turn a into b.
func levenshtein(a, b string) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	// Two rows of the distance matrix, indexed by position in the shorter
	// string.
	above := make([]int, len(b)+1)
	row := make([]int, len(b)+1)
	for j := range above {
		above[j] = j
	}

	for i := 1; i <= len(a); i++ {
		row[0] = i
		for j := 1; j <= len(b); j++ {
			substitution := above[j-1]
			if a[i-1] != b[j-1] {
				substitution++
			}
			row[j] = min(above[j]+1, row[j-1]+1, substitution)
		}
		above, row = row, above
	}
	return above[len(b)]
}
