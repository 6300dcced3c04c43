// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/bencode/cmd/bencode/cli"
	"github.com/bureau-foundation/bencode/lib/bencode"
)

// binaryPreviewBytes caps the hex shown for a byte string that is not text.
const binaryPreviewBytes = 16

type treeParams struct {
	configParams
	decodeParams
	Plain bool `json:"plain" flag:"plain" desc:"disable colors"`
}

func treeCommand() *cli.Command {
	var params treeParams

	return &cli.Command{
		Name:    "tree",
		Summary: "Print bencode as an indented tree",
		Description: `Decode a bencoded document and draw it as a tree.

Dictionaries show their entries in document order as "key: value";
lists show "[index] value". Containers are labelled with their kind and
length. Text byte strings are quoted; other byte strings show their
length and a hex preview of the first 16 bytes.

Colors are used when stdout is a terminal that supports them. --plain
disables them.

Equivalent to "bencode decode --format tree".`,
		Usage: "bencode tree [flags] [file]",
		Examples: []cli.Example{
			{
				Description: "Show the structure of a torrent file",
				Command:     "bencode tree ubuntu.torrent",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("tree", &params)
		},
		Run: func(args []string) error {
			cfg, logger, err := setup(params.configParams, "tree")
			if err != nil {
				return err
			}
			data, err := readDocument(args, params.HexInput, os.Stdin, logger)
			if err != nil {
				return err
			}
			value, err := decodeDocument(data, params.decodeParams.settings(cfg), logger)
			if err != nil {
				return err
			}
			return writeTree(os.Stdout, value, params.Plain)
		},
	}
}

// treeStyles colors the parts of a node label.
type treeStyles struct {
	key        lipgloss.Style
	integer    lipgloss.Style
	text       lipgloss.Style
	binary     lipgloss.Style
	container  lipgloss.Style
	enumerator lipgloss.Style
}

func newTreeStyles(renderer *lipgloss.Renderer) treeStyles {
	return treeStyles{
		key:     renderer.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "75"}),
		integer: renderer.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "130", Dark: "215"}),
		text:    renderer.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}),
		binary:  renderer.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "91", Dark: "176"}),
		container: renderer.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "243", Dark: "245"}).
			Italic(true),
		// The default enumerator style pads by one column; keep that.
		enumerator: renderer.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "250", Dark: "240"}).
			PaddingRight(1),
	}
}

// writeTree renders v to w. When plain is set, or w is not a color
// terminal, the output carries no escape sequences.
func writeTree(w io.Writer, v bencode.Value, plain bool) error {
	renderer := lipgloss.NewRenderer(w)
	if plain {
		renderer.SetColorProfile(termenv.Ascii)
	}
	if _, err := fmt.Fprintln(w, renderTree(v, newTreeStyles(renderer))); err != nil {
		return cli.Internal("write output: %w", err)
	}
	return nil
}

func renderTree(v bencode.Value, styles treeStyles) string {
	root := buildNode(styles.describe(v), v, styles)
	root.EnumeratorStyle(styles.enumerator).Enumerator(tree.RoundedEnumerator)
	return root.String()
}

// buildNode returns a tree rooted at label with v's children beneath it.
// Labels are never empty: a child tree with an empty root would be merged
// into its previous sibling.
func buildNode(label string, v bencode.Value, styles treeStyles) *tree.Tree {
	node := tree.Root(label)
	switch value := v.(type) {
	case bencode.List:
		for index, element := range value {
			childLabel := styles.container.Render("["+strconv.Itoa(index)+"]") + " " + styles.describe(element)
			node.Child(childNode(childLabel, element, styles))
		}
	case *bencode.Dictionary:
		for key, element := range value.All() {
			childLabel := styles.key.Render(keyLabel(key)) + ": " + styles.describe(element)
			node.Child(childNode(childLabel, element, styles))
		}
	}
	return node
}

// childNode returns a leaf label for scalars and a subtree for containers.
func childNode(label string, v bencode.Value, styles treeStyles) any {
	switch v.(type) {
	case bencode.List, *bencode.Dictionary:
		return buildNode(label, v, styles)
	default:
		return label
	}
}

// describe is the one-line summary of v shown after its key or index.
func (s treeStyles) describe(v bencode.Value) string {
	switch value := v.(type) {
	case bencode.Integer:
		return s.integer.Render(value.String())
	case bencode.ByteString:
		if utf8.ValidString(string(value)) {
			return s.text.Render(strconv.Quote(string(value)))
		}
		return s.binary.Render(binaryPreview(value))
	case bencode.List:
		return s.container.Render(fmt.Sprintf("list (%d)", len(value)))
	case *bencode.Dictionary:
		return s.container.Render(fmt.Sprintf("dict (%d)", value.Len()))
	default:
		return fmt.Sprintf("%T", v)
	}
}

// binaryPreview shows a byte string's length and its leading bytes in hex.
func binaryPreview(s bencode.ByteString) string {
	preview := s.Bytes()
	ellipsis := ""
	if len(preview) > binaryPreviewBytes {
		preview = preview[:binaryPreviewBytes]
		ellipsis = "…"
	}
	return fmt.Sprintf("<%d bytes> %s%s", s.Len(), hex.EncodeToString(preview), ellipsis)
}

// keyLabel prints simple keys bare and quotes or hex-previews the rest.
func keyLabel(key bencode.ByteString) string {
	s := string(key)
	if !utf8.ValidString(s) {
		return binaryPreview(key)
	}
	if s == "" || strings.ContainsFunc(s, func(r rune) bool {
		return !unicode.IsPrint(r) || unicode.IsSpace(r) || r == ':' || r == '"'
	}) {
		return strconv.Quote(s)
	}
	return s
}
