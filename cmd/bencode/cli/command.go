// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// helpOutput receives help text printed by [Command.Execute].
var helpOutput io.Writer = os.Stderr

// Command is a node in the CLI tree: either a group that dispatches to
// Subcommands, a leaf with a Run function, or both (Run handles args
// that name no subcommand).
type Command struct {
	// Name is the word the user types to select this command.
	Name string

	// Summary is the one-line description listed in the parent's help.
	Summary string

	// Description is the full text at the top of this command's help.
	// Summary is used when it is empty.
	Description string

	// Usage replaces the synthesized usage line, for example
	// "bencode decode [flags] [file]".
	Usage string

	// Examples are listed at the end of the help output.
	Examples []Example

	// Flags builds the command's flag set. It is called once per parse
	// and once per help rendering, so it must return a fresh set bound to
	// the same destinations each time. Nil means the command takes no
	// flags.
	Flags func() *pflag.FlagSet

	// Subcommands are selected by the first positional argument.
	Subcommands []*Command

	// Run receives the positional arguments left after flag parsing.
	Run func(args []string) error

	parent *Command
}

// Example is one entry of a command's Examples section.
type Example struct {
	// Description is printed as a comment above the command line.
	Description string
	// Command is the literal command line.
	Command string
}

// Execute routes args through the tree rooted at c: help requests print
// help, a leading subcommand name descends, and anything else is parsed
// against c's flags and handed to Run.
func (c *Command) Execute(args []string) error {
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(helpOutput)
		return nil
	}

	if len(c.Subcommands) > 0 {
		if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
			return c.dispatch(args[0], args[1:])
		}
		if c.Run == nil {
			c.PrintHelp(helpOutput)
			if len(args) == 0 {
				return errors.New("subcommand required")
			}
			return fmt.Errorf("subcommand required (got flag %q)", args[0])
		}
	}

	positional, helpRequested, err := c.parseFlags(args)
	if err != nil {
		return err
	}
	if helpRequested {
		c.PrintHelp(helpOutput)
		return nil
	}

	if c.Run == nil {
		c.PrintHelp(helpOutput)
		return fmt.Errorf("no action defined for %q", c.fullName())
	}
	return c.Run(positional)
}

// dispatch runs the subcommand called name, or explains that there is none.
func (c *Command) dispatch(name string, args []string) error {
	if sub := c.lookup(name); sub != nil {
		sub.parent = c
		return sub.Execute(args)
	}
	if suggestion := suggestCommand(name, c.Subcommands); suggestion != "" {
		return c.usageError("unknown command %q (did you mean %q?)", name, suggestion)
	}
	return c.usageError("unknown command %q", name)
}

func (c *Command) lookup(name string) *Command {
	for _, sub := range c.Subcommands {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

// parseFlags returns the positional arguments, or reports that --help
// appeared among the flags.
func (c *Command) parseFlags(args []string) ([]string, bool, error) {
	if c.Flags == nil {
		return args, false, nil
	}

	flagSet := c.Flags()
	// Errors are reported by us, with suggestions; pflag stays quiet.
	flagSet.SetOutput(io.Discard)

	err := flagSet.Parse(args)
	switch {
	case err == nil:
		return flagSet.Args(), false, nil
	case errors.Is(err, pflag.ErrHelp):
		return nil, true, nil
	}

	if strings.Contains(err.Error(), "unknown") {
		if suggestion := suggestFlag(args, c.Flags()); suggestion != "" {
			return nil, false, c.usageError("%v (did you mean %s?)", err, suggestion)
		}
	}
	return nil, false, c.usageError("%v", err)
}

// usageError is a validation error pointing at this command's help.
func (c *Command) usageError(format string, args ...any) *ToolError {
	message := fmt.Sprintf(format, args...)
	return Validation("%s\n\nRun '%s --help' for usage.", message, c.fullName())
}

// PrintHelp writes the description, usage line, command list, flags, and
// examples of c to w.
func (c *Command) PrintHelp(w io.Writer) {
	name := c.fullName()

	if text := c.Description; text != "" {
		fmt.Fprintf(w, "%s\n\n", text)
	} else if c.Summary != "" {
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}

	fmt.Fprintf(w, "Usage:\n  %s\n", c.usageLine())

	if len(c.Subcommands) > 0 {
		fmt.Fprint(w, "\nCommands:\n")
		table := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(table, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		table.Flush()
	}

	if c.Flags != nil {
		if usage := c.Flags().FlagUsages(); usage != "" {
			fmt.Fprintf(w, "\nFlags:\n%s", usage)
		}
	}

	if len(c.Examples) > 0 {
		fmt.Fprint(w, "\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description == "" {
				fmt.Fprintf(w, "  %s\n", example.Command)
				continue
			}
			fmt.Fprintf(w, "  # %s\n  %s\n\n", example.Description, example.Command)
		}
	}

	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", name)
	}
}

func (c *Command) usageLine() string {
	switch {
	case c.Usage != "":
		return c.Usage
	case len(c.Subcommands) > 0:
		return c.fullName() + " <command> [flags]"
	default:
		return c.fullName() + " [flags]"
	}
}

// fullName is the command path from the root, e.g. "bencode decode".
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

func isHelpFlag(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	}
	return false
}
