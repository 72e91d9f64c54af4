package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// routeArgs rewrites the command line so that note text is never taken for a
// subcommand. Everything after -a/--add is note text. A leading subcommand
// word followed by arguments that subcommand would reject starts a note
// instead ("noty clear the table"); a subcommand word on its own still runs
// the subcommand. Words after "--" are left alone.
func routeArgs(root *cobra.Command, args []string) []string {
	for i := 0; i < len(args); i++ {
		s := args[i]
		switch {
		case s == "--":
			return args
		case s == "-a" || s == "--add":
			if i+1 < len(args) && args[i+1] == "--" {
				return args
			}
			return insertArgs(args, i+1, "--")
		case strings.HasPrefix(s, "-") && len(s) > 1:
			if flagTakesValue(root, s) {
				i++
			}
		default:
			sub := findSubcommand(root, s)
			if sub == nil || sub.Args == nil {
				return args
			}
			rest := positionalArgs(root, args[i+1:])
			if len(rest) == 0 || sub.Args(sub, rest) == nil {
				return args
			}
			return insertArgs(args, i, "--add", "--")
		}
	}
	return args
}

func insertArgs(args []string, at int, extra ...string) []string {
	out := make([]string, 0, len(args)+len(extra))
	out = append(out, args[:at]...)
	out = append(out, extra...)
	return append(out, args[at:]...)
}

// findSubcommand returns the direct subcommand named or aliased by name.
func findSubcommand(root *cobra.Command, name string) *cobra.Command {
	for _, c := range root.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return c
		}
	}
	return nil
}

// flagTakesValue reports whether s is a flag that consumes the next argument.
func flagTakesValue(root *cobra.Command, s string) bool {
	if strings.Contains(s, "=") {
		return false
	}
	var name string
	switch {
	case strings.HasPrefix(s, "--"):
		name = s[2:]
	case len(s) == 2:
		if f := root.PersistentFlags().ShorthandLookup(s[1:]); f != nil {
			return f.NoOptDefVal == ""
		}
		if f := root.Flags().ShorthandLookup(s[1:]); f != nil {
			return f.NoOptDefVal == ""
		}
		return false
	default:
		return false
	}
	if f := root.PersistentFlags().Lookup(name); f != nil {
		return f.NoOptDefVal == ""
	}
	if f := root.Flags().Lookup(name); f != nil {
		return f.NoOptDefVal == ""
	}
	return false
}

// positionalArgs drops flags and their values from args.
func positionalArgs(root *cobra.Command, args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		s := args[i]
		switch {
		case s == "--":
			return append(out, args[i+1:]...)
		case strings.HasPrefix(s, "-") && len(s) > 1:
			if flagTakesValue(root, s) {
				i++
			}
		default:
			out = append(out, s)
		}
	}
	return out
}
