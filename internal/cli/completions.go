package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// sslModes contains valid PostgreSQL SSL modes for shell completion.
var sslModes = []string{"disable", "allow", "prefer", "require", "verify-ca", "verify-full"}

// separators contains the accepted --separator flag values.
var separators = []string{",", ";"}

// completeSSLModes provides shell completion for SSL mode flag values.
func completeSSLModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, mode := range sslModes {
		if strings.HasPrefix(mode, toComplete) {
			matches = append(matches, mode)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeSeparators provides shell completion for separator flag values.
func completeSeparators(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, sep := range separators {
		if strings.HasPrefix(sep, toComplete) {
			matches = append(matches, sep)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeInputFiles completes the positional <file> argument with
// delimited text files.
func completeInputFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"csv", "txt"}, cobra.ShellCompDirectiveFilterFileExt
}

// registerCompletions wires flag and argument completion for a command
// that takes the shared load flag set.
func registerCompletions(cmd *cobra.Command) {
	cmd.ValidArgsFunction = completeInputFiles
	cmd.RegisterFlagCompletionFunc("sslmode", completeSSLModes)     //nolint:errcheck
	cmd.RegisterFlagCompletionFunc("separator", completeSeparators) //nolint:errcheck
}
