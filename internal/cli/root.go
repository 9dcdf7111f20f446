package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `               _                 _
  ___ _____   _| | ___   __ _  __| |
 / __/ __\ \ / / |/ _ \ / _` + "`" + ` |/ _` + "`" + ` |
| (__\__ \\ V /| | (_) | (_| | (_| |
 \___|___/ \_/ |_|\___/ \__,_|\__,_|`

var rootCmd = &cobra.Command{
	Use:   "csvload",
	Short: "Validate and load delimited files into PostgreSQL",
	Long: asciiLogo + `

csvload reads a comma- or semicolon-separated file, validates every row
against the live schema of a PostgreSQL table (character length limits,
rows already present), reports the rows that fail, and loads the rest.

The separator is detected from the header line; rows above the bulk
threshold go through the COPY protocol.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  11 - Database connection failed
  12 - Target table not found
  13 - Load rejected by the store
  14 - Input file unreadable or separator undetectable`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	// --help is registered as a plain flag so the -h shorthand stays free
	// for --host.
	rootCmd.PersistentFlags().Bool("help", false, "Help for csvload")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
