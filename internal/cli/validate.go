package cli

import (
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a delimited file without loading anything",
	Long: `Validate runs the full pipeline up to and including validation, then
stops. The store is never written to: the summary and per-row errors
show exactly what a subsequent load would do.

Examples:
  # Check people.csv against the people table
  csvload validate people.csv -d mydb -t people

  # Same via connection string
  csvload validate people.csv --connection "postgresql://user@localhost:5432/mydb" -t people`,
	Args: requireInputFile,
	RunE: runValidate,
}

var validateFlags loadFlagValues

func init() {
	rootCmd.AddCommand(validateCmd)
	registerLoadFlags(validateCmd, &validateFlags)
	registerCompletions(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	return executeRun(cmd, &validateFlags, args[0], true)
}
