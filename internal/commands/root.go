package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taniakun/taniakun/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "taniakun",
		Short:   "Double-entry bookkeeping for small farms",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newUserCommand())
	rootCmd.AddCommand(newIncomeCommand())
	rootCmd.AddCommand(newExpenseCommand())
	rootCmd.AddCommand(newReverseCommand())
	rootCmd.AddCommand(newLedgerCommand())
	rootCmd.AddCommand(newReportCommand())

	return rootCmd
}
