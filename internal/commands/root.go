package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scrapco/scrapledger/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "scrapledger",
		Short:   "Ledgers and exports for the ScrapCo trading dashboard",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "scrapledger.yaml", "path to config file")

	rootCmd.AddCommand(newStatementCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newRatesCommand())

	return rootCmd
}
