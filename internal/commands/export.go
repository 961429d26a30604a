package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scrapco/scrapledger/internal/export"
	"github.com/scrapco/scrapledger/internal/ledger"
)

func newExportCommand() *cobra.Command {
	var idFlag, outFlag string

	cmd := &cobra.Command{
		Use:   "export <bank|feriwala|kabadiwala|labour>",
		Short: "Fetch a ledger and write it as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}

			counterparty, err := parseCounterparty(idFlag)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			raw, err := fetchEntries(cmd.Context(), cfg, kind, counterparty)
			if err != nil {
				return err
			}

			result, err := ledger.Compute(raw, kind)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outFlag != "" {
				f, err := os.Create(outFlag)
				if err != nil {
					return fmt.Errorf("creating %s: %w", outFlag, err)
				}
				defer f.Close()
				out = f
			}

			return export.Write(out, result.Rows, export.Columns(kind))
		},
	}

	cmd.Flags().StringVar(&idFlag, "id", "", "counterparty ID (vendor or labour UUID)")
	cmd.Flags().StringVarP(&outFlag, "output", "o", "", "output file (default stdout)")
	return cmd
}
