package commands

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/scrapco/scrapledger/internal/export"
	"github.com/scrapco/scrapledger/internal/ledger"
	"github.com/scrapco/scrapledger/internal/model"
)

func newStatementCommand() *cobra.Command {
	var idFlag string

	cmd := &cobra.Command{
		Use:   "statement <bank|feriwala|kabadiwala|labour>",
		Short: "Fetch a ledger and print it with running balances",
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

			printLedger(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&idFlag, "id", "", "counterparty ID (vendor or labour UUID)")
	return cmd
}

func parseCounterparty(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parsing --id %q: %w", s, err)
	}
	return id, nil
}

func printLedger(cmd *cobra.Command, result model.Result) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tTYPE\tDESCRIPTION\tAMOUNT\tBALANCE")
	for _, row := range result.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			row.Date.Format(export.DateFormat),
			row.Type,
			row.Description,
			formatAmount(row.Amount),
			formatAmount(row.Balance),
		)
	}
	tw.Flush()
	fmt.Fprintf(cmd.OutOrStdout(), "\nOutstanding: %s\n", formatAmount(result.Outstanding))
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
