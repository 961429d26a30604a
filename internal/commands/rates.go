package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/scrapco/scrapledger/internal/rates"
)

func newRatesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Show or update material purchase rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			svc, err := rates.Load(cfg.DataDir)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "MATERIAL\tVENDOR\tRATE (₹/kg)")
			for _, r := range svc.All() {
				vendor := "global"
				if !r.Global() {
					vendor = r.VendorID.String()
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Material, vendor, r.Rate)
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(newRatesSetCommand())
	return cmd
}

func newRatesSetCommand() *cobra.Command {
	var vendorFlag string

	cmd := &cobra.Command{
		Use:   "set <material> <rate>",
		Short: "Set a material's rate (global, or per vendor with --vendor)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("parsing rate %q: %w", args[1], err)
			}
			if rate.IsNegative() {
				return fmt.Errorf("rate must not be negative")
			}

			vendorID := uuid.Nil
			if vendorFlag != "" {
				vendorID, err = uuid.Parse(vendorFlag)
				if err != nil {
					return fmt.Errorf("parsing --vendor %q: %w", vendorFlag, err)
				}
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			svc, err := rates.Load(cfg.DataDir)
			if err != nil {
				return err
			}

			svc.Set(args[0], vendorID, rate)
			if err := svc.Save(cfg.DataDir); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ₹%s/kg\n", args[0], rate)
			return nil
		},
	}

	cmd.Flags().StringVar(&vendorFlag, "vendor", "", "vendor UUID for a vendor-specific rate")
	return cmd
}
