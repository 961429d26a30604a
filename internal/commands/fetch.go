package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/scrapco/scrapledger/internal/config"
	"github.com/scrapco/scrapledger/internal/model"
	"github.com/scrapco/scrapledger/internal/source"
)

// parseKind maps a CLI argument to a ledger kind.
func parseKind(s string) (model.LedgerKind, error) {
	switch model.LedgerKind(s) {
	case model.BankPassbook, model.VendorPurchase, model.KabadiwalaPurchase, model.LabourPayroll:
		return model.LedgerKind(s), nil
	}
	return "", fmt.Errorf("unknown ledger kind %q (want bank, feriwala, kabadiwala, or labour)", s)
}

// loadConfig reads the config file named by the persistent --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	return config.Load(path)
}

// fetchEntries pulls the raw entries for a ledger kind. The bank register
// is godown-wide; the other ledgers need a counterparty ID.
func fetchEntries(ctx context.Context, cfg *config.Config, kind model.LedgerKind, counterparty uuid.UUID) ([]model.RawEntry, error) {
	client := source.NewClient(
		cfg.API.BaseURL,
		cfg.Business.CompanyID.UUID,
		cfg.Business.GodownID.UUID,
		time.Duration(cfg.API.TimeoutSeconds)*time.Second,
	)

	if kind != model.BankPassbook && counterparty == uuid.Nil {
		return nil, fmt.Errorf("%s ledger needs --id", kind)
	}

	switch kind {
	case model.BankPassbook:
		return client.BankStatement(ctx)
	case model.VendorPurchase:
		return client.VendorLedger(ctx, counterparty)
	case model.KabadiwalaPurchase:
		return client.KabadiwalaPurchases(ctx, counterparty)
	case model.LabourPayroll:
		return client.LabourLedger(ctx, counterparty)
	}
	return nil, fmt.Errorf("unknown ledger kind %q", kind)
}
