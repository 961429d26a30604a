// Package ledger turns unordered backend entry lists into chronological
// ledgers with running balances, under per-kind sign conventions. The
// computation is pure: no I/O, no logging, no shared state, fresh output
// per call.
package ledger

import (
	"github.com/scrapco/scrapledger/internal/model"
)

// Compute builds the full ledger for one account or counterparty:
// normalize raw records, resolve each entry's signed delta for the ledger
// kind, order chronologically, then accumulate the running balance.
// Any normalization or sign-resolution failure aborts the whole ledger;
// a partial ledger with silently wrong rows is worse than a visible error.
func Compute(raw []model.RawEntry, kind model.LedgerKind) (model.Result, error) {
	entries, err := Normalize(raw)
	if err != nil {
		return model.Result{}, err
	}

	for i := range entries {
		delta, err := resolveDelta(kind, entries[i], raw[i].Delta)
		if err != nil {
			return model.Result{}, err
		}
		entries[i].Delta = delta
	}

	return Accumulate(Sequence(entries)), nil
}
