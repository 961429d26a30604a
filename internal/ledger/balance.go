package ledger

import (
	"github.com/scrapco/scrapledger/internal/model"
)

// Accumulate walks already-sequenced entries once, attaching the running
// balance to each and reporting the final total as outstanding. Plain
// float64 arithmetic, matching the backend's stored amounts; no rounding
// or clamping is applied.
func Accumulate(entries []model.Entry) model.Result {
	rows := make([]model.Row, len(entries))
	var balance float64
	for i, e := range entries {
		balance += e.Delta
		rows[i] = model.Row{Entry: e, Balance: balance}
	}
	return model.Result{Rows: rows, Outstanding: balance}
}
