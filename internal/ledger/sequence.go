package ledger

import (
	"sort"

	"github.com/scrapco/scrapledger/internal/model"
)

// Sequence orders entries by date ascending. Entries on the same calendar
// instant keep their original input order via Seq; running balances are
// only reproducible if same-day ordering is fixed, so the tie-break is an
// explicit comparison rather than a property of the sort algorithm.
func Sequence(entries []model.Entry) []model.Entry {
	out := make([]model.Entry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Seq < out[j].Seq
	})
	return out
}
