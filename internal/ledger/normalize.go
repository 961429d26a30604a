package ledger

import (
	"math"
	"time"

	"github.com/scrapco/scrapledger/internal/model"
)

// dateLayouts are tried in order. Date-only values are read in local time,
// so a bare date sorts as midnight of that calendar day.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Normalize coerces raw backend records into canonical entries. Every input
// record yields exactly one output entry; amounts that fail numeric
// coercion become zero rather than dropping the row, so the ledger stays
// auditable against the backend. An entry without a usable date aborts the
// whole batch with a MalformedEntryError.
func Normalize(raw []model.RawEntry) ([]model.Entry, error) {
	entries := make([]model.Entry, 0, len(raw))
	for i, r := range raw {
		if r.Date == "" {
			return nil, &MalformedEntryError{Index: i}
		}
		date, err := parseDate(r.Date)
		if err != nil {
			return nil, &MalformedEntryError{Index: i, Cause: err}
		}

		typ := r.Type
		if typ == "" {
			typ = r.EntryType
		}

		desc := r.Description
		if desc == "" {
			desc = r.Reference
		}
		if desc == "" {
			desc = r.Category
		}

		entries = append(entries, model.Entry{
			Date:        date,
			Type:        typ,
			Description: desc,
			Amount:      math.Abs(float64(r.Amount)),
			Mode:        r.Mode,
			Seq:         i,
		})
	}
	return entries, nil
}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
