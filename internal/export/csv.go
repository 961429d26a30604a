// Package export renders computed ledger rows as CSV matching the
// on-screen columns. Escaping is full RFC 4180 (encoding/csv), not the
// dashboard's old newline munging, and dates use a fixed DD/MM/YYYY layout
// so exports are reproducible across environments.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/scrapco/scrapledger/internal/model"
)

// DateFormat is the fixed layout for exported dates.
const DateFormat = "02/01/2006"

// Column identifies one exported field.
type Column string

const (
	ColDate        Column = "Date"
	ColType        Column = "Type"
	ColDescription Column = "Description"
	ColAmount      Column = "Amount"
	ColBalance     Column = "Balance"
)

// DefaultColumns is the full on-screen column set shared by the vendor,
// kabadiwala, and labour ledger exports.
var DefaultColumns = []Column{ColDate, ColType, ColDescription, ColAmount, ColBalance}

// Columns returns the export column set for a ledger kind. All four
// ledgers currently share the default set; the bank register renames
// Description to Particulars on screen but exports the standard header.
func Columns(model.LedgerKind) []Column {
	return DefaultColumns
}

// Write renders rows to w as CSV, header first.
func Write(w io.Writer, rows []model.Row, cols []Column) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = string(c)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		if err := cw.Write(MarshalRow(row, cols)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// String renders rows to a CSV string.
func String(rows []model.Row, cols []Column) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, rows, cols); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// MarshalRow converts a ledger row to a CSV record.
func MarshalRow(row model.Row, cols []Column) []string {
	rec := make([]string, len(cols))
	for i, c := range cols {
		switch c {
		case ColDate:
			rec[i] = row.Date.Format(DateFormat)
		case ColType:
			rec[i] = row.Type
		case ColDescription:
			rec[i] = row.Description
		case ColAmount:
			rec[i] = formatNumber(row.Amount)
		case ColBalance:
			rec[i] = formatNumber(row.Balance)
		}
	}
	return rec
}

// Read parses a CSV export produced by Write back into ledger rows.
// Deltas and sequence numbers are not part of the export and come back
// zero; dates are read in local time like the normalizer reads bare dates.
func Read(r io.Reader) ([]model.Row, error) {
	cr := csv.NewReader(r)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	cols := make([]Column, len(records[0]))
	for i, h := range records[0] {
		cols[i] = Column(h)
	}

	var rows []model.Row
	for i, rec := range records[1:] {
		row, err := UnmarshalRow(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// UnmarshalRow converts a CSV record back to a ledger row.
func UnmarshalRow(rec []string, cols []Column) (model.Row, error) {
	if len(rec) != len(cols) {
		return model.Row{}, fmt.Errorf("expected %d fields, got %d", len(cols), len(rec))
	}

	var row model.Row
	for i, c := range cols {
		switch c {
		case ColDate:
			d, err := time.ParseInLocation(DateFormat, rec[i], time.Local)
			if err != nil {
				return model.Row{}, fmt.Errorf("parsing date %q: %w", rec[i], err)
			}
			row.Date = d
		case ColType:
			row.Type = rec[i]
		case ColDescription:
			row.Description = rec[i]
		case ColAmount:
			a, err := strconv.ParseFloat(rec[i], 64)
			if err != nil {
				return model.Row{}, fmt.Errorf("parsing amount %q: %w", rec[i], err)
			}
			row.Amount = a
		case ColBalance:
			b, err := strconv.ParseFloat(rec[i], 64)
			if err != nil {
				return model.Row{}, fmt.Errorf("parsing balance %q: %w", rec[i], err)
			}
			row.Balance = b
		}
	}
	return row, nil
}

// formatNumber renders a float with the fewest digits that round-trip.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
