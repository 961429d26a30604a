package rates

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/scrapco/scrapledger/internal/model"
)

const (
	numFields   = 3
	colMaterial = 0
	colVendorID = 1
	colRate     = 2
)

// Header is the CSV header for rates.csv.
const Header = "material,vendor_id,rate"

// ReadRates reads all rates from a rates.csv reader.
func ReadRates(r io.Reader) ([]model.MaterialRate, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading rates CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var rates []model.MaterialRate
	for i, rec := range records[1:] {
		rate, err := UnmarshalRate(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rates = append(rates, rate)
	}
	return rates, nil
}

// WriteRates writes rates to a rates.csv writer (including header).
func WriteRates(w io.Writer, rates []model.MaterialRate) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rate := range rates {
		if err := cw.Write(MarshalRate(rate)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalRate converts a MaterialRate to a CSV row.
func MarshalRate(r model.MaterialRate) []string {
	row := make([]string, numFields)
	row[colMaterial] = r.Material
	if !r.Global() {
		row[colVendorID] = r.VendorID.String()
	}
	row[colRate] = r.Rate.String()
	return row
}

// UnmarshalRate converts a CSV row to a MaterialRate.
func UnmarshalRate(record []string) (model.MaterialRate, error) {
	if len(record) != numFields {
		return model.MaterialRate{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	vendorID := uuid.Nil
	if record[colVendorID] != "" {
		id, err := uuid.Parse(record[colVendorID])
		if err != nil {
			return model.MaterialRate{}, fmt.Errorf("parsing vendor_id %q: %w", record[colVendorID], err)
		}
		vendorID = id
	}

	rate, err := decimal.NewFromString(record[colRate])
	if err != nil {
		return model.MaterialRate{}, fmt.Errorf("parsing rate %q: %w", record[colRate], err)
	}

	return model.MaterialRate{
		Material: record[colMaterial],
		VendorID: vendorID,
		Rate:     rate,
	}, nil
}
