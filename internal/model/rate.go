package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaterialRate is one row in rates.csv: the per-kg purchase rate for a
// scrap material. VendorID is uuid.Nil for the godown-wide global rate;
// a non-nil VendorID overrides the global rate for that vendor only.
type MaterialRate struct {
	Material string
	VendorID uuid.UUID
	Rate     decimal.Decimal // rupees per kg
}

// Global reports whether this is the godown-wide rate for the material.
func (r MaterialRate) Global() bool {
	return r.VendorID == uuid.Nil
}
