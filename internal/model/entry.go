package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// LedgerKind selects the sign convention applied to a ledger's entries.
type LedgerKind string

const (
	// BankPassbook is the notebook-style bank register: credits in, debits out.
	BankPassbook LedgerKind = "bank"
	// VendorPurchase is the feriwala ledger: purchases owed to the vendor,
	// payments settle them.
	VendorPurchase LedgerKind = "feriwala"
	// KabadiwalaPurchase is the kabadiwala ledger. Only purchases are
	// recorded today; payments have no sign rule until the business decides
	// how settlements are booked, so they are rejected rather than guessed.
	KabadiwalaPurchase LedgerKind = "kabadiwala"
	// LabourPayroll tracks salary earned vs payments made per worker.
	LabourPayroll LedgerKind = "labour"
)

// Amount is a backend amount field that may arrive as a JSON number or a
// numeric string. Anything that fails to parse coerces to zero; sign is
// carried by the entry type, so only the magnitude is kept.
type Amount float64

// UnmarshalJSON accepts numbers, quoted numbers, and null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*a = 0
		return nil
	}
	s := string(data)
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*a = 0
			return nil
		}
		s = str
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*a = 0
		return nil
	}
	*a = Amount(f)
	return nil
}

// RawEntry is one record as the backend returns it, before normalization.
// Field shapes vary across the bank, vendor, and labour endpoints; the
// normalizer reconciles them.
type RawEntry struct {
	Date        string   `json:"date"`
	Type        string   `json:"type"`
	EntryType   string   `json:"entry_type"`
	Amount      Amount   `json:"amount"`
	Description string   `json:"description"`
	Reference   string   `json:"reference"`
	Category    string   `json:"category"`
	Mode        string   `json:"mode"`
	Delta       *float64 `json:"delta"`
}

// Entry is a normalized ledger entry with its signed delta resolved.
type Entry struct {
	Date        time.Time
	Type        string
	Description string
	Amount      float64 // magnitude, always >= 0
	Mode        string
	Delta       float64 // signed contribution to the running balance
	Seq         int     // original input position, used only to break date ties
}

// Row is an Entry annotated with the running balance through that entry.
type Row struct {
	Entry
	Balance float64
}

// Result is a fully computed ledger: chronologically ordered rows and the
// final outstanding balance (zero when there are no rows).
type Result struct {
	Rows        []Row
	Outstanding float64
}
