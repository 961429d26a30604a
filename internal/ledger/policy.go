package ledger

import (
	"github.com/scrapco/scrapledger/internal/model"
)

// signTable maps (ledger kind, entry type) to the sign applied to the
// entry amount. The table is the single source of truth for how money
// movements affect a balance; adding a ledger kind means adding a row
// here, not touching the accumulator.
var signTable = map[model.LedgerKind]map[string]int{
	model.BankPassbook: {
		"credit": +1,
		"debit":  -1,
	},
	model.VendorPurchase: {
		"purchase": +1, // vendor supplied goods, business owes vendor
		"payment":  -1,
	},
	// Kabadiwala settlements are not booked yet; until they are, only
	// purchases carry a rule and anything else is rejected loudly.
	model.KabadiwalaPurchase: {
		"purchase": +1,
	},
	model.LabourPayroll: {
		"Salary":  +1, // earned, owed to the worker
		"Payment": -1,
	},
}

// resolveDelta assigns the signed delta for one entry under the given
// ledger kind. Labour ledgers carry ad-hoc adjustment rows from the
// backend with an explicit delta field; those pass through, and rows with
// neither a known type nor a delta contribute nothing. Every other ledger
// kind rejects unknown types outright.
func resolveDelta(kind model.LedgerKind, e model.Entry, explicit *float64) (float64, error) {
	signs, ok := signTable[kind]
	if !ok {
		return 0, &UnknownEntryTypeError{Kind: kind, Type: e.Type}
	}
	if sign, ok := signs[e.Type]; ok {
		return float64(sign) * e.Amount, nil
	}
	if kind == model.LabourPayroll {
		if explicit != nil {
			return *explicit, nil
		}
		return 0, nil
	}
	return 0, &UnknownEntryTypeError{Kind: kind, Type: e.Type}
}
