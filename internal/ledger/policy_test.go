package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapco/scrapledger/internal/model"
)

// Every (ledger kind, entry type) pairing is pinned here. This table is
// actual money: a sign flip in the policy must fail a test, not slip
// through a review.
func TestSignTablePinsEveryPairing(t *testing.T) {
	tests := []struct {
		kind  model.LedgerKind
		typ   string
		delta float64
	}{
		{model.BankPassbook, "credit", +75},
		{model.BankPassbook, "debit", -75},
		{model.VendorPurchase, "purchase", +75},
		{model.VendorPurchase, "payment", -75},
		{model.KabadiwalaPurchase, "purchase", +75},
		{model.LabourPayroll, "Salary", +75},
		{model.LabourPayroll, "Payment", -75},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.typ, func(t *testing.T) {
			entry := model.Entry{Type: tt.typ, Amount: 75}
			delta, err := resolveDelta(tt.kind, entry, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.delta, delta)
		})
	}
}

func TestUnlistedPairingsAreRejected(t *testing.T) {
	tests := []struct {
		kind model.LedgerKind
		typ  string
	}{
		{model.BankPassbook, "purchase"},
		{model.BankPassbook, "Credit"}, // case matters: backend sends lowercase
		{model.VendorPurchase, "Salary"},
		{model.KabadiwalaPurchase, "payment"}, // settlements not booked yet
		{model.KabadiwalaPurchase, "credit"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.typ, func(t *testing.T) {
			entry := model.Entry{Type: tt.typ, Amount: 10}
			_, err := resolveDelta(tt.kind, entry, nil)

			var unknown *UnknownEntryTypeError
			require.ErrorAs(t, err, &unknown)
			assert.Equal(t, tt.kind, unknown.Kind)
			assert.Equal(t, tt.typ, unknown.Type)
		})
	}
}

func TestLabourFallsBackToExplicitDelta(t *testing.T) {
	entry := model.Entry{Type: "Adjustment", Amount: 100}

	adj := -35.0
	delta, err := resolveDelta(model.LabourPayroll, entry, &adj)
	require.NoError(t, err)
	assert.Equal(t, -35.0, delta, "explicit delta wins over the amount")

	delta, err = resolveDelta(model.LabourPayroll, entry, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, delta, "no rule and no delta contributes nothing")
}

func TestUnknownLedgerKind(t *testing.T) {
	_, err := resolveDelta(model.LedgerKind("mill"), model.Entry{Type: "sale"}, nil)

	var unknown *UnknownEntryTypeError
	require.ErrorAs(t, err, &unknown)
}
