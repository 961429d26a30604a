package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapco/scrapledger/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local)
}

func TestRoundTrip(t *testing.T) {
	rows := []model.Row{
		{
			Entry: model.Entry{
				Date:        date(2024, 2, 1),
				Type:        "purchase",
				Description: "iron scrap (150kg × ₹32)",
				Amount:      4800,
			},
			Balance: 4800,
		},
		{
			Entry: model.Entry{
				Date:        date(2024, 2, 10),
				Type:        "payment",
				Description: "partial settlement, via \"UPI\"\nsecond lot pending",
				Amount:      2000,
			},
			Balance: 2800,
		},
	}

	out, err := String(rows, DefaultColumns)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Date,Type,Description,Amount,Balance\n"))

	got, err := Read(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, got, 2)

	for i := range rows {
		assert.True(t, rows[i].Date.Equal(got[i].Date), "date mismatch row %d", i)
		assert.Equal(t, rows[i].Type, got[i].Type)
		assert.Equal(t, rows[i].Description, got[i].Description, "commas, quotes and newlines must survive")
		assert.Equal(t, rows[i].Amount, got[i].Amount)
		assert.Equal(t, rows[i].Balance, got[i].Balance)
	}
}

func TestDatesUseFixedFormat(t *testing.T) {
	rows := []model.Row{
		{Entry: model.Entry{Date: date(2024, 1, 5), Type: "credit", Amount: 1000}, Balance: 1000},
	}

	out, err := String(rows, DefaultColumns)
	require.NoError(t, err)
	assert.Contains(t, out, "05/01/2024", "exports must be locale-stable")
}

func TestFieldsWithCommasAreQuoted(t *testing.T) {
	rows := []model.Row{
		{Entry: model.Entry{Date: date(2024, 3, 1), Type: "debit", Description: "diesel, truck #2", Amount: 700}, Balance: -700},
	}

	out, err := String(rows, DefaultColumns)
	require.NoError(t, err)
	assert.Contains(t, out, `"diesel, truck #2"`)
}

func TestNegativeBalancesSurvive(t *testing.T) {
	rows := []model.Row{
		{Entry: model.Entry{Date: date(2024, 4, 2), Type: "debit", Amount: 33.33}, Balance: -33.33},
	}

	out, err := String(rows, DefaultColumns)
	require.NoError(t, err)

	got, err := Read(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, -33.33, got[0].Balance)
}

func TestEmptyLedgerExportsHeaderOnly(t *testing.T) {
	out, err := String(nil, DefaultColumns)
	require.NoError(t, err)
	assert.Equal(t, "Date,Type,Description,Amount,Balance\n", out)

	got, err := Read(strings.NewReader(out))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestColumnsSharedAcrossKinds(t *testing.T) {
	for _, kind := range []model.LedgerKind{model.BankPassbook, model.VendorPurchase, model.KabadiwalaPurchase, model.LabourPayroll} {
		assert.Equal(t, DefaultColumns, Columns(kind))
	}
}
