package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountCoercion(t *testing.T) {
	tests := []struct {
		name string
		json string
		want float64
	}{
		{"number", `{"amount": 1250.5}`, 1250.5},
		{"numeric string", `{"amount": "980"}`, 980},
		{"decimal string", `{"amount": "12.75"}`, 12.75},
		{"garbage string", `{"amount": "abc"}`, 0},
		{"empty string", `{"amount": ""}`, 0},
		{"null", `{"amount": null}`, 0},
		{"missing", `{}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e RawEntry
			require.NoError(t, json.Unmarshal([]byte(tt.json), &e))
			assert.Equal(t, tt.want, float64(e.Amount))
		})
	}
}

func TestRawEntryDecodesBackendShapes(t *testing.T) {
	// Bank rows carry type/reference/category; labour rows carry
	// entry_type and sometimes an explicit delta.
	payload := `[
		{"date": "2024-01-05", "type": "credit", "amount": "1500", "reference": "Mill payment", "mode": "UPI"},
		{"date": "2024-01-06", "entry_type": "Salary", "amount": 9000, "delta": -250}
	]`

	var entries []RawEntry
	require.NoError(t, json.Unmarshal([]byte(payload), &entries))
	require.Len(t, entries, 2)

	assert.Equal(t, "credit", entries[0].Type)
	assert.Equal(t, "Mill payment", entries[0].Reference)
	assert.Equal(t, "UPI", entries[0].Mode)
	assert.Nil(t, entries[0].Delta)

	assert.Equal(t, "Salary", entries[1].EntryType)
	require.NotNil(t, entries[1].Delta)
	assert.Equal(t, -250.0, *entries[1].Delta)
}
