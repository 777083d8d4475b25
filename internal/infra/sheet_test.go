package infra

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/stocktake"
)

func TestReadAllMissingFileIsEmptySheet(t *testing.T) {
	s := NewSheetStore(filepath.Join(t.TempDir(), "stocktake.xlsx"))

	rows, err := s.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	s := NewSheetStore(filepath.Join(t.TempDir(), "stocktake.xlsx"))

	in := []stocktake.Row{
		{
			ID:          "r1",
			ItemCode:    "BRG-6204",
			Description: "Bearing 6204",
			Category:    "Mechanical",
			Unit:        "ea",
			Location:    "Store A",
			Qty:         40,
			MinLevel:    10,
			MaxLevel:    80,
			UnitCost:    decimal.NewFromFloat(42.50),
			LastUpdated: "24 August 2026",
			ExternalID:  "SAP-000123",
		},
		{ID: "r2", ItemCode: "BLT-M12", Description: "Bolt M12x50", Qty: 500},
	}
	require.NoError(t, s.WriteAll(in))

	out, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "r1", out[0].ID)
	assert.Equal(t, "BRG-6204", out[0].ItemCode)
	assert.Equal(t, 40, out[0].Qty)
	assert.True(t, out[0].UnitCost.Equal(decimal.NewFromFloat(42.50)))
	assert.Equal(t, "24 August 2026", out[0].LastUpdated)
	assert.Equal(t, "SAP-000123", out[0].ExternalID)

	assert.Equal(t, "r2", out[1].ID)
	assert.Equal(t, 500, out[1].Qty)
}

func TestWriteAllHidesIdentityColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stocktake.xlsx")
	s := NewSheetStore(path)
	require.NoError(t, s.WriteAll([]stocktake.Row{{ID: "r1", ItemCode: "X"}}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	visible, err := f.GetColVisible("Stock", "A")
	require.NoError(t, err)
	assert.False(t, visible)
}

func TestWriteAllRewritesWholesale(t *testing.T) {
	s := NewSheetStore(filepath.Join(t.TempDir(), "stocktake.xlsx"))

	require.NoError(t, s.WriteAll([]stocktake.Row{
		{ID: "r1", ItemCode: "A"},
		{ID: "r2", ItemCode: "B"},
	}))
	require.NoError(t, s.WriteAll([]stocktake.Row{{ID: "r3", ItemCode: "C"}}))

	out, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "r3", out[0].ID)
}

func TestDecodeRowCoercesBadNumerics(t *testing.T) {
	r := decodeRow([]string{"r1", "X", "", "", "", "", "3.0", "oops", "", "not-a-price"})
	assert.Equal(t, 3, r.Qty)
	assert.Equal(t, 0, r.MinLevel)
	assert.True(t, r.UnitCost.IsZero())
}
