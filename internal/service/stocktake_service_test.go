package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/dto"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/stocktake"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/workflow"
)

// stubSheetStore holds the master sheet in memory.
type stubSheetStore struct {
	rows   []stocktake.Row
	writes int
}

func (s *stubSheetStore) ReadAll() ([]stocktake.Row, error) {
	out := make([]stocktake.Row, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *stubSheetStore) WriteAll(rows []stocktake.Row) error {
	s.rows = rows
	s.writes++
	return nil
}

func sheetFixture() *stubSheetStore {
	return &stubSheetStore{rows: []stocktake.Row{
		{ID: "a", ItemCode: "BRG-6204", Description: "Bearing 6204", Location: "Store A", Qty: 40},
		{ID: "b", ItemCode: "BLT-M12", Description: "Bolt M12x50", Location: "Store B", Qty: 500},
		{ID: "c", ItemCode: "GSK-150", Description: "Gasket 150NB", Location: "Store A", Qty: 12},
	}}
}

func rowIDs(rows []dto.StocktakeRow) []string {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestViewUnfiltered(t *testing.T) {
	svc := NewStocktakeService(sheetFixture())

	resp, err := svc.View(context.Background(), dto.StocktakeViewRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Rows, 3)
	assert.Equal(t, 3, resp.Total)
}

func TestViewFilterMatchesCodeDescriptionLocation(t *testing.T) {
	svc := NewStocktakeService(sheetFixture())

	resp, err := svc.View(context.Background(), dto.StocktakeViewRequest{Filter: "store a"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "c"}, rowIDs(resp.Rows))
	assert.Equal(t, 3, resp.Total, "total reflects the full sheet")

	resp, err = svc.View(context.Background(), dto.StocktakeViewRequest{Filter: "gasket"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, rowIDs(resp.Rows))
}

func TestViewSortByQty(t *testing.T) {
	svc := NewStocktakeService(sheetFixture())

	resp, err := svc.View(context.Background(), dto.StocktakeViewRequest{SortBy: "qty"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, rowIDs(resp.Rows))
}

func TestSaveFilteredEditPreservesHiddenRows(t *testing.T) {
	store := sheetFixture()
	svc := NewStocktakeService(store)

	// Editor saw only Store A rows and bumped one quantity.
	displayed := []dto.StocktakeRow{
		{ID: "a", ItemCode: "BRG-6204", Description: "Bearing 6204", Location: "Store A", Qty: 40},
		{ID: "c", ItemCode: "GSK-150", Description: "Gasket 150NB", Location: "Store A", Qty: 12},
	}
	edited := make([]dto.StocktakeRow, len(displayed))
	copy(edited, displayed)
	edited[0].Qty = 38

	resp, err := svc.Save(context.Background(), dto.StocktakeSaveRequest{
		DisplayedBefore: displayed,
		EditedView:      edited,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Rows, 3, "row b survives although it was filtered out")
	assert.Equal(t, 0, resp.Inserted)
	assert.Equal(t, 0, resp.Deleted)

	for _, r := range store.rows {
		if r.ID == "a" {
			assert.Equal(t, 38, r.Qty)
		}
		if r.ID == "b" {
			assert.Equal(t, 500, r.Qty)
		}
	}
}

func TestSaveStampsLastUpdatedOnAllRows(t *testing.T) {
	store := sheetFixture()
	svc := NewStocktakeService(store)

	resp, err := svc.Save(context.Background(), dto.StocktakeSaveRequest{
		DisplayedBefore: []dto.StocktakeRow{{ID: "a", ItemCode: "BRG-6204", Qty: 40}},
		EditedView:      []dto.StocktakeRow{{ID: "a", ItemCode: "BRG-6204", Qty: 41}},
	})
	require.NoError(t, err)

	today := workflow.FormatDate(time.Now())
	for _, r := range resp.Rows {
		assert.Equal(t, today, r.LastUpdated)
	}
}

func TestSaveCountsInsertsAndDeletes(t *testing.T) {
	store := sheetFixture()
	svc := NewStocktakeService(store)

	resp, err := svc.Save(context.Background(), dto.StocktakeSaveRequest{
		DisplayedBefore: []dto.StocktakeRow{
			{ID: "a", ItemCode: "BRG-6204", Qty: 40},
			{ID: "b", ItemCode: "BLT-M12", Qty: 500},
		},
		EditedView: []dto.StocktakeRow{
			{ID: "a", ItemCode: "BRG-6204", Qty: 40},
			{ID: "b", ItemCode: "BLT-M12", Delete: true},
			{ItemCode: "VLV-050", Description: "Ball valve 50NB", Qty: 6},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Inserted)
	assert.Equal(t, 1, resp.Deleted)
	assert.Len(t, resp.Rows, 3)
	assert.Equal(t, 1, store.writes)

	for _, r := range store.rows {
		assert.NotEqual(t, "b", r.ID)
		if r.ItemCode == "VLV-050" {
			assert.NotEmpty(t, r.ID, "inserted row got an identity")
		}
	}
}

func TestSaveEmptyEditIsANoOpMerge(t *testing.T) {
	store := sheetFixture()
	svc := NewStocktakeService(store)

	resp, err := svc.Save(context.Background(), dto.StocktakeSaveRequest{
		DisplayedBefore: nil,
		EditedView:      []dto.StocktakeRow{},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Rows, 3, "an empty edit pass deletes nothing")
	assert.Equal(t, 0, resp.Inserted)
	assert.Equal(t, 0, resp.Deleted)
}
