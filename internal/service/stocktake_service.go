package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/dto"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/stocktake"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/workflow"
)

// SheetStore is the persistence boundary for the stock-take master sheet.
// Implemented by infra.SheetStore (xlsx workbook); stubbed in tests.
type SheetStore interface {
	ReadAll() ([]stocktake.Row, error)
	WriteAll(rows []stocktake.Row) error
}

// StocktakeService serves editable views of the master sheet and merges edit
// passes back via the reconciliation engine. Each save rewrites the sheet
// wholesale — single-writer by contract.
type StocktakeService interface {
	View(ctx context.Context, req dto.StocktakeViewRequest) (*dto.StocktakeViewResponse, error)
	Save(ctx context.Context, req dto.StocktakeSaveRequest) (*dto.StocktakeSaveResponse, error)
}

type stocktakeService struct {
	store SheetStore
}

func NewStocktakeService(store SheetStore) StocktakeService {
	return &stocktakeService{store: store}
}

// View loads the master sheet and returns the requested subset. The subset is
// transient — it owns nothing; the caller must echo it back untouched as
// displayed_before when saving.
func (s *stocktakeService) View(ctx context.Context, req dto.StocktakeViewRequest) (*dto.StocktakeViewResponse, error) {
	master, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}

	view := filterRows(master, req.Filter)
	sortRows(view, req.SortBy)

	return &dto.StocktakeViewResponse{
		Rows:  mapRows(view),
		Total: len(master),
	}, nil
}

func (s *stocktakeService) Save(ctx context.Context, req dto.StocktakeSaveRequest) (*dto.StocktakeSaveResponse, error) {
	master, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}

	next := stocktake.Reconcile(master, unmapRows(req.DisplayedBefore), unmapRows(req.EditedView))

	// Every persisted save stamps the whole sheet.
	now := workflow.FormatDate(time.Now())
	for i := range next {
		next[i].LastUpdated = now
	}

	if err := s.store.WriteAll(next); err != nil {
		return nil, err
	}

	before := make(map[string]bool, len(master))
	for _, r := range master {
		before[r.ID] = true
	}
	inserted, surviving := 0, 0
	for _, r := range next {
		if before[r.ID] {
			surviving++
		} else {
			inserted++
		}
	}

	return &dto.StocktakeSaveResponse{
		Rows:     mapRows(next),
		Inserted: inserted,
		Deleted:  len(master) - surviving,
	}, nil
}

func filterRows(rows []stocktake.Row, filter string) []stocktake.Row {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		out := make([]stocktake.Row, len(rows))
		copy(out, rows)
		return out
	}
	out := make([]stocktake.Row, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.ItemCode), filter) ||
			strings.Contains(strings.ToLower(r.Description), filter) ||
			strings.Contains(strings.ToLower(r.Location), filter) {
			out = append(out, r)
		}
	}
	return out
}

func sortRows(rows []stocktake.Row, sortBy string) {
	switch sortBy {
	case "item_code":
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].ItemCode < rows[j].ItemCode })
	case "description":
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Description < rows[j].Description })
	case "location":
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Location < rows[j].Location })
	case "qty":
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Qty < rows[j].Qty })
	}
}

func mapRows(rows []stocktake.Row) []dto.StocktakeRow {
	out := make([]dto.StocktakeRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StocktakeRow{
			ID:          r.ID,
			ItemCode:    r.ItemCode,
			Description: r.Description,
			Category:    r.Category,
			Unit:        r.Unit,
			Location:    r.Location,
			Qty:         r.Qty,
			MinLevel:    r.MinLevel,
			MaxLevel:    r.MaxLevel,
			UnitCost:    r.UnitCost,
			LastUpdated: r.LastUpdated,
			ExternalID:  r.ExternalID,
		})
	}
	return out
}

func unmapRows(rows []dto.StocktakeRow) []stocktake.Row {
	out := make([]stocktake.Row, 0, len(rows))
	for _, r := range rows {
		out = append(out, stocktake.Row{
			ID:          r.ID,
			ItemCode:    r.ItemCode,
			Description: r.Description,
			Category:    r.Category,
			Unit:        r.Unit,
			Location:    r.Location,
			Qty:         r.Qty,
			MinLevel:    r.MinLevel,
			MaxLevel:    r.MaxLevel,
			UnitCost:    r.UnitCost,
			LastUpdated: r.LastUpdated,
			ExternalID:  r.ExternalID,
			Delete:      r.Delete,
		})
	}
	return out
}
