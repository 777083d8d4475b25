package dto

import "github.com/shopspring/decimal"

// StocktakeRow is the wire form of one sheet row. ID is blank for rows the
// editor inserted; Delete is only honored on save.
type StocktakeRow struct {
	ID          string          `json:"id"`
	ItemCode    string          `json:"item_code"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Unit        string          `json:"unit"`
	Location    string          `json:"location"`
	Qty         int             `json:"qty"`
	MinLevel    int             `json:"min_level"`
	MaxLevel    int             `json:"max_level"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	LastUpdated string          `json:"last_updated,omitempty"`
	ExternalID  string          `json:"external_id,omitempty"`
	Delete      bool            `json:"delete,omitempty"`
}

// StocktakeViewRequest asks for a (possibly filtered/sorted) view of the
// master sheet to edit.
type StocktakeViewRequest struct {
	Filter string `json:"filter" form:"filter"` // substring match on item code / description / location
	SortBy string `json:"sort_by" form:"sort_by" validate:"omitempty,oneof=item_code description location qty"`
}

type StocktakeViewResponse struct {
	Rows  []StocktakeRow `json:"rows"`
	Total int            `json:"total"` // master row count, before filtering
}

// StocktakeSaveRequest carries the edit pass back: the view as displayed
// before editing and the same view afterwards.
type StocktakeSaveRequest struct {
	DisplayedBefore []StocktakeRow `json:"displayed_before"`
	EditedView      []StocktakeRow `json:"edited_view" validate:"required"`
}

type StocktakeSaveResponse struct {
	Rows     []StocktakeRow `json:"rows"`
	Inserted int            `json:"inserted"`
	Deleted  int            `json:"deleted"`
}
