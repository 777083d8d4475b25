// Package stocktake holds the stock-take reconciliation engine: merging an
// edited, filtered and reordered view of the inventory sheet back into the
// authoritative master row set by stable row identity.
package stocktake

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Row is one stock-keeping record. ID is an opaque identity assigned once by
// the engine and never shown to the editor; Delete only has meaning on rows
// inside an edited view.
type Row struct {
	ID          string
	ItemCode    string
	Description string
	Category    string
	Unit        string
	Location    string
	Qty         int
	MinLevel    int
	MaxLevel    int
	UnitCost    decimal.Decimal
	LastUpdated string
	ExternalID  string
	Delete      bool
}

// HasKeyField reports whether the row carries content in at least one
// designated key field after trimming. Identity-less rows without a key field
// are editor artifacts (the blank trailing row) and are never persisted.
func (r Row) HasKeyField() bool {
	return strings.TrimSpace(r.ItemCode) != "" || strings.TrimSpace(r.Description) != ""
}

// normalize trims string fields and clamps numeric fields to their lower
// bounds. Unparseable numerics were already coerced to zero at decode time.
func (r Row) normalize() Row {
	r.ItemCode = strings.TrimSpace(r.ItemCode)
	r.Description = strings.TrimSpace(r.Description)
	r.Category = strings.TrimSpace(r.Category)
	r.Unit = strings.TrimSpace(r.Unit)
	r.Location = strings.TrimSpace(r.Location)
	r.ExternalID = strings.TrimSpace(r.ExternalID)
	if r.Qty < 0 {
		r.Qty = 0
	}
	if r.MinLevel < 0 {
		r.MinLevel = 0
	}
	if r.MaxLevel < 0 {
		r.MaxLevel = 0
	}
	if r.UnitCost.IsNegative() {
		r.UnitCost = decimal.Zero
	}
	r.Delete = false
	return r
}
