package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreatePurchaseRequest captures a new purchase. Milestones maps stage labels
// ("RFQ Sent", …) to dates in "2 January 2006" form; any subset may be given.
type CreatePurchaseRequest struct {
	ProjectID       string            `json:"project_id"      validate:"required,uuid"`
	SupplierID      string            `json:"supplier_id"     validate:"required,uuid"`
	ItemDescription string            `json:"item_description"`
	Category        string            `json:"category"        validate:"omitempty,oneof=Goods Services"`
	AmountExclVAT   decimal.Decimal   `json:"amount_excl_vat" validate:"min=0"`
	// VATPercent nil means "use the configured default"; an explicit 0 is a
	// zero-rated purchase and is kept as-is.
	VATPercent   *decimal.Decimal  `json:"vat_percent"   validate:"omitempty,min=0,max=100"`
	PaymentTerms *string           `json:"payment_terms"`
	Milestones   map[string]string `json:"milestones"`
}

// UpdateStageRequest sets exactly one milestone date. A blank date clears the
// milestone; either way the status is re-derived over the full set.
type UpdateStageRequest struct {
	Stage string `json:"stage" validate:"required"`
	Date  string `json:"date"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PurchaseResponse struct {
	ID              string            `json:"id"`
	ProjectID       string            `json:"project_id"`
	ProjectName     string            `json:"project_name,omitempty"`
	SupplierID      string            `json:"supplier_id"`
	SupplierLabel   string            `json:"supplier_label,omitempty"`
	ItemDescription string            `json:"item_description"`
	Category        string            `json:"category"`
	AmountExclVAT   decimal.Decimal   `json:"amount_excl_vat"`
	VATPercent      decimal.Decimal   `json:"vat_percent"`
	PaymentTerms    *string           `json:"payment_terms,omitempty"`
	Milestones      map[string]string `json:"milestones"`
	Status          string            `json:"status"`
	CreatedAt       string            `json:"created_at"`
}

type UpdateStageResponse struct {
	ID     string `json:"id"`
	Stage  string `json:"stage"`
	Date   string `json:"date,omitempty"`
	Status string `json:"status"`
}
