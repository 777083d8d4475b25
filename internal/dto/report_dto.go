package dto

import "github.com/shopspring/decimal"

type ProjectReportResponse struct {
	ProjectID     string             `json:"project_id"`
	ProjectName   string             `json:"project_name"`
	Currency      string             `json:"currency"`
	TotalExclVAT  decimal.Decimal    `json:"total_excl_vat"`
	TotalVAT      decimal.Decimal    `json:"total_vat"`
	TotalInclVAT  decimal.Decimal    `json:"total_incl_vat"`
	Purchases     []PurchaseResponse `json:"purchases"`
	PurchaseCount int                `json:"purchase_count"`
}

type EmailReportRequest struct {
	ApproverID string `json:"approver_id" validate:"required,uuid"`
}

type EmailReportResponse struct {
	SentTo  string `json:"sent_to"`
	PDFPath string `json:"pdf_path"`
}
