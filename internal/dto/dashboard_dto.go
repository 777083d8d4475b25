package dto

import "github.com/shopspring/decimal"

type PipelineCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DashboardResponse struct {
	Suppliers    int64              `json:"suppliers"`
	Projects     int64              `json:"projects"`
	Purchases    int64              `json:"purchases"`
	SpendExclVAT decimal.Decimal    `json:"spend_excl_vat"`
	Currency     string             `json:"currency"`
	Pipeline     []PipelineCount    `json:"pipeline"`
	Recent       []PurchaseResponse `json:"recent_purchases"`
}
