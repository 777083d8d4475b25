package dto

import "github.com/shopspring/decimal"

type CreateApproverRequest struct {
	Name        string          `json:"name"         validate:"required,min=1"`
	Role        *string         `json:"role"`
	Email       *string         `json:"email"        validate:"omitempty,email"`
	LimitAmount decimal.Decimal `json:"limit_amount" validate:"min=0"`
}

type ApproverResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Role        *string         `json:"role,omitempty"`
	Email       *string         `json:"email,omitempty"`
	LimitAmount decimal.Decimal `json:"limit_amount"`
	CreatedAt   string          `json:"created_at"`
}
