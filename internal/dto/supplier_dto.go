package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateSupplierRequest struct {
	ContactName string  `json:"contact_name" validate:"required,min=1"`
	Company     *string `json:"company"`
	Email       *string `json:"email"        validate:"omitempty,email"`
	Phone       *string `json:"phone"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SupplierResponse struct {
	ID          string  `json:"id"`
	ContactName string  `json:"contact_name"`
	Company     *string `json:"company,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	CreatedAt   string  `json:"created_at"`
}
