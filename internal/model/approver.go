package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Approver is a person with a signing limit. Purchases above an approver's
// LimitAmount (excl VAT) need someone further up the list.
type Approver struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"not null"`
	Role        *string
	Email       *string
	LimitAmount decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CreatedAt   time.Time
}

func (Approver) TableName() string { return "approvers" }
