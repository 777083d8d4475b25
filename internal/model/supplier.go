package model

import (
	"time"

	"github.com/google/uuid"
)

// Supplier is one vendor the business buys from. ContactName is the only
// mandatory field — suppliers are often captured from an email signature
// before the company details are known.
type Supplier struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ContactName string    `gorm:"not null"`
	Company     *string
	Email       *string
	Phone       *string
	CreatedAt   time.Time

	Purchases []Purchase `gorm:"foreignKey:SupplierID"`
}

func (Supplier) TableName() string { return "suppliers" }
