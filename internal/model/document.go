package model

import (
	"time"

	"github.com/google/uuid"
)

// Document type enum — mirrors the project folder names.
const (
	DocTypeQuote       = "Quote"
	DocTypeRequisition = "Requisition"
	DocTypeOrder       = "Order"
	DocTypeDelivery    = "Delivery"
	DocTypeInvoice     = "Invoice"
)

// DocTypes lists all document types in display order.
func DocTypes() []string {
	return []string{DocTypeQuote, DocTypeRequisition, DocTypeOrder, DocTypeDelivery, DocTypeInvoice}
}

// ValidDocType reports whether t is a known document type.
func ValidDocType(t string) bool {
	for _, d := range DocTypes() {
		if d == t {
			return true
		}
	}
	return false
}

// Document is one stored artifact (upload or generated PDF) attached to a
// purchase. Within a (purchase, doc type) pair versions are unique and
// monotonic, and exactly one row has Current=true — the newest insert.
// Documents are never updated in place except for the Current flag, and
// never deleted.
type Document struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PurchaseID uuid.UUID `gorm:"type:uuid;not null;index:idx_documents_purchase_type"`
	DocType    string    `gorm:"not null;index:idx_documents_purchase_type"`
	Filename   string    `gorm:"not null"`
	SavedPath  string    `gorm:"not null"`
	Version    int       `gorm:"not null;default:1"`
	Current    bool      `gorm:"not null;default:true"`
	UploadedAt time.Time

	Purchase *Purchase `gorm:"foreignKey:PurchaseID"`
}

func (Document) TableName() string { return "documents" }
