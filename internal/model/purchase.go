package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/workflow"
)

// Purchase is one procurement transaction moving through the RFQ → receipting
// pipeline. The seven milestone date columns are stored as display strings
// ("24 August 2025"); Status is always derived from them via
// workflow.DeriveStatus and is rewritten on every stage update.
type Purchase struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID       uuid.UUID `gorm:"type:uuid;not null;index"`
	SupplierID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemDescription string
	Category        string          `gorm:"not null;default:'Goods'"` // Goods | Services
	AmountExclVAT   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	VATPercent      decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	PaymentTerms    *string

	RFQSentDate              *string
	QuoteReceivedDate        *string
	RequisitionRequestedDate *string
	OrderSentDate            *string
	DeliveredDate            *string
	InvoiceSignedDate        *string
	ReceiptingSentDate       *string

	Status    string `gorm:"not null;index"`
	CreatedAt time.Time

	Project   *Project   `gorm:"foreignKey:ProjectID"`
	Supplier  *Supplier  `gorm:"foreignKey:SupplierID"`
	Documents []Document `gorm:"foreignKey:PurchaseID"`
}

func (Purchase) TableName() string { return "purchases" }

// milestoneField returns a pointer to the column backing the given stage.
func (p *Purchase) milestoneField(s workflow.Stage) **string {
	switch s {
	case workflow.StageRFQSent:
		return &p.RFQSentDate
	case workflow.StageQuoteReceived:
		return &p.QuoteReceivedDate
	case workflow.StageRequisitionRequested:
		return &p.RequisitionRequestedDate
	case workflow.StageOrderSent:
		return &p.OrderSentDate
	case workflow.StageDelivered:
		return &p.DeliveredDate
	case workflow.StageInvoiceSigned:
		return &p.InvoiceSignedDate
	case workflow.StageSentForReceipting:
		return &p.ReceiptingSentDate
	}
	return nil
}

// Milestones snapshots all seven milestone columns keyed by stage.
func (p *Purchase) Milestones() workflow.Milestones {
	m := workflow.Milestones{}
	for _, s := range workflow.Stages() {
		if f := p.milestoneField(s); f != nil && *f != nil {
			m[s] = **f
		}
	}
	return m
}

// SetMilestone writes one milestone date. A blank date clears the column.
func (p *Purchase) SetMilestone(s workflow.Stage, date string) {
	f := p.milestoneField(s)
	if f == nil {
		return
	}
	if date == "" {
		*f = nil
		return
	}
	d := date
	*f = &d
}

// RefreshStatus recomputes Status from the current milestone set and returns
// the new label.
func (p *Purchase) RefreshStatus() string {
	p.Status = workflow.DeriveStatus(p.Milestones())
	return p.Status
}
