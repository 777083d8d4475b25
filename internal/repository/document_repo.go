package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/model"
)

// DocumentRepository persists the document ledger. The Tx variants let the
// service run the insert-then-demote sequence inside a single transaction.
type DocumentRepository interface {
	// DB exposes the underlying handle for transaction scoping; nil in unit
	// tests where the stub repo runs everything in memory.
	DB() *gorm.DB
	MaxVersionTx(tx *gorm.DB, purchaseID uuid.UUID, docType string) (int, error)
	CreateTx(tx *gorm.DB, d *model.Document) error
	DemoteSiblingsTx(tx *gorm.DB, purchaseID uuid.UUID, docType string, keep uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Document, error)
	ListByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]model.Document, error)
	ListRecent(ctx context.Context, limit int) ([]model.Document, error)
}

type documentRepo struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) DocumentRepository { return &documentRepo{db: db} }

func (r *documentRepo) DB() *gorm.DB { return r.db }

func (r *documentRepo) MaxVersionTx(tx *gorm.DB, purchaseID uuid.UUID, docType string) (int, error) {
	var max int
	err := tx.Model(&model.Document{}).
		Select("COALESCE(MAX(version), 0)").
		Where("purchase_id = ? AND doc_type = ?", purchaseID, docType).
		Scan(&max).Error
	return max, err
}

func (r *documentRepo) CreateTx(tx *gorm.DB, d *model.Document) error {
	return tx.Create(d).Error
}

func (r *documentRepo) DemoteSiblingsTx(tx *gorm.DB, purchaseID uuid.UUID, docType string, keep uuid.UUID) error {
	return tx.Model(&model.Document{}).
		Where("purchase_id = ? AND doc_type = ? AND id <> ?", purchaseID, docType, keep).
		Update("current", false).Error
}

func (r *documentRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	var d model.Document
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	return &d, err
}

func (r *documentRepo) ListByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]model.Document, error) {
	var docs []model.Document
	err := r.db.WithContext(ctx).
		Where("purchase_id = ?", purchaseID).
		Order("doc_type, version DESC").
		Find(&docs).Error
	return docs, err
}

func (r *documentRepo) ListRecent(ctx context.Context, limit int) ([]model.Document, error) {
	var docs []model.Document
	err := r.db.WithContext(ctx).
		Order("uploaded_at DESC").
		Limit(limit).
		Find(&docs).Error
	return docs, err
}
