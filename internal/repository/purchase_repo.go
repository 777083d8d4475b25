package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/model"
)

// StatusCount is one row of the dashboard pipeline breakdown.
type StatusCount struct {
	Status string
	Count  int64
}

type PurchaseRepository interface {
	Create(ctx context.Context, p *model.Purchase) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error)
	List(ctx context.Context) ([]model.Purchase, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Purchase, error)
	ListByStatus(ctx context.Context, status string) ([]model.Purchase, error)
	Update(ctx context.Context, p *model.Purchase) error
	Count(ctx context.Context) (int64, error)
	TotalSpendExclVAT(ctx context.Context) (float64, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
}

type purchaseRepo struct{ db *gorm.DB }

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository { return &purchaseRepo{db: db} }

func (r *purchaseRepo) Create(ctx context.Context, p *model.Purchase) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *purchaseRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error) {
	var p model.Purchase
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Supplier").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *purchaseRepo) List(ctx context.Context) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Supplier").
		Order("created_at DESC").
		Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) ListByStatus(ctx context.Context, status string) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.WithContext(ctx).
		Preload("Project").
		Preload("Supplier").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepo) Update(ctx context.Context, p *model.Purchase) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *purchaseRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Purchase{}).Count(&n).Error
	return n, err
}

func (r *purchaseRepo) TotalSpendExclVAT(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&model.Purchase{}).
		Select("COALESCE(SUM(amount_excl_vat), 0)").
		Scan(&total).Error
	return total, err
}

func (r *purchaseRepo) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.WithContext(ctx).
		Model(&model.Purchase{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("count DESC").
		Scan(&counts).Error
	return counts, err
}
