package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/model"
)

type ApproverRepository interface {
	Create(ctx context.Context, a *model.Approver) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Approver, error)
	List(ctx context.Context) ([]model.Approver, error)
}

type approverRepo struct{ db *gorm.DB }

func NewApproverRepository(db *gorm.DB) ApproverRepository { return &approverRepo{db: db} }

func (r *approverRepo) Create(ctx context.Context, a *model.Approver) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *approverRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Approver, error) {
	var a model.Approver
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *approverRepo) List(ctx context.Context) ([]model.Approver, error) {
	var approvers []model.Approver
	err := r.db.WithContext(ctx).Order("limit_amount DESC").Find(&approvers).Error
	return approvers, err
}
