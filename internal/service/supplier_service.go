package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/dto"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/model"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/repository"
)

type SupplierService interface {
	Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error)
	List(ctx context.Context) ([]dto.SupplierResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func mapSupplier(s model.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:          s.ID.String(),
		ContactName: s.ContactName,
		Company:     s.Company,
		Email:       s.Email,
		Phone:       s.Phone,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
	}
}

func (s *supplierService) Create(ctx context.Context, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	sup := &model.Supplier{
		ContactName: req.ContactName,
		Company:     req.Company,
		Email:       req.Email,
		Phone:       req.Phone,
	}
	if err := s.repo.Create(ctx, sup); err != nil {
		return nil, err
	}
	resp := mapSupplier(*sup)
	return &resp, nil
}

func (s *supplierService) GetByID(ctx context.Context, id uuid.UUID) (*dto.SupplierResponse, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("supplier not found")
	}
	resp := mapSupplier(*sup)
	return &resp, nil
}

func (s *supplierService) List(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, sup := range suppliers {
		out = append(out, mapSupplier(sup))
	}
	return out, nil
}

func (s *supplierService) Update(ctx context.Context, id uuid.UUID, req dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("supplier not found")
	}
	sup.ContactName = req.ContactName
	sup.Company = req.Company
	sup.Email = req.Email
	sup.Phone = req.Phone
	if err := s.repo.Update(ctx, sup); err != nil {
		return nil, err
	}
	resp := mapSupplier(*sup)
	return &resp, nil
}
