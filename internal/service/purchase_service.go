package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/config"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/dto"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/model"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/repository"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/workflow"
)

// PurchaseService owns the purchase lifecycle: creation with derived status
// and single-milestone stage updates.
type PurchaseService interface {
	Create(ctx context.Context, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.PurchaseResponse, error)
	List(ctx context.Context) ([]dto.PurchaseResponse, error)
	ListByStatus(ctx context.Context, status string) ([]dto.PurchaseResponse, error)
	// UpdateStage sets exactly one milestone date (blank clears it), re-derives
	// the status over the full milestone set, persists both and returns the new
	// label. No other purchase fields are touched.
	UpdateStage(ctx context.Context, id uuid.UUID, req dto.UpdateStageRequest) (*dto.UpdateStageResponse, error)
}

type purchaseService struct {
	repo         repository.PurchaseRepository
	projectRepo  repository.ProjectRepository
	supplierRepo repository.SupplierRepository
	settings     *config.SettingsStore
}

func NewPurchaseService(
	repo repository.PurchaseRepository,
	projectRepo repository.ProjectRepository,
	supplierRepo repository.SupplierRepository,
	settings *config.SettingsStore,
) PurchaseService {
	return &purchaseService{
		repo:         repo,
		projectRepo:  projectRepo,
		supplierRepo: supplierRepo,
		settings:     settings,
	}
}

func (s *purchaseService) Create(ctx context.Context, req dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("invalid project_id: %w", err)
	}
	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("invalid supplier_id: %w", err)
	}
	if _, err := s.projectRepo.FindByID(ctx, projectID); err != nil {
		return nil, errors.New("project not found")
	}
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return nil, errors.New("supplier not found")
	}

	category := req.Category
	if category == "" {
		category = "Goods"
	}
	// Settings are re-read per create so a VAT change applies immediately.
	// An explicit vat_percent — zero included — always wins over the default.
	vat := decimal.NewFromFloat(s.settings.Load().VATPercent)
	if req.VATPercent != nil {
		vat = *req.VATPercent
	}

	p := &model.Purchase{
		ProjectID:       projectID,
		SupplierID:      supplierID,
		ItemDescription: req.ItemDescription,
		Category:        category,
		AmountExclVAT:   req.AmountExclVAT,
		VATPercent:      vat,
		PaymentTerms:    req.PaymentTerms,
	}

	for label, date := range req.Milestones {
		stage, err := workflow.ParseStage(label)
		if err != nil {
			return nil, err
		}
		p.SetMilestone(stage, date)
	}
	p.RefreshStatus()

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return mapPurchase(p), nil
}

func (s *purchaseService) GetByID(ctx context.Context, id uuid.UUID) (*dto.PurchaseResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("purchase not found")
	}
	return mapPurchase(p), nil
}

func (s *purchaseService) List(ctx context.Context) ([]dto.PurchaseResponse, error) {
	purchases, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapPurchases(purchases), nil
}

func (s *purchaseService) ListByStatus(ctx context.Context, status string) ([]dto.PurchaseResponse, error) {
	if status != workflow.StatusNotStarted {
		if _, err := workflow.ParseStage(status); err != nil {
			return nil, err
		}
	}
	purchases, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return mapPurchases(purchases), nil
}

func (s *purchaseService) UpdateStage(ctx context.Context, id uuid.UUID, req dto.UpdateStageRequest) (*dto.UpdateStageResponse, error) {
	stage, err := workflow.ParseStage(req.Stage)
	if err != nil {
		return nil, err
	}
	if req.Date != "" {
		if _, err := workflow.ParseDate(req.Date); err != nil {
			return nil, err
		}
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("purchase not found")
	}

	p.SetMilestone(stage, req.Date)
	status := p.RefreshStatus()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return &dto.UpdateStageResponse{
		ID:     p.ID.String(),
		Stage:  stage.Label(),
		Date:   req.Date,
		Status: status,
	}, nil
}

// ─── Mapping ─────────────────────────────────────────────────────────────────

func mapPurchase(p *model.Purchase) *dto.PurchaseResponse {
	milestones := make(map[string]string)
	for stage, date := range p.Milestones() {
		milestones[stage.Label()] = date
	}

	resp := &dto.PurchaseResponse{
		ID:              p.ID.String(),
		ProjectID:       p.ProjectID.String(),
		SupplierID:      p.SupplierID.String(),
		ItemDescription: p.ItemDescription,
		Category:        p.Category,
		AmountExclVAT:   p.AmountExclVAT,
		VATPercent:      p.VATPercent,
		PaymentTerms:    p.PaymentTerms,
		Milestones:      milestones,
		Status:          p.Status,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
	if p.Project != nil {
		resp.ProjectName = p.Project.Name
	}
	if p.Supplier != nil {
		resp.SupplierLabel = supplierLabel(p.Supplier)
	}
	return resp
}

func mapPurchases(purchases []model.Purchase) []dto.PurchaseResponse {
	out := make([]dto.PurchaseResponse, 0, len(purchases))
	for i := range purchases {
		out = append(out, *mapPurchase(&purchases[i]))
	}
	return out
}

// supplierLabel renders "Company — Contact" or just the contact name.
func supplierLabel(s *model.Supplier) string {
	if s.Company != nil && *s.Company != "" {
		return *s.Company + " — " + s.ContactName
	}
	return s.ContactName
}
