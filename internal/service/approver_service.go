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

type ApproverService interface {
	Create(ctx context.Context, req dto.CreateApproverRequest) (*dto.ApproverResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ApproverResponse, error)
	List(ctx context.Context) ([]dto.ApproverResponse, error)
}

type approverService struct {
	repo repository.ApproverRepository
}

func NewApproverService(repo repository.ApproverRepository) ApproverService {
	return &approverService{repo: repo}
}

func mapApprover(a model.Approver) dto.ApproverResponse {
	return dto.ApproverResponse{
		ID:          a.ID.String(),
		Name:        a.Name,
		Role:        a.Role,
		Email:       a.Email,
		LimitAmount: a.LimitAmount,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
	}
}

func (s *approverService) Create(ctx context.Context, req dto.CreateApproverRequest) (*dto.ApproverResponse, error) {
	a := &model.Approver{
		Name:        req.Name,
		Role:        req.Role,
		Email:       req.Email,
		LimitAmount: req.LimitAmount,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	resp := mapApprover(*a)
	return &resp, nil
}

func (s *approverService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ApproverResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("approver not found")
	}
	resp := mapApprover(*a)
	return &resp, nil
}

func (s *approverService) List(ctx context.Context) ([]dto.ApproverResponse, error) {
	approvers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ApproverResponse, 0, len(approvers))
	for _, a := range approvers {
		out = append(out, mapApprover(a))
	}
	return out, nil
}
