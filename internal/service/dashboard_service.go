package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/config"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/dto"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/repository"
)

const (
	dashboardCacheKey = "dashboard:summary"
	dashboardCacheTTL = 60 * time.Second
)

// DashboardService aggregates the landing-page metrics. Results are cached in
// Redis for a short TTL; writes invalidate the key best-effort.
type DashboardService interface {
	Summary(ctx context.Context) (*dto.DashboardResponse, error)
	Invalidate(ctx context.Context)
}

type dashboardService struct {
	supplierRepo repository.SupplierRepository
	projectRepo  repository.ProjectRepository
	purchaseRepo repository.PurchaseRepository
	settings     *config.SettingsStore
	rdb          *redis.Client
}

func NewDashboardService(
	supplierRepo repository.SupplierRepository,
	projectRepo repository.ProjectRepository,
	purchaseRepo repository.PurchaseRepository,
	settings *config.SettingsStore,
	rdb *redis.Client,
) DashboardService {
	return &dashboardService{
		supplierRepo: supplierRepo,
		projectRepo:  projectRepo,
		purchaseRepo: purchaseRepo,
		settings:     settings,
		rdb:          rdb,
	}
}

func (s *dashboardService) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var resp dto.DashboardResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	suppliers, err := s.supplierRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projectRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	purchases, err := s.purchaseRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	spend, err := s.purchaseRepo.TotalSpendExclVAT(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.purchaseRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.purchaseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(recent) > 25 {
		recent = recent[:25]
	}

	pipeline := make([]dto.PipelineCount, 0, len(counts))
	for _, c := range counts {
		pipeline = append(pipeline, dto.PipelineCount{Status: c.Status, Count: c.Count})
	}

	resp := &dto.DashboardResponse{
		Suppliers:    suppliers,
		Projects:     projects,
		Purchases:    purchases,
		SpendExclVAT: decimal.NewFromFloat(spend),
		Currency:     s.settings.Load().Currency,
		Pipeline:     pipeline,
		Recent:       mapPurchases(recent),
	}

	if s.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = s.rdb.Set(ctx, dashboardCacheKey, b, dashboardCacheTTL).Err()
		}
	}
	return resp, nil
}

// Invalidate drops the cached summary. Best effort — a stale dashboard for
// one TTL window is acceptable.
func (s *dashboardService) Invalidate(ctx context.Context) {
	if s.rdb != nil {
		_ = s.rdb.Del(ctx, dashboardCacheKey).Err()
	}
}
