package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/config"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/dto"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/model"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/repository"
)

// ─── In-memory stubs ─────────────────────────────────────────────────────────

type stubPurchaseRepo struct {
	purchases map[uuid.UUID]*model.Purchase
}

func newStubPurchaseRepo() *stubPurchaseRepo {
	return &stubPurchaseRepo{purchases: make(map[uuid.UUID]*model.Purchase)}
}

func (r *stubPurchaseRepo) Create(_ context.Context, p *model.Purchase) error {
	p.ID = uuid.New()
	r.purchases[p.ID] = p
	return nil
}

func (r *stubPurchaseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Purchase, error) {
	p, ok := r.purchases[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPurchaseRepo) List(_ context.Context) ([]model.Purchase, error) {
	var out []model.Purchase
	for _, p := range r.purchases {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPurchaseRepo) ListByProject(_ context.Context, projectID uuid.UUID) ([]model.Purchase, error) {
	var out []model.Purchase
	for _, p := range r.purchases {
		if p.ProjectID == projectID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPurchaseRepo) ListByStatus(_ context.Context, status string) ([]model.Purchase, error) {
	var out []model.Purchase
	for _, p := range r.purchases {
		if p.Status == status {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPurchaseRepo) Update(_ context.Context, p *model.Purchase) error {
	r.purchases[p.ID] = p
	return nil
}

func (r *stubPurchaseRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.purchases)), nil
}

func (r *stubPurchaseRepo) TotalSpendExclVAT(_ context.Context) (float64, error) {
	total := 0.0
	for _, p := range r.purchases {
		f, _ := p.AmountExclVAT.Float64()
		total += f
	}
	return total, nil
}

func (r *stubPurchaseRepo) CountByStatus(_ context.Context) ([]repository.StatusCount, error) {
	byStatus := make(map[string]int64)
	for _, p := range r.purchases {
		byStatus[p.Status]++
	}
	var out []repository.StatusCount
	for s, n := range byStatus {
		out = append(out, repository.StatusCount{Status: s, Count: n})
	}
	return out, nil
}

type stubProjectRepo struct {
	projects map[uuid.UUID]*model.Project
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[uuid.UUID]*model.Project)}
}

func (r *stubProjectRepo) Create(_ context.Context, p *model.Project) error {
	p.ID = uuid.New()
	r.projects[p.ID] = p
	return nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProjectRepo) FindByName(_ context.Context, name string) (*model.Project, error) {
	for _, p := range r.projects {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProjectRepo) List(_ context.Context) ([]model.Project, error) {
	var out []model.Project
	for _, p := range r.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *model.Project) error {
	r.projects[p.ID] = p
	return nil
}

func (r *stubProjectRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.projects)), nil
}

type stubSupplierRepo struct {
	suppliers map[uuid.UUID]*model.Supplier
}

func newStubSupplierRepo() *stubSupplierRepo {
	return &stubSupplierRepo{suppliers: make(map[uuid.UUID]*model.Supplier)}
}

func (r *stubSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	s.ID = uuid.New()
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubSupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	var out []model.Supplier
	for _, s := range r.suppliers {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *stubSupplierRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.suppliers)), nil
}

// ─── Fixtures ────────────────────────────────────────────────────────────────

func purchaseSettings(t *testing.T) *config.SettingsStore {
	t.Helper()
	return config.NewSettingsStore(&config.Config{
		DataRoot:   t.TempDir(),
		Currency:   "ZAR",
		VATPercent: 15.0,
	})
}

func purchaseFixture(t *testing.T) (PurchaseService, *stubPurchaseRepo, uuid.UUID, uuid.UUID) {
	t.Helper()
	repo := newStubPurchaseRepo()
	projects := newStubProjectRepo()
	suppliers := newStubSupplierRepo()

	project := &model.Project{Name: "Line 4 Rebuild"}
	require.NoError(t, projects.Create(context.Background(), project))
	supplier := &model.Supplier{ContactName: "Sipho Dlamini"}
	require.NoError(t, suppliers.Create(context.Background(), supplier))

	svc := NewPurchaseService(repo, projects, suppliers, purchaseSettings(t))
	return svc, repo, project.ID, supplier.ID
}

// ─── Tests ───────────────────────────────────────────────────────────────────

func TestCreatePurchaseNoMilestones(t *testing.T) {
	svc, _, projectID, supplierID := purchaseFixture(t)

	resp, err := svc.Create(context.Background(), dto.CreatePurchaseRequest{
		ProjectID:       projectID.String(),
		SupplierID:      supplierID.String(),
		ItemDescription: "Conveyor rollers",
		AmountExclVAT:   decimal.NewFromInt(12000),
	})
	require.NoError(t, err)
	assert.Equal(t, "Not Started", resp.Status)
	assert.Equal(t, "Goods", resp.Category, "category defaults")
	assert.True(t, resp.VATPercent.Equal(decimal.NewFromFloat(15.0)), "VAT defaults from settings")
}

func TestCreatePurchaseZeroRatedVAT(t *testing.T) {
	svc, _, projectID, supplierID := purchaseFixture(t)

	zero := decimal.Zero
	resp, err := svc.Create(context.Background(), dto.CreatePurchaseRequest{
		ProjectID:       projectID.String(),
		SupplierID:      supplierID.String(),
		ItemDescription: "Exported spares",
		AmountExclVAT:   decimal.NewFromInt(9000),
		VATPercent:      &zero,
	})
	require.NoError(t, err)
	assert.True(t, resp.VATPercent.IsZero(), "explicit zero VAT is kept, not replaced by the default")
}

func TestCreatePurchaseVATDefaultTracksSettings(t *testing.T) {
	repo := newStubPurchaseRepo()
	projects := newStubProjectRepo()
	suppliers := newStubSupplierRepo()
	settings := purchaseSettings(t)

	project := &model.Project{Name: "Crusher Overhaul"}
	require.NoError(t, projects.Create(context.Background(), project))
	supplier := &model.Supplier{ContactName: "Thandi Nkosi"}
	require.NoError(t, suppliers.Create(context.Background(), supplier))

	svc := NewPurchaseService(repo, projects, suppliers, settings)

	// Lower the default VAT after the service is wired; the next create
	// must pick up the new value without a restart.
	updated := settings.Load()
	updated.VATPercent = 10.0
	require.NoError(t, settings.Save(updated))

	resp, err := svc.Create(context.Background(), dto.CreatePurchaseRequest{
		ProjectID:  project.ID.String(),
		SupplierID: supplier.ID.String(),
	})
	require.NoError(t, err)
	assert.True(t, resp.VATPercent.Equal(decimal.NewFromFloat(10.0)))
}

func TestCreatePurchaseDerivesStatusFromMilestones(t *testing.T) {
	svc, _, projectID, supplierID := purchaseFixture(t)

	resp, err := svc.Create(context.Background(), dto.CreatePurchaseRequest{
		ProjectID:  projectID.String(),
		SupplierID: supplierID.String(),
		Milestones: map[string]string{
			"RFQ Sent":       "3 August 2026",
			"Quote Received": "12 August 2026",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Quote Received", resp.Status)
}

func TestCreatePurchaseUnknownProject(t *testing.T) {
	svc, _, _, supplierID := purchaseFixture(t)

	_, err := svc.Create(context.Background(), dto.CreatePurchaseRequest{
		ProjectID:  uuid.NewString(),
		SupplierID: supplierID.String(),
	})
	assert.EqualError(t, err, "project not found")
}

func TestCreatePurchaseUnknownStageLabel(t *testing.T) {
	svc, _, projectID, supplierID := purchaseFixture(t)

	_, err := svc.Create(context.Background(), dto.CreatePurchaseRequest{
		ProjectID:  projectID.String(),
		SupplierID: supplierID.String(),
		Milestones: map[string]string{"Paid": "1 September 2026"},
	})
	assert.Error(t, err)
}

func TestUpdateStageTouchesOnlyThatMilestone(t *testing.T) {
	svc, repo, projectID, supplierID := purchaseFixture(t)

	created, err := svc.Create(context.Background(), dto.CreatePurchaseRequest{
		ProjectID:  projectID.String(),
		SupplierID: supplierID.String(),
		Milestones: map[string]string{"RFQ Sent": "3 August 2026"},
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	resp, err := svc.UpdateStage(context.Background(), id, dto.UpdateStageRequest{
		Stage: "Delivered",
		Date:  "20 August 2026",
	})
	require.NoError(t, err)
	assert.Equal(t, "Delivered", resp.Status)

	stored := repo.purchases[id]
	require.NotNil(t, stored.RFQSentDate)
	assert.Equal(t, "3 August 2026", *stored.RFQSentDate, "earlier milestone untouched")
	require.NotNil(t, stored.DeliveredDate)
	assert.Equal(t, "20 August 2026", *stored.DeliveredDate)
	assert.Nil(t, stored.OrderSentDate, "skipped stages stay empty")
}

func TestUpdateStageBlankDateClearsAndRegresses(t *testing.T) {
	svc, repo, projectID, supplierID := purchaseFixture(t)

	created, err := svc.Create(context.Background(), dto.CreatePurchaseRequest{
		ProjectID:  projectID.String(),
		SupplierID: supplierID.String(),
		Milestones: map[string]string{
			"RFQ Sent":  "3 August 2026",
			"Delivered": "20 August 2026",
		},
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	resp, err := svc.UpdateStage(context.Background(), id, dto.UpdateStageRequest{Stage: "Delivered"})
	require.NoError(t, err)
	assert.Equal(t, "RFQ Sent", resp.Status, "status falls back to the latest remaining milestone")
	assert.Nil(t, repo.purchases[id].DeliveredDate)
}

func TestUpdateStageRejectsBadDate(t *testing.T) {
	svc, _, projectID, supplierID := purchaseFixture(t)

	created, err := svc.Create(context.Background(), dto.CreatePurchaseRequest{
		ProjectID:  projectID.String(),
		SupplierID: supplierID.String(),
	})
	require.NoError(t, err)

	_, err = svc.UpdateStage(context.Background(), uuid.MustParse(created.ID), dto.UpdateStageRequest{
		Stage: "RFQ Sent",
		Date:  "2026-08-03",
	})
	assert.Error(t, err)
}

func TestListByStatusRejectsUnknownLabel(t *testing.T) {
	svc, _, _, _ := purchaseFixture(t)

	_, err := svc.ListByStatus(context.Background(), "Archived")
	assert.Error(t, err)

	_, err = svc.ListByStatus(context.Background(), "Not Started")
	assert.NoError(t, err)
}
