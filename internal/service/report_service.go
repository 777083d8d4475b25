package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/config"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/dto"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/infra"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/model"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/repository"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/workflow"
)

// ReportService builds per-project purchase reports: totals, CSV export,
// PDF summary and report-by-email.
type ReportService interface {
	ProjectReport(ctx context.Context, projectID uuid.UUID) (*dto.ProjectReportResponse, error)
	ProjectCSV(ctx context.Context, projectID uuid.UUID) ([]byte, string, error)
	ProjectPDF(ctx context.Context, projectID uuid.UUID) (string, error)
	EmailToApprover(ctx context.Context, projectID, approverID uuid.UUID) (*dto.EmailReportResponse, error)
}

type reportService struct {
	purchaseRepo repository.PurchaseRepository
	projectRepo  repository.ProjectRepository
	approverRepo repository.ApproverRepository
	mailer       *infra.Mailer
	settings     *config.SettingsStore
	dataRoot     string
}

func NewReportService(
	purchaseRepo repository.PurchaseRepository,
	projectRepo repository.ProjectRepository,
	approverRepo repository.ApproverRepository,
	mailer *infra.Mailer,
	settings *config.SettingsStore,
	dataRoot string,
) ReportService {
	return &reportService{
		purchaseRepo: purchaseRepo,
		projectRepo:  projectRepo,
		approverRepo: approverRepo,
		mailer:       mailer,
		settings:     settings,
		dataRoot:     dataRoot,
	}
}

// totals folds amount and VAT over the purchases.
func totals(purchases []model.Purchase) infra.SummaryTotals {
	excl := decimal.Zero
	vat := decimal.Zero
	hundred := decimal.NewFromInt(100)
	for _, p := range purchases {
		excl = excl.Add(p.AmountExclVAT)
		vat = vat.Add(p.AmountExclVAT.Mul(p.VATPercent).Div(hundred))
	}
	return infra.SummaryTotals{ExclVAT: excl, VAT: vat, InclVAT: excl.Add(vat)}
}

func (s *reportService) load(ctx context.Context, projectID uuid.UUID) (*model.Project, []model.Purchase, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, nil, errors.New("project not found")
	}
	purchases, err := s.purchaseRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, nil, err
	}
	return project, purchases, nil
}

func (s *reportService) ProjectReport(ctx context.Context, projectID uuid.UUID) (*dto.ProjectReportResponse, error) {
	project, purchases, err := s.load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	t := totals(purchases)
	return &dto.ProjectReportResponse{
		ProjectID:     project.ID.String(),
		ProjectName:   project.Name,
		Currency:      s.settings.Load().Currency,
		TotalExclVAT:  t.ExclVAT,
		TotalVAT:      t.VAT,
		TotalInclVAT:  t.InclVAT,
		Purchases:     mapPurchases(purchases),
		PurchaseCount: len(purchases),
	}, nil
}

// ProjectCSV renders the project purchases as CSV bytes plus a filename hint.
func (s *reportService) ProjectCSV(ctx context.Context, projectID uuid.UUID) ([]byte, string, error) {
	_, purchases, err := s.load(ctx, projectID)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"id", "supplier", "item_description", "category", "amount_excl_vat", "vat_percent", "status"}
	for _, stage := range workflow.Stages() {
		header = append(header, stage.Label())
	}
	if err := w.Write(header); err != nil {
		return nil, "", err
	}

	for i := range purchases {
		p := &purchases[i]
		supplier := ""
		if p.Supplier != nil {
			supplier = supplierLabel(p.Supplier)
		}
		record := []string{
			p.ID.String(),
			supplier,
			p.ItemDescription,
			p.Category,
			p.AmountExclVAT.StringFixed(2),
			p.VATPercent.StringFixed(2),
			p.Status,
		}
		milestones := p.Milestones()
		for _, stage := range workflow.Stages() {
			record = append(record, milestones[stage])
		}
		if err := w.Write(record); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "project_purchases.csv", nil
}

// ProjectPDF writes the PDF summary under the data root and returns its path.
func (s *reportService) ProjectPDF(ctx context.Context, projectID uuid.UUID) (string, error) {
	project, purchases, err := s.load(ctx, projectID)
	if err != nil {
		return "", err
	}
	set := s.settings.Load()
	return infra.ProjectSummaryPDF(project, purchases, totals(purchases), set.Currency, set.BrandLogoPath, filepath.Join(s.dataRoot, "reports"))
}

// EmailToApprover generates the PDF summary and mails it. Synchronous: the
// caller sees SMTP failures inline and can simply retry.
func (s *reportService) EmailToApprover(ctx context.Context, projectID, approverID uuid.UUID) (*dto.EmailReportResponse, error) {
	approver, err := s.approverRepo.FindByID(ctx, approverID)
	if err != nil {
		return nil, errors.New("approver not found")
	}
	if approver.Email == nil || *approver.Email == "" {
		return nil, errors.New("approver has no email address")
	}

	pdfPath, err := s.ProjectPDF(ctx, projectID)
	if err != nil {
		return nil, err
	}

	project, _, err := s.load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	subject := fmt.Sprintf("Project summary — %s", project.Name)
	body := fmt.Sprintf("Attached: purchase summary for project %s.", project.Name)
	if err := s.mailer.SendReport(*approver.Email, subject, body, pdfPath); err != nil {
		return nil, fmt.Errorf("send report: %w", err)
	}

	return &dto.EmailReportResponse{SentTo: *approver.Email, PDFPath: pdfPath}, nil
}
