package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/config"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/dto"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/infra"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/model"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/repository"
)

// DocumentService is the document version ledger. Every save files a new
// version under the purchase's project folder and flips the current flag to
// the newest artifact.
type DocumentService interface {
	// NextVersion returns max existing version + 1 for the pair, or 1. Computed
	// immediately before insertion; single-writer by contract — a second
	// process racing this read-then-write is out of scope.
	NextVersion(ctx context.Context, purchaseID uuid.UUID, docType string) (int, error)
	// RecordDocument inserts a new version with current=true and demotes every
	// sibling sharing (purchase, doc type) in the same transaction.
	RecordDocument(ctx context.Context, purchaseID uuid.UUID, docType, filename, savedPath string) (*dto.DocumentResponse, error)
	SaveUpload(ctx context.Context, purchaseID uuid.UUID, docType, filename string, data []byte) (*dto.DocumentResponse, error)
	SavePastedText(ctx context.Context, purchaseID uuid.UUID, docType, text string) (*dto.DocumentResponse, error)
	ListByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]dto.DocumentResponse, error)
	ListRecent(ctx context.Context) ([]dto.DocumentResponse, error)
}

type documentService struct {
	repo         repository.DocumentRepository
	purchaseRepo repository.PurchaseRepository
	store        *infra.DocStore
	settings     *config.SettingsStore
}

func NewDocumentService(
	repo repository.DocumentRepository,
	purchaseRepo repository.PurchaseRepository,
	store *infra.DocStore,
	settings *config.SettingsStore,
) DocumentService {
	return &documentService{repo: repo, purchaseRepo: purchaseRepo, store: store, settings: settings}
}

// runTx executes fn inside a GORM transaction when db is available, or calls
// fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *documentService) NextVersion(ctx context.Context, purchaseID uuid.UUID, docType string) (int, error) {
	var next int
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		max, err := s.repo.MaxVersionTx(tx, purchaseID, docType)
		if err != nil {
			return err
		}
		next = max + 1
		return nil
	})
	return next, err
}

func (s *documentService) RecordDocument(ctx context.Context, purchaseID uuid.UUID, docType, filename, savedPath string) (*dto.DocumentResponse, error) {
	if !model.ValidDocType(docType) {
		return nil, fmt.Errorf("unknown document type %q", docType)
	}

	doc := &model.Document{
		PurchaseID: purchaseID,
		DocType:    docType,
		Filename:   filename,
		SavedPath:  savedPath,
		Current:    true,
		UploadedAt: time.Now(),
	}

	// Version assignment, insert and sibling demotion share one transaction:
	// a failure at any step leaves the ledger unchanged.
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		max, err := s.repo.MaxVersionTx(tx, purchaseID, docType)
		if err != nil {
			return err
		}
		doc.Version = max + 1
		if err := s.repo.CreateTx(tx, doc); err != nil {
			return err
		}
		return s.repo.DemoteSiblingsTx(tx, purchaseID, docType, doc.ID)
	})
	if err != nil {
		return nil, err
	}
	return mapDocument(doc), nil
}

// destFolder resolves <project root>/<doc type> for the purchase.
func (s *documentService) destFolder(ctx context.Context, purchaseID uuid.UUID, docType string) (string, error) {
	p, err := s.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		return "", errors.New("purchase not found")
	}
	if p.Project == nil {
		return "", errors.New("purchase has no project folder")
	}
	return filepath.Join(p.Project.RootFolder, docType), nil
}

func (s *documentService) SaveUpload(ctx context.Context, purchaseID uuid.UUID, docType, filename string, data []byte) (*dto.DocumentResponse, error) {
	if !model.ValidDocType(docType) {
		return nil, fmt.Errorf("unknown document type %q", docType)
	}
	dest, err := s.destFolder(ctx, purchaseID, docType)
	if err != nil {
		return nil, err
	}
	resolved, path, err := s.store.Store(data, dest, filename)
	if err != nil {
		return nil, err
	}
	return s.RecordDocument(ctx, purchaseID, docType, resolved, path)
}

func (s *documentService) SavePastedText(ctx context.Context, purchaseID uuid.UUID, docType, text string) (*dto.DocumentResponse, error) {
	if !model.ValidDocType(docType) {
		return nil, fmt.Errorf("unknown document type %q", docType)
	}
	dest, err := s.destFolder(ctx, purchaseID, docType)
	if err != nil {
		return nil, err
	}
	logo := s.settings.Load().BrandLogoPath
	filename, path, err := infra.PastedTextPDF(text, dest, logo)
	if err != nil {
		return nil, err
	}
	return s.RecordDocument(ctx, purchaseID, docType, filename, path)
}

func (s *documentService) ListByPurchase(ctx context.Context, purchaseID uuid.UUID) ([]dto.DocumentResponse, error) {
	docs, err := s.repo.ListByPurchase(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	return mapDocuments(docs), nil
}

func (s *documentService) ListRecent(ctx context.Context) ([]dto.DocumentResponse, error) {
	docs, err := s.repo.ListRecent(ctx, 50)
	if err != nil {
		return nil, err
	}
	return mapDocuments(docs), nil
}

func mapDocument(d *model.Document) *dto.DocumentResponse {
	return &dto.DocumentResponse{
		ID:         d.ID.String(),
		PurchaseID: d.PurchaseID.String(),
		DocType:    d.DocType,
		Filename:   d.Filename,
		SavedPath:  d.SavedPath,
		Version:    d.Version,
		Current:    d.Current,
		UploadedAt: d.UploadedAt.Format(time.RFC3339),
	}
}

func mapDocuments(docs []model.Document) []dto.DocumentResponse {
	out := make([]dto.DocumentResponse, 0, len(docs))
	for i := range docs {
		out = append(out, *mapDocument(&docs[i]))
	}
	return out
}
