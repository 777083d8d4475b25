package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/model"
)

// stubDocumentRepo keeps the ledger in memory. DB() returns nil so the
// service runs its transaction body directly.
type stubDocumentRepo struct {
	docs []*model.Document
}

func (r *stubDocumentRepo) DB() *gorm.DB { return nil }

func (r *stubDocumentRepo) MaxVersionTx(_ *gorm.DB, purchaseID uuid.UUID, docType string) (int, error) {
	max := 0
	for _, d := range r.docs {
		if d.PurchaseID == purchaseID && d.DocType == docType && d.Version > max {
			max = d.Version
		}
	}
	return max, nil
}

func (r *stubDocumentRepo) CreateTx(_ *gorm.DB, d *model.Document) error {
	d.ID = uuid.New()
	r.docs = append(r.docs, d)
	return nil
}

func (r *stubDocumentRepo) DemoteSiblingsTx(_ *gorm.DB, purchaseID uuid.UUID, docType string, keep uuid.UUID) error {
	for _, d := range r.docs {
		if d.PurchaseID == purchaseID && d.DocType == docType && d.ID != keep {
			d.Current = false
		}
	}
	return nil
}

func (r *stubDocumentRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Document, error) {
	for _, d := range r.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubDocumentRepo) ListByPurchase(_ context.Context, purchaseID uuid.UUID) ([]model.Document, error) {
	var out []model.Document
	for _, d := range r.docs {
		if d.PurchaseID == purchaseID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *stubDocumentRepo) ListRecent(_ context.Context, limit int) ([]model.Document, error) {
	var out []model.Document
	for i := len(r.docs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *r.docs[i])
	}
	return out, nil
}

func seedDoc(r *stubDocumentRepo, purchaseID uuid.UUID, docType string, version int, current bool) {
	r.docs = append(r.docs, &model.Document{
		ID:         uuid.New(),
		PurchaseID: purchaseID,
		DocType:    docType,
		Filename:   "seed.pdf",
		Version:    version,
		Current:    current,
		UploadedAt: time.Now(),
	})
}

func TestNextVersionEmptyLedger(t *testing.T) {
	repo := &stubDocumentRepo{}
	svc := NewDocumentService(repo, nil, nil, nil)

	v, err := svc.NextVersion(context.Background(), uuid.New(), model.DocTypeQuote)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestNextVersionSkipsGaps(t *testing.T) {
	repo := &stubDocumentRepo{}
	pid := uuid.New()
	seedDoc(repo, pid, model.DocTypeQuote, 1, false)
	seedDoc(repo, pid, model.DocTypeQuote, 2, false)
	seedDoc(repo, pid, model.DocTypeQuote, 3, true)
	svc := NewDocumentService(repo, nil, nil, nil)

	v, err := svc.NextVersion(context.Background(), pid, model.DocTypeQuote)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}

func TestNextVersionCountersAreIndependent(t *testing.T) {
	repo := &stubDocumentRepo{}
	pid := uuid.New()
	seedDoc(repo, pid, model.DocTypeQuote, 5, true)
	svc := NewDocumentService(repo, nil, nil, nil)

	// Different doc type on the same purchase.
	v, err := svc.NextVersion(context.Background(), pid, model.DocTypeInvoice)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// Same doc type on a different purchase.
	v, err = svc.NextVersion(context.Background(), uuid.New(), model.DocTypeQuote)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestRecordDocumentDemotesSiblings(t *testing.T) {
	repo := &stubDocumentRepo{}
	pid := uuid.New()
	seedDoc(repo, pid, model.DocTypeOrder, 1, true)
	svc := NewDocumentService(repo, nil, nil, nil)

	resp, err := svc.RecordDocument(context.Background(), pid, model.DocTypeOrder, "order_v2.pdf", "/tmp/order_v2.pdf")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Version)
	assert.True(t, resp.Current)

	currents := 0
	for _, d := range repo.docs {
		if d.PurchaseID == pid && d.DocType == model.DocTypeOrder && d.Current {
			currents++
			assert.Equal(t, 2, d.Version)
		}
	}
	assert.Equal(t, 1, currents, "exactly one current version per (purchase, doc type)")
}

func TestRecordDocumentLeavesOtherTypesCurrent(t *testing.T) {
	repo := &stubDocumentRepo{}
	pid := uuid.New()
	seedDoc(repo, pid, model.DocTypeQuote, 1, true)
	svc := NewDocumentService(repo, nil, nil, nil)

	_, err := svc.RecordDocument(context.Background(), pid, model.DocTypeInvoice, "inv.pdf", "/tmp/inv.pdf")
	require.NoError(t, err)

	for _, d := range repo.docs {
		if d.DocType == model.DocTypeQuote {
			assert.True(t, d.Current, "quote ledger untouched by invoice save")
		}
	}
}

func TestRecordDocumentRejectsUnknownType(t *testing.T) {
	svc := NewDocumentService(&stubDocumentRepo{}, nil, nil, nil)

	_, err := svc.RecordDocument(context.Background(), uuid.New(), "Receipt", "r.pdf", "/tmp/r.pdf")
	assert.Error(t, err)
}

func TestRecordDocumentSequentialVersions(t *testing.T) {
	repo := &stubDocumentRepo{}
	pid := uuid.New()
	svc := NewDocumentService(repo, nil, nil, nil)

	for want := 1; want <= 3; want++ {
		resp, err := svc.RecordDocument(context.Background(), pid, model.DocTypeDelivery, "note.pdf", "/tmp/note.pdf")
		require.NoError(t, err)
		assert.Equal(t, want, resp.Version)
	}
}
