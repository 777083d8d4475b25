package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/apierror"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/dto"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/service"
)

type DocumentsHandler struct {
	svc service.DocumentService
}

func NewDocumentsHandler(svc service.DocumentService) *DocumentsHandler {
	return &DocumentsHandler{svc: svc}
}

// Save accepts a multipart form with doc_type plus a file part, a
// pasted_text field, or both. Pasted text is rendered to a branded PDF.
// Each supplied input is filed as its own ledger version — file first, then
// the paste, which therefore ends up current when both are given.
func (h *DocumentsHandler) Save(c *gin.Context) {
	purchaseID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	docType := c.PostForm("doc_type")
	if docType == "" {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(map[string]string{"doc_type": "required"}))
		return
	}

	pasted := strings.TrimSpace(c.PostForm("pasted_text"))
	fileHeader, fileErr := c.FormFile("file")

	if fileErr != nil && pasted == "" {
		c.JSON(http.StatusBadRequest, apierror.New("Nothing to save — upload a file or paste text"))
		return
	}

	saved := make([]dto.DocumentResponse, 0, 2)

	if fileErr == nil {
		f, err := fileHeader.Open()
		if err != nil {
			c.Error(err)
			return
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			c.Error(err)
			return
		}
		resp, err := h.svc.SaveUpload(c.Request.Context(), purchaseID, docType, fileHeader.Filename, data)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		saved = append(saved, *resp)
	}

	if pasted != "" {
		resp, err := h.svc.SavePastedText(c.Request.Context(), purchaseID, docType, pasted)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		saved = append(saved, *resp)
	}

	c.JSON(http.StatusCreated, saved)
}

// ListByPurchase returns the full version history for one purchase.
func (h *DocumentsHandler) ListByPurchase(c *gin.Context) {
	purchaseID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListByPurchase(c.Request.Context(), purchaseID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListRecent returns the 50 most recently filed documents.
func (h *DocumentsHandler) ListRecent(c *gin.Context) {
	resp, err := h.svc.ListRecent(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
