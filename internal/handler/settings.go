package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/apierror"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/config"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/dto"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/service"
)

type SettingsHandler struct {
	store  *config.SettingsStore
	backup service.BackupService
}

func NewSettingsHandler(store *config.SettingsStore, backup service.BackupService) *SettingsHandler {
	return &SettingsHandler{store: store, backup: backup}
}

func mapSettings(s config.Settings) dto.SettingsResponse {
	return dto.SettingsResponse{
		StorageRoot:   s.StorageRoot,
		BrandLogoPath: s.BrandLogoPath,
		Currency:      s.Currency,
		VATPercent:    s.VATPercent,
	}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, mapSettings(h.store.Load()))
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if !bindAndValidate(c, &req) {
		return
	}

	s := h.store.Load()
	if req.StorageRoot != nil && *req.StorageRoot != "" {
		s.StorageRoot = *req.StorageRoot
	}
	if req.BrandLogoPath != nil {
		s.BrandLogoPath = *req.BrandLogoPath
	}
	if req.Currency != nil {
		s.Currency = *req.Currency
	}
	if req.VATPercent != nil {
		s.VATPercent = *req.VATPercent
	}

	if err := h.store.Save(s); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Could not save settings"))
		return
	}
	c.JSON(http.StatusOK, mapSettings(s))
}

// Backup runs a synchronous snapshot; the request blocks until the archive
// is fully written.
func (h *SettingsHandler) Backup(c *gin.Context) {
	resp, err := h.backup.Run(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
