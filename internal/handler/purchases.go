package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/apierror"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/dto"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/service"
)

type PurchasesHandler struct {
	svc       service.PurchaseService
	dashboard service.DashboardService
}

func NewPurchasesHandler(svc service.PurchaseService, dashboard service.DashboardService) *PurchasesHandler {
	return &PurchasesHandler{svc: svc, dashboard: dashboard}
}

func (h *PurchasesHandler) Create(c *gin.Context) {
	var req dto.CreatePurchaseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	h.dashboard.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, resp)
}

func (h *PurchasesHandler) GetByID(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List returns all purchases, or only those in one stage view when the
// status query parameter is given.
func (h *PurchasesHandler) List(c *gin.Context) {
	if status := c.Query("status"); status != "" {
		resp, err := h.svc.ListByStatus(c.Request.Context(), status)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStage sets one milestone date and returns the re-derived status.
func (h *PurchasesHandler) UpdateStage(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateStageRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateStage(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	h.dashboard.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, resp)
}
