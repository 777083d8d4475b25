package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/apierror"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/dto"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/service"
)

type ApproversHandler struct {
	svc service.ApproverService
}

func NewApproversHandler(svc service.ApproverService) *ApproversHandler {
	return &ApproversHandler{svc: svc}
}

func (h *ApproversHandler) Create(c *gin.Context) {
	var req dto.CreateApproverRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ApproversHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
