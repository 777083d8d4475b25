package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/apierror"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/dto"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/service"
)

type ProjectsHandler struct {
	svc       service.ProjectService
	dashboard service.DashboardService
}

func NewProjectsHandler(svc service.ProjectService, dashboard service.DashboardService) *ProjectsHandler {
	return &ProjectsHandler{svc: svc, dashboard: dashboard}
}

func (h *ProjectsHandler) Create(c *gin.Context) {
	var req dto.CreateProjectRequest
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

func (h *ProjectsHandler) GetByID(c *gin.Context) {
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

func (h *ProjectsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
