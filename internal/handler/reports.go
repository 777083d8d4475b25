package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/apierror"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/dto"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/service"
)

type ReportsHandler struct {
	svc service.ReportService
}

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

func (h *ReportsHandler) ProjectReport(c *gin.Context) {
	projectID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ProjectReport(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) ProjectCSV(c *gin.Context) {
	projectID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	data, filename, err := h.svc.ProjectCSV(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *ReportsHandler) ProjectPDF(c *gin.Context) {
	projectID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	path, err := h.svc.ProjectPDF(c.Request.Context(), projectID)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.FileAttachment(path, "project_summary.pdf")
}

func (h *ReportsHandler) EmailReport(c *gin.Context) {
	projectID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.EmailReportRequest
	if !bindAndValidate(c, &req) {
		return
	}
	approverID, err := uuid.Parse(req.ApproverID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid approver_id"))
		return
	}
	resp, err := h.svc.EmailToApprover(c.Request.Context(), projectID, approverID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
