package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/apierror"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/dto"
	"github.com/WynandSouthAfrica/oppworks-procurement/internal/service"
)

type StocktakeHandler struct {
	svc service.StocktakeService
}

func NewStocktakeHandler(svc service.StocktakeService) *StocktakeHandler {
	return &StocktakeHandler{svc: svc}
}

// View returns an editable subset of the master sheet. The client must hold
// on to the returned rows and echo them back as displayed_before on save.
func (h *StocktakeHandler) View(c *gin.Context) {
	req := dto.StocktakeViewRequest{
		Filter: c.Query("filter"),
		SortBy: c.Query("sort_by"),
	}
	if err := validate.Struct(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New("Invalid sort_by"))
		return
	}
	resp, err := h.svc.View(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Save reconciles an edit pass into the master sheet and persists it.
// Reconciliation itself never fails; only sheet I/O can.
func (h *StocktakeHandler) Save(c *gin.Context) {
	var req dto.StocktakeSaveRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Save(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Save failed — the sheet was not changed; retry"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
