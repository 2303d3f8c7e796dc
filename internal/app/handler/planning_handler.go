package handler

import (
	"net/http"
	"strconv"

	"werkbon/internal/app/dto"
	"werkbon/internal/app/middleware"
	"werkbon/internal/app/planning"
	"werkbon/internal/app/workorder"

	"github.com/gin-gonic/gin"
)

// GetPlanning returns the planning grid
// @Summary Planning
// @Description Work orders of the signed-in technician grouped per day. Every day of the view is present, also without work orders.
// @Tags Planning
// @Produce json
// @Security BearerAuth
// @Param view query string false "day, workweek (default) or fullweek"
// @Param offset query int false "Days (day view) or weeks from today"
// @Success 200 {object} dto.PlanningResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/planning [get]
func (h *Handler) GetPlanning(c *gin.Context) {
	offset := 0
	if raw := c.Query("offset"); raw != "" {
		var err error
		if offset, err = strconv.Atoi(raw); err != nil {
			errorResponse(c, http.StatusBadRequest, msgBadRequest)
			return
		}
	}

	view, err := planning.ParseView(c.Query("view"), offset)
	if err != nil {
		h.fail(c, err)
		return
	}

	technicianID := ""
	if tech := middleware.GetTechnician(c); tech != nil {
		technicianID = tech.ID
	}

	p, err := h.Planning.Planning(c.Request.Context(), technicianID, view)
	if err != nil {
		h.fail(c, err)
		return
	}

	response := dto.PlanningResponse{
		View:   string(p.View.Mode),
		Offset: p.View.Offset,
		Start:  p.Range.Start,
		End:    p.Range.End,
		Days:   make([]dto.PlanningDay, len(p.Buckets)),
	}
	for i, b := range p.Buckets {
		response.Days[i] = dto.PlanningDay{
			Label:      b.Day.Label,
			Date:       b.Day.Date,
			WorkOrders: workorder.SummarizeAll(b.WorkOrders),
		}
	}
	c.JSON(http.StatusOK, response)
}
