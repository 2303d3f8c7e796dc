package handler

import (
	"net/http"

	"werkbon/internal/app/dto"
	"werkbon/internal/app/workorder"

	"github.com/gin-gonic/gin"
)

func (h *Handler) related(c *gin.Context, lookup workorder.LookupContext) {
	history, err := h.WorkOrders.Related(c.Request.Context(), c.Param("id"), lookup)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.HistoryResponse{
		Context:    string(history.Context),
		Notice:     history.Notice,
		WorkOrders: workorder.SummarizeAll(history.WorkOrders),
	})
}

// GetAddressHistory lists earlier work at the same address
// @Summary Same-address history
// @Description Other work orders with the same postal code and house number, newest first.
// @Tags History
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work order ID"
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/work-orders/{id}/history/address [get]
func (h *Handler) GetAddressHistory(c *gin.Context) {
	h.related(c, workorder.LookupAddressHistory)
}

// GetPredecessors lists predecessor work orders
// @Summary Predecessors
// @Description Work orders whose number precedes this one in steps of 100, newest first.
// @Tags History
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work order ID"
// @Success 200 {object} dto.HistoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/work-orders/{id}/history/predecessors [get]
func (h *Handler) GetPredecessors(c *gin.Context) {
	h.related(c, workorder.LookupPredecessors)
}

// GetRelated dispatches on the lookup named in the query
// @Summary Related work orders
// @Tags History
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work order ID"
// @Param context query string true "address_history or predecessors"
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/work-orders/{id}/history [get]
func (h *Handler) GetRelated(c *gin.Context) {
	h.related(c, workorder.LookupContext(c.Query("context")))
}
