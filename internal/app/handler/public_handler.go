package handler

import (
	"errors"
	"net/http"

	"werkbon/internal/app/dto"
	"werkbon/internal/app/workorder"

	"github.com/gin-gonic/gin"
)

// GetSharedWorkOrder shows a work order to anyone holding its link
// @Summary Shared work order
// @Description Read-only view of a work order by share token. No sign-in needed.
// @Tags Public
// @Produce json,html
// @Param token path string true "Share token"
// @Success 200 {object} dto.PublicWorkOrder
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /bon/{token} [get]
func (h *Handler) GetSharedWorkOrder(c *gin.Context) {
	w, err := h.WorkOrders.PublicView(c.Request.Context(), c.Param("token"))

	if c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML {
		switch {
		case errors.Is(err, workorder.ErrLinkInvalid):
			c.HTML(http.StatusNotFound, "bon.html", gin.H{"error": msgLinkInvalid})
		case err != nil:
			c.HTML(http.StatusInternalServerError, "bon.html", gin.H{"error": err.Error()})
		default:
			c.HTML(http.StatusOK, "bon.html", gin.H{"bon": workorder.Public(w)})
		}
		return
	}

	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, workorder.Public(w))
}

// notFound answers unknown routes.
func (h *Handler) notFound(c *gin.Context) {
	if c.NegotiateFormat(gin.MIMEJSON, gin.MIMEHTML) == gin.MIMEHTML {
		c.HTML(http.StatusNotFound, "not_found.html", nil)
		return
	}
	c.JSON(http.StatusNotFound, dto.ErrorResponse{Status: "fail", Message: "Pagina niet gevonden."})
}
