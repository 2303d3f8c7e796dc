package handler

import (
	"net/http"

	"werkbon/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// GetCatalog lists selectable catalog items
// @Summary Catalog
// @Description Active catalog items ordered by name, optionally filtered on name or catalog number.
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Param query query string false "Search text"
// @Success 200 {object} dto.CatalogListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/catalog [get]
func (h *Handler) GetCatalog(c *gin.Context) {
	items, err := h.Catalog.ListActiveCatalogItems(c.Request.Context(), c.Query("query"))
	if err != nil {
		h.fail(c, err)
		return
	}

	response := dto.CatalogListResponse{
		Items: make([]dto.CatalogItemResponse, len(items)),
		Total: len(items),
	}
	for i, item := range items {
		response.Items[i] = dto.CatalogItemResponse{
			ID:            item.ID,
			Name:          item.Name,
			CatalogNumber: item.CatalogNumber,
			Unit:          item.Unit,
			Price:         item.Price,
		}
	}
	c.JSON(http.StatusOK, response)
}
