package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"werkbon/internal/app/dto"
	"werkbon/internal/app/middleware"
	"werkbon/internal/app/workorder"

	"github.com/gin-gonic/gin"
)

// photoField is the multipart field that carries the photo batch.
const photoField = "photos"

func (h *Handler) respondSession(c *gin.Context, session *workorder.Session, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, workorder.Detail(session))
}

// OpenWorkOrder opens a work order
// @Summary Open a work order
// @Description Returns the work order. For its technician a fresh form is started from the stored record.
// @Tags WorkOrders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work order ID"
// @Success 200 {object} dto.WorkOrderDetail
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/work-orders/{id} [get]
func (h *Handler) OpenWorkOrder(c *gin.Context) {
	session, err := h.WorkOrders.Open(c.Request.Context(), middleware.GetTechnician(c), c.Param("id"))
	h.respondSession(c, session, err)
}

// RefreshWorkOrder re-reads an open work order
// @Summary Refresh a work order
// @Description Returns the work order with the form as it is now. Unlike opening, the unsaved form is kept.
// @Tags WorkOrders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work order ID"
// @Success 200 {object} dto.WorkOrderDetail
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/work-orders/{id}/form [get]
func (h *Handler) RefreshWorkOrder(c *gin.Context) {
	session, err := h.WorkOrders.Get(c.Request.Context(), middleware.GetTechnician(c), c.Param("id"))
	h.respondSession(c, session, err)
}

// CloseWorkOrder closes the detail view
// @Summary Close a work order
// @Description Drops the unsaved form. Requests still running for it are discarded.
// @Tags WorkOrders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work order ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/work-orders/{id}/session [delete]
func (h *Handler) CloseWorkOrder(c *gin.Context) {
	if err := h.WorkOrders.Close(c.Request.Context(), middleware.GetTechnician(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	successResponse(c, http.StatusOK, "Werkbon gesloten", nil)
}

// UpdateForm changes the form
// @Summary Update form fields
// @Description Changes findings, advice and the two checkboxes. Nothing is saved yet.
// @Tags WorkOrders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work order ID"
// @Param request body dto.UpdateFormRequest true "Changed fields"
// @Success 200 {object} dto.WorkOrderDetail
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/work-orders/{id}/draft [patch]
func (h *Handler) UpdateForm(c *gin.Context) {
	var request dto.UpdateFormRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		errorResponse(c, http.StatusBadRequest, msgBadRequest)
		return
	}

	session, err := h.WorkOrders.UpdateForm(c.Request.Context(), middleware.GetTechnician(c), c.Param("id"), workorder.FormPatch{
		Findings:       request.Findings,
		Advice:         request.Advice,
		JobDone:        request.JobDone,
		FollowUpNeeded: request.FollowUpNeeded,
	})
	h.respondSession(c, session, err)
}

// AddMaterial adds a catalog item to the form
// @Summary Add material
// @Description Adds a snapshot of an active catalog item. The quantity is coerced to a positive whole number.
// @Tags WorkOrders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work order ID"
// @Param request body dto.AddMaterialRequest true "Catalog item and quantity"
// @Success 200 {object} dto.WorkOrderDetail
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/work-orders/{id}/materials [post]
func (h *Handler) AddMaterial(c *gin.Context) {
	var request dto.AddMaterialRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		errorResponse(c, http.StatusBadRequest, msgBadRequest)
		return
	}

	session, err := h.WorkOrders.AddMaterial(c.Request.Context(), middleware.GetTechnician(c), c.Param("id"), request.CatalogItemID, request.QuantityText())
	h.respondSession(c, session, err)
}

// RemoveMaterial removes a material line
// @Summary Remove material
// @Description Removes the material line at the zero-based index. An index out of range changes nothing.
// @Tags WorkOrders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work order ID"
// @Param index path int true "Line index"
// @Success 200 {object} dto.WorkOrderDetail
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/work-orders/{id}/materials/{index} [delete]
func (h *Handler) RemoveMaterial(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, msgBadRequest)
		return
	}
	session, err := h.WorkOrders.RemoveMaterial(c.Request.Context(), middleware.GetTechnician(c), c.Param("id"), index)
	h.respondSession(c, session, err)
}

// UploadPhotos uploads a batch of photos
// @Summary Upload photos
// @Description Uploads the files one by one. The first failure stops the batch; photos uploaded before it are kept.
// @Tags WorkOrders
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work order ID"
// @Param photos formData file true "Photo files"
// @Success 200 {object} dto.WorkOrderDetail
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/work-orders/{id}/photos [post]
func (h *Handler) UploadPhotos(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		errorResponse(c, http.StatusBadRequest, msgBadRequest)
		return
	}

	uploads := make([]workorder.PhotoUpload, 0, len(form.File[photoField]))
	for _, file := range form.File[photoField] {
		data, err := readFormFile(file)
		if err != nil {
			h.fail(c, err)
			return
		}
		uploads = append(uploads, workorder.PhotoUpload{Filename: file.Filename, Data: data})
	}

	session, err := h.WorkOrders.AddPhotos(c.Request.Context(), middleware.GetTechnician(c), c.Param("id"), uploads)
	h.respondSession(c, session, err)
}

func readFormFile(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", file.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file.Filename, err)
	}
	return data, nil
}

// RemovePhoto removes a photo
// @Summary Remove photo
// @Description Removes the photo URL at the zero-based index. An index out of range changes nothing.
// @Tags WorkOrders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work order ID"
// @Param index path int true "Photo index"
// @Success 200 {object} dto.WorkOrderDetail
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/work-orders/{id}/photos/{index} [delete]
func (h *Handler) RemovePhoto(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		errorResponse(c, http.StatusBadRequest, msgBadRequest)
		return
	}
	session, err := h.WorkOrders.RemovePhoto(c.Request.Context(), middleware.GetTechnician(c), c.Param("id"), index)
	h.respondSession(c, session, err)
}

// SaveWorkOrder saves the form
// @Summary Save
// @Description Stores the form in the work order without changing its status.
// @Tags WorkOrders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work order ID"
// @Success 200 {object} dto.WorkOrderDetail
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/work-orders/{id}/save [post]
func (h *Handler) SaveWorkOrder(c *gin.Context) {
	session, err := h.WorkOrders.Save(c.Request.Context(), middleware.GetTechnician(c), c.Param("id"))
	h.respondSession(c, session, err)
}

// CompleteWorkOrder saves the form and completes the work order
// @Summary Complete
// @Description Stores the form, marks the work order completed and closes the form.
// @Tags WorkOrders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Work order ID"
// @Success 200 {object} dto.WorkOrderDetail
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/work-orders/{id}/complete [post]
func (h *Handler) CompleteWorkOrder(c *gin.Context) {
	session, err := h.WorkOrders.Complete(c.Request.Context(), middleware.GetTechnician(c), c.Param("id"))
	h.respondSession(c, session, err)
}
