package handler

import (
	"context"
	"errors"
	"net/http"

	"werkbon/internal/app/ds"
	"werkbon/internal/app/dto"
	"werkbon/internal/app/planning"
	"werkbon/internal/app/workorder"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CatalogSearcher interface {
	ListActiveCatalogItems(ctx context.Context, query string) ([]ds.CatalogItem, error)
}

// Handler serves the work-order API and pages.
type Handler struct {
	WorkOrders  *workorder.Service
	Planning    *planning.Aggregator
	Catalog     CatalogSearcher
	AuthHandler *AuthHandler
}

func NewHandler(workOrders *workorder.Service, planner *planning.Aggregator, catalog CatalogSearcher, authHandler *AuthHandler) *Handler {
	return &Handler{
		WorkOrders:  workOrders,
		Planning:    planner,
		Catalog:     catalog,
		AuthHandler: authHandler,
	}
}

// ============ Helpers ============

const (
	msgForbidden          = "Je mag deze werkbon niet bewerken (niet jouw naam of niet status “gepland”)."
	msgMissingAddress     = "Geen postcode/huisnummer gevonden op deze werkbon."
	msgNoCatalogItem      = "Kies eerst een artikel."
	msgUnknownCatalogItem = "Dit artikel is niet (meer) beschikbaar."
	msgUnknownLookup      = "Onbekende context."
	msgUnknownView        = "Onbekende weergave."
	msgNotFound           = "Werkbon niet gevonden."
	msgLinkInvalid        = "Deze link klopt niet (werkbon niet gevonden)."
	msgBusy               = "Even geduld, de vorige actie is nog bezig."
	msgSessionClosed      = "Deze werkbon is inmiddels gesloten."
	msgBadRequest         = "Ongeldige invoer."
)

var failures = []struct {
	err     error
	status  int
	message string
}{
	{workorder.ErrForbidden, http.StatusForbidden, msgForbidden},
	{workorder.ErrMissingAddress, http.StatusBadRequest, msgMissingAddress},
	{workorder.ErrNoCatalogItem, http.StatusBadRequest, msgNoCatalogItem},
	{workorder.ErrUnknownCatalogItem, http.StatusBadRequest, msgUnknownCatalogItem},
	{workorder.ErrUnknownLookup, http.StatusBadRequest, msgUnknownLookup},
	{planning.ErrUnknownMode, http.StatusBadRequest, msgUnknownView},
	{workorder.ErrNotFound, http.StatusNotFound, msgNotFound},
	{workorder.ErrLinkInvalid, http.StatusNotFound, msgLinkInvalid},
	{workorder.ErrBusy, http.StatusConflict, msgBusy},
	{workorder.ErrSessionClosed, http.StatusConflict, msgSessionClosed},
}

// fail translates err into a response. Anything not recognized is a backend
// failure and its message is passed through unchanged.
func (h *Handler) fail(c *gin.Context, err error) {
	for _, f := range failures {
		if errors.Is(err, f.err) {
			errorResponse(c, f.status, f.message)
			return
		}
	}
	logrus.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	errorResponse(c, http.StatusInternalServerError, err.Error())
}

func errorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}
