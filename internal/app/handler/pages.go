package handler

import (
	"embed"
	"html/template"
	"net/http"

	"werkbon/internal/app/middleware"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// RegisterStatic loads the page templates.
func (h *Handler) RegisterStatic(router *gin.Engine) {
	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))
}

// Home sends signed-in users to the app and everyone else to the login page.
func (h *Handler) Home(authMiddleware *middleware.AuthMiddleware) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := authMiddleware.Claims(c.Request.Context(), middleware.TokenFromRequest(c)); err == nil {
			c.Redirect(http.StatusFound, "/app")
			return
		}
		c.Redirect(http.StatusFound, "/login")
	}
}

func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

func (h *Handler) AppPage(c *gin.Context) {
	c.HTML(http.StatusOK, "app.html", gin.H{"email": c.GetString(middleware.ContextEmail)})
}
