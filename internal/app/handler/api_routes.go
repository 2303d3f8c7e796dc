package handler

import (
	"werkbon/internal/app/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes registers pages and the REST API.
func (h *Handler) RegisterRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware, technicians middleware.TechnicianFinder) {
	// ============ Pages ============
	router.GET("/", h.Home(authMiddleware))
	router.GET("/login", h.LoginPage)
	router.GET("/app", authMiddleware.WithPageAuth(), h.AppPage)
	router.GET("/bon/:token", h.GetSharedWorkOrder)
	router.NoRoute(h.notFound)

	api := router.Group("/api")

	// ============ Authentication ============
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.AuthHandler.LoginUser)
		auth.POST("/logout", authMiddleware.WithAuthCheck(), h.AuthHandler.LogoutUser)
		auth.GET("/me", authMiddleware.WithAuthCheck(), h.AuthHandler.GetCurrentUser)
	}

	// everything below needs a signed-in user; the technician may be nil
	secured := api.Group("", authMiddleware.WithAuthCheck(), middleware.CurrentTechnician(technicians))
	secured.GET("/planning", h.GetPlanning)
	secured.GET("/catalog", h.GetCatalog)

	// ============ Work orders ============
	workOrders := secured.Group("/work-orders/:id")
	{
		workOrders.GET("", h.OpenWorkOrder)
		workOrders.GET("/form", h.RefreshWorkOrder)
		workOrders.DELETE("/session", h.CloseWorkOrder)
		workOrders.PATCH("/draft", h.UpdateForm)
		workOrders.POST("/materials", h.AddMaterial)
		workOrders.DELETE("/materials/:index", h.RemoveMaterial)
		workOrders.POST("/photos", h.UploadPhotos)
		workOrders.DELETE("/photos/:index", h.RemovePhoto)
		workOrders.POST("/save", h.SaveWorkOrder)
		workOrders.POST("/complete", h.CompleteWorkOrder)

		workOrders.GET("/history", h.GetRelated)
		workOrders.GET("/history/address", h.GetAddressHistory)
		workOrders.GET("/history/predecessors", h.GetPredecessors)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/ping", h.Ping)
}

// Ping checks that the server is up
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *Handler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
