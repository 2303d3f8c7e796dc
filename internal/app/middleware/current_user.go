package middleware

import (
	"context"
	"net/http"

	"werkbon/internal/app/ds"
	"werkbon/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const ContextTechnician = "technician"

type TechnicianFinder interface {
	FindTechnicianByUserID(ctx context.Context, userID string) (*ds.Technician, error)
}

// CurrentTechnician resolves the technician of the signed-in user. Users
// without a technician continue with a nil technician and can only view.
func CurrentTechnician(finder TechnicianFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		tech, err := finder.FindTechnicianByUserID(c.Request.Context(), GetUserID(c))
		if err != nil {
			logrus.WithError(err).Error("failed to load technician")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Status:  "fail",
				Message: err.Error(),
			})
			return
		}
		c.Set(ContextTechnician, tech)
		c.Next()
	}
}

func GetUserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

// GetTechnician returns nil when the user is not linked to a technician.
func GetTechnician(c *gin.Context) *ds.Technician {
	if v, exists := c.Get(ContextTechnician); exists {
		if tech, ok := v.(*ds.Technician); ok {
			return tech
		}
	}
	return nil
}
