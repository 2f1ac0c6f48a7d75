package api

import (
	"errors"
	"net/http"

	"moodly/pin-api/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserMe returns the caller's own record. A valid token whose identity
// no longer exists is a 404, not a 500
func (a *API) UserMe(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	user, err := a.Users.FindByID(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"message": "User not found",
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})

		zap.L().Error("Failed to load own profile", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, user)
}
