package api

import (
	"errors"
	"net/http"

	"moodly/pin-api/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserFollow toggles the follow edge from the caller to :username and
// reports the resulting state
func (a *API) UserFollow(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	target, err := a.Users.FindByHandle(c.Param("username"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"message": "User to follow not found",
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})

		zap.L().Error("Failed to load follow target", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if target.ID == userID {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"message": "You can't follow yourself",
		})
		return
	}

	following, err := a.Follows.Exists(userID, target.ID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})

		zap.L().Error("Failed to check follow state", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if following {
		err = a.Follows.Delete(userID, target.ID)
		following = false
	} else {
		err = a.Follows.Create(userID, target.ID)
		following = true

		// A concurrent toggle may have inserted the edge between the
		// existence check and the create. The unique index reports
		// that as a conflict, which simply means we're now following
		if errors.Is(err, store.ErrConflict) {
			err = nil
		}
	}

	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})

		zap.L().Error("Failed to toggle follow", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Successful",
		"isFollowing": following,
	})
}
