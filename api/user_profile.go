package api

import (
	"errors"
	"net/http"

	"moodly/pin-api/internal/store"
	"moodly/pin-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// profileResponse is the target's record enriched with the derived
// fields. isFollowing is viewer-relative, the counts are not
type profileResponse struct {
	*model.User
	FollowerCount  int64 `json:"followerCount"`
	FollowingCount int64 `json:"followingCount"`
	IsFollowing    bool  `json:"isFollowing"`
}

// UserProfile returns a public profile. The endpoint tolerates
// anonymous viewers: a missing or invalid session cookie degrades to
// isFollowing=false instead of failing the request
func (a *API) UserProfile(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	user, err := a.Users.FindByHandle(c.Param("username"))
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

		zap.L().Error("Failed to load profile", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	followerCount, err := a.Follows.CountFollowers(user.ID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})

		zap.L().Error("Failed to count followers", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	followingCount, err := a.Follows.CountFollowing(user.ID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})

		zap.L().Error("Failed to count following", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	isFollowing := false

	if tokenStr, err := c.Cookie("token"); err == nil {
		if viewerID, err := a.Tokens.Verify(tokenStr); err == nil {
			isFollowing, err = a.Follows.Exists(viewerID, user.ID)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"message": "Internal server error",
				})

				zap.L().Error("Failed to check follow state", zap.Error(err), zap.String("requestID", requestID))
				return
			}
		}
	}

	c.JSON(http.StatusOK, profileResponse{
		User:           user,
		FollowerCount:  followerCount,
		FollowingCount: followingCount,
		IsFollowing:    isFollowing,
	})
}
