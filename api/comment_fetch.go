package api

import (
	"net/http"
	"strconv"

	"moodly/pin-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CommentFetch returns the comments of a pin, newest first, each with
// a trimmed author preview
func (a *API) CommentFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	postID, err := strconv.ParseUint(c.Param("postId"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"message": "Invalid Post ID",
		})
		return
	}

	var comments []model.Comment

	err = a.DB.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "user_name", "display_name", "img")
		}).
		Where("pin_id = ?", postID).
		Order("created_at desc").
		Find(&comments).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to get comments",
		})

		zap.L().Error("Failed to fetch comments", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, comments)
}
