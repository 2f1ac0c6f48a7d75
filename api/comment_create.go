package api

import (
	"net/http"

	"moodly/pin-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type commentBody struct {
	Description string `json:"description"`
	Pin         uint   `json:"pin"`
}

func (a *API) CommentCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data commentBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Description == "" || data.Pin == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"message": "Description and pin are required!",
		})
		return
	}

	comment := model.Comment{
		UserID:      userID,
		PinID:       data.Pin,
		Description: data.Description,
	}

	if err := a.DB.Create(&comment).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to add comment",
		})

		zap.L().Error("Failed to create comment", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Reload with the author preview so the frontend can render the
	// new comment straight away
	err := a.DB.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "user_name", "display_name", "img")
		}).
		First(&comment, comment.ID).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to add comment",
		})

		zap.L().Error("Failed to reload comment", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, comment)
}
