package api

import (
	"errors"
	"net/http"
	"strconv"

	"moodly/pin-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PinFetch returns a single pin with a trimmed author preview
func (a *API) PinFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"message": "Invalid pin ID",
		})
		return
	}

	var pin model.Pin

	err = a.DB.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "user_name", "display_name", "img")
		}).
		Where("id = ?", id).
		First(&pin).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"message": "Pin not found",
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})

		zap.L().Error("Failed to fetch pin", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, pin)
}
