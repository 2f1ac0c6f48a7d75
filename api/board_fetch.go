package api

import (
	"net/http"

	"moodly/pin-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type boardWithDetails struct {
	model.Board
	PinCount int64      `json:"pinCount"`
	FirstPin *model.Pin `json:"firstPin"`
}

// BoardFetch returns a user's boards enriched with the pin count and
// the first pin for the cover preview
func (a *API) BoardFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	targetID := c.Param("userId")

	var boards []model.Board

	err := a.DB.
		Where("user_id = ?", targetID).
		Find(&boards).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})

		zap.L().Error("Failed to fetch boards", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	resp := make([]boardWithDetails, 0, len(boards))

	for _, board := range boards {
		var count int64

		err := a.DB.Model(model.Pin{}).
			Where("board_id = ?", board.ID).
			Count(&count).
			Error
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message": "Internal server error",
			})

			zap.L().Error("Failed to count board pins", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		var firstPin *model.Pin

		if count > 0 {
			var pin model.Pin
			err = a.DB.
				Where("board_id = ?", board.ID).
				Order("created_at asc").
				First(&pin).
				Error
			if err == nil {
				firstPin = &pin
			}
		}

		resp = append(resp, boardWithDetails{
			Board:    board,
			PinCount: count,
			FirstPin: firstPin,
		})
	}

	c.JSON(http.StatusOK, resp)
}

// BoardFetchMine returns the caller's boards, titles only. Used to
// populate the board picker when creating a pin
func (a *API) BoardFetchMine(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var boards []model.Board

	err := a.DB.
		Select("id", "title").
		Where("user_id = ?", userID).
		Find(&boards).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})

		zap.L().Error("Failed to fetch own boards", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, boards)
}
