package api

import (
	"net/http"
	"strconv"
	"strings"

	"moodly/pin-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PinCreate uploads the media to the object store and creates a new
// pin, optionally creating a fresh board for it in the same request
func (a *API) PinCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	title := c.PostForm("title")
	description := c.PostForm("description")

	file, err := c.FormFile("media")
	if title == "" || description == "" || err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"message": "Title, description, and media are required!",
		})
		return
	}

	var boardID *uint

	if board := c.PostForm("board"); board != "" {
		id, err := strconv.ParseUint(board, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"message": "Invalid board ID",
			})
			return
		}

		b := uint(id)
		boardID = &b
	}

	if newBoard := c.PostForm("newBoard"); newBoard != "" {
		board := model.Board{
			UserID: userID,
			Title:  newBoard,
		}

		if err := a.DB.Create(&board).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message": "Internal server error",
			})

			zap.L().Error("Failed to create board", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		boardID = &board.ID
	}

	f, err := file.Open()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})

		zap.L().Error("Failed to open uploaded media", zap.Error(err), zap.String("requestID", requestID))
		return
	}
	defer f.Close()

	res, err := a.Media.Upload(c.Request.Context(), f, file.Filename, "pins")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to upload media",
		})

		zap.L().Error("Failed to upload pin media", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	tags := model.StringSlice{}
	if raw := c.PostForm("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	pin := model.Pin{
		UserID:      userID,
		Title:       title,
		Description: description,
		Link:        c.PostForm("link"),
		BoardID:     boardID,
		Tags:        tags,
		MediaURL:    res.URL,
		Width:       res.Width,
		Height:      res.Height,
	}

	if err := a.DB.Create(&pin).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})

		zap.L().Error("Failed to create pin", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, pin)
}
