package api

import (
	"net/http"
	"strconv"
	"strings"

	"moodly/pin-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const feedPageSize = 21

// PinList returns one page of the pin feed. An optional search query
// matches titles and tags. nextCursor is null on the last page
func (a *API) PinList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	cursor, err := strconv.Atoi(c.DefaultQuery("cursor", "0"))
	if err != nil || cursor < 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"message": "Invalid cursor provided",
		})
		return
	}

	q := a.DB.Model(model.Pin{})

	if search := strings.ToLower(c.Query("search")); search != "" {
		q = q.Where("LOWER(title) LIKE ? OR LOWER(tags) LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var pins []model.Pin

	err = q.
		Order("created_at desc").
		Offset(cursor * feedPageSize).
		Limit(feedPageSize).
		Find(&pins).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})

		zap.L().Error("Failed to fetch pin feed", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var nextCursor *int
	if len(pins) == feedPageSize {
		n := cursor + 1
		nextCursor = &n
	}

	c.JSON(http.StatusOK, gin.H{
		"pins":       pins,
		"nextCursor": nextCursor,
	})
}
