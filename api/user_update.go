package api

import (
	"errors"
	"net/http"
	"strings"

	"moodly/pin-api/internal/store"
	"moodly/pin-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type updateBody struct {
	DisplayName string `json:"displayName"`
	UserName    string `json:"userName"`
}

// UserUpdate merges the provided profile fields into the caller's
// record. Accepts either a JSON body or a multipart form with an
// optional profileImage file, which is uploaded to the object store
// before the record is touched
func (a *API) UserUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	fields := store.UserUpdate{}

	if strings.HasPrefix(c.ContentType(), "application/json") {
		var data updateBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"message": "Invalid request body",
			})

			zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		fields.DisplayName = data.DisplayName
		fields.UserName = data.UserName
	} else {
		fields.DisplayName = c.PostForm("displayName")
		fields.UserName = c.PostForm("userName")

		if file, err := c.FormFile("profileImage"); err == nil {
			f, err := file.Open()
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"message": "Internal server error",
				})

				zap.L().Error("Failed to open uploaded avatar", zap.Error(err), zap.String("requestID", requestID))
				return
			}
			defer f.Close()

			res, err := a.Media.Upload(c.Request.Context(), f, file.Filename, "moodly-profile-pics")
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"message": "Failed to upload profile image",
				})

				zap.L().Error("Failed to upload avatar", zap.Error(err), zap.String("requestID", requestID))
				return
			}

			fields.Img = res.URL
		}
	}

	if fields.UserName != "" {
		if err := validators.UsernameValidator(fields.UserName); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"message": err.Error(),
			})
			return
		}
	}

	user, err := a.Users.Update(userID, fields)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrConflict):
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"message": "Username already taken!",
			})
		case errors.Is(err, store.ErrNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"message": "User not found",
			})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message": "Internal server error",
			})

			zap.L().Error("Failed to update profile", zap.Error(err), zap.String("requestID", requestID))
		}
		return
	}

	c.JSON(http.StatusOK, user)
}
