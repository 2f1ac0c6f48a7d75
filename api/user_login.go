package api

import (
	"errors"
	"net/http"

	"moodly/pin-api/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *API) UserLogin(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Email == "" || data.Password == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"message": "All fields are required!",
		})
		return
	}

	// An unknown email and a wrong password produce the exact same
	// response so an attacker can't probe which emails are registered
	userID, digest, err := a.Users.CredentialsByEmail(data.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid email or password",
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})

		zap.L().Error("Failed to look up credentials", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !a.Hasher.VerifyPasswd(data.Password, digest) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"message": "Invalid email or password",
		})
		return
	}

	user, err := a.Users.FindByID(userID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})

		zap.L().Error("Failed to load user after login", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	token, err := a.Tokens.Mint(userID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})

		zap.L().Error("Failed to mint session token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	setSessionCookie(c, token)
	c.JSON(http.StatusOK, user)
}
