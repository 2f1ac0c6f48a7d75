package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserLogout clears the session cookie. It always succeeds, logging
// out twice is fine
func (a *API) UserLogout(c *gin.Context) {
	clearSessionCookie(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
	})
}
